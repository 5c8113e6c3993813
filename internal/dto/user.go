package dto

// CreateUser — входные данные для создания пользователя.
// Все ограничения повторяют схему таблицы users.
type CreateUser struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Age   *int   `json:"age" validate:"omitempty,gte=18"`
}

// UpdateUser — частичное обновление: каждое поле опционально,
// но при наличии обязано удовлетворять тем же ограничениям, что и при создании.
type UpdateUser struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Age   *int    `json:"age" validate:"omitempty,gte=18"`
}

// Fields возвращает только переданные поля — ровно то,
// что уйдёт в частичный update шлюза.
func (d UpdateUser) Fields() map[string]any {
	fields := make(map[string]any)
	if d.Email != nil {
		fields["email"] = *d.Email
	}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Age != nil {
		fields["age"] = *d.Age
	}
	return fields
}
