package dto

// CreatePost — входные данные для создания поста.
// tagIds — список идентификаторов уже существующих тегов (connect-семантика).
type CreatePost struct {
	Title     string  `json:"title" validate:"required"`
	Content   string  `json:"content" validate:"required"`
	Published *bool   `json:"published"`
	AuthorID  int64   `json:"authorId" validate:"required,gt=0"`
	TagIDs    []int64 `json:"tagIds" validate:"omitempty,dive,gt=0"`
}

// UpdatePost — частичное обновление поста. Переданный tagIds полностью
// заменяет набор тегов (set-семантика); nil означает "не трогать теги".
type UpdatePost struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Content   *string `json:"content" validate:"omitempty,min=1"`
	Published *bool   `json:"published"`
	TagIDs    []int64 `json:"tagIds" validate:"omitempty,dive,gt=0"`
}

// Fields возвращает только переданные скалярные поля поста;
// теги обрабатываются отдельно из-за set-семантики.
func (d UpdatePost) Fields() map[string]any {
	fields := make(map[string]any)
	if d.Title != nil {
		fields["title"] = *d.Title
	}
	if d.Content != nil {
		fields["content"] = *d.Content
	}
	if d.Published != nil {
		fields["published"] = *d.Published
	}
	return fields
}
