package domain

import "time"

// User представляет модель пользователя в системе,
// соответствует таблице users в бд
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Profile   *Profile  `json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Profile представляет модель профиля (один-к-одному с User),
// соответствует таблице profiles в бд
type Profile struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Bio    string `json:"bio"`
	UserID int64  `json:"userId" gorm:"uniqueIndex;not null"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Author — проекция автора поста (только id/name/email),
// читается из той же таблицы users
type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (Author) TableName() string {
	return "users"
}
