package domain

import "time"

// Post представляет модель поста в системе,
// соответствует таблице posts в бд
type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"not null"`
	Published bool      `json:"published" gorm:"not null;default:false"`
	AuthorID  int64     `json:"authorId" gorm:"not null"`
	Author    *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Tags      []Tag     `json:"tags" gorm:"many2many:post_tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// Tag представляет модель тега,
// соответствует таблице tags в бд
type Tag struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

func (Tag) TableName() string {
	return "tags"
}
