package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
)

// UserStorage определяет методы шлюза БД для работы с пользователями.
// Методы чтения возвращают (nil, nil), когда строки нет — "не найдено"
// решает вызывающий сервис, а не хранилище.
type UserStorage interface {
	Create(ctx context.Context, user *domain.User) error
	FindMany(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// PostStorage определяет методы шлюза БД для работы с постами.
// authorID == nil означает выборку без фильтра по автору.
type PostStorage interface {
	Create(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error)
	FindMany(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error)
	Count(ctx context.Context, authorID *int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	FindAllWithTags(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, id int64, fields map[string]any, tagIDs []int64) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
