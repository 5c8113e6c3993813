package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"gorm.io/gorm"
)

// UserPostgresStorage реализует ports.UserStorage поверх GORM.
type UserPostgresStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewUserPostgresStorage(db *gorm.DB, logger *slog.Logger) *UserPostgresStorage {
	return &UserPostgresStorage{db: db, logger: logger}
}

// Create сохраняет нового пользователя; id и таймстемпы заполняет БД.
func (s *UserPostgresStorage) Create(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		s.logger.Error("failed to create user", "email", user.Email, "error", err)
		return classifyError(err)
	}

	s.logger.Info("user created",
		"id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// FindMany получает страницу пользователей, новые первыми.
func (s *UserPostgresStorage) FindMany(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var users []domain.User

	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		s.logger.Error("failed to list users", "limit", limit, "offset", offset, "error", err)
		return nil, classifyError(err)
	}

	return users, nil
}

// Count возвращает общее число пользователей.
func (s *UserPostgresStorage) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		s.logger.Error("failed to count users", "error", err)
		return 0, classifyError(err)
	}
	return total, nil
}

// FindByID получает пользователя по id; (nil, nil) — если строки нет.
func (s *UserPostgresStorage) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User

	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get user by id", "id", id, "error", err)
		return nil, classifyError(err)
	}
	return &user, nil
}

// Update применяет частичное обновление по id и возвращает обновлённую строку.
// Ноль затронутых строк означает ошибку шлюза "не найдено при записи".
func (s *UserPostgresStorage) Update(ctx context.Context, id int64, fields map[string]any) (*domain.User, error) {
	start := time.Now()

	if len(fields) > 0 {
		res := s.db.WithContext(ctx).
			Model(&domain.User{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			s.logger.Error("failed to update user", "id", id, "error", res.Error)
			return nil, classifyError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperr.GatewayNotFound(gorm.ErrRecordNotFound)
		}
	}

	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, classifyError(err)
	}

	s.logger.Info("user updated",
		"id", id,
		"fields", len(fields),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &user, nil
}

// Delete удаляет пользователя по id.
func (s *UserPostgresStorage) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		s.logger.Error("failed to delete user", "id", id, "error", res.Error)
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.GatewayNotFound(gorm.ErrRecordNotFound)
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}
