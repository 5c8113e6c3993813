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

// PostPostgresStorage реализует ports.PostStorage поверх GORM.
type PostPostgresStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewPostPostgresStorage(db *gorm.DB, logger *slog.Logger) *PostPostgresStorage {
	return &PostPostgresStorage{db: db, logger: logger}
}

// withRelations подключает автора (проекция id/name/email) и теги.
func (s *PostPostgresStorage) withRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags")
}

// Create сохраняет пост и связывает его с уже существующими тегами
// (connect-семантика: строки тегов не создаются и не изменяются).
// Несуществующий tagId или authorId всплывает как нарушение внешнего ключа.
func (s *PostPostgresStorage) Create(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error) {
	start := time.Now()

	for _, tagID := range tagIDs {
		post.Tags = append(post.Tags, domain.Tag{ID: tagID})
	}

	if err := s.db.WithContext(ctx).Omit("Tags.*").Create(post).Error; err != nil {
		s.logger.Error("failed to create post", "author_id", post.AuthorID, "error", err)
		return nil, classifyError(err)
	}

	created, err := s.reload(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"id", post.ID,
		"tags", len(tagIDs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return created, nil
}

// FindMany получает страницу постов, новые первыми.
// authorID == nil означает выборку без фильтра.
func (s *PostPostgresStorage) FindMany(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error) {
	var posts []domain.Post

	q := s.withRelations(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
	if authorID != nil {
		q = q.Where("author_id = ?", *authorID)
	}

	if err := q.Find(&posts).Error; err != nil {
		s.logger.Error("failed to list posts", "limit", limit, "offset", offset, "error", err)
		return nil, classifyError(err)
	}
	return posts, nil
}

// Count возвращает общее число постов, с необязательным фильтром по автору.
func (s *PostPostgresStorage) Count(ctx context.Context, authorID *int64) (int64, error) {
	var total int64

	q := s.db.WithContext(ctx).Model(&domain.Post{})
	if authorID != nil {
		q = q.Where("author_id = ?", *authorID)
	}

	if err := q.Count(&total).Error; err != nil {
		s.logger.Error("failed to count posts", "error", err)
		return 0, classifyError(err)
	}
	return total, nil
}

// FindByID получает пост по id вместе с автором и тегами; (nil, nil) — если строки нет.
func (s *PostPostgresStorage) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post

	err := s.withRelations(ctx).First(&post, "posts.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to get post by id", "id", id, "error", err)
		return nil, classifyError(err)
	}
	return &post, nil
}

// FindAllWithTags возвращает все посты с автором и тегами,
// без фильтра и пагинации, новые первыми.
func (s *PostPostgresStorage) FindAllWithTags(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post

	err := s.withRelations(ctx).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		s.logger.Error("failed to list posts with tags", "error", err)
		return nil, classifyError(err)
	}
	return posts, nil
}

// Update применяет частичное обновление поста. Переданный tagIDs полностью
// заменяет набор тегов (set-семантика); nil оставляет теги как есть.
// Как и в Create, строки тегов не создаются и не изменяются:
// несуществующий tagId всплывает как нарушение внешнего ключа.
func (s *PostPostgresStorage) Update(ctx context.Context, id int64, fields map[string]any, tagIDs []int64) (*domain.Post, error) {
	start := time.Now()

	if len(fields) > 0 {
		res := s.db.WithContext(ctx).
			Model(&domain.Post{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			s.logger.Error("failed to update post", "id", id, "error", res.Error)
			return nil, classifyError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperr.GatewayNotFound(gorm.ErrRecordNotFound)
		}
	} else {
		// Пустой набор полей: существование поста проверяем явно,
		// чтобы set тегов по несуществующему id не проскочил молча.
		var exists domain.Post
		if err := s.db.WithContext(ctx).Select("id").First(&exists, "id = ?", id).Error; err != nil {
			return nil, classifyError(err)
		}
	}

	if tagIDs != nil {
		post := domain.Post{ID: id}
		tags := make([]domain.Tag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			tags = append(tags, domain.Tag{ID: tagID})
		}
		if err := s.db.WithContext(ctx).Model(&post).Omit("Tags.*").Association("Tags").Replace(&tags); err != nil {
			s.logger.Error("failed to replace post tags", "id", id, "error", err)
			return nil, classifyError(err)
		}
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated",
		"id", id,
		"fields", len(fields),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return updated, nil
}

// Delete удаляет пост по id; связи с тегами снимает каскад в БД.
func (s *PostPostgresStorage) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if res.Error != nil {
		s.logger.Error("failed to delete post", "id", id, "error", res.Error)
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.GatewayNotFound(gorm.ErrRecordNotFound)
	}

	s.logger.Info("post deleted", "id", id)
	return nil
}

func (s *PostPostgresStorage) reload(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := s.withRelations(ctx).First(&post, "posts.id = ?", id).Error; err != nil {
		return nil, classifyError(err)
	}
	return &post, nil
}
