package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runSeeder наполняет базу демонстрационными данными через обычные
// бизнес-операции; напрямую в БД создаются только теги, у которых нет
// собственного сервиса.
func runSeeder(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	users usecase.UserUseCase,
	posts usecase.PostUseCase,
) error {
	gofakeit.Seed(0)

	tagIDs := make([]int64, 0, cfg.Seed.Tags)
	for i := 0; i < cfg.Seed.Tags; i++ {
		tag := domain.Tag{Name: fmt.Sprintf("%s-%d", gofakeit.Word(), i)}
		if err := db.WithContext(ctx).Create(&tag).Error; err != nil {
			return fmt.Errorf("ошибка создания тега: %w", err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	userIDs := make([]int64, 0, cfg.Seed.Users)
	for i := 0; i < cfg.Seed.Users; i++ {
		age := gofakeit.Number(18, 80)
		// суффикс из uuid гарантирует уникальность email при повторных запусках
		email := fmt.Sprintf("%s.%s@example.com", gofakeit.Username(), uuid.NewString()[:8])

		user, err := users.Create(ctx, dto.CreateUser{
			Email: email,
			Name:  gofakeit.Name(),
			Age:   &age,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания пользователя: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		logger.Info("seed completed", "users", 0, "tags", len(tagIDs), "posts", 0)
		return nil
	}

	for i := 0; i < cfg.Seed.Posts; i++ {
		published := gofakeit.Bool()
		authorID := userIDs[gofakeit.Number(0, len(userIDs)-1)]

		var postTags []int64
		for _, tagID := range tagIDs {
			if gofakeit.Bool() {
				postTags = append(postTags, tagID)
			}
		}

		_, err := posts.Create(ctx, dto.CreatePost{
			Title:     gofakeit.Sentence(4),
			Content:   gofakeit.Paragraph(1, 3, 12, " "),
			Published: &published,
			AuthorID:  authorID,
			TagIDs:    postTags,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания поста: %w", err)
		}
	}

	logger.Info("seed completed",
		"users", len(userIDs),
		"tags", len(tagIDs),
		"posts", cfg.Seed.Posts,
	)
	return nil
}
