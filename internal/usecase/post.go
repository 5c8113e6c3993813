package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// PostUseCase определяет бизнес-операции над постами.
type PostUseCase interface {
	Create(ctx context.Context, d dto.CreatePost) (*domain.Post, error)
	FindAll(ctx context.Context, limit, offset int) (*Page, error)
	FindOne(ctx context.Context, id int64) (*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID int64, limit, offset int) (*Page, error)
	FindWithTags(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, id int64, d dto.UpdatePost) (*domain.Post, error)
	Remove(ctx context.Context, id int64) (Confirmation, error)
}

type postUseCase struct {
	storage ports.PostStorage
	events  ports.EntityEventPublisher
	logger  *slog.Logger
}

// NewPostUseCase создаёт новый экземпляр PostUseCase.
func NewPostUseCase(storage ports.PostStorage, events ports.EntityEventPublisher, logger *slog.Logger) PostUseCase {
	return &postUseCase{storage: storage, events: events, logger: logger}
}

// Create сохраняет пост, связывая его с существующими тегами (connect).
// Несуществующий автор или тег всплывёт из шлюза как нарушение внешнего
// ключа — сервис его не перепроверяет заранее.
func (u *postUseCase) Create(ctx context.Context, d dto.CreatePost) (*domain.Post, error) {
	post := &domain.Post{
		Title:    d.Title,
		Content:  d.Content,
		AuthorID: d.AuthorID,
	}
	if d.Published != nil {
		post.Published = *d.Published
	}

	created, err := u.storage.Create(ctx, post, d.TagIDs)
	if err != nil {
		if apperr.IsKind(err, apperr.KindGatewayUnique) {
			return nil, apperr.Conflict("El registro ya existe").WithCause(err)
		}
		return nil, err
	}

	u.publish(ctx, "created", created.ID)
	return created, nil
}

// FindAll возвращает страницу постов, новые первыми.
func (u *postUseCase) FindAll(ctx context.Context, limit, offset int) (*Page, error) {
	return u.page(ctx, nil, limit, offset)
}

// FindByAuthor — та же пагинация, но с фильтром по автору.
func (u *postUseCase) FindByAuthor(ctx context.Context, authorID int64, limit, offset int) (*Page, error) {
	return u.page(ctx, &authorID, limit, offset)
}

func (u *postUseCase) page(ctx context.Context, authorID *int64, limit, offset int) (*Page, error) {
	limit, offset = normalizePagination(limit, offset)

	posts, err := u.storage.FindMany(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := u.storage.Count(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return &Page{Data: posts, Meta: pageMeta(total, limit, offset)}, nil
}

// FindOne возвращает пост по id с автором и тегами.
func (u *postUseCase) FindOne(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := u.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Post con ID %d no encontrado", id))
	}
	return post, nil
}

// FindWithTags возвращает все посты с тегами, без пагинации.
func (u *postUseCase) FindWithTags(ctx context.Context) ([]domain.Post, error) {
	return u.storage.FindAllWithTags(ctx)
}

// Update применяет частичное обновление. Переданный tagIds полностью
// заменяет набор тегов (set), отсутствующий — оставляет его нетронутым.
func (u *postUseCase) Update(ctx context.Context, id int64, d dto.UpdatePost) (*domain.Post, error) {
	post, err := u.storage.Update(ctx, id, d.Fields(), d.TagIDs)
	if err != nil {
		if apperr.IsKind(err, apperr.KindGatewayNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Post con ID %d no encontrado", id)).WithCause(err)
		}
		return nil, err
	}

	u.publish(ctx, "updated", id)
	return post, nil
}

// Remove безвозвратно удаляет пост и возвращает фиксированное подтверждение.
func (u *postUseCase) Remove(ctx context.Context, id int64) (Confirmation, error) {
	if err := u.storage.Delete(ctx, id); err != nil {
		if apperr.IsKind(err, apperr.KindGatewayNotFound) {
			return Confirmation{}, apperr.NotFound(fmt.Sprintf("Post con ID %d no encontrado", id)).WithCause(err)
		}
		return Confirmation{}, err
	}

	u.publish(ctx, "deleted", id)
	return Confirmation{Message: "Post eliminado exitosamente"}, nil
}

func (u *postUseCase) publish(ctx context.Context, action string, id int64) {
	if u.events == nil {
		return
	}
	payload := payloads.EntityEventPayload{
		Entity:     "post",
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.events.PublishEntityEvent(ctx, payload); err != nil {
		u.logger.Warn("failed to publish entity event", "entity", "post", "action", action, "id", id, "error", err)
	}
}
