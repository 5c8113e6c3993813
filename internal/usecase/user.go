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

// UserUseCase определяет бизнес-операции над пользователями.
type UserUseCase interface {
	Create(ctx context.Context, d dto.CreateUser) (*domain.User, error)
	FindAll(ctx context.Context, limit, offset int) (*Page, error)
	FindOne(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, d dto.UpdateUser) (*domain.User, error)
	Remove(ctx context.Context, id int64) (Confirmation, error)
}

type userUseCase struct {
	storage ports.UserStorage
	events  ports.EntityEventPublisher
	logger  *slog.Logger
}

// NewUserUseCase создаёт новый экземпляр UserUseCase.
// events может быть nil — тогда события не публикуются.
func NewUserUseCase(storage ports.UserStorage, events ports.EntityEventPublisher, logger *slog.Logger) UserUseCase {
	return &userUseCase{storage: storage, events: events, logger: logger}
}

// Create сохраняет нового пользователя. Нарушение уникальности email
// переклассифицируется в доменный конфликт; остальные ошибки шлюза
// уходят наверх как есть.
func (u *userUseCase) Create(ctx context.Context, d dto.CreateUser) (*domain.User, error) {
	user := &domain.User{
		Email: d.Email,
		Name:  d.Name,
		Age:   d.Age,
	}

	if err := u.storage.Create(ctx, user); err != nil {
		if apperr.IsKind(err, apperr.KindGatewayUnique) {
			return nil, apperr.Conflict("El registro ya existe").WithCause(err)
		}
		return nil, err
	}

	u.publish(ctx, "created", user.ID)
	return user, nil
}

// FindAll возвращает страницу пользователей, новые первыми.
func (u *userUseCase) FindAll(ctx context.Context, limit, offset int) (*Page, error) {
	limit, offset = normalizePagination(limit, offset)

	users, err := u.storage.FindMany(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := u.storage.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Page{Data: users, Meta: pageMeta(total, limit, offset)}, nil
}

// FindOne возвращает пользователя по id.
func (u *userUseCase) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.storage.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
	}
	return user, nil
}

// Update применяет частичное обновление: меняются только переданные поля.
func (u *userUseCase) Update(ctx context.Context, id int64, d dto.UpdateUser) (*domain.User, error) {
	user, err := u.storage.Update(ctx, id, d.Fields())
	if err != nil {
		if apperr.IsKind(err, apperr.KindGatewayNotFound) {
			return nil, apperr.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id)).WithCause(err)
		}
		if apperr.IsKind(err, apperr.KindGatewayUnique) {
			return nil, apperr.Conflict("El registro ya existe").WithCause(err)
		}
		return nil, err
	}

	u.publish(ctx, "updated", id)
	return user, nil
}

// Remove безвозвратно удаляет пользователя и возвращает фиксированное подтверждение.
func (u *userUseCase) Remove(ctx context.Context, id int64) (Confirmation, error) {
	if err := u.storage.Delete(ctx, id); err != nil {
		if apperr.IsKind(err, apperr.KindGatewayNotFound) {
			return Confirmation{}, apperr.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id)).WithCause(err)
		}
		return Confirmation{}, err
	}

	u.publish(ctx, "deleted", id)
	return Confirmation{Message: "Usuario eliminado exitosamente"}, nil
}

// publish отправляет событие изменения сущности; ошибка публикации
// не влияет на результат операции.
func (u *userUseCase) publish(ctx context.Context, action string, id int64) {
	if u.events == nil {
		return
	}
	payload := payloads.EntityEventPayload{
		Entity:     "user",
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.events.PublishEntityEvent(ctx, payload); err != nil {
		u.logger.Warn("failed to publish entity event", "entity", "user", "action", action, "id", id, "error", err)
	}
}
