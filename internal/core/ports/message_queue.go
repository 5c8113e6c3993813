package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// EntityEventPublisher определяет методы для публикации событий изменения сущностей.
// Используется сервисами после успешных операций записи.
type EntityEventPublisher interface {
	PublishEntityEvent(ctx context.Context, payload payloads.EntityEventPayload) error
}

// EntityEventConsumer определяет методы для потребления событий изменения сущностей.
// Используется воркером аудита.
type EntityEventConsumer interface {
	// StartConsumingEntityEvents начинает прослушивание очереди событий,
	// вызывая handler для каждого полученного сообщения.
	StartConsumingEntityEvents(ctx context.Context, handler func(context.Context, payloads.EntityEventPayload) error) error
}
