package rabbitmq

import (
	"context"
	"errors"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// ErrDisabled возвращается потребителем, когда RabbitMQ не сконфигурирован.
var ErrDisabled = errors.New("rabbitmq is not configured")

// NoopClient используется при пустом RABBITMQ_URL: публикация событий
// молча пропускается, запуск потребителя — ошибка.
type NoopClient struct{}

func (NoopClient) PublishEntityEvent(context.Context, payloads.EntityEventPayload) error {
	return nil
}

func (NoopClient) StartConsumingEntityEvents(context.Context, func(context.Context, payloads.EntityEventPayload) error) error {
	return ErrDisabled
}
