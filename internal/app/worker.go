package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// runWorker запускает потребителя событий сущностей и пишет журнал аудита.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	consumer ports.EntityEventConsumer,
) error {
	logger.Info("worker started, waiting for entity events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Каждое событие попадает в журнал аудита; обработчик не имеет
	// побочных эффектов, поэтому повторная доставка безопасна.
	messageHandler := func(_ context.Context, payload payloads.EntityEventPayload) error {
		logger.Info("entity event",
			"entity", payload.Entity,
			"action", payload.Action,
			"entity_id", payload.EntityID,
			"occurred_at", payload.OccurredAt,
		)
		return nil
	}

	if err := consumer.StartConsumingEntityEvents(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()

	logger.Info("worker stopped")
	return nil
}
