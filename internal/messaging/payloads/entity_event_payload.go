package payloads

import "time"

// EntityEventPayload представляет событие изменения сущности,
// публикуемое в RabbitMQ после успешной операции записи.
type EntityEventPayload struct {
	Entity     string    `json:"entity"` // "user" или "post"
	Action     string    `json:"action"` // "created", "updated", "deleted"
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
