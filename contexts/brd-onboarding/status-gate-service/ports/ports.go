package ports

import (
	"context"
	"time"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for history/outbox rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// BRDRepository is the read/write boundary for BRD documents.
// UpdateStatus performs the repository's own target-status validation and
// returns the domain's typed rejection error when the value fails it.
type BRDRepository interface {
	CreateBRD(ctx context.Context, brd entities.BRD) error
	GetBRD(ctx context.Context, brdID string) (entities.BRD, error)
	UpdateStatus(ctx context.Context, brdID string, status entities.BRDStatus, updatedAt time.Time) error
}

// HistoryRepository records one audit row per executed transition.
type HistoryRepository interface {
	AppendStatus(ctx context.Context, item entities.StatusHistory) error
	ListByBRD(ctx context.Context, brdID string) ([]entities.StatusHistory, error)
}

// EventEnvelope is the wire shape for status-changed events.
type EventEnvelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	SourceService string    `json:"source_service"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	EntityType    string    `json:"entity_type"`
	EntityID      string    `json:"entity_id"`
	Payload       any       `json:"payload"`
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	EnqueueOutbox(ctx context.Context, message OutboxMessage) error
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher emits status-changed events to the event bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
