package messaging

import (
	"context"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// EventPublisher delivers an outbox event to the message broker
type EventPublisher interface {
	Publish(ctx context.Context, event *entity.OutboxEvent) error
	Close() error
}
