package persistence

import (
	"context"
	"time"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// OutboxRepository stores ledger events until the relay has published them
type OutboxRepository interface {
	// Create writes a pending event, normally inside the mutation's unit of work
	Create(ctx context.Context, event *entity.OutboxEvent) error

	// FetchPending returns up to limit pending events, oldest first.
	// Inside a unit of work on Postgres the rows are locked with SKIP LOCKED.
	FetchPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)

	// MarkSent records a successful delivery
	MarkSent(ctx context.Context, id string, sentAt time.Time) error

	// MarkAttemptFailed bumps the attempt counter; terminal moves the event to failed
	MarkAttemptFailed(ctx context.Context, id string, lastError string, terminal bool) error
}
