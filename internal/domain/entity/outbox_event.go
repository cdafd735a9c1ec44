package entity

import "time"

// EventType names a ledger event published through the outbox
type EventType string

const (
	EventTransactionRecorded EventType = "ledger.transaction.recorded"
	EventAccountBlocked      EventType = "ledger.account.blocked"
	EventAccountUnblocked    EventType = "ledger.account.unblocked"
	EventBalanceLow          EventType = "ledger.balance.low"
)

// OutboxStatus tracks delivery of an outbox event
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxEvent is written in the same database transaction as the mutation it describes
// and delivered later by the relay.
type OutboxEvent struct {
	ID          string
	EventType   EventType
	AggregateID string
	Payload     map[string]any
	Status      OutboxStatus
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	SentAt      *time.Time
}
