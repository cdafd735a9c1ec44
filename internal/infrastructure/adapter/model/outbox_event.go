package model

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxEvent is a ledger event waiting for the relay
type OutboxEvent struct {
	Seq         uint64         `gorm:"primaryKey;autoIncrement;index:idx_outbox_events_status_seq,priority:2"`
	EventID     string         `gorm:"uniqueIndex;not null;size:36"`
	EventType   string         `gorm:"not null;size:64"`
	AggregateID string         `gorm:"not null;size:128;index"`
	Payload     datatypes.JSON `gorm:"not null"`
	Status      string         `gorm:"not null;size:16;index:idx_outbox_events_status_seq,priority:1"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"not null"`
	SentAt      *time.Time
}

// TableName specifies the table name for OutboxEvent
func (OutboxEvent) TableName() string {
	return "outbox_events"
}
