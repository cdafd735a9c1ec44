package model

import (
	"time"
)

// BlockEvent is one row of the blocked-flag audit trail
type BlockEvent struct {
	Seq             uint64    `gorm:"primaryKey;autoIncrement;index:idx_block_events_user_seq,priority:2"`
	EventID         string    `gorm:"uniqueIndex;not null;size:36"`
	UserID          string    `gorm:"not null;size:128;index:idx_block_events_user_seq,priority:1"`
	Blocked         bool      `gorm:"not null"`
	PreviousBlocked bool      `gorm:"not null"`
	Reason          string    `gorm:"not null;size:32"`
	Actor           string    `gorm:"not null;size:128"`
	Note            string    `gorm:"type:text"`
	BalanceAt       int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for BlockEvent
func (BlockEvent) TableName() string {
	return "block_events"
}
