package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction is one append-only ledger entry.
// IdempotencyKey is nullable so entries without a key never collide in the unique index.
type Transaction struct {
	ID             string         `gorm:"primaryKey;size:36"`
	UserID         string         `gorm:"not null;size:128;uniqueIndex:idx_transactions_user_sequence,priority:1;uniqueIndex:idx_transactions_user_idempotency,priority:1"`
	Sequence       int64          `gorm:"not null;uniqueIndex:idx_transactions_user_sequence,priority:2"`
	Kind           string         `gorm:"not null;size:16"`
	Amount         int64          `gorm:"not null"`
	Category       string         `gorm:"not null;size:64;index"`
	Description    string         `gorm:"type:text"`
	Metadata       datatypes.JSON
	BalanceAfter   int64          `gorm:"not null"`
	IdempotencyKey *string        `gorm:"size:128;uniqueIndex:idx_transactions_user_idempotency,priority:2"`
	CreatedAt      time.Time      `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
