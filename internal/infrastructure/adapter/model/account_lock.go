package model

import (
	"time"
)

// AccountLock is a lease on one user's account held by a ledger process
type AccountLock struct {
	UserID    string    `gorm:"primaryKey;size:128"`
	Owner     string    `gorm:"not null;size:128"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountLock
func (AccountLock) TableName() string {
	return "account_locks"
}
