package model

import (
	"time"
)

// Account is the denormalized balance row of one user.
// Balance is stored for cheap reads and always equals TotalLoaded - TotalConsumed.
type Account struct {
	UserID              string    `gorm:"primaryKey;size:128"`
	Balance             int64     `gorm:"not null;default:0"`
	TotalLoaded         int64     `gorm:"not null;default:0"`
	TotalConsumed       int64     `gorm:"not null;default:0"`
	IsBlocked           bool      `gorm:"not null;default:false;index"`
	LowBalanceThreshold int64     `gorm:"not null;default:0"`
	TransactionCount    int64     `gorm:"not null;default:0"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
