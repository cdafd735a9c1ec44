package entity

import (
	"math"
	"strings"
	"time"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

// MaxUserIDLength bounds the opaque user identifier handed in by callers
const MaxUserIDLength = 128

// BlockReason explains why an account's blocked flag changed
type BlockReason string

const (
	BlockReasonNegativeBalance BlockReason = "negative_balance"
	BlockReasonCredit          BlockReason = "credit"
	BlockReasonAdmin           BlockReason = "admin"
)

// BlockTransition describes a change of the blocked flag produced by a balance mutation.
// A zero value means the flag did not change.
type BlockTransition struct {
	Changed bool
	Blocked bool
	Reason  BlockReason
}

// Account is a user's credit balance together with its lifetime totals.
// Balance is kept private so the only way to move it is ApplyDebit/ApplyCredit,
// which keep balance == totalLoaded - totalConsumed.
type Account struct {
	UserID              string
	balance             int64
	totalLoaded         int64
	totalConsumed       int64
	IsBlocked           bool
	LowBalanceThreshold int64
	TransactionCount    int64 // sequence number of the latest transaction
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ValidateUserID checks the caller-supplied owner id
func ValidateUserID(userID string) error {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" || trimmed != userID || len(userID) > MaxUserIDLength {
		return errs.ErrInvalidUserID
	}
	return nil
}

// NewAccount creates an empty, active account
func NewAccount(userID string, lowBalanceThreshold int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if lowBalanceThreshold < 0 {
		return nil, errs.ErrInvalidThreshold
	}

	now := timeProvider.Now()
	return &Account{
		UserID:              userID,
		LowBalanceThreshold: lowBalanceThreshold,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted totals.
// The balance is derived from the totals rather than trusted separately.
func RestoreAccount(userID string, totalLoaded, totalConsumed int64, blocked bool, threshold, txCount int64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		UserID:              userID,
		balance:             totalLoaded - totalConsumed,
		totalLoaded:         totalLoaded,
		totalConsumed:       totalConsumed,
		IsBlocked:           blocked,
		LowBalanceThreshold: threshold,
		TransactionCount:    txCount,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// Balance returns the current signed balance
func (a *Account) Balance() int64 {
	return a.balance
}

// TotalLoaded returns the lifetime sum of credits
func (a *Account) TotalLoaded() int64 {
	return a.totalLoaded
}

// TotalConsumed returns the lifetime sum of debits
func (a *Account) TotalConsumed() int64 {
	return a.totalConsumed
}

// IsLowBalance reports whether the balance is under the warning cutoff
func (a *Account) IsLowBalance() bool {
	return a.balance < a.LowBalanceThreshold
}

// ApplyDebit consumes amount credits.
//
// A blocked account only accepts debits with allowNegative set, and that check happens
// before any arithmetic. A debit that leaves an active account below zero blocks it.
func (a *Account) ApplyDebit(amount int64, allowNegative bool, timeProvider coreport.TimeProvider) (BlockTransition, error) {
	if amount <= 0 {
		return BlockTransition{}, errs.ErrInvalidAmount
	}
	if a.IsBlocked && !allowNegative {
		return BlockTransition{}, errs.NewAccountBlockedError(a.UserID, a.balance)
	}
	if a.totalConsumed > math.MaxInt64-amount || a.balance < math.MinInt64+amount {
		return BlockTransition{}, errs.ErrAmountOverflow
	}

	newBalance := a.balance - amount
	if newBalance < 0 && !allowNegative {
		return BlockTransition{}, errs.NewInsufficientBalanceError(a.UserID, amount, a.balance)
	}

	a.balance = newBalance
	a.totalConsumed += amount
	a.TransactionCount++
	a.UpdatedAt = timeProvider.Now()

	if newBalance < 0 && !a.IsBlocked {
		a.IsBlocked = true
		return BlockTransition{Changed: true, Blocked: true, Reason: BlockReasonNegativeBalance}, nil
	}
	return BlockTransition{}, nil
}

// ApplyCredit loads amount credits and clears a block once the balance is back at zero or above
func (a *Account) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) (BlockTransition, error) {
	if amount <= 0 {
		return BlockTransition{}, errs.ErrInvalidAmount
	}
	if a.totalLoaded > math.MaxInt64-amount || a.balance > math.MaxInt64-amount {
		return BlockTransition{}, errs.ErrAmountOverflow
	}

	a.balance += amount
	a.totalLoaded += amount
	a.TransactionCount++
	a.UpdatedAt = timeProvider.Now()

	if a.IsBlocked && a.balance >= 0 {
		a.IsBlocked = false
		return BlockTransition{Changed: true, Blocked: false, Reason: BlockReasonCredit}, nil
	}
	return BlockTransition{}, nil
}

// SetBlocked is the administrative override. It reports whether the flag changed.
func (a *Account) SetBlocked(blocked bool, timeProvider coreport.TimeProvider) bool {
	if a.IsBlocked == blocked {
		return false
	}
	a.IsBlocked = blocked
	a.UpdatedAt = timeProvider.Now()
	return true
}

// SetLowBalanceThreshold updates the warning cutoff
func (a *Account) SetLowBalanceThreshold(threshold int64, timeProvider coreport.TimeProvider) error {
	if threshold < 0 {
		return errs.ErrInvalidThreshold
	}
	a.LowBalanceThreshold = threshold
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Stats returns the aggregate view exposed by getStats
func (a *Account) Stats() AccountStats {
	return AccountStats{
		UserID:              a.UserID,
		Balance:             a.balance,
		TotalLoaded:         a.totalLoaded,
		TotalConsumed:       a.totalConsumed,
		IsBlocked:           a.IsBlocked,
		LowBalanceThreshold: a.LowBalanceThreshold,
		IsLowBalance:        a.IsLowBalance(),
		TransactionCount:    a.TransactionCount,
	}
}
