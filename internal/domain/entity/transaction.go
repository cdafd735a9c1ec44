package entity

import (
	"strings"
	"time"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
)

// TransactionKind tells debits and credits apart without inspecting the sign
type TransactionKind string

const (
	KindDebit  TransactionKind = "debit"
	KindCredit TransactionKind = "credit"
)

const (
	// MaxCategoryLength bounds the free-form category label
	MaxCategoryLength = 64
	// MaxDescriptionLength bounds the optional description text
	MaxDescriptionLength = 1024
	// MaxIdempotencyKeyLength bounds caller-supplied idempotency keys
	MaxIdempotencyKeyLength = 128
)

// Transaction is one immutable ledger entry.
// Amount is signed: debits are negative, credits positive.
type Transaction struct {
	ID             string
	UserID         string
	Sequence       int64
	Kind           TransactionKind
	Amount         int64
	Category       string
	Description    string
	Metadata       map[string]any
	BalanceAfter   int64
	IdempotencyKey string
	CreatedAt      time.Time
}

// NewTransaction builds the entry recording a mutation that has already been applied to account
func NewTransaction(id string, account *Account, kind TransactionKind, amount int64, category, description string, metadata map[string]any, idempotencyKey string) *Transaction {
	signed := amount
	if kind == KindDebit {
		signed = -amount
	}
	return &Transaction{
		ID:             id,
		UserID:         account.UserID,
		Sequence:       account.TransactionCount,
		Kind:           kind,
		Amount:         signed,
		Category:       category,
		Description:    description,
		Metadata:       metadata,
		BalanceAfter:   account.Balance(),
		IdempotencyKey: idempotencyKey,
		CreatedAt:      account.UpdatedAt,
	}
}

// AbsAmount returns the unsigned amount of the entry
func (t *Transaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Matches reports whether a replayed request carries the same parameters as this entry
func (t *Transaction) Matches(kind TransactionKind, amount int64, category string) bool {
	return t.Kind == kind && t.AbsAmount() == amount && t.Category == category
}

// ValidateCategory checks the category label
func ValidateCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return errs.ErrInvalidCategory
	}
	if len(trimmed) > MaxCategoryLength {
		return errs.NewValidationError("category", "must be at most 64 characters", errs.ErrInvalidCategory)
	}
	return nil
}
