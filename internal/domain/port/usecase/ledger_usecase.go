package usecase

import (
	"context"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// DebitRequest asks the ledger to consume credits
type DebitRequest struct {
	UserID         string
	Amount         int64
	Category       string
	Description    string
	Metadata       map[string]any
	AllowNegative  bool
	IdempotencyKey string
	Actor          string
}

// CreditRequest asks the ledger to load credits
type CreditRequest struct {
	UserID         string
	Amount         int64
	Category       string
	Description    string
	Metadata       map[string]any
	IdempotencyKey string
	Actor          string
}

// SetBlockedRequest is an administrative block override
type SetBlockedRequest struct {
	UserID  string
	Blocked bool
	Actor   string
	Note    string
}

// ReconcileReport compares the denormalized account row with the transaction log
type ReconcileReport struct {
	UserID           string
	AccountBalance   int64
	LedgerSum        int64
	TransactionCount int64 // sequence counter on the account row
	TransactionRows  int64 // entries actually stored
	Consistent       bool
}

// LedgerUseCase is the credit ledger consumed by HTTP handlers and the CLI.
// Mutations return a discriminated result together with the error that produced a failure.
type LedgerUseCase interface {
	Debit(ctx context.Context, req DebitRequest) (*entity.Result, error)
	Credit(ctx context.Context, req CreditRequest) (*entity.Result, error)
	GetBalance(ctx context.Context, userID string) (*entity.Account, error)
	GetStats(ctx context.Context, userID string) (*entity.AccountStats, error)
	ListTransactions(ctx context.Context, userID string, limit, offset int) (*entity.TransactionPage, error)
	SetBlocked(ctx context.Context, req SetBlockedRequest) (*entity.BlockResult, error)
	ListBlockEvents(ctx context.Context, userID string, limit, offset int) (*entity.BlockEventPage, error)
	SetLowBalanceThreshold(ctx context.Context, userID string, threshold int64) (*entity.AccountStats, error)
	Reconcile(ctx context.Context, userID string) (*ReconcileReport, error)
}
