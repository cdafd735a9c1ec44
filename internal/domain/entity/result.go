package entity

import (
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
)

// Result is the discriminated outcome of a debit or credit.
// On failure Success is false and ErrorKind names the taxonomy entry.
type Result struct {
	Success       bool
	TransactionID string
	BalanceAfter  int64
	IsBlocked     bool
	Replayed      bool
	ErrorKind     errs.ErrorKind
	Message       string
}

// NewFailedResult builds the failure result for err
func NewFailedResult(err error) *Result {
	return &Result{
		Success:   false,
		ErrorKind: errs.Kind(err),
		Message:   err.Error(),
	}
}

// BlockResult is the outcome of an administrative block override
type BlockResult struct {
	Success   bool
	Changed   bool
	IsBlocked bool
	Balance   int64
	ErrorKind errs.ErrorKind
	Message   string
}

// AccountStats is the aggregate view of an account
type AccountStats struct {
	UserID              string
	Balance             int64
	TotalLoaded         int64
	TotalConsumed       int64
	IsBlocked           bool
	LowBalanceThreshold int64
	IsLowBalance        bool
	TransactionCount    int64
}

// TransactionPage is one window of a newest-first transaction listing
type TransactionPage struct {
	Items  []*Transaction
	Limit  int
	Offset int
	Total  int64
}

// BlockEventPage is one window of the block audit trail
type BlockEventPage struct {
	Items  []*BlockEvent
	Limit  int
	Offset int
	Total  int64
}
