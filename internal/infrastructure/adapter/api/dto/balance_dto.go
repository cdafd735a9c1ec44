package dto

import (
	"time"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
)

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID       string `json:"userId"`
	Balance      int64  `json:"balance"`
	IsBlocked    bool   `json:"isBlocked"`
	IsLowBalance bool   `json:"isLowBalance"`
}

// NewBalanceResponse maps an account to its balance view
func NewBalanceResponse(a *entity.Account) BalanceResponse {
	return BalanceResponse{
		UserID:       a.UserID,
		Balance:      a.Balance(),
		IsBlocked:    a.IsBlocked,
		IsLowBalance: a.IsLowBalance(),
	}
}

// StatsResponse represents the aggregate view of an account
type StatsResponse struct {
	UserID              string `json:"userId"`
	Balance             int64  `json:"balance"`
	TotalLoaded         int64  `json:"totalLoaded"`
	TotalConsumed       int64  `json:"totalConsumed"`
	IsBlocked           bool   `json:"isBlocked"`
	LowBalanceThreshold int64  `json:"lowBalanceThreshold"`
	IsLowBalance        bool   `json:"isLowBalance"`
	TransactionCount    int64  `json:"transactionCount"`
}

// NewStatsResponse maps account stats to the API shape
func NewStatsResponse(s *entity.AccountStats) StatsResponse {
	return StatsResponse{
		UserID:              s.UserID,
		Balance:             s.Balance,
		TotalLoaded:         s.TotalLoaded,
		TotalConsumed:       s.TotalConsumed,
		IsBlocked:           s.IsBlocked,
		LowBalanceThreshold: s.LowBalanceThreshold,
		IsLowBalance:        s.IsLowBalance,
		TransactionCount:    s.TransactionCount,
	}
}

// SetBlockedRequest is the body of an administrative block override
type SetBlockedRequest struct {
	Blocked *bool  `json:"blocked" binding:"required"`
	Note    string `json:"note" binding:"max=512"`
}

// BlockResponse is the outcome of a block override
type BlockResponse struct {
	UserID    string `json:"userId"`
	Success   bool   `json:"success"`
	Changed   bool   `json:"changed"`
	IsBlocked bool   `json:"isBlocked"`
	Balance   int64  `json:"balance"`
}

// NewBlockResponse maps a block result to the API shape
func NewBlockResponse(userID string, r *entity.BlockResult) BlockResponse {
	return BlockResponse{
		UserID:    userID,
		Success:   r.Success,
		Changed:   r.Changed,
		IsBlocked: r.IsBlocked,
		Balance:   r.Balance,
	}
}

// ThresholdRequest updates the low-balance warning cutoff
type ThresholdRequest struct {
	Threshold *int64 `json:"threshold" binding:"required,min=0"`
}

// BlockEventResponse is one entry of the block audit trail
type BlockEventResponse struct {
	ID              string    `json:"id"`
	Blocked         bool      `json:"blocked"`
	PreviousBlocked bool      `json:"previousBlocked"`
	Reason          string    `json:"reason"`
	Actor           string    `json:"actor"`
	Note            string    `json:"note,omitempty"`
	BalanceAt       int64     `json:"balanceAt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BlockEventPageResponse is a window of the block audit trail
type BlockEventPageResponse struct {
	UserID string               `json:"userId"`
	Items  []BlockEventResponse `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
	Total  int64                `json:"total"`
}

// NewBlockEventPageResponse maps a block event page to the API shape
func NewBlockEventPageResponse(userID string, p *entity.BlockEventPage) BlockEventPageResponse {
	items := make([]BlockEventResponse, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, BlockEventResponse{
			ID:              e.ID,
			Blocked:         e.Blocked,
			PreviousBlocked: e.PreviousBlocked,
			Reason:          string(e.Reason),
			Actor:           e.Actor,
			Note:            e.Note,
			BalanceAt:       e.BalanceAt,
			CreatedAt:       e.CreatedAt,
		})
	}
	return BlockEventPageResponse{UserID: userID, Items: items, Limit: p.Limit, Offset: p.Offset, Total: p.Total}
}

// ReconcileResponse reports drift between the account row and the transaction log
type ReconcileResponse struct {
	UserID           string `json:"userId"`
	AccountBalance   int64  `json:"accountBalance"`
	LedgerSum        int64  `json:"ledgerSum"`
	TransactionCount int64  `json:"transactionCount"`
	TransactionRows  int64  `json:"transactionRows"`
	Consistent       bool   `json:"consistent"`
}

// NewReconcileResponse maps a reconcile report to the API shape
func NewReconcileResponse(r *usecase.ReconcileReport) ReconcileResponse {
	return ReconcileResponse(*r)
}
