package dto

import (
	"time"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// IdempotencyKeyHeader carries the idempotency key when it is not in the body
const IdempotencyKeyHeader = "Idempotency-Key"

// DebitRequest represents the API request for consuming credits
type DebitRequest struct {
	Amount         int64          `json:"amount" binding:"required,gt=0"`
	Category       string         `json:"category" binding:"required,max=64,category"`
	Description    string         `json:"description" binding:"max=1024"`
	Metadata       map[string]any `json:"metadata"`
	AllowNegative  bool           `json:"allowNegative"`
	IdempotencyKey string         `json:"idempotencyKey" binding:"max=128"`
}

// CreditRequest represents the API request for loading credits
type CreditRequest struct {
	Amount         int64          `json:"amount" binding:"required,gt=0"`
	Category       string         `json:"category" binding:"required,max=64,category"`
	Description    string         `json:"description" binding:"max=1024"`
	Metadata       map[string]any `json:"metadata"`
	IdempotencyKey string         `json:"idempotencyKey" binding:"max=128"`
}

// MutationResponse represents the API response for a debit or credit
type MutationResponse struct {
	UserID        string `json:"userId"`
	TransactionID string `json:"transactionId"`
	Success       bool   `json:"success"`
	BalanceAfter  int64  `json:"balanceAfter"`
	IsBlocked     bool   `json:"isBlocked"`
	Replayed      bool   `json:"replayed"`
}

// NewMutationResponse maps a ledger result to the API shape
func NewMutationResponse(userID string, r *entity.Result) MutationResponse {
	return MutationResponse{
		UserID:        userID,
		TransactionID: r.TransactionID,
		Success:       r.Success,
		BalanceAfter:  r.BalanceAfter,
		IsBlocked:     r.IsBlocked,
		Replayed:      r.Replayed,
	}
}

// TransactionResponse is one ledger entry
type TransactionResponse struct {
	ID             string         `json:"id"`
	Sequence       int64          `json:"sequence"`
	Kind           string         `json:"kind"`
	Amount         int64          `json:"amount"`
	Category       string         `json:"category"`
	Description    string         `json:"description,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	BalanceAfter   int64          `json:"balanceAfter"`
	IdempotencyKey string         `json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TransactionPageResponse is a newest-first window of ledger entries
type TransactionPageResponse struct {
	UserID string                `json:"userId"`
	Items  []TransactionResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Total  int64                 `json:"total"`
}

// NewTransactionPageResponse maps a transaction page to the API shape
func NewTransactionPageResponse(userID string, p *entity.TransactionPage) TransactionPageResponse {
	items := make([]TransactionResponse, 0, len(p.Items))
	for _, t := range p.Items {
		items = append(items, TransactionResponse{
			ID:             t.ID,
			Sequence:       t.Sequence,
			Kind:           string(t.Kind),
			Amount:         t.Amount,
			Category:       t.Category,
			Description:    t.Description,
			Metadata:       t.Metadata,
			BalanceAfter:   t.BalanceAfter,
			IdempotencyKey: t.IdempotencyKey,
			CreatedAt:      t.CreatedAt,
		})
	}
	return TransactionPageResponse{UserID: userID, Items: items, Limit: p.Limit, Offset: p.Offset, Total: p.Total}
}

// PageQuery binds limit/offset query parameters
type PageQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
