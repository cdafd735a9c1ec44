package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler resolves retried debits and credits carrying an idempotency key.
// It must run after the account row is locked so concurrent retries see each other.
type IdempotencyHandler struct{}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler() *IdempotencyHandler {
	return &IdempotencyHandler{}
}

// CheckIdempotency returns the earlier entry for (userID, key) and true when the request is a replay.
// A key reused with a different kind, amount or category is an ErrIdempotencyConflict.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	transactionRepo persistence.TransactionRepository,
	userID, key string,
	kind entity.TransactionKind,
	amount int64,
	category string,
) (*entity.Transaction, bool, error) {
	if key == "" {
		return nil, false, nil
	}

	existing, err := transactionRepo.GetByIdempotencyKey(ctx, userID, key)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	if !existing.Matches(kind, amount, category) {
		return nil, false, errs.NewIdempotencyConflictError(userID, key, existing.ID)
	}
	return existing, true, nil
}
