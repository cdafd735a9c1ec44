package persistence

import (
	"context"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// TransactionRepository stores append-only ledger entries.
// There is deliberately no update or delete.
type TransactionRepository interface {
	// Create appends a new entry
	//
	// Possible errors:
	// - ErrDuplicateKey: If the id, sequence or idempotency key is already used
	// - ErrPersistence: If the database fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByIdempotencyKey finds the entry previously written for (userID, key)
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the key has not been used
	// - ErrPersistence: If the database fails
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Transaction, error)

	// ListByUser returns entries newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error)

	// CountByUser returns how many entries the user has
	CountByUser(ctx context.Context, userID string) (int64, error)

	// SumByUser folds every amount of the user, used to reconcile the denormalized balance
	SumByUser(ctx context.Context, userID string) (int64, error)
}
