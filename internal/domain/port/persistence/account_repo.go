package persistence

import (
	"context"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// AccountRepository defines the only data-access path for account balances
type AccountRepository interface {
	// GetByUserID retrieves an account without locking it
	//
	// Possible errors:
	// - ErrAccountNotFound: If the user has no ledger history yet
	// - ErrPersistence: If the database fails
	GetByUserID(ctx context.Context, userID string) (*entity.Account, error)

	// LockOrCreate returns the account row locked for the rest of the current
	// database transaction, inserting an empty account first when none exists.
	// Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrAccountBusy: If the row lock could not be obtained
	// - ErrPersistence: If the database fails
	LockOrCreate(ctx context.Context, userID string, defaultLowBalanceThreshold int64) (*entity.Account, error)

	// Save persists balance totals, blocked flag, threshold and sequence counter
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account row vanished
	// - ErrPersistence: If the database fails
	Save(ctx context.Context, account *entity.Account) error
}
