package persistence

import (
	"context"
	"time"
)

// AccountLockRepository is a cross-process advisory lock keyed by user id.
// Implemented by the account_locks table and by Redis.
type AccountLockRepository interface {
	// AcquireLock takes the lock for owner until ttl elapses
	//
	// Possible errors:
	// - ErrAccountBusy: If another owner holds an unexpired lock
	// - ErrPersistence: If the backing store fails
	AcquireLock(ctx context.Context, userID, owner string, ttl time.Duration) error

	// ReleaseLock drops the lock if owner still holds it
	ReleaseLock(ctx context.Context, userID, owner string) error
}
