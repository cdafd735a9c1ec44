package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// AccountLockRepository implements a leased account lock on the account_locks table
type AccountLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountLockRepository creates a new AccountLockRepository instance
func NewAccountLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountLockRepository {
	return &AccountLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the lease for owner when it is free, expired or already owner's.
// The conditional upsert touches no row when someone else holds a live lease.
func (r *AccountLockRepository) AcquireLock(ctx context.Context, userID, owner string, ttl time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO account_locks (user_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET owner = excluded.owner,
		    locked_at = excluded.locked_at,
		    expires_at = excluded.expires_at,
		    updated_at = excluded.updated_at
		WHERE account_locks.expires_at <= ? OR account_locks.owner = ?`,
		userID, owner, now, expiresAt, now, now,
		now, owner,
	)
	if result.Error != nil {
		r.logger.Error("Database error acquiring account lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.Translate("acquire account lock", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Account is locked by another owner", map[string]any{"user_id": userID})
		return errs.ErrAccountBusy
	}

	r.logger.Debug("Account lock acquired", map[string]any{
		"user_id":    userID,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock drops the lease if owner still holds it
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, userID, owner string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND owner = ?", userID, owner).
		Delete(&model.AccountLock{})
	if result.Error != nil {
		return r.errorClassifier.Translate("release account lock", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Debug("No account lock to release, it may have expired", map[string]any{
			"user_id": userID,
			"owner":   owner,
		})
	}
	return nil
}

// CleanupExpiredLocks removes leases whose holders never released them
func (r *AccountLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.timeProvider.Now()).Delete(&model.AccountLock{})
	if result.Error != nil {
		return 0, r.errorClassifier.Translate("cleanup account locks", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Info("Expired account locks removed", map[string]any{"locks_removed": result.RowsAffected})
	}
	return result.RowsAffected, nil
}
