package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// BackfillLockTimestamps fills created_at and updated_at on account_locks rows
// written before those columns were tracked
type BackfillLockTimestamps struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillLockTimestamps creates a new migration instance
func NewBackfillLockTimestamps(db *gorm.DB, logger coreport.Logger) *BackfillLockTimestamps {
	return &BackfillLockTimestamps{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillLockTimestamps) Run(ctx context.Context) error {
	m.logger.Info("Backfilling timestamp columns on account_locks", nil)

	migrator := m.db.WithContext(ctx).Migrator()
	for _, column := range []string{"CreatedAt", "UpdatedAt"} {
		if migrator.HasColumn(&model.AccountLock{}, column) {
			continue
		}
		if err := migrator.AddColumn(&model.AccountLock{}, column); err != nil {
			m.logger.Error("Failed to add column", map[string]any{"column": column, "error": err.Error()})
			return err
		}
	}

	result := m.db.WithContext(ctx).Exec(`
		UPDATE account_locks
		SET created_at = locked_at, updated_at = locked_at
		WHERE created_at IS NULL OR created_at < locked_at`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill lock timestamps", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled account_locks timestamps", map[string]any{"rows": result.RowsAffected})
	return nil
}
