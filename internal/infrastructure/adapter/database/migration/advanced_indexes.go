package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates partial and BRIN indexes the ledger's hot queries use
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct{ name, stmt string }{
		{
			// relay scans only pending rows in insertion order
			name: "idx_outbox_events_pending",
			stmt: `CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
				ON outbox_events (seq) WHERE status = 'pending'`,
		},
		{
			name: "idx_accounts_blocked",
			stmt: `CREATE INDEX IF NOT EXISTS idx_accounts_blocked
				ON accounts (user_id) WHERE is_blocked`,
		},
		{
			name: "idx_transactions_created_at_brin",
			stmt: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
				ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_block_events_admin",
			stmt: `CREATE INDEX IF NOT EXISTS idx_block_events_admin
				ON block_events (user_id, seq) WHERE reason = 'admin'`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies table settings; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// accounts are updated in place on every mutation, leave room for HOT updates
		`ALTER TABLE accounts SET (fillfactor = 80)`,
		`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
