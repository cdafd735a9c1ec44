package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"

	dialectPostgres = "postgres"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	dialect := db.Dialector.Name()

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        dialect,
	})

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{"error": err.Error()})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{"error": err.Error()})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{"version": currentVersion})

	if err := m.autoMigrateModels(ctx); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{"error": err.Error()})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.createIndexes(ctx); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{"error": err.Error()})
		return err
	}

	if dialect == dialectPostgres {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			m.logger.Error("Failed to create advanced indexes", map[string]any{"error": err.Error()})
			return err
		}
		m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, dialect, fmt.Sprintf("migrated from %q", currentVersion)); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the last applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("id desc").First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, dialect, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		Dialect:   dialect,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.Account{},
		&model.Transaction{},
		&model.BlockEvent{},
		&model.AccountLock{},
		&model.OutboxEvent{},
	)
}

// runVersionedMigrations applies the steps between currentVersion and CurrentSchemaVersion
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	switch currentVersion {
	case "":
		return m.runBaseMigrations(ctx)
	case "1.0.0":
		return m.migrateFrom1_0_0To1_1_0(ctx)
	default:
		return fmt.Errorf("no migration path from schema version %q", currentVersion)
	}
}

// runBaseMigrations adds the integrity constraints a fresh Postgres database gets.
// SQLite relies on the ledger code alone.
func (m *MigrationManager) runBaseMigrations(ctx context.Context) error {
	m.logger.Info("Running base migrations", nil)

	if m.db.Dialector.Name() != dialectPostgres {
		return nil
	}

	constraints := []struct{ table, name, check string }{
		{"accounts", "chk_accounts_balance_totals", "balance = total_loaded - total_consumed"},
		{"accounts", "chk_accounts_totals_non_negative", "total_loaded >= 0 AND total_consumed >= 0"},
		{"accounts", "chk_accounts_threshold_non_negative", "low_balance_threshold >= 0"},
		{"transactions", "chk_transactions_amount_sign", "(kind = 'debit' AND amount < 0) OR (kind = 'credit' AND amount > 0)"},
	}
	for _, c := range constraints {
		if err := m.ensureCheckConstraint(ctx, c.table, c.name, c.check); err != nil {
			return err
		}
	}
	return nil
}

// migrateFrom1_0_0To1_1_0 adds the outbox table (created by AutoMigrate) and backfills
// lock timestamps that 1.0.0 did not track
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return NewBackfillLockTimestamps(m.db, m.logger).Run(ctx)
}

func (m *MigrationManager) ensureCheckConstraint(ctx context.Context, table, name, check string) error {
	var count int64
	if err := m.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM pg_constraint WHERE conname = ?", name).
		Scan(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)", table, name, check)
	if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		m.logger.Error("Failed to add check constraint", map[string]any{
			"constraint": name,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}

// createIndexes creates indexes both dialects understand
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions (user_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_account_locks_expires_at ON account_locks (expires_at)",
	}
	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
