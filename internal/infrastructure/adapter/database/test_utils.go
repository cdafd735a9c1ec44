package database

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated in-memory SQLite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager. A nil timeProvider uses the real clock.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}

	config := &Config{
		Driver:         DriverSQLite,
		SQLitePath:     ":memory:",
		IsolationLevel: IsolationReadCommitted,
		MaxOpenConns:   1,
		MaxIdleConns:   1,
		QueryTimeout:   5 * time.Second,
		LogLevel:       "silent",
		RetryAttempts:  1,
		TxRetries:      3,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Setup connects, migrates and registers cleanup. The single pooled connection
// keeps the in-memory database alive for the whole test.
func (m *TestDBManager) Setup(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect(context.Background())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// UnitOfWork returns a unit of work on the test database
func (m *TestDBManager) UnitOfWork() *UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}

// TruncateAllTables empties every ledger table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	for _, table := range []string{"outbox_events", "block_events", "transactions", "account_locks", "accounts"} {
		if err := m.Manager.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
