package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/repository"
)

const poolSampleInterval = 15 * time.Second

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	observer          MetricsObserver
	connectionMonitor *ConnectionPoolMonitor
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithMetricsObserver exports query and pool metrics to observer
func WithMetricsObserver(observer MetricsObserver) ManagerOption {
	return func(m *Manager) {
		if observer != nil {
			m.observer = observer
		}
	}
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...ManagerOption) *Manager {
	m := &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		observer:     nopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Connect opens the configured database, retrying the initial dial
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.Redacted(),
	})

	var (
		gormDB *gorm.DB
		err    error
	)
	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      m.config.RetryAttempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	m.db = gormDB
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger, m.observer)
	m.connectionMonitor.Start(poolSampleInterval)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": sqlDB.Stats().MaxOpenConnections,
		"isolation":      m.config.IsolationLevel,
	})
	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowQueryThreshold, m.observer),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt:            m.config.Driver == DriverPostgres,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if m.config.Driver == DriverSQLite {
		// one writer at a time; queued callers wait on the pool instead of SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	}

	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return gormDB, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// PoolMetrics returns the last sampled connection pool metrics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := m.config.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return m.timeProvider.WithTimeout(ctx, timeout)
}

// CreateUnitOfWork creates a new UnitOfWork bound to this connection
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	retry := DefaultRetryConfig()
	retry.MaxRetries = m.config.TxRetries
	return NewUnitOfWork(m.db, m.logger, m.timeProvider,
		WithIsolationLevel(m.config.IsolationLevel),
		WithRetryConfig(retry),
	)
}

// AccountLockRepository returns the table-backed cross-process account lock
func (m *Manager) AccountLockRepository() *repository.AccountLockRepository {
	return repository.NewAccountLockRepository(m.db, m.timeProvider, m.logger)
}

// MigrationManager returns a migration manager for this connection
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider)
}
