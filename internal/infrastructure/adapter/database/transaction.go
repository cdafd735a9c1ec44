package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db             *gorm.DB
	logger         coreport.Logger
	timeProvider   coreport.TimeProvider
	isolationLevel string
	retry          RetryConfig
	classifier     *repository.ErrorClassifier
}

// UnitOfWorkOption configures a UnitOfWork
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolationLevel sets the isolation level used on Postgres
func WithIsolationLevel(level string) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		if level != "" {
			u.isolationLevel = level
		}
	}
}

// WithRetryConfig sets how conflicting transactions are retried
func WithRetryConfig(cfg RetryConfig) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.retry = cfg
	}
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...UnitOfWorkOption) *UnitOfWork {
	u := &UnitOfWork{
		db:             db,
		logger:         logger,
		timeProvider:   timeProvider,
		isolationLevel: IsolationReadCommitted,
		retry:          DefaultRetryConfig(),
		classifier:     repository.NewErrorClassifier(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.classifier.Translate("begin transaction", tx.Error)
	}

	// SQLite transactions are always serializable; only Postgres takes the setting
	if u.db.Dialector.Name() == DriverPostgres {
		stmt := "SET TRANSACTION ISOLATION LEVEL READ COMMITTED"
		if u.isolationLevel == IsolationSerializable {
			stmt = "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE"
		}
		if err := tx.Exec(stmt).Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, u.classifier.Translate("set isolation level", err)
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.classifier.Translate("commit transaction", err)
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if errors.Is(err, sql.ErrTxDone) {
		u.logger.Warn("Transaction has already been committed or rolled back", nil)
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Do runs fn in a transaction. A ctx that already carries a transaction joins it
// instead of starting a nested one.
func (u *UnitOfWork) Do(ctx context.Context, fn func(txCtx context.Context) error) error {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.attempt(ctx, fn)
	}, u.classifier, u.logger)
}

func (u *UnitOfWork) attempt(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failed unit of work", map[string]any{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetAccountRepository returns an account repository in the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetBlockEventRepository returns a block event repository in the current transaction
func (u *UnitOfWork) GetBlockEventRepository(ctx context.Context) persistence.BlockEventRepository {
	return repository.NewBlockEventRepository(u.getDbFromContext(ctx))
}

// GetOutboxRepository returns an outbox repository in the current transaction
func (u *UnitOfWork) GetOutboxRepository(ctx context.Context) persistence.OutboxRepository {
	return repository.NewOutboxRepository(u.getDbFromContext(ctx))
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}
