package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

func TestErrorClassifier_Translate(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name string
		err  error
		want error
	}{
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: errs.ErrDuplicateKey},
		{name: "postgres serialization failure", err: &pgconn.PgError{Code: "40001"}, want: errs.ErrTransientConflict},
		{name: "postgres deadlock", err: &pgconn.PgError{Code: "40P01"}, want: errs.ErrTransientConflict},
		{name: "postgres lock not available", err: &pgconn.PgError{Code: "55P03"}, want: errs.ErrAccountBusy},
		{name: "postgres check violation", err: &pgconn.PgError{Code: "23514"}, want: errs.ErrPersistence},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: transactions.id"), want: errs.ErrDuplicateKey},
		{name: "sqlite busy", err: errors.New("database is locked (5) (SQLITE_BUSY)"), want: errs.ErrTransientConflict},
		{name: "gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: errs.ErrDuplicateKey},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: errs.ErrPersistence},
		{name: "context canceled", err: context.Canceled, want: context.Canceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Translate("op", tc.err)
			assert.ErrorIs(t, got, tc.want)
		})
	}

	assert.NoError(t, c.Translate("op", nil))
	assert.Equal(t, ConnectionError, c.Classify(errors.New("read: connection reset by peer")))
	assert.Equal(t, ConstraintError, c.Classify(errors.New("CHECK constraint failed: balance")))
}

func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepositories_TranslatePostgresFailures(t *testing.T) {
	t.Run("serialization failure on count", func(t *testing.T) {
		db, mock := newMockPostgres(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "transactions"`)).
			WillReturnError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})

		_, err := NewTransactionRepository(db, logger.NewNoopLogger()).CountByUser(context.Background(), "alice")
		assert.ErrorIs(t, err, errs.ErrTransientConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock timeout on account read", func(t *testing.T) {
		db, mock := newMockPostgres(t)
		mock.ExpectQuery(`SELECT \* FROM "accounts"`).
			WillReturnError(&pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"})

		repo := NewAccountRepository(db, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
		_, err := repo.GetByUserID(context.Background(), "alice")
		assert.ErrorIs(t, err, errs.ErrAccountBusy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("broken connection on lock release", func(t *testing.T) {
		db, mock := newMockPostgres(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "account_locks"`)).
			WillReturnError(errors.New("write: broken pipe"))
		mock.ExpectRollback()

		repo := NewAccountLockRepository(db, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
		err := repo.ReleaseLock(context.Background(), "alice", "proc-a")
		assert.ErrorIs(t, err, errs.ErrPersistence)
		assert.Equal(t, errs.KindPersistence, errs.Kind(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
