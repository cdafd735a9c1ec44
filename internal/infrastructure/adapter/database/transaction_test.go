package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/repository"
)

func newTestUnitOfWork(t *testing.T) (*TestDBManager, *UnitOfWork) {
	t.Helper()
	mgr := NewTestDBManager(t, logger.NewNoopLogger(), nil)
	mgr.Setup(t)
	uow := mgr.UnitOfWork()
	uow.retry = RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
	return mgr, uow
}

func countAccounts(t *testing.T, mgr *TestDBManager) int64 {
	t.Helper()
	var n int64
	require.NoError(t, mgr.Manager.DB().Model(&model.Account{}).Count(&n).Error)
	return n
}

func TestUnitOfWork_DoCommits(t *testing.T) {
	mgr, uow := newTestUnitOfWork(t)
	ctx := context.Background()

	err := uow.Do(ctx, func(txCtx context.Context) error {
		_, err := uow.GetAccountRepository(txCtx).LockOrCreate(txCtx, "alice", 100)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countAccounts(t, mgr))
}

func TestUnitOfWork_DoRollsBackOnError(t *testing.T) {
	mgr, uow := newTestUnitOfWork(t)
	ctx := context.Background()
	rejected := errors.New("rejected")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := uow.GetAccountRepository(txCtx).LockOrCreate(txCtx, "alice", 100); err != nil {
			return err
		}
		return rejected
	})

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, int64(0), countAccounts(t, mgr))
}

func TestUnitOfWork_DoRetriesTransientConflicts(t *testing.T) {
	_, uow := newTestUnitOfWork(t)
	calls := 0

	err := uow.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("update account: %w", errs.ErrTransientConflict)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestUnitOfWork_DoDoesNotRetryBusinessErrors(t *testing.T) {
	_, uow := newTestUnitOfWork(t)
	calls := 0

	err := uow.Do(context.Background(), func(context.Context) error {
		calls++
		return errs.NewInsufficientBalanceError("alice", 10, 0)
	})

	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.Equal(t, 1, calls)
}

func TestUnitOfWork_DoGivesUpAfterMaxRetries(t *testing.T) {
	_, uow := newTestUnitOfWork(t)
	calls := 0

	err := uow.Do(context.Background(), func(context.Context) error {
		calls++
		return errs.ErrTransientConflict
	})

	assert.ErrorIs(t, err, errs.ErrPersistence)
	assert.Equal(t, 4, calls)
}

func TestUnitOfWork_NestedDoJoinsOuterTransaction(t *testing.T) {
	mgr, uow := newTestUnitOfWork(t)
	ctx := context.Background()
	outerErr := errors.New("outer failed")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := uow.Do(txCtx, func(inner context.Context) error {
			_, err := uow.GetAccountRepository(inner).LockOrCreate(inner, "bob", 0)
			return err
		}); err != nil {
			return err
		}
		return outerErr
	})

	assert.ErrorIs(t, err, outerErr)
	assert.Equal(t, int64(0), countAccounts(t, mgr), "inner work must roll back with the outer transaction")
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	_, uow := newTestUnitOfWork(t)

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestUnitOfWork_RollbackTwiceIsHarmless(t *testing.T) {
	_, uow := newTestUnitOfWork(t)

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(txCtx))
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestRetryOnTransientError_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryOnTransientError(ctx, RetryConfig{MaxRetries: 5, RetryInterval: time.Second, MaxInterval: time.Second},
		func() error { return errs.ErrTransientConflict },
		repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffWithJitter_Caps(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(10, cfg))
}
