package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

func setupDB(t *testing.T) (*gorm.DB, *timeprovider.ManualTimeProvider) {
	t.Helper()
	clock := timeprovider.NewManualTimeProvider(time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC))
	mgr := database.NewTestDBManager(t, logger.NewNoopLogger(), clock)
	return mgr.Setup(t), clock
}

func TestAccountRepository(t *testing.T) {
	db, clock := setupDB(t)
	repo := repository.NewAccountRepository(db, clock, logger.NewNoopLogger())
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, "alice")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)

	account, err := repo.LockOrCreate(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance())
	assert.Equal(t, int64(100), account.LowBalanceThreshold)

	clock.Advance(time.Minute)
	_, err = account.ApplyCredit(70, clock)
	require.NoError(t, err)
	_, err = account.ApplyDebit(90, true, clock)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, account))

	again, err := repo.LockOrCreate(ctx, "alice", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), again.Balance())
	assert.Equal(t, int64(70), again.TotalLoaded())
	assert.Equal(t, int64(90), again.TotalConsumed())
	assert.True(t, again.IsBlocked)
	assert.Equal(t, int64(100), again.LowBalanceThreshold, "existing account keeps its threshold")
	assert.Equal(t, int64(2), again.TransactionCount)
	assert.True(t, clock.Now().Equal(again.UpdatedAt))

	ghost := entity.RestoreAccount("ghost", 0, 0, false, 0, 0, clock.Now(), clock.Now())
	assert.ErrorIs(t, repo.Save(ctx, ghost), errs.ErrAccountNotFound)
}

func TestTransactionRepository(t *testing.T) {
	db, clock := setupDB(t)
	repo := repository.NewTransactionRepository(db, logger.NewNoopLogger())
	ctx := context.Background()

	entries := []*entity.Transaction{
		{ID: "t1", UserID: "alice", Sequence: 1, Kind: entity.KindCredit, Amount: 100, Category: "purchase", BalanceAfter: 100, CreatedAt: clock.Now()},
		{
			ID: "t2", UserID: "alice", Sequence: 2, Kind: entity.KindDebit, Amount: -30, Category: "tool.tts",
			Metadata: map[string]any{"voice": "nova"}, BalanceAfter: 70, IdempotencyKey: "req-1", CreatedAt: clock.Now(),
		},
		{ID: "t3", UserID: "alice", Sequence: 3, Kind: entity.KindDebit, Amount: -5, Category: "tool.search", BalanceAfter: 65, CreatedAt: clock.Now()},
		{ID: "t4", UserID: "bob", Sequence: 1, Kind: entity.KindDebit, Amount: -1, Category: "tool.search", BalanceAfter: -1, IdempotencyKey: "req-1", CreatedAt: clock.Now()},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("lookup by idempotency key", func(t *testing.T) {
		found, err := repo.GetByIdempotencyKey(ctx, "alice", "req-1")
		require.NoError(t, err)
		assert.Equal(t, "t2", found.ID)
		assert.Equal(t, "nova", found.Metadata["voice"])
		assert.True(t, found.Matches(entity.KindDebit, 30, "tool.tts"))

		_, err = repo.GetByIdempotencyKey(ctx, "alice", "req-2")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("duplicate idempotency key", func(t *testing.T) {
		dup := &entity.Transaction{ID: "t5", UserID: "alice", Sequence: 4, Kind: entity.KindDebit, Amount: -30, Category: "tool.tts", IdempotencyKey: "req-1", CreatedAt: clock.Now()}
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateKey)
	})

	t.Run("duplicate sequence", func(t *testing.T) {
		dup := &entity.Transaction{ID: "t6", UserID: "alice", Sequence: 3, Kind: entity.KindCredit, Amount: 1, Category: "purchase", CreatedAt: clock.Now()}
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateKey)
	})

	t.Run("list newest first", func(t *testing.T) {
		items, err := repo.ListByUser(ctx, "alice", 2, 0)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "t3", items[0].ID)
		assert.Equal(t, "t2", items[1].ID)

		items, err = repo.ListByUser(ctx, "alice", 10, 2)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "t1", items[0].ID)
		assert.Empty(t, items[0].IdempotencyKey)
	})

	t.Run("aggregates", func(t *testing.T) {
		count, err := repo.CountByUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		sum, err := repo.SumByUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(65), sum)

		sum, err = repo.SumByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, int64(0), sum)
	})
}

func TestBlockEventRepository(t *testing.T) {
	db, clock := setupDB(t)
	repo := repository.NewBlockEventRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.BlockEvent{
		ID: "b1", UserID: "alice", Blocked: true, Reason: entity.BlockReasonNegativeBalance,
		Actor: entity.SystemActor, BalanceAt: -10, CreatedAt: clock.Now(),
	}))
	require.NoError(t, repo.Create(ctx, &entity.BlockEvent{
		ID: "b2", UserID: "alice", Blocked: false, PreviousBlocked: true, Reason: entity.BlockReasonAdmin,
		Actor: "admin-1", Note: "goodwill", BalanceAt: -10, CreatedAt: clock.Now(),
	}))

	events, err := repo.ListByUser(ctx, "alice", 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "b2", events[0].ID)
	assert.Equal(t, "goodwill", events[0].Note)
	assert.True(t, events[0].Changed())
	assert.Equal(t, "b1", events[1].ID)

	count, err := repo.CountByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestAccountLockRepository(t *testing.T) {
	db, clock := setupDB(t)
	repo := repository.NewAccountLockRepository(db, clock, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, repo.AcquireLock(ctx, "alice", "proc-a", time.Second))
	assert.ErrorIs(t, repo.AcquireLock(ctx, "alice", "proc-b", time.Second), errs.ErrAccountBusy)
	require.NoError(t, repo.AcquireLock(ctx, "alice", "proc-a", time.Second), "holder may extend its lease")
	require.NoError(t, repo.AcquireLock(ctx, "bob", "proc-b", time.Second))

	require.NoError(t, repo.ReleaseLock(ctx, "alice", "proc-b"))
	assert.ErrorIs(t, repo.AcquireLock(ctx, "alice", "proc-b", time.Second), errs.ErrAccountBusy, "release by a non-holder is a no-op")

	require.NoError(t, repo.ReleaseLock(ctx, "alice", "proc-a"))
	require.NoError(t, repo.AcquireLock(ctx, "alice", "proc-b", time.Second))

	clock.Advance(2 * time.Second)
	require.NoError(t, repo.AcquireLock(ctx, "bob", "proc-c", time.Second), "expired lease can be taken over")

	removed, err := repo.CleanupExpiredLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestOutboxRepository(t *testing.T) {
	db, clock := setupDB(t)
	repo := repository.NewOutboxRepository(db)
	ctx := context.Background()

	for _, id := range []string{"e1", "e2", "e3"} {
		require.NoError(t, repo.Create(ctx, &entity.OutboxEvent{
			ID:          id,
			EventType:   entity.EventTransactionRecorded,
			AggregateID: "alice",
			Payload:     map[string]any{"transactionId": "tx-" + id},
			CreatedAt:   clock.Now(),
		}))
	}

	pending, err := repo.FetchPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "e1", pending[0].ID)
	assert.Equal(t, entity.OutboxPending, pending[0].Status)
	assert.Equal(t, "tx-e1", pending[0].Payload["transactionId"])

	require.NoError(t, repo.MarkSent(ctx, "e1", clock.Now()))
	require.NoError(t, repo.MarkAttemptFailed(ctx, "e2", "broker down", false))
	require.NoError(t, repo.MarkAttemptFailed(ctx, "e3", "broker down", true))

	pending, err = repo.FetchPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "e2", pending[0].ID)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, "broker down", pending[0].LastError)

	assert.ErrorIs(t, repo.MarkSent(ctx, "missing", clock.Now()), errs.ErrPersistence)
}
