package entity

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

func newClock() *timeprovider.ManualTimeProvider {
	return timeprovider.NewManualTimeProvider(time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
}

func assertConsistent(t *testing.T, a *Account) {
	t.Helper()
	assert.Equal(t, a.TotalLoaded()-a.TotalConsumed(), a.Balance(), "balance must equal loaded minus consumed")
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{name: "plain id", userID: "user-1"},
		{name: "max length", userID: strings.Repeat("a", MaxUserIDLength)},
		{name: "empty", userID: "", wantErr: true},
		{name: "blank", userID: "   ", wantErr: true},
		{name: "surrounding spaces", userID: " user-1 ", wantErr: true},
		{name: "too long", userID: strings.Repeat("a", MaxUserIDLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidUserID)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewAccount(t *testing.T) {
	clock := newClock()

	a, err := NewAccount("user-1", 100, clock)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.Balance())
	assert.False(t, a.IsBlocked)
	assert.True(t, a.IsLowBalance())
	assert.Equal(t, clock.Now(), a.CreatedAt)

	_, err = NewAccount("user-1", -1, clock)
	assert.ErrorIs(t, err, errs.ErrInvalidThreshold)
}

func TestApplyDebit(t *testing.T) {
	clock := newClock()

	t.Run("within balance", func(t *testing.T) {
		a := RestoreAccount("u", 100, 0, false, 10, 1, clock.Now(), clock.Now())
		clock.Advance(time.Minute)

		transition, err := a.ApplyDebit(40, false, clock)
		require.NoError(t, err)
		assert.False(t, transition.Changed)
		assert.Equal(t, int64(60), a.Balance())
		assert.Equal(t, int64(40), a.TotalConsumed())
		assert.Equal(t, int64(2), a.TransactionCount)
		assert.Equal(t, clock.Now(), a.UpdatedAt)
		assertConsistent(t, a)
	})

	t.Run("insufficient balance leaves account untouched", func(t *testing.T) {
		a := RestoreAccount("u", 100, 0, false, 10, 1, clock.Now(), clock.Now())

		_, err := a.ApplyDebit(101, false, clock)
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(100), a.Balance())
		assert.Equal(t, int64(1), a.TransactionCount)
	})

	t.Run("negative balance blocks an active account", func(t *testing.T) {
		a := RestoreAccount("u", 100, 0, false, 10, 1, clock.Now(), clock.Now())

		transition, err := a.ApplyDebit(150, true, clock)
		require.NoError(t, err)
		assert.Equal(t, BlockTransition{Changed: true, Blocked: true, Reason: BlockReasonNegativeBalance}, transition)
		assert.True(t, a.IsBlocked)
		assert.Equal(t, int64(-50), a.Balance())
		assertConsistent(t, a)
	})

	t.Run("blocked account rejects paid debit before arithmetic", func(t *testing.T) {
		a := RestoreAccount("u", 500, 0, true, 10, 1, clock.Now(), clock.Now())

		_, err := a.ApplyDebit(1, false, clock)
		require.ErrorIs(t, err, errs.ErrAccountBlocked)
		assert.Equal(t, int64(500), a.Balance())
	})

	t.Run("blocked account accepts permitted debit without a second transition", func(t *testing.T) {
		a := RestoreAccount("u", 0, 20, true, 10, 1, clock.Now(), clock.Now())

		transition, err := a.ApplyDebit(5, true, clock)
		require.NoError(t, err)
		assert.False(t, transition.Changed)
		assert.Equal(t, int64(-25), a.Balance())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		a := RestoreAccount("u", 100, 0, false, 10, 1, clock.Now(), clock.Now())
		_, err := a.ApplyDebit(0, false, clock)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		_, err = a.ApplyDebit(-5, true, clock)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rejects overflow", func(t *testing.T) {
		a := RestoreAccount("u", 0, math.MaxInt64-1, true, 10, 1, clock.Now(), clock.Now())
		_, err := a.ApplyDebit(10, true, clock)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestApplyCredit(t *testing.T) {
	clock := newClock()

	t.Run("unblocks once balance reaches zero", func(t *testing.T) {
		a := RestoreAccount("u", 0, 30, true, 10, 2, clock.Now(), clock.Now())

		transition, err := a.ApplyCredit(10, clock)
		require.NoError(t, err)
		assert.False(t, transition.Changed)
		assert.True(t, a.IsBlocked)

		transition, err = a.ApplyCredit(20, clock)
		require.NoError(t, err)
		assert.Equal(t, BlockTransition{Changed: true, Blocked: false, Reason: BlockReasonCredit}, transition)
		assert.False(t, a.IsBlocked)
		assert.Equal(t, int64(0), a.Balance())
		assert.Equal(t, int64(4), a.TransactionCount)
		assertConsistent(t, a)
	})

	t.Run("rejects overflow", func(t *testing.T) {
		a := RestoreAccount("u", math.MaxInt64-5, 0, false, 10, 1, clock.Now(), clock.Now())
		_, err := a.ApplyCredit(10, clock)
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestSetBlockedAndThreshold(t *testing.T) {
	clock := newClock()
	a := RestoreAccount("u", 50, 0, false, 10, 1, clock.Now(), clock.Now())

	assert.True(t, a.SetBlocked(true, clock))
	assert.False(t, a.SetBlocked(true, clock))
	assert.Equal(t, int64(50), a.Balance())

	require.NoError(t, a.SetLowBalanceThreshold(60, clock))
	assert.True(t, a.IsLowBalance())
	assert.ErrorIs(t, a.SetLowBalanceThreshold(-1, clock), errs.ErrInvalidThreshold)

	stats := a.Stats()
	assert.Equal(t, AccountStats{
		UserID:              "u",
		Balance:             50,
		TotalLoaded:         50,
		IsBlocked:           true,
		LowBalanceThreshold: 60,
		IsLowBalance:        true,
		TransactionCount:    1,
	}, stats)
}

func TestNewTransaction(t *testing.T) {
	clock := newClock()
	a := RestoreAccount("u", 100, 0, false, 10, 1, clock.Now(), clock.Now())
	_, err := a.ApplyDebit(30, false, clock)
	require.NoError(t, err)

	txn := NewTransaction("tx-1", a, KindDebit, 30, "tool.search", "", nil, "key-1")
	assert.Equal(t, int64(-30), txn.Amount)
	assert.Equal(t, int64(70), txn.BalanceAfter)
	assert.Equal(t, int64(2), txn.Sequence)
	assert.Equal(t, int64(30), txn.AbsAmount())
	assert.True(t, txn.Matches(KindDebit, 30, "tool.search"))
	assert.False(t, txn.Matches(KindCredit, 30, "tool.search"))
	assert.False(t, txn.Matches(KindDebit, 31, "tool.search"))
	assert.False(t, txn.Matches(KindDebit, 30, "tool.other"))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("tool.search"))
	assert.ErrorIs(t, ValidateCategory("  "), errs.ErrInvalidCategory)
	assert.ErrorIs(t, ValidateCategory(strings.Repeat("c", MaxCategoryLength+1)), errs.ErrInvalidCategory)
}
