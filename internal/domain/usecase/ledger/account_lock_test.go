package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
	mockpersistence "github.com/arcanumspy/credit-ledger/mocks/port/persistence"
)

func newTestGuard(repo *mockpersistence.MockAccountLockRepository, wait time.Duration) *AccountGuard {
	return NewAccountGuard(repo, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger(), "proc-1", time.Second, wait).
		WithRetryDelay(time.Millisecond)
}

func TestAccountGuard_Run(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(repo *mockpersistence.MockAccountLockRepository)
		fnErr      error
		wantCalled bool
		wantErr    error
	}{
		{
			name: "acquires and releases",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(nil).Once()
				repo.EXPECT().ReleaseLock(mock.Anything, "user-1", "proc-1").Return(nil).Once()
			},
			wantCalled: true,
		},
		{
			name: "retries while busy",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(errs.ErrAccountBusy).Twice()
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(nil).Once()
				repo.EXPECT().ReleaseLock(mock.Anything, "user-1", "proc-1").Return(nil).Once()
			},
			wantCalled: true,
		},
		{
			name: "releases when fn fails",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(nil).Once()
				repo.EXPECT().ReleaseLock(mock.Anything, "user-1", "proc-1").Return(nil).Once()
			},
			fnErr:      errs.ErrInsufficientBalance,
			wantCalled: true,
			wantErr:    errs.ErrInsufficientBalance,
		},
		{
			name: "release failure is not reported",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(nil).Once()
				repo.EXPECT().ReleaseLock(mock.Anything, "user-1", "proc-1").Return(errors.New("gone")).Once()
			},
			wantCalled: true,
		},
		{
			name: "times out as busy",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(errs.ErrAccountBusy)
			},
			wantErr: errs.ErrAccountBusy,
		},
		{
			name: "backend failure is a persistence error",
			mockSetup: func(repo *mockpersistence.MockAccountLockRepository) {
				repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(errors.New("redis down")).Once()
			},
			wantErr: errs.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mockpersistence.NewMockAccountLockRepository(t)
			tc.mockSetup(repo)
			guard := newTestGuard(repo, 50*time.Millisecond)

			called := false
			err := guard.Run(context.Background(), "user-1", func(ctx context.Context) error {
				called = true
				return tc.fnErr
			})

			assert.Equal(t, tc.wantCalled, called)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountGuard_ReleasesAfterCallerCancels(t *testing.T) {
	repo := mockpersistence.NewMockAccountLockRepository(t)
	repo.EXPECT().AcquireLock(mock.Anything, "user-1", "proc-1", time.Second).Return(nil).Once()
	repo.EXPECT().ReleaseLock(mock.Anything, "user-1", "proc-1").
		RunAndReturn(func(ctx context.Context, userID, owner string) error {
			return ctx.Err()
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	guard := newTestGuard(repo, 50*time.Millisecond)

	err := guard.Run(ctx, "user-1", func(ctx context.Context) error {
		cancel()
		return nil
	})
	assert.NoError(t, err)
}
