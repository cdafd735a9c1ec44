package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
	mockcore "github.com/arcanumspy/credit-ledger/mocks/port/core"
	mockpersistence "github.com/arcanumspy/credit-ledger/mocks/port/persistence"
)

type serviceMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	accounts     *mockpersistence.MockAccountRepository
	transactions *mockpersistence.MockTransactionRepository
	blockEvents  *mockpersistence.MockBlockEventRepository
	timeProvider *mockcore.MockTimeProvider
	logger       *mockcore.MockLogger
}

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newServiceMocks(t *testing.T) (*serviceMocks, *Service) {
	m := &serviceMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		accounts:     mockpersistence.NewMockAccountRepository(t),
		transactions: mockpersistence.NewMockTransactionRepository(t),
		blockEvents:  mockpersistence.NewMockBlockEventRepository(t),
		timeProvider: mockcore.NewMockTimeProvider(t),
		logger:       mockcore.NewMockLogger(t),
	}
	m.uow.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()
	m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.transactions).Maybe()
	m.uow.EXPECT().GetBlockEventRepository(mock.Anything).Return(m.blockEvents).Maybe()
	m.timeProvider.EXPECT().Now().Return(fixedNow).Maybe()
	m.timeProvider.EXPECT().Since(mock.Anything).Return(time.Millisecond).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewLedgerService(m.uow, m.timeProvider, m.logger, DefaultConfig(),
		WithIDGenerator(func() string { return "evt-1" }))
	return m, svc
}

func TestService_DebitFailsClosedOnLockError(t *testing.T) {
	m, svc := newServiceMocks(t)
	m.accounts.EXPECT().LockOrCreate(mock.Anything, "alice", int64(100)).
		Return(nil, errors.New("connection reset")).Once()

	result, err := svc.Debit(context.Background(), usecase.DebitRequest{
		UserID:   "alice",
		Amount:   10,
		Category: "tool.search",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, errs.KindPersistence, result.ErrorKind)
	m.transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_SetBlockedAuditFailureRollsBack(t *testing.T) {
	m, svc := newServiceMocks(t)
	account := entity.RestoreAccount("alice", 50, 0, false, 100, 1, fixedNow, fixedNow)

	m.accounts.EXPECT().LockOrCreate(mock.Anything, "alice", int64(100)).Return(account, nil).Once()
	m.accounts.EXPECT().Save(mock.Anything, account).Return(nil).Once()
	m.blockEvents.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.BlockEvent) bool {
		return e.Reason == entity.BlockReasonAdmin && e.Actor == "admin-1" && e.Blocked && !e.PreviousBlocked
	})).Return(errors.New("disk full")).Once()

	result, err := svc.SetBlocked(context.Background(), usecase.SetBlockedRequest{
		UserID:  "alice",
		Blocked: true,
		Actor:   "admin-1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	assert.False(t, result.Success)
	assert.Equal(t, errs.KindPersistence, result.ErrorKind)
}

func TestService_GetBalanceDefaultsUnknownUser(t *testing.T) {
	m, svc := newServiceMocks(t)
	m.accounts.EXPECT().GetByUserID(mock.Anything, "bob").Return(nil, errs.ErrAccountNotFound).Once()

	account, err := svc.GetBalance(context.Background(), "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob", account.UserID)
	assert.Equal(t, int64(0), account.Balance())
	assert.Equal(t, int64(100), account.LowBalanceThreshold)
	assert.Equal(t, fixedNow, account.CreatedAt)
}

func TestService_ListBlockEvents(t *testing.T) {
	m, svc := newServiceMocks(t)
	events := []*entity.BlockEvent{
		{ID: "b2", UserID: "alice", Blocked: false, Reason: entity.BlockReasonCredit},
		{ID: "b1", UserID: "alice", Blocked: true, Reason: entity.BlockReasonNegativeBalance},
	}
	m.blockEvents.EXPECT().ListByUser(mock.Anything, "alice", 50, 0).Return(events, nil).Once()
	m.blockEvents.EXPECT().CountByUser(mock.Anything, "alice").Return(int64(2), nil).Once()

	page, err := svc.ListBlockEvents(context.Background(), "alice", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "b2", page.Items[0].ID)
}

func TestService_ListBlockEventsCountFailure(t *testing.T) {
	m, svc := newServiceMocks(t)
	m.blockEvents.EXPECT().ListByUser(mock.Anything, "alice", 10, 0).Return(nil, nil).Once()
	m.blockEvents.EXPECT().CountByUser(mock.Anything, "alice").Return(int64(0), errors.New("timeout")).Once()

	page, err := svc.ListBlockEvents(context.Background(), "alice", 10, 0)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, errs.ErrPersistence)
}
