package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
)

const (
	testUser  = "user-42"
	testOwner = "node-a:1"
	testKey   = DefaultKeyPrefix + testUser
	testTTL   = 5 * time.Second
)

func TestRedisAccountLock_AcquireFree(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "", logger.NewNoopLogger())

	mock.ExpectSetNX(testKey, testOwner, testTTL).SetVal(true)

	require.NoError(t, lock.AcquireLock(context.Background(), testUser, testOwner, testTTL))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAccountLock_AcquireHeldByOther(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "", logger.NewNoopLogger())

	mock.ExpectSetNX(testKey, testOwner, testTTL).SetVal(false)
	mock.ExpectGet(testKey).SetVal("node-b:7")

	err := lock.AcquireLock(context.Background(), testUser, testOwner, testTTL)
	assert.ErrorIs(t, err, errs.ErrAccountBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAccountLock_AcquireExtendsOwnLease(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "", logger.NewNoopLogger())

	mock.ExpectSetNX(testKey, testOwner, testTTL).SetVal(false)
	mock.ExpectGet(testKey).SetVal(testOwner)
	mock.ExpectPExpire(testKey, testTTL).SetVal(true)

	require.NoError(t, lock.AcquireLock(context.Background(), testUser, testOwner, testTTL))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAccountLock_AcquireRedisDown(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "", logger.NewNoopLogger())

	mock.ExpectSetNX(testKey, testOwner, testTTL).SetErr(errors.New("connection refused"))

	err := lock.AcquireLock(context.Background(), testUser, testOwner, testTTL)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	assert.NotErrorIs(t, err, errs.ErrAccountBusy)
}

func TestRedisAccountLock_ReleaseComparesToken(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "", logger.NewNoopLogger())

	mock.ExpectEvalSha(releaseScript.Hash(), []string{testKey}, testOwner).SetVal(int64(1))

	require.NoError(t, lock.ReleaseLock(context.Background(), testUser, testOwner))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisAccountLock_ReleaseNotHeld(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisAccountLock(client, "custom:", logger.NewNoopLogger())

	mock.ExpectEvalSha(releaseScript.Hash(), []string{"custom:" + testUser}, testOwner).SetVal(int64(0))

	require.NoError(t, lock.ReleaseLock(context.Background(), testUser, testOwner))
	assert.NoError(t, mock.ExpectationsWereMet())
}
