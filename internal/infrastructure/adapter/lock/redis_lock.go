package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
)

// DefaultKeyPrefix namespaces account lock keys
const DefaultKeyPrefix = "ledger:lock:"

// releaseScript deletes the key only while it still holds the caller's token,
// so a holder whose lease expired cannot drop the next holder's lock
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var _ persistence.AccountLockRepository = (*RedisAccountLock)(nil)

// RedisAccountLock is the cross-process account lock on Redis: SET NX PX to acquire,
// compare-and-delete to release
type RedisAccountLock struct {
	client    redis.Cmdable
	keyPrefix string
	logger    coreport.Logger
}

// NewRedisAccountLock creates a Redis-backed account lock
func NewRedisAccountLock(client redis.Cmdable, keyPrefix string, logger coreport.Logger) *RedisAccountLock {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisAccountLock{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

// NewRedisClient opens a client from connection settings and checks it answers
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (l *RedisAccountLock) key(userID string) string {
	return l.keyPrefix + userID
}

// AcquireLock sets the key when absent. When owner already holds it the lease is extended.
func (l *RedisAccountLock) AcquireLock(ctx context.Context, userID, owner string, ttl time.Duration) error {
	key := l.key(userID)

	ok, err := l.client.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		return errs.NewPersistenceError("acquire redis lock", err)
	}
	if ok {
		return nil
	}

	current, err := l.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// expired between the two calls; let the caller retry
		return errs.ErrAccountBusy
	case err != nil:
		return errs.NewPersistenceError("inspect redis lock", err)
	case current != owner:
		return errs.ErrAccountBusy
	}

	extended, err := l.client.PExpire(ctx, key, ttl).Result()
	if err != nil {
		return errs.NewPersistenceError("extend redis lock", err)
	}
	if !extended {
		return errs.ErrAccountBusy
	}
	return nil
}

// ReleaseLock drops the lock if owner still holds it
func (l *RedisAccountLock) ReleaseLock(ctx context.Context, userID, owner string) error {
	deleted, err := releaseScript.Run(ctx, l.client, []string{l.key(userID)}, owner).Int64()
	if err != nil {
		return errs.NewPersistenceError("release redis lock", err)
	}
	if deleted == 0 {
		l.logger.Warn("Redis lock was not held at release", map[string]any{
			"user_id": userID,
			"owner":   owner,
		})
	}
	return nil
}
