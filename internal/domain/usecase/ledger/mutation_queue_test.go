package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
)

func TestMutationQueue_SameUserRunsSequentially(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)
	defer q.Shutdown()

	var running, maxRunning int32
	var order []int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := q.Submit(context.Background(), "user-1", func(ctx context.Context) error {
				n := atomic.AddInt32(&running, 1)
				defer atomic.AddInt32(&running, -1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
	assert.Len(t, order, 20)
}

func TestMutationQueue_DifferentUsersRunInParallel(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)
	defer q.Shutdown()

	release := make(chan struct{})
	started := make(chan string, 2)

	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_ = q.Submit(context.Background(), user, func(ctx context.Context) error {
				started <- user
				<-release
				return nil
			})
		}(user)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("mutations of different users did not run concurrently")
		}
	}
	assert.Equal(t, 2, q.ActiveWorkers())

	close(release)
	wg.Wait()
}

func TestMutationQueue_ReturnsMutationError(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)
	defer q.Shutdown()

	rejected := errors.New("rejected")
	err := q.Submit(context.Background(), "user-1", func(ctx context.Context) error { return rejected })
	assert.ErrorIs(t, err, rejected)
}

func TestMutationQueue_RecoversPanic(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)
	defer q.Shutdown()

	err := q.Submit(context.Background(), "user-1", func(ctx context.Context) error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutation panicked: boom")

	err = q.Submit(context.Background(), "user-1", func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestMutationQueue_CanceledContext(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)
	defer q.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := q.Submit(ctx, "user-1", func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMutationQueue_IdleWorkerRetires(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, 20*time.Millisecond)
	defer q.Shutdown()

	require.NoError(t, q.Submit(context.Background(), "user-1", func(ctx context.Context) error { return nil }))

	assert.Eventually(t, func() bool { return q.ActiveWorkers() == 0 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, q.Submit(context.Background(), "user-1", func(ctx context.Context) error { return nil }))
}

func TestMutationQueue_ShutdownDrainsAndRejects(t *testing.T) {
	q := NewMutationQueue(logger.NewNoopLogger(), 10, time.Minute)

	var completed int32
	inFlight := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- q.Submit(context.Background(), "user-1", func(ctx context.Context) error {
			close(inFlight)
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}()
	<-inFlight

	q.Shutdown()

	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), atomic.LoadInt32(&completed))
	assert.Equal(t, 0, q.ActiveWorkers())

	err := q.Submit(context.Background(), "user-1", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrQueueClosed)

	q.Shutdown()
}
