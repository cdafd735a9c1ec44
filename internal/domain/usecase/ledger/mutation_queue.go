package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

// ErrQueueClosed is returned for mutations submitted after Shutdown
var ErrQueueClosed = errors.New("mutation queue is shut down")

// MutationFunc is one serialized unit of ledger work for a single user
type MutationFunc func(ctx context.Context) error

// MutationQueue runs mutations for the same user one at a time on a dedicated worker,
// while different users proceed in parallel. Idle workers retire after idleTimeout.
type MutationQueue struct {
	logger      coreport.Logger
	bufferSize  int
	idleTimeout time.Duration

	mu      sync.Mutex
	queues  map[string]*userQueue
	closed  bool
	stop    chan struct{}
	workers sync.WaitGroup
}

type userQueue struct {
	jobs    chan *mutationJob
	pending int
}

type mutationJob struct {
	ctx    context.Context
	fn     MutationFunc
	result chan error
}

// NewMutationQueue creates a queue with the given per-user buffer
func NewMutationQueue(logger coreport.Logger, bufferSize int, idleTimeout time.Duration) *MutationQueue {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if idleTimeout <= 0 {
		idleTimeout = time.Minute
	}
	return &MutationQueue{
		logger:      logger,
		bufferSize:  bufferSize,
		idleTimeout: idleTimeout,
		queues:      make(map[string]*userQueue),
		stop:        make(chan struct{}),
	}
}

// Submit enqueues fn behind earlier mutations of userID and waits for it to finish
func (q *MutationQueue) Submit(ctx context.Context, userID string, fn MutationFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	uq, ok := q.queues[userID]
	if !ok {
		uq = &userQueue{jobs: make(chan *mutationJob, q.bufferSize)}
		q.queues[userID] = uq
		q.workers.Add(1)
		go q.work(userID, uq)
		q.logger.Debug("Started mutation worker", map[string]any{"user_id": userID})
	}
	uq.pending++
	q.mu.Unlock()

	job := &mutationJob{ctx: ctx, fn: fn, result: make(chan error, 1)}

	select {
	case uq.jobs <- job:
	case <-ctx.Done():
		q.mu.Lock()
		uq.pending--
		q.mu.Unlock()
		q.logger.Warn("Context canceled while enqueueing mutation", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-job.result:
		return err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for mutation", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (q *MutationQueue) work(userID string, uq *userQueue) {
	defer q.workers.Done()

	idle := time.NewTimer(q.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case job := <-uq.jobs:
			q.run(job)
			q.done(uq)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(q.idleTimeout)
		case <-idle.C:
			if q.retire(userID, uq) {
				q.logger.Debug("Retired idle mutation worker", map[string]any{"user_id": userID})
				return
			}
			idle.Reset(q.idleTimeout)
		case <-q.stop:
			q.drain(userID, uq)
			return
		}
	}
}

// drain finishes every job already accepted for uq before the worker exits
func (q *MutationQueue) drain(userID string, uq *userQueue) {
	for {
		if q.retire(userID, uq) {
			return
		}
		select {
		case job := <-uq.jobs:
			q.run(job)
			q.done(uq)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (q *MutationQueue) run(job *mutationJob) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("Mutation panicked", map[string]any{"panic": fmt.Sprint(r)})
			job.result <- fmt.Errorf("mutation panicked: %v", r)
		}
	}()
	job.result <- job.fn(job.ctx)
}

func (q *MutationQueue) done(uq *userQueue) {
	q.mu.Lock()
	uq.pending--
	q.mu.Unlock()
}

// retire removes uq from the map when nothing is pending, so later submits start a fresh worker
func (q *MutationQueue) retire(userID string, uq *userQueue) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if uq.pending > 0 {
		return false
	}
	if q.queues[userID] == uq {
		delete(q.queues, userID)
	}
	return true
}

// ActiveWorkers returns the number of users with a live worker
func (q *MutationQueue) ActiveWorkers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues)
}

// Shutdown rejects new mutations and waits for accepted ones to finish
func (q *MutationQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.stop)
	q.mu.Unlock()

	q.logger.Info("Shutting down mutation queue", nil)
	q.workers.Wait()
	q.logger.Info("Mutation queue shut down", nil)
}
