package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
)

// AccountGuard holds the cross-process account lock around a mutation.
// Acquisition is retried with backoff until waitTimeout and then fails with ErrAccountBusy.
type AccountGuard struct {
	repo         persistence.AccountLockRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	owner        string
	ttl          time.Duration
	waitTimeout  time.Duration
	retryDelay   time.Duration
}

// NewAccountGuard creates a guard for the given lock backend. owner identifies this process.
func NewAccountGuard(
	repo persistence.AccountLockRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	owner string,
	ttl, waitTimeout time.Duration,
) *AccountGuard {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	if waitTimeout <= 0 {
		waitTimeout = 2 * time.Second
	}
	return &AccountGuard{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		owner:        owner,
		ttl:          ttl,
		waitTimeout:  waitTimeout,
		retryDelay:   10 * time.Millisecond,
	}
}

// WithRetryDelay overrides the initial backoff between acquisition attempts
func (g *AccountGuard) WithRetryDelay(d time.Duration) *AccountGuard {
	if d > 0 {
		g.retryDelay = d
	}
	return g
}

// Run executes fn while holding the lock of userID
func (g *AccountGuard) Run(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if err := g.acquire(ctx, userID); err != nil {
		return err
	}
	defer g.release(ctx, userID)

	return fn(ctx)
}

func (g *AccountGuard) acquire(ctx context.Context, userID string) error {
	waitCtx, cancel := g.timeProvider.WithTimeout(ctx, g.waitTimeout)
	defer cancel()

	delay := g.retryDelay
	for attempt := 1; ; attempt++ {
		err := g.repo.AcquireLock(waitCtx, userID, g.owner, g.ttl)
		if err == nil {
			if attempt > 1 {
				g.logger.Debug("Account lock acquired after retries", map[string]any{
					"user_id":  userID,
					"attempts": attempt,
				})
			}
			return nil
		}
		if !errors.Is(err, errs.ErrAccountBusy) {
			return errs.NewPersistenceError("acquire account lock", err)
		}

		select {
		case <-time.After(delay):
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			g.logger.Warn("Timed out waiting for account lock", map[string]any{
				"user_id":  userID,
				"attempts": attempt,
				"wait":     g.waitTimeout.String(),
			})
			return fmt.Errorf("%w: waited %s", errs.ErrAccountBusy, g.waitTimeout)
		}

		delay *= 2
		if delay > 200*time.Millisecond {
			delay = 200 * time.Millisecond
		}
	}
}

// release survives caller cancellation; an unreleased lock would otherwise block the user until ttl
func (g *AccountGuard) release(ctx context.Context, userID string) {
	releaseCtx, cancel := g.timeProvider.WithTimeout(context.WithoutCancel(ctx), g.ttl)
	defer cancel()

	if err := g.repo.ReleaseLock(releaseCtx, userID, g.owner); err != nil {
		g.logger.Warn("Failed to release account lock, it will expire", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
