package outbox

import (
	"context"
	"time"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/messaging"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
)

// Publish outcomes reported to LedgerMetrics
const (
	OutcomeSent    = "sent"
	OutcomeRetry   = "retry"
	OutcomeAbandon = "failed"
)

// RelayConfig controls how the relay drains the outbox
type RelayConfig struct {
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

// DefaultRelayConfig returns the relay defaults
func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		Interval:    time.Second,
		BatchSize:   100,
		MaxAttempts: 10,
	}
}

// BatchStats summarizes one relay pass
type BatchStats struct {
	Sent      int
	Retrying  int
	Abandoned int
}

// Relay delivers pending outbox events to the broker.
// Each batch is claimed inside a unit of work so concurrent relays skip each other's rows.
type Relay struct {
	uow          persistence.UnitOfWork
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.LedgerMetrics
	cfg          RelayConfig
}

// NewRelay creates an outbox relay. metrics may be nil.
func NewRelay(
	uow persistence.UnitOfWork,
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.LedgerMetrics,
	cfg RelayConfig,
) *Relay {
	defaults := DefaultRelayConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	return &Relay{
		uow:          uow,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		cfg:          cfg,
	}
}

// Run drains the outbox every interval until ctx is canceled
func (r *Relay) Run(ctx context.Context) {
	r.logger.Info("Outbox relay started", map[string]any{
		"interval":     r.cfg.Interval.String(),
		"batch_size":   r.cfg.BatchSize,
		"max_attempts": r.cfg.MaxAttempts,
	})

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped", nil)
			return
		case <-ticker.C:
			// keep draining while full batches come back
			for {
				stats, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						r.logger.Error("Outbox relay pass failed", map[string]any{"error": err.Error()})
					}
					break
				}
				if stats.Sent+stats.Retrying+stats.Abandoned < r.cfg.BatchSize {
					break
				}
			}
		}
	}
}

// RunOnce publishes at most one batch of pending events
func (r *Relay) RunOnce(ctx context.Context) (BatchStats, error) {
	var stats BatchStats

	err := r.uow.Do(ctx, func(txCtx context.Context) error {
		stats = BatchStats{}
		repo := r.uow.GetOutboxRepository(txCtx)

		events, err := repo.FetchPending(txCtx, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if pubErr := r.publisher.Publish(txCtx, event); pubErr != nil {
				terminal := event.Attempts+1 >= r.cfg.MaxAttempts
				if err := repo.MarkAttemptFailed(txCtx, event.ID, pubErr.Error(), terminal); err != nil {
					return err
				}
				if terminal {
					stats.Abandoned++
					r.logger.Error("Outbox event abandoned", map[string]any{
						"event_id":   event.ID,
						"event_type": string(event.EventType),
						"attempts":   event.Attempts + 1,
						"error":      pubErr.Error(),
					})
				} else {
					stats.Retrying++
					r.logger.Warn("Outbox event publish failed", map[string]any{
						"event_id":   event.ID,
						"event_type": string(event.EventType),
						"attempts":   event.Attempts + 1,
						"error":      pubErr.Error(),
					})
				}
				continue
			}

			if err := repo.MarkSent(txCtx, event.ID, r.timeProvider.Now()); err != nil {
				return err
			}
			stats.Sent++
		}
		return nil
	})
	if err != nil {
		return BatchStats{}, err
	}

	r.report(stats)
	return stats, nil
}

func (r *Relay) report(stats BatchStats) {
	if r.metrics == nil {
		return
	}
	if stats.Sent > 0 {
		r.metrics.ObserveOutboxPublish(OutcomeSent, stats.Sent)
	}
	if stats.Retrying > 0 {
		r.metrics.ObserveOutboxPublish(OutcomeRetry, stats.Retrying)
	}
	if stats.Abandoned > 0 {
		r.metrics.ObserveOutboxPublish(OutcomeAbandon, stats.Abandoned)
	}
}
