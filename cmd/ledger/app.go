package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
	"github.com/arcanumspy/credit-ledger/internal/domain/usecase/ledger"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/lock"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/metrics"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/config"
)

const serviceName = "credit-ledger"

// application is the wiring shared by every subcommand
type application struct {
	cfg          *config.Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      *metrics.Collector
	db           *database.Manager
	ledger       *ledger.Service
	redis        *redis.Client
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		Service:    serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}
	for _, warning := range cfg.SecurityWarnings() {
		appLogger.Warn("Insecure production configuration", map[string]any{"warning": warning})
	}

	app := &application{
		cfg:          cfg,
		logger:       appLogger,
		timeProvider: timeprovider.NewRealTimeProvider(),
		metrics:      metrics.NewCollector(),
	}

	app.db = database.NewManager(database.NewConfig(cfg), appLogger, app.timeProvider,
		database.WithMetricsObserver(app.metrics))
	if _, err := app.db.Connect(ctx); err != nil {
		_ = appLogger.Flush()
		return nil, fmt.Errorf("database connect: %w", err)
	}

	return app, nil
}

// buildLedger wires the ledger service with the configured queue and lock backend
func (a *application) buildLedger(ctx context.Context) error {
	opts := []ledger.Option{
		ledger.WithMetrics(a.metrics),
		ledger.WithMutationQueue(ledger.NewMutationQueue(a.logger, a.cfg.Ledger.QueueBufferSize, a.cfg.Ledger.QueueIdleTimeout())),
	}

	lockRepo, err := a.lockBackend(ctx)
	if err != nil {
		return err
	}
	if lockRepo != nil {
		opts = append(opts, ledger.WithAccountGuard(ledger.NewAccountGuard(
			lockRepo, a.timeProvider, a.logger, processOwner(), a.cfg.Lock.TTL(), a.cfg.Lock.WaitTimeout(),
		)))
	}

	a.ledger = ledger.NewLedgerService(a.db.CreateUnitOfWork(), a.timeProvider, a.logger, ledger.Config{
		DefaultLowBalanceThreshold: a.cfg.Ledger.DefaultLowBalanceThreshold,
		DefaultListLimit:           a.cfg.Ledger.DefaultListLimit,
		MaxListLimit:               a.cfg.Ledger.MaxListLimit,
		EventsEnabled:              a.cfg.Events.Enabled,
	}, opts...)
	return nil
}

func (a *application) lockBackend(ctx context.Context) (persistence.AccountLockRepository, error) {
	switch a.cfg.Lock.Backend {
	case "database":
		return a.db.AccountLockRepository(), nil
	case "redis":
		client, err := lock.NewRedisClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		a.redis = client
		return lock.NewRedisAccountLock(client, a.cfg.Lock.KeyPrefix, a.logger), nil
	default:
		return nil, nil
	}
}

func (a *application) close() {
	if a.ledger != nil {
		a.ledger.Shutdown()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
	_ = a.logger.Flush()
}

// processOwner identifies this process in the account lock table
func processOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "ledger"
	}
	return fmt.Sprintf("%s-%d-%s", host, os.Getpid(), uuid.NewString()[:8])
}
