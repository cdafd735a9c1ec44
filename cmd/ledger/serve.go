package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/usecase/outbox"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/auth"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/messaging"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/repository"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/config"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the outbox relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

const lockSweepInterval = time.Minute

// sweepExpiredLocks deletes account lock leases left behind by crashed processes
func sweepExpiredLocks(ctx context.Context, repo *repository.AccountLockRepository, interval time.Duration, logger coreport.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := repo.CleanupExpiredLocks(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("Account lock sweep failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.db.MigrationManager().MigrateAll(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := app.buildLedger(ctx); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.TokenTTL(), app.timeProvider)
	if err != nil {
		return err
	}

	router := gin.New()
	routes.SetupMiddlewares(router, app.logger, app.timeProvider, app.metrics, cfg.Server.CORSAllowedOrigins)

	handlers := routes.Handlers{
		Ledger: handler.NewLedgerHandler(app.ledger, app.logger),
		Admin:  handler.NewAdminHandler(app.ledger, app.logger),
		Health: handler.NewHealthHandler(app.db, app.logger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = app.metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}
	if err := routes.SetupRoutes(router, handlers, routes.AuthSettings{Verifier: tokens, CookieName: cfg.Auth.CookieName}, app.logger); err != nil {
		return err
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	var background sync.WaitGroup
	if cfg.Lock.Backend == "database" {
		background.Add(1)
		go func() {
			defer background.Done()
			sweepExpiredLocks(bgCtx, app.db.AccountLockRepository(), lockSweepInterval, app.logger)
		}()
	}
	if cfg.Events.Enabled {
		producer, err := messaging.NewSyncProducer(cfg.Events.Brokers, cfg.Events.ClientID)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		publisher := messaging.NewKafkaPublisher(producer, cfg.Events.Topic, app.logger)
		defer func() {
			if err := publisher.Close(); err != nil {
				app.logger.Warn("Failed to close kafka producer", map[string]any{"error": err.Error()})
			}
		}()

		relay := outbox.NewRelay(app.db.CreateUnitOfWork(), publisher, app.timeProvider, app.logger, app.metrics, outbox.RelayConfig{
			Interval:    cfg.Events.RelayInterval(),
			BatchSize:   cfg.Events.BatchSize,
			MaxAttempts: cfg.Events.MaxAttempts,
		})
		background.Add(1)
		go func() {
			defer background.Done()
			relay.Run(bgCtx)
		}()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout(),
		WriteTimeout:      cfg.Server.WriteTimeout(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout(),
		IdleTimeout:       cfg.Server.IdleTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", map[string]any{
			"addr":           server.Addr,
			"env":            cfg.Environment,
			"database":       cfg.Database.Driver,
			"lock_backend":   cfg.Lock.Backend,
			"events_enabled": cfg.Events.Enabled,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	app.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	stopBackground()
	background.Wait()

	app.logger.Info("Server exited gracefully", nil)
	return serveErr
}
