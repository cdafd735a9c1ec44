package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Ledger *handler.LedgerHandler
	Admin  *handler.AdminHandler
	Health *handler.HealthHandler
	// Metrics serves the Prometheus exposition; nil disables the route
	Metrics     http.Handler
	MetricsPath string
}

// AuthSettings configures caller resolution
type AuthSettings struct {
	Verifier   middleware.TokenVerifier
	CookieName string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, authSettings AuthSettings, logger coreport.Logger) error {
	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	router.GET("/healthz", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.ResolveCaller(authSettings.Verifier, authSettings.CookieName, logger))

	me := api.Group("/me")
	{
		me.GET("/balance", h.Ledger.GetBalance)
		me.GET("/stats", h.Ledger.GetStats)
		me.GET("/transactions", h.Ledger.ListTransactions)
		me.POST("/debit", h.Ledger.Debit)
	}

	admin := api.Group("/admin/accounts/:userId")
	{
		adminOnly := middleware.RequireRole(entity.RoleAdmin)

		admin.GET("/balance", adminOnly, h.Ledger.GetBalance)
		admin.GET("/stats", adminOnly, h.Ledger.GetStats)
		admin.GET("/transactions", adminOnly, h.Ledger.ListTransactions)
		admin.GET("/block-events", adminOnly, h.Admin.ListBlockEvents)
		admin.POST("/debit", adminOnly, h.Ledger.Debit)
		admin.POST("/credit", middleware.RequireRole(entity.RoleAdmin, entity.RoleService), h.Ledger.Credit)
		admin.PUT("/blocked", adminOnly, h.Admin.SetBlocked)
		admin.PUT("/low-balance-threshold", adminOnly, h.Admin.SetLowBalanceThreshold)
		admin.GET("/reconcile", adminOnly, h.Admin.Reconcile)
	}

	return nil
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	observer middleware.HTTPObserver,
	allowedOrigins []string,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	if observer != nil {
		router.Use(middleware.Metrics(observer, timeProvider))
	}
	router.Use(cors.New(corsConfig(allowedOrigins)))
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", dto.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		// credentials cannot be combined with a wildcard origin
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = allowedOrigins
	return cfg
}
