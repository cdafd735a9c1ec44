package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler serves the administrative account operations
type AdminHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		ledger: ledger,
		logger: logger,
	}
}

// SetBlocked handles PUT /admin/accounts/{userId}/blocked
func (h *AdminHandler) SetBlocked(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	result, err := h.ledger.SetBlocked(c.Request.Context(), usecase.SetBlockedRequest{
		UserID:  userID,
		Blocked: *req.Blocked,
		Actor:   actor(c),
		Note:    req.Note,
	})
	if err != nil {
		logFailure(h.logger, "Block override failed", userID, err)
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBlockResponse(userID, result))
}

// ListBlockEvents handles GET /admin/accounts/{userId}/block-events
func (h *AdminHandler) ListBlockEvents(c *gin.Context) {
	userID := c.Param("userId")
	q, err := pageQuery(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	page, err := h.ledger.ListBlockEvents(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		logFailure(h.logger, "Error listing block events", userID, err)
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBlockEventPageResponse(userID, page))
}

// SetLowBalanceThreshold handles PUT /admin/accounts/{userId}/low-balance-threshold
func (h *AdminHandler) SetLowBalanceThreshold(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.ThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	stats, err := h.ledger.SetLowBalanceThreshold(c.Request.Context(), userID, *req.Threshold)
	if err != nil {
		logFailure(h.logger, "Threshold update failed", userID, err)
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}

// Reconcile handles GET /admin/accounts/{userId}/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	userID := c.Param("userId")

	report, err := h.ledger.Reconcile(c.Request.Context(), userID)
	if err != nil {
		logFailure(h.logger, "Reconcile failed", userID, err)
		middleware.AbortWithError(c, err)
		return
	}
	if !report.Consistent {
		h.logger.Warn("Ledger drift detected", map[string]any{
			"user_id":           userID,
			"account_balance":   report.AccountBalance,
			"ledger_sum":        report.LedgerSum,
			"transaction_count": report.TransactionCount,
			"transaction_rows":  report.TransactionRows,
		})
	}

	c.JSON(http.StatusOK, dto.NewReconcileResponse(report))
}
