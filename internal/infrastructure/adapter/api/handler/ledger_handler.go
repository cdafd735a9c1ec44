package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler serves balance reads and debit/credit mutations.
// The same handlers back the self routes and the admin routes; see targetUserID.
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledger,
		logger: logger,
	}
}

// GetBalance handles GET /me/balance and GET /admin/accounts/{userId}/balance
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	userID, err := targetUserID(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	account, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "Error getting balance", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(account))
}

// GetStats handles GET /me/stats and GET /admin/accounts/{userId}/stats
func (h *LedgerHandler) GetStats(c *gin.Context) {
	userID, err := targetUserID(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	stats, err := h.ledger.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "Error getting account stats", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}

// ListTransactions handles GET /me/transactions and GET /admin/accounts/{userId}/transactions
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	userID, err := targetUserID(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	q, err := pageQuery(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	page, err := h.ledger.ListTransactions(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		h.fail(c, "Error listing transactions", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionPageResponse(userID, page))
}

// Debit handles POST /me/debit and POST /admin/accounts/{userId}/debit.
// Only admin and service principals may let the balance go negative.
func (h *LedgerHandler) Debit(c *gin.Context) {
	userID, err := targetUserID(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var req dto.DebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid debit request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		middleware.AbortWithError(c, bindingError(err))
		return
	}
	if req.AllowNegative && !canOverdraw(c) {
		middleware.AbortWithError(c, errs.ErrForbidden)
		return
	}

	result, err := h.ledger.Debit(c.Request.Context(), usecase.DebitRequest{
		UserID:         userID,
		Amount:         req.Amount,
		Category:       req.Category,
		Description:    req.Description,
		Metadata:       req.Metadata,
		AllowNegative:  req.AllowNegative,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
		Actor:          actor(c),
	})
	if err != nil {
		h.fail(c, "Debit rejected", userID, err)
		return
	}

	c.JSON(mutationStatus(result.Replayed), dto.NewMutationResponse(userID, result))
}

// Credit handles POST /admin/accounts/{userId}/credit
func (h *LedgerHandler) Credit(c *gin.Context) {
	userID, err := targetUserID(c)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid credit request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		middleware.AbortWithError(c, bindingError(err))
		return
	}

	result, err := h.ledger.Credit(c.Request.Context(), usecase.CreditRequest{
		UserID:         userID,
		Amount:         req.Amount,
		Category:       req.Category,
		Description:    req.Description,
		Metadata:       req.Metadata,
		IdempotencyKey: idempotencyKey(c, req.IdempotencyKey),
		Actor:          actor(c),
	})
	if err != nil {
		h.fail(c, "Credit rejected", userID, err)
		return
	}

	c.JSON(mutationStatus(result.Replayed), dto.NewMutationResponse(userID, result))
}

func (h *LedgerHandler) fail(c *gin.Context, message, userID string, err error) {
	logFailure(h.logger, message, userID, err)
	middleware.AbortWithError(c, err)
}

func mutationStatus(replayed bool) int {
	if replayed {
		return http.StatusOK
	}
	return http.StatusCreated
}

// logFailure logs server-side failures as errors and business rejections as info
func logFailure(logger coreport.Logger, message, userID string, err error) {
	fields := map[string]any{
		"user_id": userID,
		"kind":    string(errs.Kind(err)),
		"error":   err.Error(),
	}
	if errs.Kind(err) == errs.KindPersistence {
		logger.Error(message, fields)
		return
	}
	logger.Info(message, fields)
}
