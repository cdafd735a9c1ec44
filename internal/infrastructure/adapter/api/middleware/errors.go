package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
)

// StatusFor maps a ledger error kind to its HTTP status
func StatusFor(kind errs.ErrorKind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindInsufficientBalance:
		return http.StatusPaymentRequired
	case errs.KindAccountBlocked, errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindIdempotencyConflict, errs.KindAccountBusy:
		return http.StatusConflict
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func actionFor(kind errs.ErrorKind) string {
	switch kind {
	case errs.KindValidation, errs.KindIdempotencyConflict:
		return dto.ActionFixRequest
	case errs.KindInsufficientBalance, errs.KindAccountBlocked:
		return dto.ActionTopUp
	case errs.KindUnauthenticated, errs.KindForbidden:
		return dto.ActionAuthenticate
	default:
		return dto.ActionRetry
	}
}

// NewErrorResponse builds the error body for err. Persistence and token details stay in the logs.
func NewErrorResponse(err error) (int, dto.ErrorResponse) {
	kind := errs.Kind(err)
	message := err.Error()
	switch kind {
	case errs.KindPersistence:
		message = "Internal server error"
	case errs.KindUnauthenticated:
		message = "authentication required"
	}
	return StatusFor(kind), dto.ErrorResponse{
		Code:      errs.ErrorCode(err),
		Error:     string(kind),
		Message:   message,
		Retryable: errs.IsRetryable(err),
		Action:    actionFor(kind),
	}
}

// AbortWithError writes the error body for err and stops the handler chain
func AbortWithError(c *gin.Context, err error) {
	status, body := NewErrorResponse(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}
