package ledger

import (
	"fmt"
	"strings"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
)

// RequestValidator rejects malformed ledger requests before any storage is touched
type RequestValidator struct {
	defaultListLimit int
	maxListLimit     int
}

// NewRequestValidator creates a validator with the listing bounds
func NewRequestValidator(defaultListLimit, maxListLimit int) *RequestValidator {
	if defaultListLimit <= 0 {
		defaultListLimit = 50
	}
	if maxListLimit < defaultListLimit {
		maxListLimit = defaultListLimit
	}
	return &RequestValidator{
		defaultListLimit: defaultListLimit,
		maxListLimit:     maxListLimit,
	}
}

// ValidateDebit validates all debit fields
func (v *RequestValidator) ValidateDebit(req usecase.DebitRequest) error {
	return v.validateMutation(req.UserID, req.Amount, req.Category, req.Description, req.IdempotencyKey)
}

// ValidateCredit validates all credit fields
func (v *RequestValidator) ValidateCredit(req usecase.CreditRequest) error {
	return v.validateMutation(req.UserID, req.Amount, req.Category, req.Description, req.IdempotencyKey)
}

// ValidateUserID checks the owner id alone, used by read operations
func (v *RequestValidator) ValidateUserID(userID string) error {
	return entity.ValidateUserID(userID)
}

// NormalizePage applies the default limit and rejects out-of-range windows
func (v *RequestValidator) NormalizePage(limit, offset int) (int, int, error) {
	if limit < 0 || offset < 0 {
		return 0, 0, errs.ErrInvalidPagination
	}
	if limit == 0 {
		limit = v.defaultListLimit
	}
	if limit > v.maxListLimit {
		return 0, 0, errs.NewValidationError("limit", fmt.Sprintf("must be at most %d", v.maxListLimit), errs.ErrInvalidPagination)
	}
	return limit, offset, nil
}

func (v *RequestValidator) validateMutation(userID string, amount int64, category, description, idempotencyKey string) error {
	if err := entity.ValidateUserID(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if err := entity.ValidateCategory(category); err != nil {
		return err
	}
	if len(description) > entity.MaxDescriptionLength {
		return errs.NewValidationError("description", "must be at most 1024 characters", errs.ErrInvalidRequest)
	}
	if idempotencyKey != "" {
		if strings.TrimSpace(idempotencyKey) != idempotencyKey || len(idempotencyKey) > entity.MaxIdempotencyKeyLength {
			return errs.NewValidationError("idempotencyKey", "must be at most 128 characters without surrounding spaces", errs.ErrInvalidRequest)
		}
	}
	return nil
}
