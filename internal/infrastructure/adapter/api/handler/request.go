package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// targetUserID is the :userId path parameter on admin routes and the caller on self routes
func targetUserID(c *gin.Context) (string, error) {
	if id := c.Param("userId"); id != "" {
		return id, nil
	}
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return "", errs.ErrUnauthenticated
	}
	return principal.UserID, nil
}

// actor names the principal on whose behalf a mutation runs
func actor(c *gin.Context) string {
	if principal, ok := middleware.PrincipalFrom(c); ok {
		return principal.UserID
	}
	return entity.SystemActor
}

func canOverdraw(c *gin.Context) bool {
	principal, ok := middleware.PrincipalFrom(c)
	return ok && principal.HasRole(entity.RoleAdmin, entity.RoleService)
}

// idempotencyKey prefers the body field and falls back to the header
func idempotencyKey(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	return c.GetHeader(dto.IdempotencyKeyHeader)
}

// bindingError turns a gin binding failure into the ledger validation taxonomy
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.NewValidationError("body", "malformed JSON", errs.ErrInvalidRequest)
	}

	fe := verrs[0]
	reason := "failed " + fe.Tag() + " rule"
	switch fe.Field() {
	case "Amount":
		return errs.NewValidationError("amount", "must be a positive integer", errs.ErrInvalidAmount)
	case "Category":
		return errs.NewValidationError("category", "must be a lower-case slug of at most 64 characters", errs.ErrInvalidCategory)
	default:
		return errs.NewValidationError(lowerFirst(fe.Field()), reason, errs.ErrInvalidRequest)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func pageQuery(c *gin.Context) (dto.PageQuery, error) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, errs.NewValidationError("pagination", "limit and offset must be integers", errs.ErrInvalidPagination)
	}
	return q, nil
}
