package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/auth"
)

const principalKey = "ledger.principal"

// TokenVerifier turns a raw session token into a principal
type TokenVerifier interface {
	Verify(token, source string) (*entity.Principal, error)
}

// ResolveCaller authenticates the request from the session cookie first and the bearer token second.
// A cookie that fails verification does not hide a valid bearer token.
// Requests without a valid identity are rejected with 401.
func ResolveCaller(verifier TokenVerifier, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		credentials := extractCredentials(c, cookieName)
		if len(credentials) == 0 {
			AbortWithError(c, errs.ErrUnauthenticated)
			return
		}

		for _, cred := range credentials {
			principal, err := verifier.Verify(cred.token, cred.source)
			if err == nil {
				c.Set(principalKey, principal)
				c.Next()
				return
			}
			logger.Warn("Rejected session token", map[string]any{
				"source":     cred.source,
				"path":       c.Request.URL.Path,
				"request_id": RequestIDFrom(c),
				"error":      err.Error(),
			})
		}

		AbortWithError(c, errs.ErrUnauthenticated)
	}
}

// RequireRole rejects principals that hold none of roles with 403
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			AbortWithError(c, errs.ErrUnauthenticated)
			return
		}
		if !principal.HasRole(roles...) {
			AbortWithError(c, errs.ErrForbidden)
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller resolved by ResolveCaller
func PrincipalFrom(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Principal)
	return p, ok && p != nil
}

type credential struct {
	token  string
	source string
}

// extractCredentials returns the presented tokens in the order they are tried
func extractCredentials(c *gin.Context, cookieName string) []credential {
	var credentials []credential
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			credentials = append(credentials, credential{token: cookie, source: auth.SourceCookie})
		}
	}
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		if token := strings.TrimSpace(header[7:]); token != "" {
			credentials = append(credentials, credential{token: token, source: auth.SourceBearer})
		}
	}
	return credentials
}
