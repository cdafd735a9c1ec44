package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	timeprovider "github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T, clock *timeprovider.ManualTimeProvider) *TokenService {
	t.Helper()
	svc, err := NewTokenService(testSecret, "arcanumspy", "credit-ledger", time.Hour, clock)
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := timeprovider.NewManualTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clock)

	token, expiresAt, err := svc.Issue("user-7", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(time.Hour), expiresAt)

	principal, err := svc.Verify(token, SourceBearer)
	require.NoError(t, err)
	assert.Equal(t, "user-7", principal.UserID)
	assert.Equal(t, entity.RoleAdmin, principal.Role)
	assert.Equal(t, SourceBearer, principal.Source)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	clock := timeprovider.NewManualTimeProvider(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, clock)
	token, _, err := svc.Issue("user-7", entity.RoleUser)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := timeprovider.NewManualTimeProvider(clock.Now().Add(2 * time.Hour))
		_, err := newTestService(t, later).Verify(token, SourceCookie)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenService("another-secret-another-secret-xx", "arcanumspy", "credit-ledger", time.Hour, clock)
		require.NoError(t, err)
		_, err = other.Verify(token, SourceCookie)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other, err := NewTokenService(testSecret, "arcanumspy", "billing", time.Hour, clock)
		require.NoError(t, err)
		_, err = other.Verify(token, SourceCookie)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-jwt", SourceBearer)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			Role: "root",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-7",
				Issuer:    "arcanumspy",
				Audience:  jwt.ClaimStrings{"credit-ledger"},
				IssuedAt:  jwt.NewNumericDate(clock.Now()),
				ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(forged, SourceBearer)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("no expiry", func(t *testing.T) {
		claims := Claims{
			Role: string(entity.RoleAdmin),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:  "user-7",
				Issuer:   "arcanumspy",
				Audience: jwt.ClaimStrings{"credit-ledger"},
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Verify(forged, SourceBearer)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestTokenService_IssueValidatesInput(t *testing.T) {
	svc := newTestService(t, timeprovider.NewManualTimeProvider(time.Now()))

	_, _, err := svc.Issue("", entity.RoleUser)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, _, err = svc.Issue("user-1", entity.Role("root"))
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewTokenService("", "i", "a", time.Hour, timeprovider.NewManualTimeProvider(time.Now()))
	assert.Error(t, err)
}
