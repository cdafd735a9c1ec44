package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

// Principal sources
const (
	SourceCookie = "cookie"
	SourceBearer = "bearer"
)

// Claims are the session claims. The subject is the ledger user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens
type TokenService struct {
	secret       []byte
	issuer       string
	audience     string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	parser       *jwt.Parser
}

// NewTokenService creates a token service; the secret must not be empty
func NewTokenService(secret, issuer, audience string, ttl time.Duration, timeProvider coreport.TimeProvider) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &TokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		audience:     audience,
		ttl:          ttl,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}, nil
}

// Issue mints a token for userID acting as role
func (s *TokenService) Issue(userID string, role entity.Role) (string, time.Time, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return "", time.Time{}, err
	}
	if !role.IsValid() {
		return "", time.Time{}, errs.NewValidationError("role", fmt.Sprintf("unknown role %q", role), errs.ErrInvalidRequest)
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token and returns the principal it names.
// Every failure wraps ErrUnauthenticated.
func (s *TokenService) Verify(tokenString, source string) (*entity.Principal, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", errs.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthenticated, err)
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrUnauthenticated, claims.Role)
	}
	if err := entity.ValidateUserID(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: invalid subject", errs.ErrUnauthenticated)
	}

	return &entity.Principal{
		UserID: claims.Subject,
		Role:   role,
		Source: source,
	}, nil
}
