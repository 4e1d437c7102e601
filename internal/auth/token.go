package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/domain"
)

// TokenManager issues and validates the two JWT kinds of the session
// protocol: short-lived access tokens and long-lived refresh tokens, signed
// with distinct secrets.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenManager builds a manager from auth configuration.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL(),
		refreshTTL:    cfg.RefreshTokenTTL(),
		now:           time.Now,
	}
}

// WithClock overrides the time source, for expiry tests.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	tm.now = now
	return tm
}

// Claims is the JWT payload: the identity snapshot plus standard expiry.
type Claims struct {
	Identity domain.IdentitySnapshot `json:"identity"`
	jwt.RegisteredClaims
}

// AccessTTL returns the access token lifetime reported to clients.
func (tm *TokenManager) AccessTTL() time.Duration {
	return tm.accessTTL
}

// RefreshTTL returns the refresh token lifetime.
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

// GenerateAccessToken signs an access token for the identity.
func (tm *TokenManager) GenerateAccessToken(identity domain.IdentitySnapshot) (string, time.Time, error) {
	return tm.generate(identity, tm.accessSecret, tm.accessTTL)
}

// GenerateRefreshToken signs a refresh token for the identity.
func (tm *TokenManager) GenerateRefreshToken(identity domain.IdentitySnapshot) (string, time.Time, error) {
	return tm.generate(identity, tm.refreshSecret, tm.refreshTTL)
}

func (tm *TokenManager) generate(identity domain.IdentitySnapshot, secret []byte, ttl time.Duration) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken validates an access token by signature and expiry.
func (tm *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.accessSecret)
}

// ParseRefreshToken validates a refresh token by signature and expiry.
func (tm *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return tm.parse(tokenStr, tm.refreshSecret)
}

func (tm *TokenManager) parse(tokenStr string, secret []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
