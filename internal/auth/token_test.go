package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:     "access-secret",
		RefreshTokenSecret:    "refresh-secret",
		AccessTokenTTLMinutes: 60,
		RefreshTokenTTLDays:   14,
		BcryptCost:            4,
	}
}

func testIdentity() domain.IdentitySnapshot {
	return domain.IdentitySnapshot{
		ID:          "user-1",
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Permissions: []string{"admin"},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	token, expiresAt, err := tm.GenerateAccessToken(testIdentity())
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, testIdentity(), claims.Identity)
	require.Equal(t, "user-1", claims.Subject)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	refresh, _, err := tm.GenerateRefreshToken(testIdentity())
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(refresh)
	require.Error(t, err)

	_, err = tm.ParseRefreshToken(refresh)
	require.NoError(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	issued := time.Now()
	tm := NewTokenManager(testAuthConfig()).WithClock(func() time.Time { return issued })
	token, _, err := tm.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	tm.WithClock(func() time.Time { return issued.Add(61 * time.Minute) })
	_, err = tm.ParseAccessToken(token)
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	token, _, err := tm.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = tm.ParseAccessToken(token + "x")
	require.Error(t, err)
}
