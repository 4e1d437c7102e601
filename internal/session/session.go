// Package session tracks issued refresh tokens server side. A refresh token
// can only mint new tokens while its entry is present in the store, which is
// what makes restart-revocation and future logout support possible without
// touching the auth call sites.
package session

import (
	"context"
	"time"

	"github.com/spec-kit/catalog-admin/internal/domain"
)

// Store maps a refresh token string to the identity snapshot it was issued
// for. Implementations must be safe for concurrent use; entries expire after
// the given TTL so the registry cannot grow without bound.
type Store interface {
	Put(ctx context.Context, token string, identity domain.IdentitySnapshot, ttl time.Duration) error
	// Get returns the snapshot for token. The second return is false when
	// the token was never registered, was rotated out or has expired.
	Get(ctx context.Context, token string) (domain.IdentitySnapshot, bool, error)
	Delete(ctx context.Context, token string) error
}
