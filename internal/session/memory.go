package session

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/catalog-admin/internal/domain"
)

type memoryEntry struct {
	identity  domain.IdentitySnapshot
	expiresAt time.Time
}

// MemoryStore is the in-process Store. State does not survive restarts, so a
// deploy logs out every active session.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// WithClock overrides the time source, for expiry tests.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Put(_ context.Context, token string, identity domain.IdentitySnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{
		identity:  identity,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (domain.IdentitySnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return domain.IdentitySnapshot{}, false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, token)
		return domain.IdentitySnapshot{}, false, nil
	}
	return entry.identity, true, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
