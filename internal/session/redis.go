package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/catalog-admin/internal/domain"
)

const redisKeyPrefix = "session:refresh:"

// RedisStore keeps refresh token entries in Redis so sessions survive process
// restarts and can be shared across replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token string, identity domain.IdentitySnapshot, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+token, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (domain.IdentitySnapshot, bool, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.IdentitySnapshot{}, false, nil
	}
	if err != nil {
		return domain.IdentitySnapshot{}, false, err
	}
	var identity domain.IdentitySnapshot
	if err := json.Unmarshal(payload, &identity); err != nil {
		return domain.IdentitySnapshot{}, false, err
	}
	return identity, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}
