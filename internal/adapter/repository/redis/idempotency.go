package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key namespace for idempotency records, so a shared Redis instance can
// host other journaldraft state without collisions.
const idempotencyPrefix = "journaldraft:idem:"

// inFlightMarker is stored while the first request with a key is still
// being handled. Replays that arrive before the final response is
// recorded see this marker instead of a cached body.
const inFlightMarker = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
// Submit and mutation endpoints use it to replay responses for retried
// requests instead of re-executing them.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

func (s *IdempotencyStore) key(k string) string {
	return idempotencyPrefix + k
}

// CheckAndSet atomically checks if key exists, sets if not. With a nil
// response it claims the key with the in-flight marker; losing the SetNX
// race returns whatever the winner has recorded so far.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.key(key)

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	set, err := s.client.SetNX(ctx, fullKey, inFlightMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !set {
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return false, nil, err
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the in-flight marker with the final response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(key), response, ttl).Err()
}
