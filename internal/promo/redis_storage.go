package promo

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "promo:"

// RedisStorage persists gate state in redis so the daily gate survives
// restarts and is shared across replicas.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage creates a redis-backed storage
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Get returns the stored value for key. A missing key is not an error: it
// returns "" so the gate treats it as "never shown".
func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

// Set stores value under key with no expiry; the gate only ever compares the
// value for equality.
func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}
