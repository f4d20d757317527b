package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis reads a cached JSON value into target. A cache miss leaves
// target untouched and returns nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis stores a value as JSON with a TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis removes a cache entry.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

const revokedTokenPrefix = "revoked_token:"

// RevokeToken puts a bearer token on the denylist until it would have
// expired anyway.
func RevokeToken(ctx context.Context, rdb *redis.Client, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err()
}

// IsTokenRevoked reports whether a bearer token has been logged out.
func IsTokenRevoked(ctx context.Context, rdb *redis.Client, token string) bool {
	n, err := rdb.Exists(ctx, revokedTokenPrefix+token).Result()
	return err == nil && n > 0
}
