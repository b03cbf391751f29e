package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetJSON fetches key from Redis and unmarshals it into dest.
// Returns false on miss, nil client, or any error.
func GetJSON(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Corrupt entry; drop it so the next read repopulates.
		rdb.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON marshals value and stores it at key with the given TTL.
// Failures are silent: a cache write error must never fail the request.
func SetJSON(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, raw, ttl)
}

// Aside implements the cache-aside pattern: return the cached value at key
// if present, otherwise call load, cache its result and return it.
func Aside[T any](ctx context.Context, rdb *redis.Client, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if GetJSON(ctx, rdb, key, &cached) {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	SetJSON(ctx, rdb, key, value, ttl)
	return value, nil
}

// Invalidate removes the given keys. Safe to call with a nil client.
func Invalidate(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	rdb.Del(ctx, keys...)
}
