// Package redis provides the Redis-backed implementation of the entity
// cache. Cached payloads are JSON read models; write paths invalidate keys
// after commit and read paths repopulate them, so a Redis outage degrades
// to plain database reads.
package redis

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// EntityCache implements ports.EntityCache on a Redis client.
type EntityCache struct {
	client *redis.Client
}

// NewEntityCache connects to Redis and verifies the connection with a ping.
func NewEntityCache(addr, password string, db int) (*EntityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &EntityCache{client: client}, nil
}

// Close releases the underlying Redis connection.
func (c *EntityCache) Close() error {
	return c.client.Close()
}

// Get retrieves a cached payload. A miss returns (nil, nil).
func (c *EntityCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	return data, nil
}

// Set stores a payload under the key with the given TTL.
func (c *EntityCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate removes the given keys. Missing keys are not an error.
func (c *EntityCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

var _ ports.EntityCache = (*EntityCache)(nil)
