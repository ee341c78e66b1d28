package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores each key as a JSON string in Redis. Entries do not
// expire: the cache must outlive remote outages of any length.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache builds a Redis-backed cache.
func NewRedisCache(addr, password string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get reads and decodes the value stored under key.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// Put encodes value and writes it under key, replacing any prior value.
func (c *RedisCache) Put(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Delete removes the value stored under key, if any.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}
