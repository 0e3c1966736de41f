package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/tasktrack-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisListCache implements ListCache using a Redis client. Values are
// stored as JSON so that a cached snapshot round-trips through the same
// serialization the API uses.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisListCache creates a Redis-backed task list cache.
// If ttl is zero, DefaultTaskListTTL is used.
func NewRedisListCache(client *redis.Client, ttl time.Duration) *RedisListCache {
	if client == nil {
		panic("client cannot be nil")
	}

	if ttl <= 0 {
		ttl = DefaultTaskListTTL
	}

	return &RedisListCache{
		client: client,
		ttl:    ttl,
	}
}

// Ensure RedisListCache implements ListCache interface
var _ ListCache = (*RedisListCache)(nil)

// GetList implements ListCache.GetList
// Only an absent or expired key counts as a miss; a cached empty list is a
// hit with zero tasks.
func (c *RedisListCache) GetList(ctx context.Context) ([]*domain.Task, bool, error) {
	data, err := c.client.Get(ctx, TaskListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	return tasks, true, nil
}

// SetList implements ListCache.SetList
func (c *RedisListCache) SetList(ctx context.Context, tasks []*domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, TaskListKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

// Invalidate implements ListCache.Invalidate
func (c *RedisListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, TaskListKey).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

// Ping checks if the Redis connection is healthy.
func (c *RedisListCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client connection.
func (c *RedisListCache) Close() error {
	return c.client.Close()
}
