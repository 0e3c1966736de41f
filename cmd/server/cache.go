package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/tasktrack-api/internal/cache"
	"github.com/phrazzld/tasktrack-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// setupListCache constructs the optional Redis-backed task list cache.
// Returns nil when no cache URL is configured or the URL is unusable; the
// service degrades to reading the store on every list request. An
// unreachable Redis at startup is only a warning: cache calls already treat
// failures as misses, so the cache heals once Redis comes back.
func setupListCache(cfg config.CacheConfig, logger *slog.Logger) *cache.RedisListCache {
	if !cfg.Enabled() {
		logger.Info("No cache configured, list reads always hit the store")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("Invalid cache URL, running without cache", "error", err)
		return nil
	}

	listCache := cache.NewRedisListCache(redis.NewClient(opts), cfg.TTL())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := listCache.Ping(ctx); err != nil {
		logger.Warn("Cache unreachable at startup, continuing without a warm cache",
			"error", err)
	} else {
		logger.Info("Cache connection established")
	}

	return listCache
}
