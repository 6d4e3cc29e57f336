package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/config"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// ConnectRedis opens a Redis client for the cache URL and checks it with a
// ping. Both redis:// URLs and bare host:port addresses are accepted.
func ConnectRedis(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url is not configured")
	}

	client := redis.NewClient(redisOptions(cfg.RedisURL))

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func redisOptions(redisURL string) *redis.Options {
	raw := redisURL
	if !strings.Contains(raw, "://") {
		raw = "redis://" + raw
	}

	opt, err := redis.ParseURL(raw)
	if err != nil {
		return &redis.Options{Addr: redisURL}
	}
	return opt
}
