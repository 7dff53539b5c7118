package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/nsepulse/config"
)

// InitRedis initializes a Redis connection using the provided configuration.
//
// Behavior:
//   - Builds a client from cfg.Redis (addr, password, DB).
//   - Pings with a short timeout to validate connectivity before use.
//   - Returns the live client if successful.
//
// Callers should only invoke this when cfg.Redis.Addr is set; an empty
// address means the service runs without a cache.
func InitRedis(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// redisOpener is an indirection used by InitializeMarket; overridden in tests to avoid real connections.
var redisOpener = InitRedis
