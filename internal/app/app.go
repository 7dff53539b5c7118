package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/nsepulse/config"
	"github.com/guttosm/nsepulse/internal/api"
	"github.com/guttosm/nsepulse/internal/cache"
	"github.com/guttosm/nsepulse/internal/nse"
	"github.com/guttosm/nsepulse/internal/service"
)

// InitializeMarket builds the market data chain: the NSE client, optionally
// wrapped in the Redis cache, behind the service layer.
//
// Returns:
//   - service.MarketService: the service consumed by handlers and the warmer.
//   - *redis.Client: the cache connection, nil when REDIS_ADDR is empty.
//   - func(): cleanup releasing the cache connection.
//   - error: any initialization error.
func InitializeMarket(cfg config.Config) (service.MarketService, *redis.Client, func(), error) {
	// Upstream NSE client
	client := nse.New(cfg.NSE)

	var src service.MarketSource = client
	var rdb *redis.Client

	// Optional Redis cache in front of the client
	if cfg.Redis.Addr != "" {
		r, err := redisOpener(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		rdb = r
		src = cache.NewMarketCache(rdb, cfg.Cache, src)
	}

	svc := service.NewMarketService(src)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return svc, rdb, cleanup, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data chain with InitializeMarket().
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	svc, rdb, cleanup, err := InitializeMarket(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes; readiness follows the cache
	// connection when one is configured.
	var ping func() error
	if rdb != nil {
		ping = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err()
		}
	}
	api.NewHealthHandler(ping).Register(router)

	return router, cleanup, nil
}
