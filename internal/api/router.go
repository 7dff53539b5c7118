package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/nsepulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (30 seconds; history requests may need
//     several chunked upstream calls).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the data routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Data routes ──────────────────────────────
	router.GET("/", handler.Root)

	symbols := router.Group("/symbols")
	{
		symbols.GET("/stocks", handler.StockSymbols)
		symbols.GET("/indexes", handler.IndexSymbols)
	}

	router.GET("/stock-data", handler.StockData)
	router.GET("/index-data", handler.IndexData)

	fo := router.Group("/fo")
	{
		fo.GET("/expiry-dates", handler.ExpiryDates)
		fo.GET("/option-chain", handler.OptionChain)
	}

	return router
}
