package main

//
//  @title           nsepulse API
//  @version         1.0
//  @description     NSE market data API: symbol lists, historical OHLCV and F&O option chains.
//  @termsOfService  https://github.com/guttosm/nsepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/nsepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        symbols
//  @tag.description Equity and index symbol lists
//
//  @tag.name        history
//  @tag.description Daily OHLCV history for equities and indices
//
//  @tag.name        derivatives
//  @tag.description F&O expiry dates and option chains
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/nsepulse/config"
	_ "github.com/guttosm/nsepulse/docs" // swagger docs
	"github.com/guttosm/nsepulse/internal/app"
	"github.com/guttosm/nsepulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., cache connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// warmCache pre-fills the Redis cache with the slow-moving datasets (symbol
// lists and F&O expiries) so the first requests after a deploy are served
// warm. The three fetches run concurrently.
func warmCache(ctx context.Context) error {
	svc, _, cleanup, err := app.InitializeMarket(config.AppConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := svc.StockSymbols(gctx)
		return err
	})
	g.Go(func() error {
		_, err := svc.IndexSymbols(gctx)
		return err
	})
	g.Go(func() error {
		_, err := svc.ExpiryDates(gctx)
		return err
	})
	return g.Wait()
}

// main is the entry point of the nsepulse application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API exposing the NSE data endpoints.
//   - warm: Pre-warms the Redis cache with symbol lists and expiry dates, then exits.
//
// Flags:
//   - --mode: Execution mode ("api" or "warm"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or warm")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "warm":
		// Warm mode: pre-fill the cache and exit
		if config.AppConfig.Redis.Addr == "" {
			logger.L().Warn().Msg("no redis configured, nothing to warm")
			return
		}
		logger.L().Info().Msg("warming cache")
		if err := warmCache(ctx); err != nil {
			logger.L().Fatal().Err(err).Msg("cache warm failed")
		}
		logger.L().Info().Msg("cache warmed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
