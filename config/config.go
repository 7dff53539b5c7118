package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the upstream NSE endpoints, and the optional Redis cache.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	NSE_BASE_URL=https://www.nseindia.com
//	NSE_ARCHIVES_URL=https://archives.nseindia.com
//	NSE_TIMEOUT_SECONDS=15
//	REDIS_ADDR=localhost:6379
//	REDIS_PASSWORD=
//	REDIS_DB=0
//	CACHE_TTL_SYMBOLS=24h
//	CACHE_TTL_HISTORY=1h
//	CACHE_TTL_DERIVATIVES=3m
type Config struct {
	Server ServerConfig // HTTP server configuration
	NSE    NSEConfig    // Upstream NSE endpoints
	Redis  RedisConfig  // Optional Redis cache settings
	Cache  CacheConfig  // Per-data-class cache TTLs
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// NSEConfig defines the upstream endpoints and timeout for the NSE client.
//
// Fields:
//   - BaseURL: host serving the JSON API (www.nseindia.com).
//   - ArchivesURL: host serving static files such as the equity master CSV.
//   - Timeout: per-request HTTP timeout.
type NSEConfig struct {
	BaseURL     string
	ArchivesURL string
	Timeout     time.Duration
}

// RedisConfig defines connection details for the optional response cache.
// An empty Addr disables caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig holds how long each class of upstream data may be served from
// Redis before being refetched.
type CacheConfig struct {
	SymbolsTTL     time.Duration // symbol lists change rarely
	HistoryTTL     time.Duration // settled candles are effectively immutable
	DerivativesTTL time.Duration // option chains and expiries move intraday
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("NSE_BASE_URL", "https://www.nseindia.com")
	viper.SetDefault("NSE_ARCHIVES_URL", "https://archives.nseindia.com")
	viper.SetDefault("NSE_TIMEOUT_SECONDS", 15)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("CACHE_TTL_SYMBOLS", "24h")
	viper.SetDefault("CACHE_TTL_HISTORY", "1h")
	viper.SetDefault("CACHE_TTL_DERIVATIVES", "3m")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		NSE: NSEConfig{
			BaseURL:     viper.GetString("NSE_BASE_URL"),
			ArchivesURL: viper.GetString("NSE_ARCHIVES_URL"),
			Timeout:     time.Duration(viper.GetInt("NSE_TIMEOUT_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SymbolsTTL:     viper.GetDuration("CACHE_TTL_SYMBOLS"),
			HistoryTTL:     viper.GetDuration("CACHE_TTL_HISTORY"),
			DerivativesTTL: viper.GetDuration("CACHE_TTL_DERIVATIVES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// Redis settings are intentionally not validated: an empty REDIS_ADDR is a
// supported configuration that disables caching.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.NSE.BaseURL == "" {
		missing = append(missing, "NSE_BASE_URL")
	}
	if AppConfig.NSE.ArchivesURL == "" {
		missing = append(missing, "NSE_ARCHIVES_URL")
	}
	if AppConfig.NSE.Timeout <= 0 {
		missing = append(missing, "NSE_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
