// Package cache provides a Redis read-through decorator for the market
// source. It transparently adds caching without modifying the NSE client.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/nsepulse/config"
	"github.com/guttosm/nsepulse/internal/domain/models"
	"github.com/guttosm/nsepulse/internal/service"
)

// MarketCache decorates a MarketSource with Redis caching. Values are stored
// as JSON under namespaced keys with a TTL per data class: symbol lists churn
// daily, history is stable once settled, derivatives move intraday.
//
// All cache failures are best effort; a broken Redis never fails a request.
type MarketCache struct {
	inner     service.MarketSource
	rdb       *redis.Client
	cfg       config.CacheConfig
	namespace string
}

var _ service.MarketSource = (*MarketCache)(nil)

// NewMarketCache wraps inner with Redis caching. Zero TTLs fall back to
// defaults (24h symbols, 1h history, 3m derivatives).
func NewMarketCache(rdb *redis.Client, cfg config.CacheConfig, inner service.MarketSource) *MarketCache {
	if cfg.SymbolsTTL <= 0 {
		cfg.SymbolsTTL = 24 * time.Hour
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = time.Hour
	}
	if cfg.DerivativesTTL <= 0 {
		cfg.DerivativesTTL = 3 * time.Minute
	}
	return &MarketCache{
		inner:     inner,
		rdb:       rdb,
		cfg:       cfg,
		namespace: "nse",
	}
}

func (m *MarketCache) StockSymbols(ctx context.Context) ([]string, error) {
	return cached(ctx, m, m.key("symbols", "stocks"), m.cfg.SymbolsTTL, func() ([]string, error) {
		return m.inner.StockSymbols(ctx)
	})
}

func (m *MarketCache) IndexSymbols(ctx context.Context) ([]string, error) {
	return cached(ctx, m, m.key("symbols", "indexes"), m.cfg.SymbolsTTL, func() ([]string, error) {
		return m.inner.IndexSymbols(ctx)
	})
}

func (m *MarketCache) StockHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	key := m.key("history", "stock", safe(symbol), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return cached(ctx, m, key, m.cfg.HistoryTTL, func() ([]models.Candle, error) {
		return m.inner.StockHistory(ctx, symbol, from, to)
	})
}

func (m *MarketCache) IndexHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	key := m.key("history", "index", safe(symbol), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return cached(ctx, m, key, m.cfg.HistoryTTL, func() ([]models.Candle, error) {
		return m.inner.IndexHistory(ctx, symbol, from, to)
	})
}

func (m *MarketCache) ExpiryDates(ctx context.Context) ([]string, error) {
	return cached(ctx, m, m.key("fo", "expiries"), m.cfg.DerivativesTTL, func() ([]string, error) {
		return m.inner.ExpiryDates(ctx)
	})
}

func (m *MarketCache) OptionChain(ctx context.Context, symbol, expiry string) ([]models.OptionRow, error) {
	exp := expiry
	if exp == "" {
		exp = "all"
	}
	key := m.key("fo", "chain", safe(symbol), exp)
	return cached(ctx, m, key, m.cfg.DerivativesTTL, func() ([]models.OptionRow, error) {
		return m.inner.OptionChain(ctx, symbol, expiry)
	})
}

// cached serves a value from Redis when present, otherwise invokes miss and
// stores its result. Corrupted entries are dropped and refetched.
func cached[T any](ctx context.Context, m *MarketCache, key string, ttl time.Duration, miss func() (T, error)) (T, error) {
	if m.rdb == nil {
		return miss()
	}

	// 1) Check cache
	if b, err := m.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = m.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the upstream source
	out, err := miss()
	if err != nil {
		var zero T
		return zero, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = m.rdb.Set(ctx, key, b, ttl).Err()
	}

	return out, nil
}

// key joins parts under the cache namespace.
func (m *MarketCache) key(parts ...string) string {
	return m.namespace + ":" + strings.Join(parts, ":")
}

// safe makes a symbol usable inside a Redis key ("NIFTY 50" -> "NIFTY-50").
func safe(s string) string {
	return strings.NewReplacer(" ", "-", ":", "-").Replace(s)
}
