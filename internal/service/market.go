package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/nsepulse/internal/domain/models"
)

// MarketSource is the contract for anything that can produce NSE market data:
// the upstream client itself, or a caching decorator wrapped around it.
type MarketSource interface {
	StockSymbols(ctx context.Context) ([]string, error)
	IndexSymbols(ctx context.Context) ([]string, error)
	StockHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error)
	IndexHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error)
	ExpiryDates(ctx context.Context) ([]string, error)
	OptionChain(ctx context.Context, symbol, expiry string) ([]models.OptionRow, error)
}

// MarketService defines the business operations exposed to HTTP handlers.
// It mirrors MarketSource; the service layer exists to keep handlers decoupled
// from data access and to centralize input normalization.
type MarketService interface {
	MarketSource
}

type marketService struct {
	src MarketSource
}

// NewMarketService wraps a MarketSource (typically the NSE client, optionally
// behind the Redis cache) into the service consumed by handlers.
func NewMarketService(src MarketSource) MarketService {
	return &marketService{src: src}
}

func (s *marketService) StockSymbols(ctx context.Context) ([]string, error) {
	return s.src.StockSymbols(ctx)
}

func (s *marketService) IndexSymbols(ctx context.Context) ([]string, error) {
	return s.src.IndexSymbols(ctx)
}

func (s *marketService) StockHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	return s.src.StockHistory(ctx, normalizeSymbol(symbol), from, to)
}

func (s *marketService) IndexHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	return s.src.IndexHistory(ctx, normalizeSymbol(symbol), from, to)
}

func (s *marketService) ExpiryDates(ctx context.Context) ([]string, error) {
	return s.src.ExpiryDates(ctx)
}

func (s *marketService) OptionChain(ctx context.Context, symbol, expiry string) ([]models.OptionRow, error) {
	return s.src.OptionChain(ctx, normalizeSymbol(symbol), expiry)
}

// normalizeSymbol uppercases and trims a user-supplied symbol. NSE symbols are
// case-sensitive uppercase on the wire ("reliance" would 404 upstream).
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
