package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nsepulse/internal/domain/models"
	"github.com/guttosm/nsepulse/internal/nse"
	"github.com/guttosm/nsepulse/internal/service"
)

// mockMarketService returns canned data or errors for every operation.
type mockMarketService struct {
	stockSymbols []string
	indexSymbols []string
	candles      []models.Candle
	expiries     []string
	chain        []models.OptionRow
	err          error
}

func (m *mockMarketService) StockSymbols(_ context.Context) ([]string, error) {
	return m.stockSymbols, m.err
}
func (m *mockMarketService) IndexSymbols(_ context.Context) ([]string, error) {
	return m.indexSymbols, m.err
}
func (m *mockMarketService) StockHistory(_ context.Context, _ string, _, _ time.Time) ([]models.Candle, error) {
	return m.candles, m.err
}
func (m *mockMarketService) IndexHistory(_ context.Context, _ string, _, _ time.Time) ([]models.Candle, error) {
	return m.candles, m.err
}
func (m *mockMarketService) ExpiryDates(_ context.Context) ([]string, error) {
	return m.expiries, m.err
}
func (m *mockMarketService) OptionChain(_ context.Context, _, _ string) ([]models.OptionRow, error) {
	return m.chain, m.err
}

var _ service.MarketService = (*mockMarketService)(nil)

func setupRouterWithMock(s service.MarketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/symbols/stocks", h.StockSymbols)
	r.GET("/symbols/indexes", h.IndexSymbols)
	r.GET("/stock-data", h.StockData)
	r.GET("/index-data", h.IndexData)
	r.GET("/fo/expiry-dates", h.ExpiryDates)
	r.GET("/fo/option-chain", h.OptionChain)
	return r
}

func sampleCandles() []models.Candle {
	return []models.Candle{
		{Symbol: "RELIANCE", Series: "EQ", Date: "2023-01-02", Open: 2550, High: 2571.7, Low: 2540.05, Close: 2562.3, Volume: 3837533},
		{Symbol: "RELIANCE", Series: "EQ", Date: "2023-01-03", Open: 2562, High: 2585, Low: 2552.1, Close: 2580.45, Volume: 4120988},
	}
}

func TestStockData_TableDriven(t *testing.T) {
	upstream := &nse.UpstreamError{Path: "/api/historical/cm/equity", Status: http.StatusServiceUnavailable}
	notFound := &nse.UpstreamError{Path: "/api/historical/cm/equity", Status: http.StatusNotFound}

	cases := []struct {
		name   string
		svc    *mockMarketService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing symbol",
			svc:    &mockMarketService{},
			query:  "/stock-data?start=2023-01-01&end=2023-12-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed start date",
			svc:    &mockMarketService{},
			query:  "/stock-data?symbol=RELIANCE&start=2023/01/01&end=2023-12-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed end date",
			svc:    &mockMarketService{},
			query:  "/stock-data?symbol=RELIANCE&start=2023-01-01&end=31-12-2023",
			status: http.StatusBadRequest,
		},
		{
			name:   "start after end",
			svc:    &mockMarketService{},
			query:  "/stock-data?symbol=RELIANCE&start=2023-12-31&end=2023-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown symbol",
			svc:    &mockMarketService{err: notFound},
			query:  "/stock-data?symbol=NOSUCH&start=2023-01-01&end=2023-12-31",
			status: http.StatusNotFound,
		},
		{
			name:   "empty result",
			svc:    &mockMarketService{},
			query:  "/stock-data?symbol=RELIANCE&start=2023-01-01&end=2023-01-01",
			status: http.StatusNotFound,
		},
		{
			name:   "upstream failure",
			svc:    &mockMarketService{err: upstream},
			query:  "/stock-data?symbol=RELIANCE&start=2023-01-01&end=2023-12-31",
			status: http.StatusBadGateway,
		},
		{
			name:   "internal error",
			svc:    &mockMarketService{err: errors.New("boom")},
			query:  "/stock-data?symbol=RELIANCE&start=2023-01-01&end=2023-12-31",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockMarketService{candles: sampleCandles()},
			query:  "/stock-data?symbol=RELIANCE&start=2023-01-01&end=2023-12-31",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out []models.Candle
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != 2 || out[0].Symbol != "RELIANCE" || out[0].Date != "2023-01-02" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestIndexData_SharesValidationWithStockData(t *testing.T) {
	r := setupRouterWithMock(&mockMarketService{candles: sampleCandles()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/index-data?symbol=NIFTY+50&start=2023-01-01&end=2023-12-31", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/index-data?start=2023-01-01&end=2023-12-31", nil))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w2.Code)
	}
}

func TestSymbolEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockMarketService
		path   string
		status int
		want   []string
	}{
		{
			name:   "stock symbols",
			svc:    &mockMarketService{stockSymbols: []string{"RELIANCE", "TCS", "INFY"}},
			path:   "/symbols/stocks",
			status: http.StatusOK,
			want:   []string{"RELIANCE", "TCS", "INFY"},
		},
		{
			name:   "index symbols",
			svc:    &mockMarketService{indexSymbols: []string{"NIFTY 50", "NIFTY BANK"}},
			path:   "/symbols/indexes",
			status: http.StatusOK,
			want:   []string{"NIFTY 50", "NIFTY BANK"},
		},
		{
			name:   "upstream failure",
			svc:    &mockMarketService{err: &nse.UpstreamError{Path: "/api/allIndices", Status: 502}},
			path:   "/symbols/indexes",
			status: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d", w.Code, tc.status)
			}
			if tc.want != nil {
				var out []string
				if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != len(tc.want) || out[0] != tc.want[0] {
					t.Fatalf("unexpected body: %v", out)
				}
			}
		})
	}
}

func TestOptionChain_TableDriven(t *testing.T) {
	row := models.OptionRow{
		Underlying:  "NIFTY",
		ExpiryDate:  "2024-01-25",
		StrikePrice: 21500,
		SpotPrice:   21453.95,
		Call:        &models.OptionQuote{LastPrice: 152.4, OpenInterest: 54321},
		Put:         &models.OptionQuote{LastPrice: 180.1, OpenInterest: 60110},
	}

	cases := []struct {
		name   string
		svc    *mockMarketService
		query  string
		status int
	}{
		{
			name:   "missing symbol",
			svc:    &mockMarketService{},
			query:  "/fo/option-chain",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid expiry",
			svc:    &mockMarketService{},
			query:  "/fo/option-chain?symbol=NIFTY&expiry=25-01-2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "no rows",
			svc:    &mockMarketService{},
			query:  "/fo/option-chain?symbol=NIFTY&expiry=2030-01-01",
			status: http.StatusNotFound,
		},
		{
			name:   "success without expiry",
			svc:    &mockMarketService{chain: []models.OptionRow{row}},
			query:  "/fo/option-chain?symbol=NIFTY",
			status: http.StatusOK,
		},
		{
			name:   "success with expiry",
			svc:    &mockMarketService{chain: []models.OptionRow{row}},
			query:  "/fo/option-chain?symbol=NIFTY&expiry=2024-01-25",
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.query, nil))
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

// TestErrorResponsesRideOnContext verifies failures are attached via c.Error
// so the request logger and ErrorHandler middleware can observe them.
func TestErrorResponsesRideOnContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&mockMarketService{err: &nse.UpstreamError{Path: "/api/allIndices", Status: http.StatusServiceUnavailable}})

	var attached int
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		attached = len(c.Errors)
	})
	r.GET("/symbols/stocks", h.StockSymbols)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/symbols/stocks", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d, want 502", w.Code)
	}
	if attached == 0 {
		t.Fatalf("expected the upstream error on the gin context")
	}
}

func TestExpiryDatesAndRoot(t *testing.T) {
	r := setupRouterWithMock(&mockMarketService{expiries: []string{"2024-01-25", "2024-02-01"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fo/expiry-dates", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	var dates []string
	if err := json.Unmarshal(w.Body.Bytes(), &dates); err != nil || len(dates) != 2 {
		t.Fatalf("unexpected expiry body: %s", w.Body.String())
	}

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("root status=%d, want 200", w2.Code)
	}
	var msg map[string]string
	if err := json.Unmarshal(w2.Body.Bytes(), &msg); err != nil || msg["message"] == "" {
		t.Fatalf("unexpected root body: %s", w2.Body.String())
	}
}
