package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nsepulse/internal/middleware"
	"github.com/guttosm/nsepulse/internal/nse"
	"github.com/guttosm/nsepulse/internal/service"
)

// dateFormat is the YYYY-MM-DD format accepted on all date query parameters.
const dateFormat = "2006-01-02"

// Handler provides HTTP handlers for the NSE data endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the market service for data access
//   - Map upstream failures to appropriate HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// Root godoc
// @Summary      Welcome message
// @Description  Returns a short welcome message identifying the API
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the nsepulse NSE data API"})
}

// StockSymbols godoc
// @Summary      List equity symbols
// @Description  Returns all symbols listed on the NSE equity segment
// @Tags         symbols
// @Produce      json
// @Success      200  {array}   string
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /symbols/stocks [get]
func (h *Handler) StockSymbols(c *gin.Context) {
	symbols, err := h.svc.StockSymbols(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, symbols)
}

// IndexSymbols godoc
// @Summary      List index names
// @Description  Returns the names of all NSE indices
// @Tags         symbols
// @Produce      json
// @Success      200  {array}   string
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /symbols/indexes [get]
func (h *Handler) IndexSymbols(c *gin.Context) {
	symbols, err := h.svc.IndexSymbols(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, symbols)
}

// StockData godoc
// @Summary      Equity price history
// @Description  Returns daily OHLCV records for an equity between start and end (inclusive)
// @Tags         history
// @Produce      json
// @Param        symbol  query     string  true  "Equity symbol"          example(RELIANCE)
// @Param        start   query     string  true  "Start date YYYY-MM-DD"  example(2023-01-01)
// @Param        end     query     string  true  "End date YYYY-MM-DD"    example(2023-12-31)
// @Success      200     {array}   models.Candle
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /stock-data [get]
func (h *Handler) StockData(c *gin.Context) {
	symbol, from, to, ok := historyParams(c)
	if !ok {
		return
	}

	candles, err := h.svc.StockHistory(c.Request.Context(), symbol, from, to)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if len(candles) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found", nil)
		return
	}
	c.JSON(http.StatusOK, candles)
}

// IndexData godoc
// @Summary      Index price history
// @Description  Returns daily OHLCV records for an index between start and end (inclusive)
// @Tags         history
// @Produce      json
// @Param        symbol  query     string  true  "Index name"             example(NIFTY 50)
// @Param        start   query     string  true  "Start date YYYY-MM-DD"  example(2023-01-01)
// @Param        end     query     string  true  "End date YYYY-MM-DD"    example(2023-12-31)
// @Success      200     {array}   models.Candle
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /index-data [get]
func (h *Handler) IndexData(c *gin.Context) {
	symbol, from, to, ok := historyParams(c)
	if !ok {
		return
	}

	candles, err := h.svc.IndexHistory(c.Request.Context(), symbol, from, to)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if len(candles) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found", nil)
		return
	}
	c.JSON(http.StatusOK, candles)
}

// ExpiryDates godoc
// @Summary      F&O expiry dates
// @Description  Returns the settlement dates currently listed for futures and options
// @Tags         derivatives
// @Produce      json
// @Success      200  {array}   string
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /fo/expiry-dates [get]
func (h *Handler) ExpiryDates(c *gin.Context) {
	dates, err := h.svc.ExpiryDates(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

// OptionChain godoc
// @Summary      Option chain
// @Description  Returns call/put rows per strike for an underlying, optionally restricted to one expiry
// @Tags         derivatives
// @Produce      json
// @Param        symbol  query     string  true   "Underlying symbol"       example(NIFTY)
// @Param        expiry  query     string  false  "Expiry date YYYY-MM-DD"  example(2024-01-25)
// @Success      200     {array}   models.OptionRow
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Error"
// @Router       /fo/option-chain [get]
func (h *Handler) OptionChain(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	expiry := strings.TrimSpace(c.Query("expiry"))
	if expiry != "" {
		if _, err := time.Parse(dateFormat, expiry); err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid expiry format, expected YYYY-MM-DD", err)
			return
		}
	}

	rows, err := h.svc.OptionChain(c.Request.Context(), symbol, expiry)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if len(rows) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no option chain data found", nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// historyParams validates the symbol/start/end triple shared by the two
// history endpoints. On failure it writes the 400 response and returns
// ok=false.
func historyParams(c *gin.Context) (symbol string, from, to time.Time, ok bool) {
	symbol = strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return "", time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(dateFormat, c.Query("start"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid start format, expected YYYY-MM-DD", err)
		return "", time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(dateFormat, c.Query("end"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid end format, expected YYYY-MM-DD", err)
		return "", time.Time{}, time.Time{}, false
	}
	if from.After(to) {
		middleware.AbortWithError(c, http.StatusBadRequest, "start must not be after end", nil)
		return "", time.Time{}, time.Time{}, false
	}
	return symbol, from, to, true
}

// respondUpstreamError maps NSE client failures to HTTP statuses: upstream
// 404 means an unknown symbol, any other upstream status becomes a 502, and
// everything else is an internal error. Errors ride on the context so the
// request logger and ErrorHandler see them.
func respondUpstreamError(c *gin.Context, err error) {
	switch {
	case nse.IsNotFound(err):
		middleware.AbortWithError(c, http.StatusNotFound, "symbol not found", err)
	case nse.IsUpstream(err):
		middleware.AbortWithError(c, http.StatusBadGateway, "upstream data source error", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch data", err)
	}
}
