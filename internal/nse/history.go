package nse

import (
	"context"
	"sort"
	"time"

	"github.com/guttosm/nsepulse/internal/domain/models"
)

// historyWindowDays is the widest from/to range NSE accepts on the history
// endpoints. Larger requests are split into windows and concatenated.
const historyWindowDays = 50

// stockHistoryResponse is the shape of /api/historical/cm/equity.
type stockHistoryResponse struct {
	Data []stockHistoryRow `json:"data"`
}

type stockHistoryRow struct {
	Symbol    string  `json:"CH_SYMBOL"`
	Series    string  `json:"CH_SERIES"`
	Timestamp string  `json:"CH_TIMESTAMP"`
	Open      float64 `json:"CH_OPENING_PRICE"`
	High      float64 `json:"CH_TRADE_HIGH_PRICE"`
	Low       float64 `json:"CH_TRADE_LOW_PRICE"`
	Close     float64 `json:"CH_CLOSING_PRICE"`
	PrevClose float64 `json:"CH_PREVIOUS_CLS_PRICE"`
	Volume    int64   `json:"CH_TOT_TRADED_QTY"`
	Turnover  float64 `json:"CH_TOT_TRADED_VAL"`
	Trades    int64   `json:"CH_TOTAL_TRADES"`
	VWAP      float64 `json:"VWAP"`
}

// StockHistory fetches daily EQ-series candles for an equity between from and
// to (inclusive), oldest first.
func (c *Client) StockHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	var out []models.Candle

	err := c.eachWindow(from, to, func(start, end time.Time) error {
		var body stockHistoryResponse
		q := map[string]string{
			"symbol": symbol,
			"series": `["EQ"]`,
			"from":   start.Format(nseDateFormat),
			"to":     end.Format(nseDateFormat),
		}
		if err := c.get(ctx, "/api/historical/cm/equity", q, &body); err != nil {
			return err
		}
		for _, row := range body.Data {
			day, err := parseNSEDate(row.Timestamp)
			if err != nil {
				return err
			}
			out = append(out, models.Candle{
				Symbol:    row.Symbol,
				Series:    row.Series,
				Date:      day.Format(isoDateFormat),
				Open:      row.Open,
				High:      row.High,
				Low:       row.Low,
				Close:     row.Close,
				PrevClose: row.PrevClose,
				VWAP:      row.VWAP,
				Volume:    row.Volume,
				Turnover:  row.Turnover,
				Trades:    row.Trades,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortCandles(out)
	return out, nil
}

// indexHistoryResponse is the shape of /api/historical/indicesHistory.
// Close values and turnover arrive in two parallel record sets keyed by day.
type indexHistoryResponse struct {
	Data struct {
		CloseRecords []struct {
			IndexName string  `json:"EOD_INDEX_NAME"`
			Timestamp string  `json:"EOD_TIMESTAMP"`
			Open      float64 `json:"EOD_OPEN_INDEX_VAL"`
			High      float64 `json:"EOD_HIGH_INDEX_VAL"`
			Low       float64 `json:"EOD_LOW_INDEX_VAL"`
			Close     float64 `json:"EOD_CLOSE_INDEX_VAL"`
		} `json:"indexCloseOnlineRecords"`
		TurnoverRecords []struct {
			Timestamp string  `json:"HIT_TIMESTAMP"`
			TradedQty int64   `json:"HIT_TRADED_QTY"`
			Turnover  float64 `json:"HIT_TURN_OVER"`
		} `json:"indexTurnoverRecords"`
	} `json:"data"`
}

// IndexHistory fetches daily candles for an index between from and to
// (inclusive), oldest first. Volume and turnover are merged in from the
// turnover record set when NSE publishes them for the day.
func (c *Client) IndexHistory(ctx context.Context, symbol string, from, to time.Time) ([]models.Candle, error) {
	var out []models.Candle

	err := c.eachWindow(from, to, func(start, end time.Time) error {
		var body indexHistoryResponse
		q := map[string]string{
			"indexType": symbol,
			"from":      start.Format(nseDateFormat),
			"to":        end.Format(nseDateFormat),
		}
		if err := c.get(ctx, "/api/historical/indicesHistory", q, &body); err != nil {
			return err
		}

		type turnover struct {
			qty  int64
			turn float64
		}
		byDay := make(map[string]turnover, len(body.Data.TurnoverRecords))
		for _, tr := range body.Data.TurnoverRecords {
			day, err := parseNSEDate(tr.Timestamp)
			if err != nil {
				continue // turnover rows are best-effort
			}
			byDay[day.Format(isoDateFormat)] = turnover{qty: tr.TradedQty, turn: tr.Turnover}
		}

		for _, row := range body.Data.CloseRecords {
			day, err := parseNSEDate(row.Timestamp)
			if err != nil {
				return err
			}
			candle := models.Candle{
				Symbol: row.IndexName,
				Date:   day.Format(isoDateFormat),
				Open:   row.Open,
				High:   row.High,
				Low:    row.Low,
				Close:  row.Close,
			}
			if tv, ok := byDay[candle.Date]; ok {
				candle.Volume = tv.qty
				candle.Turnover = tv.turn
			}
			out = append(out, candle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortCandles(out)
	return out, nil
}

// eachWindow invokes fn for each historyWindowDays-sized slice of [from, to].
func (c *Client) eachWindow(from, to time.Time, fn func(start, end time.Time) error) error {
	for start := from; !start.After(to); start = start.AddDate(0, 0, historyWindowDays) {
		end := start.AddDate(0, 0, historyWindowDays-1)
		if end.After(to) {
			end = to
		}
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}

// sortCandles orders candles oldest first. NSE returns newest-first within a
// window; ISO dates sort lexicographically.
func sortCandles(candles []models.Candle) {
	sort.Slice(candles, func(i, j int) bool { return candles[i].Date < candles[j].Date })
}
