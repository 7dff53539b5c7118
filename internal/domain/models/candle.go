package models

// Candle represents one daily OHLCV record for an equity or an index.
//
// Fields:
//   - Symbol: the NSE symbol the record belongs to (e.g., "RELIANCE", "NIFTY 50").
//   - Series: trading series for equities ("EQ"); empty for indexes.
//   - Date: trading day in YYYY-MM-DD format.
//   - Open/High/Low/Close: prices in INR.
//   - Volume: number of shares (or index constituents' shares) traded.
//
// VWAP and Trades are populated only for equities; NSE does not publish them
// in the index history payload. Index volume and turnover come from the
// turnover record set and may be zero on days NSE omits it.
//
// swagger:model Candle
type Candle struct {
	Symbol    string  `json:"symbol" example:"RELIANCE"`
	Series    string  `json:"series,omitempty" example:"EQ"`
	Date      string  `json:"date" example:"2023-01-02"`
	Open      float64 `json:"open" example:"2550.0"`
	High      float64 `json:"high" example:"2571.7"`
	Low       float64 `json:"low" example:"2540.05"`
	Close     float64 `json:"close" example:"2562.3"`
	PrevClose float64 `json:"prev_close,omitempty" example:"2547.95"`
	VWAP      float64 `json:"vwap,omitempty" example:"2558.12"`
	Volume    int64   `json:"volume" example:"3837533"`
	Turnover  float64 `json:"turnover,omitempty" example:"9818349230.55"`
	Trades    int64   `json:"trades,omitempty" example:"210344"`
}
