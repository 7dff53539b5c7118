package models

// OptionQuote holds the market data of a single option leg (a call or a put)
// at one strike and expiry.
//
// swagger:model OptionQuote
type OptionQuote struct {
	OpenInterest      int64   `json:"open_interest" example:"54321"`
	ChangeInOI        int64   `json:"change_in_oi" example:"1200"`
	Volume            int64   `json:"volume" example:"98765"`
	ImpliedVolatility float64 `json:"implied_volatility" example:"14.32"`
	LastPrice         float64 `json:"last_price" example:"152.4"`
	Change            float64 `json:"change" example:"-3.15"`
	BidQty            int64   `json:"bid_qty" example:"750"`
	BidPrice          float64 `json:"bid_price" example:"152.1"`
	AskQty            int64   `json:"ask_qty" example:"500"`
	AskPrice          float64 `json:"ask_price" example:"152.8"`
}

// OptionRow is one row of an option chain: the call and put legs quoted at a
// given strike for a given expiry. A leg is nil when NSE has no contract on
// that side of the strike.
//
// swagger:model OptionRow
type OptionRow struct {
	Underlying  string       `json:"underlying" example:"NIFTY"`
	ExpiryDate  string       `json:"expiry_date" example:"2024-01-25"`
	StrikePrice float64      `json:"strike_price" example:"21500"`
	SpotPrice   float64      `json:"spot_price" example:"21453.95"`
	Call        *OptionQuote `json:"call,omitempty"`
	Put         *OptionQuote `json:"put,omitempty"`
}
