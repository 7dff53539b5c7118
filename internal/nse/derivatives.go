package nse

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/nsepulse/internal/domain/models"
)

// indexUnderlyings are the F&O underlyings served by the option-chain-indices
// endpoint; every other symbol goes through option-chain-equities.
var indexUnderlyings = map[string]bool{
	"NIFTY":      true,
	"BANKNIFTY":  true,
	"FINNIFTY":   true,
	"MIDCPNIFTY": true,
	"NIFTYNXT50": true,
}

// optionChainResponse is the shape of /api/option-chain-indices and
// /api/option-chain-equities.
type optionChainResponse struct {
	Records struct {
		ExpiryDates     []string         `json:"expiryDates"`
		Data            []optionChainRow `json:"data"`
		UnderlyingValue float64          `json:"underlyingValue"`
	} `json:"records"`
}

type optionChainRow struct {
	StrikePrice float64         `json:"strikePrice"`
	ExpiryDate  string          `json:"expiryDate"`
	CE          *optionChainLeg `json:"CE"`
	PE          *optionChainLeg `json:"PE"`
}

type optionChainLeg struct {
	OpenInterest      int64   `json:"openInterest"`
	ChangeInOI        int64   `json:"changeinOpenInterest"`
	TotalTradedVolume int64   `json:"totalTradedVolume"`
	ImpliedVolatility float64 `json:"impliedVolatility"`
	LastPrice         float64 `json:"lastPrice"`
	Change            float64 `json:"change"`
	BidQty            int64   `json:"bidQty"`
	BidPrice          float64 `json:"bidprice"`
	AskQty            int64   `json:"askQty"`
	AskPrice          float64 `json:"askPrice"`
}

// OptionChain fetches the option chain for an underlying. expiry, when
// non-empty, must be YYYY-MM-DD and restricts the rows to that settlement
// date; otherwise all listed expiries are returned.
func (c *Client) OptionChain(ctx context.Context, symbol, expiry string) ([]models.OptionRow, error) {
	body, err := c.optionChain(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// NSE spells expiries as DD-Mon-YYYY; convert the filter once.
	var want string
	if expiry != "" {
		day, err := time.Parse(isoDateFormat, expiry)
		if err != nil {
			return nil, fmt.Errorf("nse: invalid expiry %q: %w", expiry, err)
		}
		want = day.Format(expiryDateFormat)
	}

	rows := make([]models.OptionRow, 0, len(body.Records.Data))
	for _, r := range body.Records.Data {
		if want != "" && titleMonth(r.ExpiryDate) != want {
			continue
		}
		day, err := parseNSEDate(r.ExpiryDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, models.OptionRow{
			Underlying:  symbol,
			ExpiryDate:  day.Format(isoDateFormat),
			StrikePrice: r.StrikePrice,
			SpotPrice:   body.Records.UnderlyingValue,
			Call:        toQuote(r.CE),
			Put:         toQuote(r.PE),
		})
	}
	return rows, nil
}

// ExpiryDates returns the F&O settlement dates currently listed, in
// YYYY-MM-DD, soonest first. NSE publishes the authoritative list on the
// NIFTY option chain payload.
func (c *Client) ExpiryDates(ctx context.Context) ([]string, error) {
	body, err := c.optionChain(ctx, "NIFTY")
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(body.Records.ExpiryDates))
	for _, raw := range body.Records.ExpiryDates {
		day, err := parseNSEDate(raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, day.Format(isoDateFormat))
	}
	return dates, nil
}

func (c *Client) optionChain(ctx context.Context, symbol string) (*optionChainResponse, error) {
	path := "/api/option-chain-equities"
	if indexUnderlyings[symbol] {
		path = "/api/option-chain-indices"
	}

	var body optionChainResponse
	if err := c.get(ctx, path, map[string]string{"symbol": symbol}, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func toQuote(leg *optionChainLeg) *models.OptionQuote {
	if leg == nil {
		return nil
	}
	return &models.OptionQuote{
		OpenInterest:      leg.OpenInterest,
		ChangeInOI:        leg.ChangeInOI,
		Volume:            leg.TotalTradedVolume,
		ImpliedVolatility: leg.ImpliedVolatility,
		LastPrice:         leg.LastPrice,
		Change:            leg.Change,
		BidQty:            leg.BidQty,
		BidPrice:          leg.BidPrice,
		AskQty:            leg.AskQty,
		AskPrice:          leg.AskPrice,
	}
}
