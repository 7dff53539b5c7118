package nse

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
)

// equityMasterPath is the archives path of the equity master list, a CSV with
// one row per listed equity (SYMBOL, NAME OF COMPANY, SERIES, ...).
const equityMasterPath = "/content/equities/EQUITY_L.csv"

// StockSymbols downloads the equity master CSV from the archives host and
// returns the SYMBOL column.
func (c *Client) StockSymbols(ctx context.Context) ([]string, error) {
	resp, err := c.archives.R().SetContext(ctx).Get(equityMasterPath)
	if err != nil {
		return nil, fmt.Errorf("nse: get %s: %w", equityMasterPath, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{Path: equityMasterPath, Status: resp.StatusCode()}
	}

	r := csv.NewReader(bytes.NewReader(resp.Body()))
	r.FieldsPerRecord = -1 // the master file has trailing columns that vary
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("nse: parse equity master csv: %w", err)
	}

	symbols := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			// skip the header row
			continue
		}
		if s := strings.TrimSpace(row[0]); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}

// allIndicesResponse is the shape of /api/allIndices.
type allIndicesResponse struct {
	Data []struct {
		Index       string `json:"index"`
		IndexSymbol string `json:"indexSymbol"`
	} `json:"data"`
}

// IndexSymbols returns the names of all NSE indices ("NIFTY 50",
// "NIFTY BANK", ...), as published by the allIndices endpoint.
func (c *Client) IndexSymbols(ctx context.Context) ([]string, error) {
	var body allIndicesResponse
	if err := c.get(ctx, "/api/allIndices", nil, &body); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(body.Data))
	for _, d := range body.Data {
		if d.Index != "" {
			names = append(names, d.Index)
		}
	}
	return names, nil
}
