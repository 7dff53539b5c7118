// Package nse implements a client for the National Stock Exchange of India's
// public JSON API and archives. It covers the calls this service exposes:
// symbol lists, historical candles and the F&O option chain.
//
// NSE gates its API behind session cookies handed out by the website, so the
// client primes a cookie jar against the homepage before the first API call
// and re-primes once when a request comes back 401/403.
package nse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/guttosm/nsepulse/config"
	"github.com/guttosm/nsepulse/internal/service"
)

// Compile-time check that Client can back the service layer.
var _ service.MarketSource = (*Client)(nil)

const (
	// NSE rejects requests without a browser-looking User-Agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// nseDateFormat is the DD-MM-YYYY format used in history query params.
	nseDateFormat = "02-01-2006"

	// expiryDateFormat is the DD-Mon-YYYY format NSE uses for expiry dates.
	expiryDateFormat = "02-Jan-2006"

	// isoDateFormat is the YYYY-MM-DD format used on this service's API surface.
	isoDateFormat = "2006-01-02"
)

// Client talks to the NSE API and archive hosts. It is safe for concurrent
// use; session priming is serialized internally.
type Client struct {
	api      *resty.Client // www.nseindia.com JSON API (cookie-gated)
	archives *resty.Client // archives.nseindia.com static files

	mu     sync.Mutex
	primed bool
}

// New builds a Client from the NSE section of the application config.
func New(cfg config.NSEConfig) *Client {
	api := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, text/plain, */*").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetHeader("Referer", cfg.BaseURL+"/")

	archives := resty.New().
		SetBaseURL(cfg.ArchivesURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", userAgent)

	return &Client{api: api, archives: archives}
}

// ensureSession primes the cookie jar by visiting the homepage once.
// Subsequent calls are no-ops until refreshSession invalidates the session.
func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.primed {
		return nil
	}
	resp, err := c.api.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("nse: prime session: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return &UpstreamError{Path: "/", Status: resp.StatusCode()}
	}
	c.primed = true
	return nil
}

// refreshSession drops the current session and primes a new one.
func (c *Client) refreshSession(ctx context.Context) error {
	c.mu.Lock()
	c.primed = false
	c.mu.Unlock()
	return c.ensureSession(ctx)
}

// get performs a cookie-authenticated GET against the API host and decodes
// the JSON body into out. A 401/403 triggers a single re-prime and retry,
// since NSE expires sessions aggressively.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	resp, err := c.api.R().SetContext(ctx).SetQueryParams(query).Get(path)
	if err != nil {
		return fmt.Errorf("nse: get %s: %w", path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		if err := c.refreshSession(ctx); err != nil {
			return err
		}
		resp, err = c.api.R().SetContext(ctx).SetQueryParams(query).Get(path)
		if err != nil {
			return fmt.Errorf("nse: get %s: %w", path, err)
		}
	}

	if resp.StatusCode() != http.StatusOK {
		return &UpstreamError{Path: path, Status: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("nse: decode %s: %w", path, err)
	}
	return nil
}

// parseNSEDate accepts the date spellings NSE mixes across endpoints
// ("2023-01-02", "02-01-2023", "02-JAN-2023", "25-Jan-2024") and returns the
// parsed day. The turnover records on indicesHistory use DD-MM-YYYY while the
// close records next to them use DD-Mon-YYYY.
func parseNSEDate(s string) (time.Time, error) {
	if t, err := time.Parse(isoDateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(nseDateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(expiryDateFormat, titleMonth(s)); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("nse: unrecognized date %q", s)
}

// titleMonth normalizes "02-JAN-2023" to "02-Jan-2023" so time.Parse accepts it.
func titleMonth(s string) string {
	b := []byte(s)
	upper := false
	for i, ch := range b {
		isAlpha := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !isAlpha {
			upper = false
			continue
		}
		if !upper {
			if ch >= 'a' && ch <= 'z' {
				b[i] = ch - 'a' + 'A'
			}
			upper = true
			continue
		}
		if ch >= 'A' && ch <= 'Z' {
			b[i] = ch - 'A' + 'a'
		}
	}
	return string(b)
}
