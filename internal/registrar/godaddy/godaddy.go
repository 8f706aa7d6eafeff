// Package godaddy implements the registrar client for GoDaddy's bulk
// availability endpoint.
package godaddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/lexhunt/lexhuntcli/internal/registrar"
)

const (
	defaultBaseURL = "https://api.godaddy.com/v1"

	// DefaultBatchCap is GoDaddy's documented per-call domain limit for
	// the bulk availability endpoint.
	DefaultBatchCap = 70
)

type Options struct {
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration

	// CheckType selects provider-side accuracy: FAST or FULL.
	CheckType string

	// MinDelay is a client-side floor between requests, protecting the
	// provider's limits even when callers fire calls back to back.
	MinDelay time.Duration

	BatchCap  int
	UserAgent string
}

type Client struct {
	opts Options
	http *http.Client
	lim  *rate.Limiter
}

func NewClient(opts Options) (*Client, error) {
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	opts.APISecret = strings.TrimSpace(opts.APISecret)
	if opts.APIKey == "" || opts.APISecret == "" {
		return nil, fmt.Errorf("godaddy: missing api credentials (set GODADDY_API_KEY and GODADDY_API_SECRET)")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CheckType == "" {
		opts.CheckType = "FAST"
	}
	if opts.BatchCap <= 0 {
		opts.BatchCap = DefaultBatchCap
	}
	if opts.MinDelay <= 0 {
		opts.MinDelay = 200 * time.Millisecond
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "lexhuntcli/registrar-godaddy"
	}

	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
		lim:  rate.NewLimiter(rate.Every(opts.MinDelay), 1),
	}, nil
}

func (c *Client) Name() string { return "godaddy" }

func (c *Client) BatchCap() int { return c.opts.BatchCap }

// CheckDomains posts one bulk availability request for up to BatchCap
// domains and returns the provider's per-domain answers. Domains the
// provider skips are simply absent from the result.
func (c *Client) CheckDomains(ctx context.Context, domains []string) ([]registrar.DomainCheck, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("godaddy: empty batch")
	}
	if len(domains) > c.opts.BatchCap {
		return nil, fmt.Errorf("godaddy: batch of %d exceeds cap %d", len(domains), c.opts.BatchCap)
	}

	if err := c.lim.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(domains)
	if err != nil {
		return nil, err
	}

	u := strings.TrimRight(c.opts.BaseURL, "/") + "/domains/available?checkType=" + url.QueryEscape(c.opts.CheckType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("authorization", "sso-key "+c.opts.APIKey+":"+c.opts.APISecret)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("godaddy: %s", apiErrorMessage(resp.StatusCode, b))
	}

	var decoded availableResponse
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("godaddy: decode error: %w", err)
	}

	out := make([]registrar.DomainCheck, 0, len(decoded.Domains))
	for _, d := range decoded.Domains {
		name := strings.ToLower(strings.TrimSpace(d.Domain))
		if name == "" {
			continue
		}
		out = append(out, registrar.DomainCheck{
			Domain:      name,
			Available:   d.Available,
			Definitive:  d.Definitive,
			PriceMicros: d.Price,
			Currency:    d.Currency,
			PeriodYears: d.Period,
		})
	}
	return out, nil
}

// apiErrorMessage prefers the structured provider error over raw body.
func apiErrorMessage(status int, body []byte) string {
	var e struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("http %d: %s: %s", status, e.Code, e.Message)
		}
		return fmt.Sprintf("http %d: %s", status, e.Message)
	}
	return fmt.Sprintf("http %d: %s", status, strings.TrimSpace(string(body)))
}

type availableResponse struct {
	Domains []availableDomain `json:"domains"`
}

type availableDomain struct {
	Domain     string `json:"domain"`
	Available  bool   `json:"available"`
	Definitive bool   `json:"definitive"`
	Price      int64  `json:"price"`
	Currency   string `json:"currency"`
	Period     int    `json:"period"`
}
