package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/scrynt/internal/models"
)

const (
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 2

	// DefaultUserAgent is sent with every screener request. The provider
	// rejects requests without a browser user agent.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Client fetches the full screener dataset from the upstream provider.
type Client struct {
	screenerURL string
	userAgent   string
	httpClient  *http.Client
	logger      arbor.ILogger
	limiter     *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithUserAgent sets a custom user agent.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new screener provider client.
func NewClient(screenerURL string, opts ...ClientOption) *Client {
	c := &Client{
		screenerURL: screenerURL,
		userAgent:   DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchScreener performs a single GET against the screener endpoint and
// returns the decoded payload.
func (c *Client) FetchScreener(ctx context.Context) (map[string]interface{}, error) {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &RateLimitError{RetryAfter: time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.screenerURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.screenerURL).
			Msg("Screener API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   c.screenerURL,
		}
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload, nil
}

// Fetch retrieves and normalizes the screener dataset.
func (c *Client) Fetch(ctx context.Context) ([]models.StockRecord, error) {
	payload, err := c.FetchScreener(ctx)
	if err != nil {
		return nil, err
	}

	records := Normalize(payload, c.logger)

	if c.logger != nil {
		c.logger.Info().
			Int("records", len(records)).
			Msg("Screener dataset fetched")
	}

	return records, nil
}
