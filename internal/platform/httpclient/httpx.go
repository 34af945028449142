// Package httpclient provides an HTTP client with retry, rate limiting,
// and timeout support for remote API calls.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"huntx/internal/platform/errors"
	"huntx/internal/platform/logx"
	"huntx/internal/platform/rate"
)

// Client is an HTTP client with retry logic, rate limiting, and timeout support.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      logx.Logger
	config      Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout. Default: 10 seconds.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts.
	// 0 means a single attempt per request.
	MaxRetries int

	// RetryBackoff is the initial backoff duration for retries.
	// Backoff increases exponentially with each retry. Default: 1 second.
	RetryBackoff time.Duration

	// MaxRetryBackoff caps the backoff between retries. Default: 30 seconds.
	MaxRetryBackoff time.Duration

	// UserAgent is the User-Agent header value.
	UserAgent string

	// RateLimit is the maximum requests per second. 0 means no limit.
	RateLimit float64

	// RateLimitBurst is the burst size for rate limiting. Default: 1.
	RateLimitBurst int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		MaxRetries:      0,
		RetryBackoff:    1 * time.Second,
		MaxRetryBackoff: 30 * time.Second,
		UserAgent:       "HuntX/1.0",
		RateLimit:       0,
		RateLimitBurst:  1,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RetryBackoff == 0 {
		config.RetryBackoff = 1 * time.Second
	}
	if config.MaxRetryBackoff == 0 {
		config.MaxRetryBackoff = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "HuntX/1.0"
	}
	if config.RateLimitBurst == 0 {
		config.RateLimitBurst = 1
	}

	var rateLimiter *rate.Limiter
	if config.RateLimit > 0 {
		rateLimiter = rate.New(config.RateLimit, config.RateLimitBurst)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		rateLimiter: rateLimiter,
		logger:      logger.With("component", "httpx"),
		config:      config,
	}
}

// Request performs an HTTP request with retry logic and rate limiting.
func (c *Client) Request(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if c.rateLimiter != nil {
			if err := c.rateLimiter.Wait(ctx); err != nil {
				return nil, errors.Wrap(err, "rate limit wait failed")
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create request for %s %s", method, url)
		}

		req.Header.Set("User-Agent", c.config.UserAgent)
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		c.logger.Debug("HTTP request",
			"method", method,
			"url", url,
			"attempt", attempt+1,
		)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		duration := time.Since(start)

		if err != nil {
			c.logger.Warn("HTTP request failed",
				"method", method,
				"attempt", attempt+1,
				"error", err.Error(),
				"duration_ms", duration.Milliseconds(),
			)
			lastErr = err

			if !c.shouldRetry(attempt, err, nil) {
				return nil, errors.Wrapf(err, "request failed after %d attempts", attempt+1)
			}
			if err := c.backoff(ctx, attempt); err != nil {
				return nil, errors.Wrap(err, "backoff interrupted")
			}
			continue
		}

		c.logger.Debug("HTTP response received",
			"method", method,
			"status", resp.StatusCode,
			"duration_ms", duration.Milliseconds(),
		)

		if !c.isRetryableStatus(resp) {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)

		if !c.shouldRetry(attempt, nil, resp) {
			break
		}

		c.logger.Warn("HTTP request returned retryable status",
			"method", method,
			"status", resp.StatusCode,
			"attempt", attempt+1,
		)
		if err := c.backoff(ctx, attempt); err != nil {
			return nil, errors.Wrap(err, "backoff interrupted")
		}
	}

	return nil, errors.Wrapf(lastErr, "request failed after %d attempts", c.config.MaxRetries+1)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, url, nil, headers)
}

// GetJSON performs a GET request that expects a JSON response.
func (c *Client) GetJSON(ctx context.Context, url string) (*http.Response, error) {
	return c.Get(ctx, url, map[string]string{"Accept": "application/json"})
}

// FetchJSON performs a GET request and returns the response body.
// Non-2xx statuses are mapped to sentinel errors via CheckStatus.
func (c *Client) FetchJSON(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.GetJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := c.checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return ReadBody(resp)
}

// isRetryableStatus checks if an HTTP status code should trigger a retry.
func (c *Client) isRetryableStatus(resp *http.Response) bool {
	if resp == nil {
		return false
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// shouldRetry decides based on the attempt number, error, and status.
func (c *Client) shouldRetry(attempt int, err error, resp *http.Response) bool {
	if attempt >= c.config.MaxRetries {
		return false
	}
	if err != nil {
		return true
	}
	return c.isRetryableStatus(resp)
}

// backoff implements exponential backoff between retries.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	backoff := c.config.RetryBackoff * time.Duration(math.Pow(2, float64(attempt)))
	if backoff > c.config.MaxRetryBackoff {
		backoff = c.config.MaxRetryBackoff
	}

	c.logger.Debug("backing off before retry",
		"attempt", attempt+1,
		"backoff_ms", backoff.Milliseconds(),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(backoff):
		return nil
	}
}

// checkStatus validates the HTTP status code, mapping failures to sentinels.
func (c *Client) checkStatus(resp *http.Response) error {
	return CheckStatus(resp)
}

// CheckStatus validates the HTTP status code and returns an error if it's
// not in the 2xx range.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return errors.ErrRateLimit
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return errors.ErrServiceUnavailable
	default:
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, max_retries=%d, rate_limit=%.1f/s}",
		c.config.Timeout,
		c.config.MaxRetries,
		c.config.RateLimit,
	)
}
