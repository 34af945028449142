// internal/sources/hunter/client.go
package hunter

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"huntx/internal/core/domain"
	"huntx/internal/core/ports"
	"huntx/internal/platform/errors"
	"huntx/internal/platform/httpclient"
	"huntx/internal/platform/logx"
)

const (
	// Hunter API base URL
	defaultBaseURL = "https://api.hunter.io/v2"

	// API endpoints
	endpointDomainSearch  = "/domain-search"
	endpointEmailFinder   = "/email-finder"
	endpointEmailVerifier = "/email-verifier"
)

// Client wraps the Hunter v2 REST API. It implements ports.LookupService.
// Every call is a single attempt: retry policy belongs to the caller.
type Client struct {
	apiKey  string
	client  *httpclient.Client
	logger  logx.Logger
	baseURL string
}

// Config holds the client settings.
type Config struct {
	// Timeout bounds each lookup round trip. Default: 10 seconds.
	Timeout time.Duration

	// RateLimit is the maximum requests per second. 0 means no limit.
	RateLimit float64

	// BaseURL overrides the API base URL (used in tests).
	BaseURL string
}

// NewClient creates a Hunter API client with default settings.
func NewClient(apiKey string, logger logx.Logger) *Client {
	return NewClientWithConfig(apiKey, logger, Config{})
}

// NewClientWithConfig creates a client with custom settings.
func NewClientWithConfig(apiKey string, logger logx.Logger, cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	httpConfig := httpclient.Config{
		Timeout:        cfg.Timeout,
		MaxRetries:     0, // one attempt per item
		UserAgent:      "HuntX/1.0",
		RateLimit:      cfg.RateLimit,
		RateLimitBurst: 1,
	}

	return &Client{
		apiKey:  apiKey,
		client:  httpclient.New(httpConfig, logger),
		logger:  logger.With("component", "hunter-api"),
		baseURL: cfg.BaseURL,
	}
}

var _ ports.LookupService = (*Client)(nil)

// DomainSearch fetches the addresses known for a domain via /domain-search.
func (c *Client) DomainSearch(ctx context.Context, dom string) (*domain.DomainRecord, error) {
	apiURL := c.buildURL(endpointDomainSearch, map[string]string{"domain": dom})

	c.logger.Debug("searching domain", "domain", dom)

	var data domainSearchData
	if err := c.fetch(ctx, apiURL, &data); err != nil {
		return nil, errors.Wrapf(err, "domain search for %s failed", dom)
	}

	record := data.toDomain(dom)
	c.logger.Debug("domain search completed",
		"domain", dom,
		"emails", record.EmailCount,
	)
	return record, nil
}

// EmailFinder discovers a person's address via /email-finder. A
// supplied FullName takes the place of the explicit names: two or more
// whitespace-separated tokens become the first/last name parameters,
// fewer mean no name parameters at all.
func (c *Client) EmailFinder(ctx context.Context, query ports.FinderQuery) (*domain.PersonEmailRecord, error) {
	params := map[string]string{"domain": query.Domain}

	var first, last string
	if strings.TrimSpace(query.FullName) != "" {
		first, last = splitFullName(query.FullName)
	} else {
		first = strings.TrimSpace(query.FirstName)
		last = strings.TrimSpace(query.LastName)
	}
	if first != "" {
		params["first_name"] = first
	}
	if last != "" {
		params["last_name"] = last
	}

	apiURL := c.buildURL(endpointEmailFinder, params)

	c.logger.Debug("finding email",
		"domain", query.Domain,
		"first_name", first,
		"last_name", last,
	)

	var data finderData
	if err := c.fetch(ctx, apiURL, &data); err != nil {
		return nil, errors.Wrapf(err, "email finder for %s failed", query.Domain)
	}

	return data.toDomain(), nil
}

// EmailVerifier checks the deliverability of an address via /email-verifier.
func (c *Client) EmailVerifier(ctx context.Context, email string) (*domain.VerificationRecord, error) {
	apiURL := c.buildURL(endpointEmailVerifier, map[string]string{"email": email})

	c.logger.Debug("verifying email", "email", email)

	var data verifierData
	if err := c.fetch(ctx, apiURL, &data); err != nil {
		return nil, errors.Wrapf(err, "email verification for %s failed", email)
	}

	return data.toDomain(email), nil
}

// fetch performs the request and decodes the top-level data envelope
// into out. A response without a data object is a protocol error.
func (c *Client) fetch(ctx context.Context, apiURL string, out any) error {
	body, err := c.client.FetchJSON(ctx, apiURL)
	if err != nil {
		return err
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return errors.Wrap(errors.ErrInvalidResponse, err.Error())
	}
	if len(wrapper.Data) == 0 || string(wrapper.Data) == "null" {
		return errors.Wrap(errors.ErrInvalidResponse, "missing data object")
	}
	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		return errors.Wrap(errors.ErrInvalidResponse, err.Error())
	}
	return nil
}

// buildURL constructs the full API URL with the key and parameters.
func (c *Client) buildURL(endpoint string, params map[string]string) string {
	u, _ := url.Parse(c.baseURL + endpoint)
	q := u.Query()

	q.Set("api_key", c.apiKey)
	for key, value := range params {
		q.Set(key, value)
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// splitFullName derives first and last name from a full name with two
// or more whitespace-separated tokens. Returns empty strings otherwise.
func splitFullName(fullName string) (first, last string) {
	tokens := strings.Fields(fullName)
	if len(tokens) < 2 {
		return "", ""
	}
	return tokens[0], tokens[len(tokens)-1]
}
