// Package nws is the client for the National Weather Service API and the
// bounded external-call executor built on top of it.
//
// Fetch makes exactly one attempt per call, bounded by a hard timeout whose
// cancellation is owned by the call itself. It never returns an error:
// every failure mode collapses into the NoData side of Result, with the
// failure detail recorded on the invocation's diagnostic scope.
package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weather-gateway/internal/diag"
)

const (
	// DefaultBaseURL is the fixed upstream host.
	DefaultBaseURL = "https://api.weather.gov"
	// DefaultUserAgent identifies this service to the upstream; the NWS API
	// rejects requests without one.
	DefaultUserAgent = "weather-app/1.0"
	// DefaultAccept is the media type of the expected response format.
	DefaultAccept = "application/geo+json"
	// DefaultTimeout bounds each outbound call.
	DefaultTimeout = 10 * time.Second

	// statusSnippetLimit caps how much of a failed response body is copied
	// into a diagnostic entry.
	statusSnippetLimit = 512
)

// Config customizes a Client. Zero values fall back to the defaults above.
type Config struct {
	BaseURL   string
	UserAgent string
	Accept    string
	Timeout   time.Duration
	// Transport overrides the HTTP transport, used by tests to observe
	// cancellation.
	Transport http.RoundTripper
}

// Client issues bounded GET requests against the NWS API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	accept     string
	timeout    time.Duration
}

// NewClient creates a Client, filling unset config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Accept == "" {
		cfg.Accept = DefaultAccept
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Transport: cfg.Transport},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		accept:     cfg.Accept,
		timeout:    cfg.Timeout,
	}
}

// AlertsURL builds the alerts-feed URL for a state code. The code must
// already be normalized to uppercase.
func (c *Client) AlertsURL(state string) string {
	return fmt.Sprintf("%s/alerts?area=%s", c.baseURL, state)
}

// PointsURL builds the grid-point URL for a coordinate.
func (c *Client) PointsURL(latitude, longitude float64) string {
	return fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, latitude, longitude)
}

// Result is the tri-state outcome of one external call: Success carrying a
// decoded body, or NoData. A NoData result guarantees no side effect beyond
// diagnostic entries having been appended.
type Result[T any] struct {
	Body T
	OK   bool
}

func success[T any](body T) Result[T] {
	return Result[T]{Body: body, OK: true}
}

func noData[T any]() Result[T] {
	return Result[T]{}
}

// Fetch issues a single GET against url and decodes the JSON body into T.
// The call is bounded by the client's timeout via a context owned by this
// call; firing the timeout cancels the in-flight request and releases the
// underlying connection. External cancellation through ctx is treated the
// same way. All failures are logged to scope and reported as NoData.
func Fetch[T any](ctx context.Context, c *Client, url string, scope *diag.Buffer) Result[T] {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		scope.Appendf("Failed to build request for %s: %v", url, err)
		return noData[T]()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", c.accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			scope.Appendf("Request timed out after %s: %s", c.timeout, url)
		case errors.Is(err, context.Canceled):
			scope.Appendf("Request canceled: %s", url)
		default:
			scope.Appendf("Request failed: %v", err)
		}
		return noData[T]()
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, statusSnippetLimit))
		scope.Appendf("NWS API returned status %d for %s: %s",
			resp.StatusCode, url, strings.TrimSpace(string(snippet)))
		return noData[T]()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		scope.Appendf("Failed to read response from %s: %v", url, err)
		return noData[T]()
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		scope.Appendf("Failed to parse response from %s: %v", url, err)
		return noData[T]()
	}
	return success(out)
}
