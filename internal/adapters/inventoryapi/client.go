// Package inventoryapi is the HTTP client for the external SustainaStock auth and inventory API.
package inventoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/sustainastock/sustainastock-ui/internal/observability/metrics"
	"github.com/sustainastock/sustainastock-ui/internal/observability/statsd"
	"github.com/sustainastock/sustainastock-ui/internal/ports"
)

// DefaultTokenCookieName is the cookie the API sets on a successful login.
const DefaultTokenCookieName = "access_token"

// maxErrorBody bounds how much of an error response is read for the detail text.
const maxErrorBody = 64 << 10

var (
	_ ports.AuthAPI      = (*Client)(nil)
	_ ports.InventoryAPI = (*Client)(nil)
)

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout applies per request; zero means no timeout.
	Timeout time.Duration
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
	// TokenCookieName is the login cookie to capture; empty uses DefaultTokenCookieName.
	TokenCookieName string
	Metrics         statsd.Sink
	Logger          *slog.Logger
}

// Client calls the inventory API on behalf of a bearer token.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	transport  http.RoundTripper
	cookieName string
	metrics    statsd.Sink
	logger     *slog.Logger
}

// New validates cfg and builds a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("inventory api base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse inventory api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("inventory api base url must be http or https, got %q", base.Scheme)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	cookieName := strings.TrimSpace(cfg.TokenCookieName)
	if cookieName == "" {
		cookieName = DefaultTokenCookieName
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    base,
		timeout:    cfg.Timeout,
		transport:  transport,
		cookieName: cookieName,
		metrics:    cfg.Metrics,
		logger:     logger.With("component", "inventoryapi"),
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// httpClient returns a client that attaches token as a bearer credential.
// An empty token sends no Authorization header.
func (c *Client) httpClient(token string) *http.Client {
	rt := c.transport
	if token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		}
	}
	return &http.Client{Transport: rt, Timeout: c.timeout}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call describes one API request.
type call struct {
	name   string // metric endpoint tag
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

func (c *Client) newRequest(ctx context.Context, in call) (*http.Request, error) {
	var body io.Reader
	if in.body != nil {
		b, err := json.Marshal(in.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", in.name, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.endpoint(in.path, in.query), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", in.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends the request with hc and returns the response when the status is 2xx.
// Non-2xx responses are drained, closed and turned into *APIError.
func (c *Client) do(hc *http.Client, req *http.Request, name string) (*http.Response, error) {
	start := time.Now()
	resp, err := hc.Do(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	if err == nil && (status < 200 || status > 299) {
		err = newAPIError(req, resp)
		_ = resp.Body.Close()
		resp = nil
	}

	metrics.EmitAPICall(c.metrics, metrics.APICallMetric{
		Endpoint: name,
		Method:   req.Method,
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
	})

	if err != nil {
		if req.Context().Err() == nil {
			c.logger.Warn("inventory api request failed",
				"endpoint", name,
				"method", req.Method,
				"status", status,
				"error", err)
		}
		return nil, err
	}
	return resp, nil
}

// doJSON performs in and decodes a JSON response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, in call, out any) error {
	req, err := c.newRequest(ctx, in)
	if err != nil {
		return err
	}
	resp, err := c.do(c.httpClient(in.token), req, in.name)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", in.name, err)
	}
	return nil
}

// Ping reports whether the API answers HTTP at all. Any status below 500 counts
// as reachable; the root path is not part of the documented surface.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/", nil), nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.httpClient("").Do(req)
	if err != nil {
		return fmt.Errorf("ping inventory api: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("ping inventory api: status %d", resp.StatusCode)
	}
	return nil
}
