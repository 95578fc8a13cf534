// Package rest is the HTTP client of the marketplace backend.
package rest

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

	"github.com/dtroode/repairctl/internal/logger"
)

const maxErrorBody = 64 * 1024

// Client calls the backend REST API. Every request carries the session
// bearer token, and every 401 is reported to the unauthorized hook.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logger.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport      http.RoundTripper
	timeout        time.Duration
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
}

// WithTransport replaces http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) { o.transport = rt }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(o *clientOptions) { o.tokens = ts }
}

// WithUnauthorizedHook sets the function called on any 401 response.
func WithUnauthorizedHook(fn UnauthorizedFunc) Option {
	return func(o *clientOptions) { o.onUnauthorized = fn }
}

func NewClient(baseURL string, logger *logger.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", u.Scheme)
	}

	o := clientOptions{
		transport: http.DefaultTransport,
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var rt http.RoundTripper = NewLogging(o.transport, logger)
	rt = NewAuthenticate(rt, o.tokens, o.onUnauthorized, logger)

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Transport: rt,
			Timeout:   o.timeout,
		},
		logger: logger,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doJSON sends body as JSON and decodes a 2xx response into result.
// A nil body sends no payload, a nil result discards the response.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, result)
}

func (c *Client) send(req *http.Request, result any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newError(resp.StatusCode, body)
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
