// Package client is the typed REST client for the finance API. Every method
// issues one HTTP request and returns the decoded response envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"finance-dashboard/internal/config"
)

// Client talks to the finance API rooted at a fixed base URL. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client at construction
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for transport failures
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// New creates a client for baseURL, e.g. http://localhost:3001/api. The base
// URL is used verbatim and never changes afterwards.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a client from the client section of the configuration.
// A non-zero cfg.Timeout is applied after opts, so it also bounds an HTTP
// client given with WithHTTPClient.
func NewFromConfig(cfg config.ClientConfig, opts ...Option) *Client {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	if cfg.Timeout > 0 {
		all = append(all, WithTimeout(cfg.Timeout))
	}
	return New(cfg.BaseURL, all...)
}

// BaseURL returns the URL every endpoint path is appended to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOption adjusts a single request
type RequestOption func(*requestOptions)

type requestOptions struct {
	token   string
	headers http.Header
}

// WithToken sends Authorization: Bearer <token>. It takes precedence over
// any Authorization header given with WithHeader.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

// WithHeader adds a request header. It may override Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body any, opts []RequestOption) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range options.headers {
		req.Header[key] = values
	}
	if options.token != "" {
		req.Header.Set("Authorization", "Bearer "+options.token)
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("finance api request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		c.logger.Error("finance api response read failed",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"error", err,
		)
		return nil, nil, err
	}

	return resp, body, nil
}

// request performs one call and decodes a 2xx body into T. An empty body
// yields the zero value.
func request[T any](ctx context.Context, c *Client, method, path string, body any, opts []RequestOption) (T, error) {
	var out T

	req, err := c.buildRequest(ctx, method, path, body, opts)
	if err != nil {
		return out, err
	}

	resp, respBody, err := c.do(req)
	if err != nil {
		return out, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, newAPIError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return out, nil
}
