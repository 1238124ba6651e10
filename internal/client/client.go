// Package client talks to the MotoTrack REST backend. A single Client
// holds the base URL for the whole session and exposes one CRUD facade
// per entity kind on top of generic JSON verbs.
package client

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

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config carries the construction-time settings for a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs REST calls against one configurable base URL. It holds
// no cache and performs no retries; a failed attempt surfaces immediately.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *zap.Logger
}

// New creates a Client. The zero Timeout disables the client-side limit.
func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// SetBaseURL redirects all subsequent calls to url. Idempotent and safe
// before the first request. Not synchronized with in-flight requests: a
// request already started keeps the base it resolved at start.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimRight(url, "/")
}

// BaseURL returns the currently configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs a GET and decodes the JSON response into out when out is
// non-nil. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post sends body as JSON and decodes the response into out when out is
// non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends body as JSON; no response body is expected on success.
func (c *Client) Put(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

// Delete removes a resource; no response body is expected on success.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		// Caller cancellation is its own failure kind, everything else
		// without a response counts as offline/network.
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.logger.Debug("Request canceled",
				zap.String("method", method),
				zap.String("url", fullURL),
			)
			return ctxErr
		}
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("Request completed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
		}
		return nil
	}

	c.logger.Warn("Backend error",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status_code", resp.StatusCode),
		zap.String("response", string(respBody)),
	)

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Path: path}
	}
	return &ServerError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
}

// validatePayload checks entity field constraints before any network call.
func (c *Client) validatePayload(v interface{}) error {
	if err := c.validate.Struct(v); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

func requireID(id int64) error {
	if id <= 0 {
		return &ValidationError{Message: fmt.Sprintf("id must be positive, got %d", id)}
	}
	return nil
}
