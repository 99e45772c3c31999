// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"freshmart/cli/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultUserAgent is sent on every request unless overridden with WithUserAgent.
const DefaultUserAgent = "freshmart-cli/1.0"

// HeaderRequestID carries a per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// HTTP implements API over the storefront's REST endpoints.
type HTTP struct {
	// baseURL is the service origin (e.g., "http://localhost:8080")
	baseURL string
	// endpoints contains the URL paths for the auth routes
	endpoints Endpoints
	// client is the underlying HTTP client with configured timeout
	client    *http.Client
	userAgent string
	log       *zap.Logger
}

// Option configures the HTTP client.
type Option func(*HTTP)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.log = l
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
// It configures a 10-second timeout unless an option says otherwise.
func newHTTP(baseURL string, endpoints Endpoints, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
		userAgent: DefaultUserAgent,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ResponseError is returned when the service answers with a non-2xx status.
// Message holds the payload's message field when the body carried one.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// setStandardHeaders stamps the headers every request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) string {
	id := uuid.NewString()
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, id)
	return id
}

// newJSONRequest builds a request with an optional JSON body.
func (h *HTTP) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and returns the response. Non-2xx statuses are turned into
// *ResponseError after the body is drained; the caller owns the body otherwise.
func (h *HTTP) do(req *http.Request) (*http.Response, error) {
	id := h.setStandardHeaders(req)
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", id),
			logging.Masked("error", err.Error()))
		return nil, err
	}
	h.log.Debug("request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", id),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrorFromResponse(resp)
	}
	return resp, nil
}

// ErrorFromResponse drains and closes a non-2xx response and converts it to a
// *ResponseError.
func ErrorFromResponse(resp *http.Response) *ResponseError {
	defer resp.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &ResponseError{StatusCode: resp.StatusCode, Message: extractMessage(b)}
}

// extractMessage pulls a human-readable message out of an error body.
// JSON bodies are searched for "message" then "error"; short plain-text bodies
// are used as-is.
func extractMessage(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ""
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := raw[key].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	if b[0] == '<' || len(b) > 200 {
		// HTML error pages and stack traces are not messages.
		return ""
	}
	return string(b)
}

// decodeJSON decodes a 2xx body into out. An empty body leaves out untouched.
func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(out)
	if err == io.EOF {
		return nil
	}
	return err
}
