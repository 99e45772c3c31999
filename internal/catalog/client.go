// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog reads the storefront's product catalog.
//
// Every request carries the session's auth header. The catalog is readable
// without signing in, so a missing token just means an anonymous request.
// A 401 means the held token is no longer accepted, and the session is dropped.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"freshmart/cli/internal/backend"
	"freshmart/cli/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BasePath is the catalog's route prefix.
const BasePath = "/api/products"

// ErrUnauthorized is returned after a 401; the session has been invalidated by then.
var ErrUnauthorized = errors.New("session expired, please log in again")

// Product is a catalog entry.
type Product struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsReserved  bool    `json:"isReserved,omitempty"`
	ReservedBy  *int64  `json:"reservedBy,omitempty"`
	IsActive    bool    `json:"isActive,omitempty"`
}

// InStock reports whether any units are available.
func (p Product) InStock() bool { return p.Quantity > 0 }

// Session supplies request headers and is told when the token stops working.
// *session.Manager implements it.
type Session interface {
	AuthHeader() http.Header
	Invalidate()
}

// Client talks to the catalog endpoints.
type Client struct {
	baseURL string
	sess    Session
	client  *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.client.Timeout = d
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.log = l
		}
	}
}

// New returns a catalog client for the service at baseURL.
func New(baseURL string, sess Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all active products.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	return c.products(ctx, BasePath, nil)
}

// Get returns one product.
func (c *Client) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := c.get(ctx, BasePath+"/"+strconv.FormatInt(id, 10), nil, func(b []byte) error {
		return unwrap(b, "product", &p)
	}); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchByName matches products by name.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Product, error) {
	return c.products(ctx, BasePath+"/search", url.Values{"productName": {name}})
}

// Search matches a term against name, description and category.
func (c *Client) Search(ctx context.Context, term string) ([]Product, error) {
	return c.products(ctx, BasePath+"/search/all", url.Values{"searchTerm": {term}})
}

// ByCategory lists the products in one category.
func (c *Client) ByCategory(ctx context.Context, category string) ([]Product, error) {
	return c.products(ctx, BasePath+"/category/"+url.PathEscape(category), nil)
}

// InStock lists products with stock available.
func (c *Client) InStock(ctx context.Context) ([]Product, error) {
	return c.products(ctx, BasePath+"/in-stock", nil)
}

// Categories lists the category names in use.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, BasePath+"/categories", nil, func(b []byte) error {
		return unwrap(b, "categories", &out)
	})
	return out, err
}

func (c *Client) products(ctx context.Context, path string, q url.Values) ([]Product, error) {
	var out []Product
	err := c.get(ctx, path, q, func(b []byte) error {
		return unwrap(b, "products", &out)
	})
	return out, err
}

// get issues a GET with the session headers and hands a 2xx body to decode.
func (c *Client) get(ctx context.Context, path string, q url.Values, decode func([]byte) error) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	for k, vs := range c.sess.AuthHeader() {
		req.Header[k] = vs
	}
	id := uuid.NewString()
	req.Header.Set("User-Agent", backend.DefaultUserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(backend.HeaderRequestID, id)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("catalog request failed", zap.String("path", path), logging.Masked("error", err.Error()))
		return err
	}
	c.log.Debug("catalog request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", id),
		zap.Bool("authenticated", req.Header.Get("Authorization") != ""))

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.sess.Invalidate()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backend.ErrorFromResponse(resp)
	}

	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return err
	}
	if err := decode(buf.Bytes()); err != nil {
		var re *backend.ResponseError
		if errors.As(err, &re) {
			return err
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// unwrap decodes either a bare JSON value or an object carrying it under key.
func unwrap(b []byte, key string, out any) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	if b[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		if inner, ok := env[key]; ok {
			return json.Unmarshal(inner, out)
		}
		if ok, present := env["success"]; present && string(ok) == "false" {
			var msg struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(b, &msg)
			// Failures reported in a 200 body.
			return &backend.ResponseError{StatusCode: http.StatusOK, Message: msg.Message}
		}
	}
	return json.Unmarshal(b, out)
}
