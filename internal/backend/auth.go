// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Login calls POST /api/auth/login with { username, password }.
func (h *HTTP) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return h.login(ctx, h.endpoints.Login, creds)
}

// AdminLogin calls POST /api/auth/admin/login with { username, password }.
func (h *HTTP) AdminLogin(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return h.login(ctx, h.endpoints.AdminLogin, creds)
}

// CustomerLogin calls POST /api/auth/customer/login with { username, password }.
func (h *HTTP) CustomerLogin(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return h.login(ctx, h.endpoints.CustomerLogin, creds)
}

// login posts credentials to path and decodes the auth response.
// A token found only in the Authorization response header is copied into the result.
func (h *HTTP) login(ctx context.Context, path string, creds Credentials) (*AuthResponse, error) {
	req, err := h.newJSONRequest(ctx, http.MethodPost, path, creds)
	if err != nil {
		return nil, err
	}
	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	headerToken := tokenFromHeaders(resp.Header)

	var out AuthResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if out.Token == "" && headerToken != "" {
		out.Token = headerToken
	}
	return &out, nil
}

// Register calls POST /api/auth/register. An empty 2xx body counts as success.
func (h *HTTP) Register(ctx context.Context, reg Registration) (*Ack, error) {
	req, err := h.newJSONRequest(ctx, http.MethodPost, h.endpoints.Register, reg)
	if err != nil {
		return nil, err
	}
	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	out := Ack{Success: true}
	if err := decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("decode register response: %w", err)
	}
	return &out, nil
}

// Logout calls POST /api/auth/logout with Authorization header.
func (h *HTTP) Logout(ctx context.Context, accessToken string) error {
	req, err := h.newJSONRequest(ctx, http.MethodPost, h.endpoints.Logout, struct{}{})
	if err != nil {
		return err
	}
	if accessToken != "" {
		req.Header.Set("Authorization", BearerValue(accessToken))
	}
	resp, err := h.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Validate calls POST /api/auth/validate. The token goes both in the JSON body
// and in the token query parameter, since deployments read it from either.
func (h *HTTP) Validate(ctx context.Context, token string) (bool, error) {
	path := h.endpoints.Validate + "?token=" + url.QueryEscape(token)
	req, err := h.newJSONRequest(ctx, http.MethodPost, path, map[string]string{"token": token})
	if err != nil {
		return false, err
	}
	resp, err := h.do(req)
	if err != nil {
		return false, err
	}
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := decodeJSON(resp, &out); err != nil {
		return false, fmt.Errorf("decode validate response: %w", err)
	}
	return out.Valid, nil
}
