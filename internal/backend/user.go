// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UserExists calls GET /api/auth/exists?username=<name>.
// No authentication required.
func (h *HTTP) UserExists(ctx context.Context, username string) (bool, error) {
	path := h.endpoints.Exists + "?username=" + url.QueryEscape(username)
	req, err := h.newJSONRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	resp, err := h.do(req)
	if err != nil {
		return false, err
	}
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := decodeJSON(resp, &out); err != nil {
		return false, fmt.Errorf("decode exists response: %w", err)
	}
	return out.Exists, nil
}
