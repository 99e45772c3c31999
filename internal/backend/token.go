// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"strings"
)

// BearerPrefix is the Authorization scheme used for session tokens.
const BearerPrefix = "Bearer "

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
// Returns the token string without the "Bearer " prefix, or empty string if invalid format.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	if strings.EqualFold(v[0:6], "bearer") {
		if rest := strings.TrimSpace(v[6:]); rest != "" {
			return rest
		}
	}
	return ""
}

// tokenFromHeaders returns a Bearer token from the Authorization response header.
// Some deployments put the issued token there instead of in the body.
func tokenFromHeaders(h http.Header) string {
	return parseBearerToken(h.Get("Authorization"))
}
