// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by ParseClaims when the token is not a decodable JWT.
// The token stays opaque to the manager in that case.
var ErrNotJWT = errors.New("token is not a JWT")

// Claims is the subset of token claims the CLI displays.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token payload without verifying its signature.
// The result is informational only: the server remains the authority on validity,
// which is checked with Manager.ValidateToken.
func ParseClaims(token string) (*Claims, error) {
	c := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, errors.Join(ErrNotJWT, err)
	}
	return c, nil
}

// ExpiresIn returns the time left before expiry and whether the token carries an exp claim.
// The duration is negative for expired tokens.
func (c *Claims) ExpiresIn(now time.Time) (time.Duration, bool) {
	if c.ExpiresAt == nil {
		return 0, false
	}
	return c.ExpiresAt.Sub(now), true
}

// Expired reports whether the exp claim is in the past.
func (c *Claims) Expired(now time.Time) bool {
	d, ok := c.ExpiresIn(now)
	return ok && d <= 0
}
