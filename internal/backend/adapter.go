// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the
// storefront authentication service. It defines the API contract for login,
// registration, logout and token validation, plus the JSON wire types exchanged
// with the service. The package includes both the interface definition and an
// HTTP-based implementation.
package backend

import "context"

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the login response body. Every field except Success is optional;
// the service is not consistent about which success signal it sends.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	Type     string `json:"type,omitempty"`
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Registration is the customer sign-up payload.
type Registration struct {
	CustomerName    string `json:"customerName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address"`
	ContactNumber   string `json:"contactNumber"`
}

// Ack is the generic {success, message} acknowledgement.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// API defines the auth service operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Login authenticates against the general login endpoint.
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	// AdminLogin authenticates against the elevated-privilege endpoint.
	AdminLogin(ctx context.Context, creds Credentials) (*AuthResponse, error)
	// CustomerLogin authenticates against the customer-only endpoint.
	CustomerLogin(ctx context.Context, creds Credentials) (*AuthResponse, error)
	// Register creates a customer account. It never issues a token.
	Register(ctx context.Context, reg Registration) (*Ack, error)
	// Logout asks the service to end the session for accessToken.
	Logout(ctx context.Context, accessToken string) error
	// Validate reports whether the service still accepts token.
	Validate(ctx context.Context, token string) (bool, error)
	// UserExists reports whether a username or email is already registered.
	UserExists(ctx context.Context, username string) (bool, error)
}
