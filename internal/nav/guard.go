// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package nav

import (
	"errors"
	"strings"

	"freshmart/cli/internal/session"
)

var (
	// ErrNotAuthenticated means the route needs a session and none is held.
	ErrNotAuthenticated = errors.New("please log in to continue")
	// ErrForbidden means the session's role may not open the route.
	ErrForbidden = errors.New("this page is not available for your account")
)

// Access is the requirement a route places on the session.
type Access int

const (
	Public Access = iota
	Authenticated
	CustomerOnly
	AdminOnly
)

func (a Access) String() string {
	switch a {
	case Authenticated:
		return "authenticated"
	case CustomerOnly:
		return "customer"
	case AdminOnly:
		return "admin"
	}
	return "public"
}

// Redirect targets for refused routes.
const (
	LoginPath      = "/login"
	AdminLoginPath = "/admin/login"
	HomePath       = "/"
)

// StateSource is implemented by *session.Manager.
type StateSource interface {
	State() session.State
}

// Guard checks routes against the current session.
type Guard struct {
	src StateSource
}

// NewGuard returns a Guard reading from src.
func NewGuard(src StateSource) *Guard {
	return &Guard{src: src}
}

// RequireAuth fails with ErrNotAuthenticated when no session is held.
func (g *Guard) RequireAuth() error {
	if !g.src.State().Authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin needs an ADMIN or SUPER_ADMIN session.
func (g *Guard) RequireAdmin() error {
	s := g.src.State()
	switch {
	case !s.Authenticated:
		return ErrNotAuthenticated
	case !s.IsAdmin():
		return ErrForbidden
	}
	return nil
}

// RequireCustomer needs a CUSTOMER session.
func (g *Guard) RequireCustomer() error {
	s := g.src.State()
	switch {
	case !s.Authenticated:
		return ErrNotAuthenticated
	case !s.IsCustomer():
		return ErrForbidden
	}
	return nil
}

// Require dispatches on a.
func (g *Guard) Require(a Access) error {
	switch a {
	case Authenticated:
		return g.RequireAuth()
	case CustomerOnly:
		return g.RequireCustomer()
	case AdminOnly:
		return g.RequireAdmin()
	}
	return nil
}

// AccessFor returns the requirement for path. Paths under /admin/ need an
// admin, paths under /customer/ need a customer; everything else is public.
func AccessFor(path string) Access {
	switch {
	case path == AdminLoginPath:
		return Public
	case strings.HasPrefix(path, "/admin/"):
		return AdminOnly
	case strings.HasPrefix(path, "/customer/"):
		return CustomerOnly
	}
	return Public
}

// Check decides whether path may be opened. When it may not, it returns the
// path to send the user to along with the reason.
func (g *Guard) Check(path string) (redirect string, err error) {
	a := AccessFor(path)
	err = g.Require(a)
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, ErrNotAuthenticated) && a == AdminOnly:
		return AdminLoginPath, err
	case errors.Is(err, ErrNotAuthenticated):
		return LoginPath, err
	}
	return HomePath, err
}
