// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nav derives the storefront's navigation from the published session
// state and gates role-specific routes.
//
// Everything here is presentation. Hiding a link or refusing a route only
// spares the user a request the server would reject anyway.
package nav

import "freshmart/cli/internal/session"

// Link is a navigation entry.
type Link struct {
	Label string
	Path  string
}

// PathLogout is the pseudo-route for the logout action.
const PathLogout = "/logout"

var (
	publicLinks = []Link{
		{"Home", "/"},
		{"Products", "/products"},
		{"Search", "/products/search"},
	}
	guestLinks = []Link{
		{"Login", "/login"},
		{"Register", "/register"},
		{"Admin", "/admin/login"},
	}
	customerLinks = []Link{
		{"Dashboard", "/customer/dashboard"},
		{"My Orders", "/customer/orders"},
		{"Profile", "/customer/profile"},
	}
	adminLinks = []Link{
		{"Dashboard", "/admin/dashboard"},
		{"Customers", "/admin/customers"},
		{"Manage Products", "/admin/products"},
		{"Orders", "/admin/orders"},
	}
	logoutLink = Link{"Logout", PathLogout}
)

// Links returns the entries to offer for s. Signed-in users with a role the
// client does not recognise get the public entries and Logout.
func Links(s session.State) []Link {
	out := append([]Link(nil), publicLinks...)
	switch {
	case !s.Authenticated:
		return append(out, guestLinks...)
	case s.IsAdmin():
		out = append(out, adminLinks...)
	case s.IsCustomer():
		out = append(out, customerLinks...)
	}
	return append(out, logoutLink)
}
