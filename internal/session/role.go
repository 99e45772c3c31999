// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "strings"

// Role is the privilege level the auth service assigns to an account.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin is true for ADMIN and SUPER_ADMIN.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsCustomer is true for CUSTOMER only.
func (r Role) IsCustomer() bool {
	return r == RoleCustomer
}

// ParseRole converts user input or a token claim to a Role. Matching is
// case-insensitive and tolerates Spring's "ROLE_" prefix. Unknown values yield "".
func ParseRole(s string) Role {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "ROLE_")
	s = strings.ReplaceAll(s, "-", "_")
	if r := Role(s); r.Valid() {
		return r
	}
	return ""
}
