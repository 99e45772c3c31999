// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// Endpoints contains REST API endpoint paths relative to the service origin.
type Endpoints struct {
	Login         string `json:"login"`          // e.g., "/api/auth/login"
	AdminLogin    string `json:"admin_login"`    // e.g., "/api/auth/admin/login"
	CustomerLogin string `json:"customer_login"` // e.g., "/api/auth/customer/login"
	Register      string `json:"register"`       // e.g., "/api/auth/register"
	Logout        string `json:"logout"`         // e.g., "/api/auth/logout"
	Validate      string `json:"validate"`       // e.g., "/api/auth/validate"
	Exists        string `json:"exists"`         // e.g., "/api/auth/exists"
}

// AuthBasePath is the fixed base path of the auth service.
const AuthBasePath = "/api/auth"

// DefaultEndpoints returns the storefront's auth routes.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:         AuthBasePath + "/login",
		AdminLogin:    AuthBasePath + "/admin/login",
		CustomerLogin: AuthBasePath + "/customer/login",
		Register:      AuthBasePath + "/register",
		Logout:        AuthBasePath + "/logout",
		Validate:      AuthBasePath + "/validate",
		Exists:        AuthBasePath + "/exists",
	}
}
