package cmd

import (
	"testing"

	"freshmart/cli/internal/session"
)

func TestRoleLabel(t *testing.T) {
	tests := []struct {
		role session.Role
		want string
	}{
		{session.RoleSuperAdmin, "Super admin"},
		{session.RoleAdmin, "Admin"},
		{session.RoleCustomer, "Customer"},
		{"", "unknown"},
		{"WAREHOUSE", "warehouse"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := roleLabel(tt.role); got != tt.want {
				t.Errorf("roleLabel(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestIdentityLine(t *testing.T) {
	tests := []struct {
		name string
		user session.Identity
		want string
	}{
		{
			name: "with email",
			user: session.Identity{Username: "alice", Email: "alice@example.com", Role: session.RoleCustomer},
			want: "alice <alice@example.com> (Customer)",
		},
		{
			name: "email used as username",
			user: session.Identity{Username: "bob@example.com", Email: "bob@example.com", Role: session.RoleAdmin},
			want: "bob@example.com (Admin)",
		},
		{
			name: "no email",
			user: session.Identity{Username: "carol", Role: session.RoleSuperAdmin},
			want: "carol (Super admin)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := identityLine(&tt.user); got != tt.want {
				t.Errorf("identityLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
