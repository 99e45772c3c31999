package validation

import (
	"reflect"
	"strings"
	"testing"

	"freshmart/cli/internal/backend"
	apperrors "freshmart/cli/internal/errors"
)

func validRegistration() backend.Registration {
	return backend.Registration{
		CustomerName:    "Ann Lee",
		Email:           "ann.lee@example.com",
		Password:        "Passw0rd!",
		ConfirmPassword: "Passw0rd!",
		Address:         "12 Market Street",
		ContactNumber:   "9876543210",
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*backend.Registration)
		wantFields []string
	}{
		{"valid", func(*backend.Registration) {}, nil},
		{"missing name", func(r *backend.Registration) { r.CustomerName = "  " }, []string{"customerName"}},
		{"name with digits", func(r *backend.Registration) { r.CustomerName = "R2D2" }, []string{"customerName"}},
		{"name too long", func(r *backend.Registration) { r.CustomerName = strings.Repeat("a", 101) }, []string{"customerName"}},
		{"bad email", func(r *backend.Registration) { r.Email = "ann@localhost" }, []string{"email"}},
		{"short password", func(r *backend.Registration) { r.Password, r.ConfirmPassword = "Pa0!", "Pa0!" }, []string{"password"}},
		{"password without special", func(r *backend.Registration) { r.Password, r.ConfirmPassword = "Passw0rdX", "Passw0rdX" }, []string{"password"}},
		{"password with disallowed char", func(r *backend.Registration) { r.Password, r.ConfirmPassword = "Passw0rd!#", "Passw0rd!#" }, []string{"password"}},
		{"mismatch", func(r *backend.Registration) { r.ConfirmPassword = "Passw0rd?" }, []string{"confirmPassword"}},
		{"address too long", func(r *backend.Registration) { r.Address = strings.Repeat("x", 501) }, []string{"address"}},
		{"phone with dashes", func(r *backend.Registration) { r.ContactNumber = "987-654-3210" }, []string{"contactNumber"}},
		{"everything empty", func(r *backend.Registration) { *r = backend.Registration{} },
			[]string{"customerName", "email", "password", "address", "contactNumber"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)
			err := Registration(reg)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Registration() error = %v", err)
				}
				return
			}
			if !apperrors.Is(err, apperrors.InvalidInput) {
				t.Fatalf("error = %v, want invalid_input", err)
			}
			if got := Fields(err); !reflect.DeepEqual(got, tt.wantFields) {
				t.Errorf("Fields() = %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestRegistrationMessage(t *testing.T) {
	reg := validRegistration()
	reg.Email = ""
	reg.ContactNumber = "123"
	err := Registration(reg)
	want := "Email is required; Contact number must be exactly 10 digits"
	if got := apperrors.MessageOf(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
	if got := Messages(err); len(got) != 2 || got[0] != "Email is required" {
		t.Errorf("Messages() = %v", got)
	}
}
