package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"CUSTOMER", RoleCustomer},
		{"admin", RoleAdmin},
		{" Super_Admin ", RoleSuperAdmin},
		{"super-admin", RoleSuperAdmin},
		{"ROLE_ADMIN", RoleAdmin},
		{"guest", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseRole(tt.in); got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIdentityCodec(t *testing.T) {
	in := Identity{ID: 9, Username: "dave", Email: "d@x.com", Role: RoleSuperAdmin}
	s, err := encodeIdentity(in)
	if err != nil {
		t.Fatalf("encodeIdentity() error = %v", err)
	}
	out, err := decodeIdentity(s)
	if err != nil {
		t.Fatalf("decodeIdentity() error = %v", err)
	}
	if *out != in {
		t.Errorf("decoded = %+v, want %+v", *out, in)
	}

	// Entries written by the web client carry extra fields.
	web := `{"id":2,"username":"eve","email":"e@x.com","role":"CUSTOMER","type":"Bearer"}`
	if _, err := decodeIdentity(web); err != nil {
		t.Errorf("decodeIdentity(web) error = %v", err)
	}

	for _, bad := range []string{"", "undefined", "[1,2]", `{"id":"x"}`, "{}"} {
		if _, err := decodeIdentity(bad); !errors.Is(err, errMalformedIdentity) {
			t.Errorf("decodeIdentity(%q) error = %v, want errMalformedIdentity", bad, err)
		}
	}
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "root",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("server-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	c, err := ParseClaims(tok)
	if err != nil {
		t.Fatalf("ParseClaims() error = %v", err)
	}
	if c.Subject != "root" || ParseRole(c.Role) != RoleAdmin {
		t.Errorf("claims = %+v", c)
	}
	left, ok := c.ExpiresIn(exp.Add(-time.Minute))
	if !ok || left != time.Minute {
		t.Errorf("ExpiresIn() = %v, %v", left, ok)
	}
	if c.Expired(exp.Add(-time.Second)) || !c.Expired(exp.Add(time.Second)) {
		t.Error("Expired() wrong around exp")
	}

	if _, err := ParseClaims("opaque-session-id"); !errors.Is(err, ErrNotJWT) {
		t.Errorf("ParseClaims(opaque) error = %v, want ErrNotJWT", err)
	}

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	c, err = ParseClaims(noExp)
	if err != nil {
		t.Fatalf("ParseClaims(noExp) error = %v", err)
	}
	if _, ok := c.ExpiresIn(time.Now()); ok || c.Expired(time.Now()) {
		t.Error("token without exp reported an expiry")
	}
}
