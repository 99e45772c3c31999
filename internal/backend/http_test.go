package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestServer(t *testing.T, h http.HandlerFunc) API {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", DefaultEndpoints(), WithHTTPClient(srv.Client()), WithTimeout(2*time.Second))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginRoutes(t *testing.T) {
	tests := []struct {
		name string
		call func(API, context.Context, Credentials) (*AuthResponse, error)
		path string
	}{
		{"login", API.Login, "/api/auth/login"},
		{"admin", API.AdminLogin, "/api/auth/admin/login"},
		{"customer", API.CustomerLogin, "/api/auth/customer/login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != tt.path {
					t.Errorf("got %s %s, want POST %s", r.Method, r.URL.Path, tt.path)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q", ct)
				}
				if _, err := uuid.Parse(r.Header.Get(HeaderRequestID)); err != nil {
					t.Errorf("%s is not a uuid: %v", HeaderRequestID, err)
				}
				if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
					t.Errorf("User-Agent = %q", ua)
				}
				var creds Credentials
				if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
					t.Errorf("decode body: %v", err)
				}
				if creds.Username != "alice" || creds.Password != "pw" {
					t.Errorf("credentials = %+v", creds)
				}
				writeJSON(w, http.StatusOK, map[string]any{
					"success": true, "token": "tok", "type": "Bearer",
					"id": 7, "username": "alice", "email": "a@x.io", "role": "CUSTOMER",
				})
			})

			got, err := tt.call(api, context.Background(), Credentials{Username: "alice", Password: "pw"})
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			want := AuthResponse{Success: true, Token: "tok", Type: "Bearer", ID: 7, Username: "alice", Email: "a@x.io", Role: "CUSTOMER"}
			if *got != want {
				t.Errorf("response = %+v, want %+v", *got, want)
			}
		})
	}
}

func TestLoginTokenFromHeader(t *testing.T) {
	api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "bearer hdr-token")
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "username": "bob"})
	})
	got, err := api.Login(context.Background(), Credentials{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.Token != "hdr-token" {
		t.Errorf("Token = %q, want hdr-token", got.Token)
	}
}

func TestLoginRejected(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"json message", http.StatusUnauthorized, `{"success":false,"message":"Invalid username or password"}`, "Invalid username or password"},
		{"spring error", http.StatusForbidden, `{"status":403,"error":"Forbidden"}`, "Forbidden"},
		{"plain text", http.StatusBadRequest, "Account disabled", "Account disabled"},
		{"html page", http.StatusBadGateway, "<html>bad gateway</html>", ""},
		{"empty", http.StatusInternalServerError, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			_, err := api.Login(context.Background(), Credentials{Username: "x", Password: "y"})
			var re *ResponseError
			if !errors.As(err, &re) {
				t.Fatalf("error = %v, want *ResponseError", err)
			}
			if re.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", re.StatusCode, tt.status)
			}
			if re.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", re.Message, tt.wantMsg)
			}
		})
	}
}

func TestLoginTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	api := New(url, DefaultEndpoints(), WithTimeout(time.Second))
	_, err := api.Login(context.Background(), Credentials{Username: "x", Password: "y"})
	if err == nil {
		t.Fatal("Login() error = nil, want transport error")
	}
	var re *ResponseError
	if errors.As(err, &re) {
		t.Errorf("transport failure reported as ResponseError: %v", re)
	}
}

func TestRegister(t *testing.T) {
	reg := Registration{
		CustomerName: "Ann Lee", Email: "ann@x.io", Password: "Passw0rd!", ConfirmPassword: "Passw0rd!",
		Address: "1 Main St", ContactNumber: "0123456789",
	}
	t.Run("ack", func(t *testing.T) {
		api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/register" {
				t.Errorf("path = %s", r.URL.Path)
			}
			var got Registration
			_ = json.NewDecoder(r.Body).Decode(&got)
			if got != reg {
				t.Errorf("body = %+v", got)
			}
			writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Registered"})
		})
		ack, err := api.Register(context.Background(), reg)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if !ack.Success || ack.Message != "Registered" {
			t.Errorf("ack = %+v", ack)
		}
	})
	t.Run("empty body", func(t *testing.T) {
		api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		ack, err := api.Register(context.Background(), reg)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if !ack.Success {
			t.Errorf("ack = %+v, want success", ack)
		}
	})
	t.Run("conflict", func(t *testing.T) {
		api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]any{"success": false, "message": "Email already registered"})
		})
		_, err := api.Register(context.Background(), reg)
		var re *ResponseError
		if !errors.As(err, &re) || re.Message != "Email already registered" {
			t.Errorf("error = %v", err)
		}
	})
}

func TestLogoutSendsBearer(t *testing.T) {
	api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/logout" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := api.Logout(context.Background(), "tok"); err != nil {
		t.Errorf("Logout() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    bool
		wantErr bool
	}{
		{"valid", http.StatusOK, `{"valid":true}`, true, false},
		{"invalid", http.StatusOK, `{"valid":false}`, false, false},
		{"missing field", http.StatusOK, `{}`, false, false},
		{"unauthorized", http.StatusUnauthorized, "", false, true},
		{"garbage", http.StatusOK, "not json", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/validate" {
					t.Errorf("path = %s", r.URL.Path)
				}
				if q := r.URL.Query().Get("token"); q != "a b" {
					t.Errorf("token query = %q", q)
				}
				var body map[string]string
				_ = json.NewDecoder(r.Body).Decode(&body)
				if body["token"] != "a b" {
					t.Errorf("token body = %q", body["token"])
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			got, err := api.Validate(context.Background(), "a b")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserExists(t *testing.T) {
	api := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/auth/exists" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]bool{"exists": r.URL.Query().Get("username") == "taken@x.io"})
	})
	for name, want := range map[string]bool{"taken@x.io": true, "free@x.io": false} {
		got, err := api.UserExists(context.Background(), name)
		if err != nil {
			t.Fatalf("UserExists(%q) error = %v", name, err)
		}
		if got != want {
			t.Errorf("UserExists(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"  bearer   abc  ", "abc"},
		{"BEARER x.y.z", "x.y.z"},
		{"Bearer", ""},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseBearerToken(tt.in); got != tt.want {
				t.Errorf("parseBearerToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
