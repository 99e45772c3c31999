package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"freshmart/cli/internal/backend"
)

// memStore is an in-memory Store.
type memStore struct {
	mu      sync.Mutex
	token   string
	user    string
	saveErr error
	loadErr error
	clears  int
}

func (s *memStore) SaveSession(token, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token, s.user = token, user
	return nil
}

func (s *memStore) LoadSession() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.user, s.loadErr
}

func (s *memStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	s.token, s.user = "", ""
	return nil
}

func (s *memStore) snapshot() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.user
}

type loginCall = func(context.Context, backend.Credentials) (*backend.AuthResponse, error)

// fakeAPI implements backend.API with overridable hooks and call counters.
type fakeAPI struct {
	mu       sync.Mutex
	calls    map[string]int
	login    loginCall
	admin    loginCall
	customer loginCall
	register func(context.Context, backend.Registration) (*backend.Ack, error)
	logout   func(context.Context, string) error
	validate func(context.Context, string) (bool, error)
}

func (f *fakeAPI) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAPI) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeAPI) Login(ctx context.Context, c backend.Credentials) (*backend.AuthResponse, error) {
	f.count("login")
	if f.login == nil {
		return nil, errNotStubbed
	}
	return f.login(ctx, c)
}

func (f *fakeAPI) AdminLogin(ctx context.Context, c backend.Credentials) (*backend.AuthResponse, error) {
	f.count("admin")
	if f.admin == nil {
		return nil, errNotStubbed
	}
	return f.admin(ctx, c)
}

func (f *fakeAPI) CustomerLogin(ctx context.Context, c backend.Credentials) (*backend.AuthResponse, error) {
	f.count("customer")
	if f.customer == nil {
		return nil, errNotStubbed
	}
	return f.customer(ctx, c)
}

func (f *fakeAPI) Register(ctx context.Context, r backend.Registration) (*backend.Ack, error) {
	f.count("register")
	if f.register == nil {
		return nil, errNotStubbed
	}
	return f.register(ctx, r)
}

func (f *fakeAPI) Logout(ctx context.Context, token string) error {
	f.count("logout")
	if f.logout == nil {
		return nil
	}
	return f.logout(ctx, token)
}

func (f *fakeAPI) Validate(ctx context.Context, token string) (bool, error) {
	f.count("validate")
	if f.validate == nil {
		return false, errNotStubbed
	}
	return f.validate(ctx, token)
}

func (f *fakeAPI) UserExists(ctx context.Context, username string) (bool, error) {
	f.count("exists")
	return username == "taken", nil
}

// grant returns a login hook that issues token for any credentials.
func grant(token string, role Role) loginCall {
	return func(_ context.Context, c backend.Credentials) (*backend.AuthResponse, error) {
		return &backend.AuthResponse{
			Success: true, Token: token, ID: 1,
			Username: c.Username, Email: c.Username + "@x.com", Role: string(role),
		}, nil
	}
}

// signedIn returns a Manager already holding a customer session.
func signedIn(t testing.TB, api *fakeAPI, store *memStore) *Manager {
	t.Helper()
	if api.login == nil {
		api.login = grant("T", RoleCustomer)
	}
	m := New(store, api)
	if _, err := m.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return m
}
