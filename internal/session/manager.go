// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the storefront login session for the CLI.
//
// A single Manager is constructed per process and passed to every consumer.
// It is the only writer of the persisted token and identity, and it publishes
// every state transition to registered listeners. Readers see either the state
// before a transition or the state after it, never a mix of the two.
//
// Role checks exposed here drive what the CLI offers. They are not an
// authorization boundary; the server enforces access on every request.
package session

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"freshmart/cli/internal/backend"
	apperrors "freshmart/cli/internal/errors"
	"freshmart/cli/internal/logging"

	"go.uber.org/zap"
)

// LogoutMessage is the acknowledgement returned by Logout.
const LogoutMessage = "Logged out successfully"

// Registration and Ack are the service's wire types, re-exported for callers
// that only depend on this package.
type (
	Registration = backend.Registration
	Ack          = backend.Ack
)

// Identity is the authenticated account as reported by the auth service.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Session is an established login.
type Session struct {
	Token    string
	Identity Identity
}

// State is the published view of the session.
type State struct {
	Authenticated bool
	// User is nil when Authenticated is false.
	User *Identity
}

// IsAdmin reports whether the published user holds an admin role.
func (s State) IsAdmin() bool { return s.User != nil && s.User.Role.IsAdmin() }

// IsCustomer reports whether the published user is a customer.
func (s State) IsCustomer() bool { return s.User != nil && s.User.Role.IsCustomer() }

// Store persists the token and the serialised identity as one unit.
// *keychain.Manager implements it.
type Store interface {
	SaveSession(token, user string) error
	LoadSession() (token, user string, err error)
	ClearSession() error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// Manager holds the current session and mediates every credential operation.
//
// Listeners are called synchronously after each transition, outside the state
// lock, so they may read the Manager. They must not call Login, Logout,
// ValidateToken, Invalidate or Subscribe.
type Manager struct {
	store Store
	api   backend.API
	log   *zap.Logger

	// pub serialises store writes with publication so persisted and published
	// state change in the same order.
	pub sync.Mutex

	mu    sync.RWMutex
	token string
	user  *Identity

	lmu       sync.Mutex
	listeners map[uint64]func(State)
	nextID    uint64
}

// New builds a Manager and restores any session found in store. A restored
// session is trusted until ValidateToken says otherwise. Corrupt or partial
// persisted state is cleared.
func New(store Store, api backend.API, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		api:       api,
		log:       zap.NewNop(),
		listeners: make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.restore()
	return m
}

func (m *Manager) restore() {
	token, user, err := m.store.LoadSession()
	if err != nil {
		m.log.Warn("session store unreadable, starting signed out", zap.Error(err))
		return
	}
	if token == "" && user == "" {
		return
	}
	if token == "" || user == "" {
		m.log.Debug("partial session in store, clearing",
			zap.Bool("has_token", token != ""), zap.Bool("has_user", user != ""))
		m.wipeStore()
		return
	}
	id, err := decodeIdentity(user)
	if err != nil {
		m.log.Debug("stored identity unreadable, clearing", zap.Error(err))
		m.wipeStore()
		return
	}
	m.token, m.user = token, id
	m.log.Debug("session restored", zap.String("username", id.Username), logging.Token(token))
}

// Login authenticates through the general login endpoint.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	return m.authenticate(ctx, "login", m.api.Login, username, password)
}

// AdminLogin authenticates through the admin endpoint. The returned role is
// stored as reported; it is not checked to be an admin role.
func (m *Manager) AdminLogin(ctx context.Context, username, password string) (*Session, error) {
	return m.authenticate(ctx, "admin login", m.api.AdminLogin, username, password)
}

// CustomerLogin authenticates through the customer endpoint.
func (m *Manager) CustomerLogin(ctx context.Context, username, password string) (*Session, error) {
	return m.authenticate(ctx, "customer login", m.api.CustomerLogin, username, password)
}

type loginFunc func(context.Context, backend.Credentials) (*backend.AuthResponse, error)

// authenticate makes a single attempt. On any failure the current session is
// left exactly as it was.
func (m *Manager) authenticate(ctx context.Context, op string, call loginFunc, username, password string) (*Session, error) {
	resp, err := call(ctx, backend.Credentials{Username: username, Password: password})
	if err != nil {
		m.log.Debug(op+" failed", zap.String("username", username), logging.Masked("error", err.Error()))
		return nil, apperrors.Wrap(apperrors.AuthFailed, failureMessage(err), err)
	}
	// Either signal is enough; the service does not always send both.
	if !resp.Success && resp.Token == "" {
		m.log.Debug(op+" rejected", zap.String("username", username))
		return nil, apperrors.New(apperrors.AuthFailed, messageOr(resp.Message))
	}
	if resp.Token == "" {
		return nil, apperrors.New(apperrors.AuthFailed, "login succeeded but no token was issued")
	}

	id := Identity{
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Role:     Role(resp.Role),
	}
	if id.Username == "" {
		id.Username = username
	}
	user, err := encodeIdentity(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StorageFailed, "could not save session", err)
	}

	m.pub.Lock()
	defer m.pub.Unlock()
	if err := m.store.SaveSession(resp.Token, user); err != nil {
		m.log.Warn("session not persisted", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.StorageFailed, "could not save session", err)
	}
	m.commit(resp.Token, &id)
	m.log.Debug(op+" succeeded", zap.String("username", id.Username), zap.String("role", string(id.Role)))
	return &Session{Token: resp.Token, Identity: id}, nil
}

// Register forwards a registration. It never signs the user in.
func (m *Manager) Register(ctx context.Context, reg Registration) (*Ack, error) {
	ack, err := m.api.Register(ctx, reg)
	if err != nil {
		m.log.Debug("register failed", zap.String("email", reg.Email), logging.Masked("error", err.Error()))
		return nil, apperrors.Wrap(apperrors.AuthFailed, failureMessage(err), err)
	}
	if !ack.Success {
		return nil, apperrors.New(apperrors.AuthFailed, messageOr(ack.Message))
	}
	return ack, nil
}

// UserExists asks the service whether a username or email is taken.
func (m *Manager) UserExists(ctx context.Context, username string) (bool, error) {
	ok, err := m.api.UserExists(ctx, username)
	if err != nil {
		return false, apperrors.Wrap(apperrors.AuthFailed, failureMessage(err), err)
	}
	return ok, nil
}

// Logout ends the session. The remote call is best effort; local state is
// always cleared and the acknowledgement is always successful.
func (m *Manager) Logout(ctx context.Context) *Ack {
	if token := m.Token(); token != "" {
		if err := m.api.Logout(ctx, token); err != nil {
			m.log.Debug("remote logout failed, clearing locally", logging.Masked("error", err.Error()))
		}
	}
	m.pub.Lock()
	m.clearLocked()
	m.pub.Unlock()
	return &Ack{Success: true, Message: LogoutMessage}
}

// ValidateToken checks the held token with the service. Without a token it
// returns false and makes no request. An invalid verdict or any request error
// clears the session.
func (m *Manager) ValidateToken(ctx context.Context) bool {
	token := m.Token()
	if token == "" {
		return false
	}
	valid, err := m.api.Validate(ctx, token)
	if err == nil && valid {
		return true
	}
	if err != nil {
		m.log.Debug("token validation failed", logging.Masked("error", err.Error()))
	} else {
		m.log.Debug("token rejected by server", logging.Token(token))
	}

	m.pub.Lock()
	defer m.pub.Unlock()
	// A login that completed while the request was in flight keeps its session.
	if m.Token() == token {
		m.clearLocked()
	}
	return false
}

// Invalidate drops the session locally without contacting the service.
// API clients call it when a request comes back 401.
func (m *Manager) Invalidate() {
	m.pub.Lock()
	defer m.pub.Unlock()
	if m.IsAuthenticated() {
		m.log.Debug("session invalidated")
	}
	m.clearLocked()
}

// Token returns the bearer token, or "" when signed out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns a copy of the signed-in identity, or nil.
func (m *Manager) CurrentUser() *Identity {
	return m.State().User
}

// IsAuthenticated reports whether a session is held.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// IsAdmin reports whether the current user has an admin role.
func (m *Manager) IsAdmin() bool { return m.State().IsAdmin() }

// IsCustomer reports whether the current user is a customer.
func (m *Manager) IsCustomer() bool { return m.State().IsCustomer() }

// State returns a snapshot of the published state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateLocked()
}

func (m *Manager) stateLocked() State {
	if m.user == nil {
		return State{}
	}
	u := *m.user
	return State{Authenticated: true, User: &u}
}

// AuthHeader returns the headers for an authenticated JSON request. Without a
// token there is no Authorization key and the request goes out anonymously.
func (m *Manager) AuthHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if t := m.Token(); t != "" {
		h.Set("Authorization", backend.BearerValue(t))
	}
	return h
}

// Claims decodes the held token's claims. It returns ErrNotJWT for opaque tokens.
func (m *Manager) Claims() (*Claims, error) {
	t := m.Token()
	if t == "" {
		return nil, errors.New("not signed in")
	}
	return ParseClaims(t)
}

// Subscribe registers fn and calls it at once with the current state, then
// after every transition. Call the returned function to detach.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.pub.Lock()
	defer m.pub.Unlock()

	m.lmu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.lmu.Unlock()

	fn(m.State())

	var once sync.Once
	return func() {
		once.Do(func() {
			m.lmu.Lock()
			delete(m.listeners, id)
			m.lmu.Unlock()
		})
	}
}

// clearLocked wipes the store and publishes the signed-out state. m.pub must be held.
func (m *Manager) clearLocked() {
	m.wipeStore()
	m.commit("", nil)
}

func (m *Manager) wipeStore() {
	if err := m.store.ClearSession(); err != nil {
		m.log.Warn("could not clear session store", zap.Error(err))
	}
}

// commit swaps the in-memory session and notifies listeners. m.pub must be held.
func (m *Manager) commit(token string, user *Identity) {
	m.mu.Lock()
	m.token, m.user = token, user
	st := m.stateLocked()
	m.mu.Unlock()

	m.lmu.Lock()
	fns := make([]func(State), 0, len(m.listeners))
	ids := make([]uint64, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	m.lmu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// failureMessage picks the text shown for a failed request: the server's
// message, then the error itself, then the generic fallback.
func failureMessage(err error) string {
	var re *backend.ResponseError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return messageOr(logging.Mask(err.Error()))
}

func messageOr(msg string) string {
	if msg == "" {
		return apperrors.GenericMessage
	}
	return msg
}
