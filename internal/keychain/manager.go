// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides the persisted session store for freshmart.
// It keeps exactly two string entries, the raw session token and the serialized
// identity record, under the fixed keys KeyToken and KeyUser, and always writes
// and clears them together.
//
// Several backends are supported: the OS credential store through the keyring
// library (macOS Keychain, Windows Credential Manager), the macOS `security`
// command, and a private SQLite database for systems without a native keychain.
// A Manager is safe for concurrent use, but only the session manager should
// write to it.
package keychain

import (
	"errors"
	"fmt"
	"sync"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "freshmart"

// Keys used for the two persisted session entries.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound is returned by backends when a key has no stored value.
var ErrNotFound = errors.New("keychain: key not found")

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// batchBackend is implemented by backends that can write several keys atomically.
type batchBackend interface {
	SetAll(values map[string]string) error
	DeleteAll(keys ...string) error
}

// Manager provides centralized, thread-safe operations on the session store.
type Manager struct {
	mu      sync.RWMutex
	backend keychainBackend
	name    string
	closer  func() error
}

// Name reports which backend the manager writes to.
func (m *Manager) Name() string { return m.name }

// SaveSession stores the token and serialized identity as one unit.
// When the backend cannot write both atomically, a failed second write removes
// the first so no half session is left behind.
func (m *Manager) SaveSession(token, user string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.backend.(batchBackend); ok {
		return b.SetAll(map[string]string{KeyToken: token, KeyUser: user})
	}

	if err := m.backend.Set(KeyToken, token); err != nil {
		return fmt.Errorf("save %s: %w", KeyToken, err)
	}
	if err := m.backend.Set(KeyUser, user); err != nil {
		_ = m.backend.Delete(KeyToken)
		return fmt.Errorf("save %s: %w", KeyUser, err)
	}
	return nil
}

// LoadSession returns the stored token and identity. Missing entries come back
// as empty strings without error.
func (m *Manager) LoadSession() (token, user string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, err = m.get(KeyToken)
	if err != nil {
		return "", "", err
	}
	user, err = m.get(KeyUser)
	if err != nil {
		return "", "", err
	}
	return token, user, nil
}

func (m *Manager) get(key string) (string, error) {
	v, err := m.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return v, nil
}

// ClearSession removes both entries. Missing entries are not an error.
func (m *Manager) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.backend.(batchBackend); ok {
		return b.DeleteAll(KeyToken, KeyUser)
	}

	var errs []error
	for _, key := range []string{KeyToken, KeyUser} {
		if err := m.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, fmt.Errorf("clear %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases backend resources such as the SQLite handle.
func (m *Manager) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer()
}
