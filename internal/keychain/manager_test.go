// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
)

func newStores(t *testing.T) map[string]*Manager {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return map[string]*Manager{
		"keyring": NewWithKeyring(keyring.NewArrayKeyring(nil)),
		"sqlite":  db,
	}
}

func TestSaveLoadClear(t *testing.T) {
	for name, m := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := m.SaveSession("T", `{"id":1,"username":"alice"}`); err != nil {
				t.Fatalf("SaveSession() error = %v", err)
			}
			token, user, err := m.LoadSession()
			if err != nil {
				t.Fatalf("LoadSession() error = %v", err)
			}
			if token != "T" || user != `{"id":1,"username":"alice"}` {
				t.Errorf("LoadSession() = %q, %q", token, user)
			}

			if err := m.SaveSession("T2", `{"id":2,"username":"bob"}`); err != nil {
				t.Fatalf("overwrite SaveSession() error = %v", err)
			}
			if token, _, _ := m.LoadSession(); token != "T2" {
				t.Errorf("token after overwrite = %q, want T2", token)
			}

			if err := m.ClearSession(); err != nil {
				t.Fatalf("ClearSession() error = %v", err)
			}
			token, user, err = m.LoadSession()
			if err != nil {
				t.Fatalf("LoadSession() after clear error = %v", err)
			}
			if token != "" || user != "" {
				t.Errorf("LoadSession() after clear = %q, %q; want empty", token, user)
			}
		})
	}
}

func TestClearEmptyStore(t *testing.T) {
	for name, m := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := m.ClearSession(); err != nil {
				t.Errorf("ClearSession() on empty store error = %v", err)
			}
		})
	}
}

// flakyBackend fails every write to failKey.
type flakyBackend struct {
	data    map[string]string
	failKey string
}

func (f *flakyBackend) Set(key, value string) error {
	if key == f.failKey {
		return errors.New("write refused")
	}
	f.data[key] = value
	return nil
}

func (f *flakyBackend) Get(key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *flakyBackend) Delete(key string) error {
	if _, ok := f.data[key]; !ok {
		return ErrNotFound
	}
	delete(f.data, key)
	return nil
}

func TestSaveSessionRollsBackToken(t *testing.T) {
	fb := &flakyBackend{data: map[string]string{}, failKey: KeyUser}
	m := &Manager{backend: fb, name: "flaky"}

	if err := m.SaveSession("T", "{}"); err == nil {
		t.Fatal("SaveSession() error = nil, want failure")
	}
	if _, ok := fb.data[KeyToken]; ok {
		t.Errorf("token left behind after failed identity write")
	}
}

func TestOpenUnknownStore(t *testing.T) {
	if _, err := Open("floppy"); err == nil {
		t.Error("Open(\"floppy\") error = nil, want error")
	}
}
