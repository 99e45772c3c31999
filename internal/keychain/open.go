// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"fmt"
	"path/filepath"
	"runtime"

	"freshmart/cli/internal/config"
	"freshmart/cli/internal/xdg"
)

// Open creates the store selected by kind (config.StoreKeyring or config.StoreSQLite).
func Open(kind string) (*Manager, error) {
	switch kind {
	case config.StoreKeyring:
		return openNative()
	case config.StoreSQLite, "":
		dir, err := xdg.StateDir()
		if err != nil {
			return nil, err
		}
		return OpenSQLite(filepath.Join(dir, "session.db"))
	default:
		return nil, fmt.Errorf("unknown session store %q (want %q or %q)", kind, config.StoreKeyring, config.StoreSQLite)
	}
}

// openNative prefers the macOS security command and falls back to the keyring library.
func openNative() (*Manager, error) {
	if runtime.GOOS == "darwin" {
		if backend, err := newSecurityBackend(); err == nil {
			return &Manager{backend: backend, name: "macos-security"}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return NewWithKeyring(ring), nil
}
