// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// sqliteBackend keeps the session entries in a private key/value table.
type sqliteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens the session database at path. The file is created
// with 0600 permissions.
func OpenSQLite(path string) (*Manager, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}
	_ = f.Close()

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating session database: %w", err)
	}

	return &Manager{backend: &sqliteBackend{db: db}, name: "sqlite", closer: db.Close}, nil
}

func (s *sqliteBackend) Set(key, value string) error {
	return s.SetAll(map[string]string{key: value})
}

func (s *sqliteBackend) Get(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *sqliteBackend) Delete(key string) error {
	return s.DeleteAll(key)
}

// SetAll upserts every entry in one transaction.
func (s *sqliteBackend) SetAll(values map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for k, v := range values {
		if _, err := tx.Exec(`INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// DeleteAll removes the given keys in one transaction.
func (s *sqliteBackend) DeleteAll(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := tx.Exec(`DELETE FROM session WHERE key = ?`, k); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
