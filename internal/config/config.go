// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token goes to the session store.
//
// Precedence, lowest to highest: built-in defaults, config.json, a .env file in the
// working directory, then process environment variables.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"freshmart/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// Store backends understood by the session store factory.
const (
	StoreKeyring = "keyring"
	StoreSQLite  = "sqlite"
)

// Environment variables that override file settings.
const (
	EnvAPIURL   = "FRESHMART_API_URL"
	EnvStore    = "FRESHMART_STORE"
	EnvLogLevel = "FRESHMART_LOG_LEVEL"
	EnvTimeout  = "FRESHMART_TIMEOUT"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// APIURL is the storefront origin; auth lives under /api/auth.
	APIURL   string `json:"api_url"`
	Store    string `json:"store"`
	LogLevel string `json:"log_level"`
	// Timeout is the per-request HTTP timeout in seconds.
	Timeout int `json:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:   "http://localhost:8080",
		Store:    defaultStore(),
		LogLevel: "info",
		Timeout:  10,
	}
}

// defaultStore picks the native keychain where the keyring library has one we trust.
func defaultStore() string {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return StoreKeyring
	}
	return StoreSQLite
}

// RequestTimeout returns Timeout as a duration, falling back to the default.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return time.Duration(Default().Timeout) * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Environment overrides
// are applied on top in both cases.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	// A missing .env is the normal case.
	_ = godotenv.Load()
	applyEnv(&c)
	return c, nil
}

// LoadFile reads only the config file over the defaults. Use it before Save so
// environment overrides are not written back.
func LoadFile() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return c, err
	}
	return c, nil
}

func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.APIURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(EnvStore)); v != "" {
		c.Store = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Timeout = n
		}
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
