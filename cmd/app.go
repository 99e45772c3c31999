// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"freshmart/cli/internal/backend"
	"freshmart/cli/internal/catalog"
	"freshmart/cli/internal/config"
	apperrors "freshmart/cli/internal/errors"
	"freshmart/cli/internal/httperrors"
	"freshmart/cli/internal/keychain"
	"freshmart/cli/internal/logging"
	"freshmart/cli/internal/session"

	"go.uber.org/zap"
)

// app holds the collaborators built once per process. The session manager is
// the only writer of the session store; everything else reads through it.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	store   *keychain.Manager
	sess    *session.Manager
	catalog *catalog.Client
}

// newApp loads configuration and wires the session manager to its store and
// the auth service.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logging.NewLogger(cfg.LogLevel, verbose || logging.Verbose())

	store, err := keychain.Open(cfg.Store)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StorageFailed, "could not open session store", err)
	}
	log.Debug("session store opened", zap.String("backend", store.Name()), zap.String("api_url", cfg.APIURL))

	api := backend.New(cfg.APIURL, backend.DefaultEndpoints(),
		backend.WithTimeout(cfg.RequestTimeout()),
		backend.WithUserAgent("freshmart-cli/"+Version),
		backend.WithLogger(log.Named("backend")))
	sess := session.New(store, api, session.WithLogger(log.Named("session")))
	cat := catalog.New(cfg.APIURL, sess,
		catalog.WithTimeout(cfg.RequestTimeout()),
		catalog.WithLogger(log.Named("catalog")))

	return &app{cfg: cfg, log: log, store: store, sess: sess, catalog: cat}, nil
}

// Close releases the store and flushes logs.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Debug("closing session store", zap.Error(err))
	}
	_ = a.log.Sync()
}

// withApp builds the app, runs fn and tears the app down.
func withApp(fn func(a *app) error) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// host returns the configured service host for error messages.
func (a *app) host() string {
	return httperrors.ExtractHostFromURL(a.cfg.APIURL)
}

// reportRequestError prints network failures with troubleshooting hints and
// returns an error carrying the user-facing message.
func (a *app) reportRequestError(err error, context string) error {
	if httperrors.IsNetworkError(err) {
		return httperrors.FormatNetworkError(err, context, a.host())
	}
	return err
}
