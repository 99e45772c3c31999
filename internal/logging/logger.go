// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVerbose turns on diagnostic logging for every command when set to "1".
const EnvVerbose = "FRESHMART_VERBOSE"

// Verbose reports whether diagnostic logging was requested through the environment.
func Verbose() bool {
	return os.Getenv(EnvVerbose) == "1"
}

// NewLogger builds the diagnostic logger. User-facing output goes through pterm;
// zap output is reserved for debugging and is silent unless verbose is set or the
// configured level is "debug".
func NewLogger(level string, verbose bool) *zap.Logger {
	if !verbose && !strings.EqualFold(strings.TrimSpace(level), "debug") {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Token renders a bearer token as a log field without exposing it.
func Token(token string) zap.Field {
	if token == "" {
		return zap.String("token", "<none>")
	}
	return zap.String("token", "***")
}

// Masked is zap.String with Mask applied to the value.
func Masked(key, value string) zap.Field {
	return zap.String(key, Mask(value))
}
