// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"testing"

	apperrors "freshmart/cli/internal/errors"

	"go.uber.org/zap/zapcore"
)

func TestPresentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "typed error shows message only",
			err:  apperrors.Wrap(apperrors.AuthFailed, "Invalid username or password", errors.New("401")),
			want: "login failed: Invalid username or password",
		},
		{
			name: "plain error is masked",
			err:  errors.New(`Post "http://shopper:pw@localhost/api/auth/login": EOF`),
			want: `login failed: Post "http://*:*@localhost/api/auth/login": EOF`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PresentError("login failed", tt.err); got != tt.want {
				t.Errorf("PresentError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLoggerSilentByDefault(t *testing.T) {
	if l := NewLogger("info", false); l.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("info logger without verbose should be a no-op")
	}
	if l := NewLogger("info", true); !l.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("verbose logger should enable debug")
	}
}
