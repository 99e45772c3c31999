// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"freshmart/cli/internal/session"
	"freshmart/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// withSpinner runs fn behind a pterm spinner. The spinner is skipped when
// stdout is not a terminal so piped output stays clean.
func withSpinner(text string, fn func() error) error {
	if !terminal.IsInteractive() {
		return fn()
	}
	cursor.Hide()
	defer cursor.Show()
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return fn()
	}
	err = fn()
	_ = spinner.Stop()
	return err
}

// promptLine asks for a value and clears the prompt once it is answered.
func promptLine(label string) (string, error) {
	prompt := label + ": "
	v, err := terminal.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	terminal.ClearPreviousLines(len(prompt) + len(v))
	return v, nil
}

// promptSecret asks for a value without echo.
func promptSecret(label string) (string, error) {
	v, err := terminal.ReadPassword(label + ": ")
	if err != nil {
		return "", err
	}
	terminal.ClearPreviousLines(len(label) + 2)
	return v, nil
}

func printNotLoggedIn() {
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'freshmart login' to get started.")
}

func printSessionExpired() {
	pterm.Warning.Println("Your session is no longer valid and has been cleared.")
	pterm.Println("   Run 'freshmart login' to sign in again.")
}

// roleLabel renders a role for people.
func roleLabel(r session.Role) string {
	switch r {
	case session.RoleSuperAdmin:
		return "Super admin"
	case session.RoleAdmin:
		return "Admin"
	case session.RoleCustomer:
		return "Customer"
	case "":
		return "unknown"
	}
	return strings.ToLower(string(r))
}

// identityLine is the one-line summary of who is signed in.
func identityLine(u *session.Identity) string {
	if u.Email != "" && u.Email != u.Username {
		return fmt.Sprintf("%s <%s> (%s)", u.Username, u.Email, roleLabel(u.Role))
	}
	return fmt.Sprintf("%s (%s)", u.Username, roleLabel(u.Role))
}
