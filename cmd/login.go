// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"freshmart/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginAdmin         bool
	loginCustomer      bool
	loginUsername      string
	loginPasswordStdin bool
)

// loginCmd signs in with a username and password.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the storefront",
	Long: `The login command signs in with your username (or email) and password and keeps
the issued session token in the configured session store.

Use --admin for staff accounts and --customer to restrict sign-in to customer
accounts. If a valid session already exists, the command reports it and exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginAdmin && loginCustomer {
			return errors.New("--admin and --customer cannot be used together")
		}
		ctx := cmd.Context()
		return withApp(func(a *app) error {
			// If already logged in with a valid token, short-circuit
			if a.sess.IsAuthenticated() && a.sess.ValidateToken(ctx) {
				pterm.Printf("Already logged in as %s\n", identityLine(a.sess.CurrentUser()))
				return nil
			}

			username, password, err := readCredentials()
			if err != nil {
				return err
			}

			login := a.sess.Login
			switch {
			case loginAdmin:
				login = a.sess.AdminLogin
			case loginCustomer:
				login = a.sess.CustomerLogin
			}

			var s *session.Session
			err = withSpinner("Signing in", func() error {
				var lerr error
				s, lerr = login(ctx, username, password)
				return lerr
			})
			if err != nil {
				return a.reportRequestError(err, "signing in")
			}

			if loginAdmin && !s.Identity.Role.IsAdmin() {
				pterm.Warning.Printf("Signed in, but %s is not an admin account.\n", s.Identity.Username)
			}
			pterm.Println(loginGreeting(s.Identity))
			return nil
		})
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "Sign in through the admin endpoint")
	loginCmd.Flags().BoolVar(&loginCustomer, "customer", false, "Sign in through the customer endpoint")
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username or email (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	rootCmd.AddCommand(loginCmd)
}

// readCredentials collects the username and password from flags, stdin or prompts.
func readCredentials() (string, string, error) {
	username := strings.TrimSpace(loginUsername)
	if username == "" {
		v, err := promptLine("Username")
		if err != nil {
			return "", "", err
		}
		username = v
	}
	if username == "" {
		return "", "", errors.New("username is required")
	}

	var password string
	if loginPasswordStdin {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(string(b), "\r\n")
	} else {
		v, err := promptSecret("Password")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w (use --password-stdin when not on a terminal)", err)
		}
		password = v
	}
	if password == "" {
		return "", "", errors.New("password is required")
	}
	return username, password, nil
}

var loginGreetings = []string{
	"✅ Welcome back, %s!",
	"✅ Signed in as %s. Happy shopping!",
	"✅ Hello %s, you're all set.",
}

// loginGreeting returns a friendly greeting for the signed-in account.
func loginGreeting(id session.Identity) string {
	name := id.Username
	if id.Email != "" {
		name = id.Email
	}
	return fmt.Sprintf(loginGreetings[rand.IntN(len(loginGreetings))], name)
}

// requireSession validates a held session with the server before a command
// that depends on it. It reports whether the caller may proceed.
func requireSession(ctx context.Context, a *app) bool {
	if !a.sess.IsAuthenticated() {
		printNotLoggedIn()
		return false
	}
	if !a.sess.ValidateToken(ctx) {
		printSessionExpired()
		return false
	}
	return true
}
