// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var whoamiOffline bool

// whoamiCmd represents the whoami command for displaying current authentication state.
// It checks the saved session with the server first, so an expired token is
// cleared instead of being reported as a signed-in account.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays the account the saved session belongs to.
It validates the session with the storefront first; if the server no longer accepts
the token, the session is cleared and you are asked to log in again.

Use --offline to show the saved account without contacting the server.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if whoamiOffline {
				if !a.sess.IsAuthenticated() {
					printNotLoggedIn()
					return nil
				}
			} else if !requireSession(cmd.Context(), a) {
				return nil
			}

			u := a.sess.CurrentUser()
			lines := []string{
				fmt.Sprintf("Username: %s", u.Username),
				fmt.Sprintf("Email:    %s", orDash(u.Email)),
				fmt.Sprintf("Role:     %s", roleLabel(u.Role)),
			}
			if u.ID != 0 {
				lines = append(lines, fmt.Sprintf("ID:       %d", u.ID))
			}
			if exp := expiryLine(a); exp != "" {
				lines = append(lines, exp)
			}
			lines = append(lines, fmt.Sprintf("Store:    %s", a.store.Name()))

			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("👤 Current user")).
				Println(strings.Join(lines, "\n"))
			return nil
		})
	},
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiOffline, "offline", false, "Show the saved account without validating it")
	rootCmd.AddCommand(whoamiCmd)
}

// expiryLine describes when the token expires, when it says so itself.
func expiryLine(a *app) string {
	claims, err := a.sess.Claims()
	if err != nil {
		return ""
	}
	left, ok := claims.ExpiresIn(time.Now())
	if !ok {
		return ""
	}
	if left <= 0 {
		return "Expires:  expired"
	}
	return fmt.Sprintf("Expires:  in %s (%s)", left.Round(time.Minute), claims.ExpiresAt.Local().Format(time.DateTime))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
