// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// validateCmd checks the saved session with the server.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the saved session is still accepted",
	Long: `The validate command sends the saved token to the storefront's validation endpoint.
A rejected token, or a failed check, clears the saved session. The command exits
with a non-zero status when no valid session remains.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if !a.sess.IsAuthenticated() {
				printNotLoggedIn()
				return errors.New("no session")
			}
			var ok bool
			_ = withSpinner("Validating session", func() error {
				ok = a.sess.ValidateToken(cmd.Context())
				return nil
			})
			if !ok {
				printSessionExpired()
				return errors.New("session invalid")
			}
			pterm.Success.Printf("Session is valid for %s\n", identityLine(a.sess.CurrentUser()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
