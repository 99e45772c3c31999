// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd ends the session locally and, best effort, on the server.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session",
	Long: `The logout command tells the storefront to end the current session and removes
the saved token and account details from the session store.

The local session is always removed, even when the server cannot be reached.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			wasSignedIn := a.sess.IsAuthenticated()
			ack := a.sess.Logout(cmd.Context())
			if !wasSignedIn {
				pterm.Println("Nothing to do: you were not logged in.")
				return nil
			}
			pterm.Success.Println(ack.Message)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
