// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"freshmart/cli/internal/nav"
	"freshmart/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// navCmd shows the storefront navigation for the current session, or checks
// whether a page would open.
var navCmd = &cobra.Command{
	Use:   "nav [path]",
	Short: "Show the navigation available to the current session",
	Long: `Without arguments, nav lists the storefront pages the current session is offered,
the same links the web navbar shows. With a path, it reports whether that page would
open and where you would be sent instead.

The session is validated with the server first, the way the storefront does on start.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if a.sess.IsAuthenticated() && !a.sess.ValidateToken(cmd.Context()) {
				printSessionExpired()
			}

			if len(args) == 1 {
				redirect, err := nav.NewGuard(a.sess).Check(args[0])
				if err != nil {
					pterm.Warning.Printf("%s: %v\n", args[0], err)
					pterm.Printf("   You would be sent to %s\n", redirect)
					return nil
				}
				pterm.Success.Printf("%s is available (%s)\n", args[0], nav.AccessFor(args[0]))
				return nil
			}

			bar := nav.NewBar(a.sess, renderNav)
			defer bar.Close()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}

// renderNav prints the links for s as a bullet list.
func renderNav(s session.State, links []nav.Link) {
	title := "Guest"
	if s.Authenticated {
		title = identityLine(s.User)
	}
	pterm.DefaultSection.Println(title)
	items := make([]pterm.BulletListItem, 0, len(links))
	for _, l := range links {
		items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("%-16s %s", l.Label, l.Path)})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}
