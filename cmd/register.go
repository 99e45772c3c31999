// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"freshmart/cli/internal/session"
	"freshmart/cli/internal/validation"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// registerCmd creates a customer account.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account",
	Long: `The register command asks for your details, checks them against the storefront's
rules and creates a customer account. It does not sign you in; run 'freshmart login'
afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withApp(func(a *app) error {
			var reg session.Registration
			var err error
			for _, f := range []struct {
				label  string
				dst    *string
				secret bool
			}{
				{"Full name", &reg.CustomerName, false},
				{"Email", &reg.Email, false},
				{"Password", &reg.Password, true},
				{"Confirm password", &reg.ConfirmPassword, true},
				{"Address", &reg.Address, false},
				{"Contact number (10 digits)", &reg.ContactNumber, false},
			} {
				if f.secret {
					*f.dst, err = promptSecret(f.label)
				} else {
					*f.dst, err = promptLine(f.label)
				}
				if err != nil {
					return err
				}
			}

			if err := validation.Registration(reg); err != nil {
				pterm.Error.Println("Please fix the following:")
				for _, msg := range validation.Messages(err) {
					pterm.Println("  • " + msg)
				}
				return errors.New("registration details are invalid")
			}

			if taken, err := a.sess.UserExists(ctx, reg.Email); err == nil && taken {
				pterm.Warning.Printf("An account for %s already exists. Try 'freshmart login'.\n", reg.Email)
				return nil
			}

			var ack *session.Ack
			err = withSpinner("Creating account", func() error {
				var rerr error
				ack, rerr = a.sess.Register(ctx, reg)
				return rerr
			})
			if err != nil {
				return a.reportRequestError(err, "creating your account")
			}
			msg := ack.Message
			if msg == "" {
				msg = "Account created"
			}
			pterm.Success.Println(msg)
			pterm.Println("   Run 'freshmart login' to sign in.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
