// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the FreshMart CLI application.
// It implements subcommands for signing in and out of the storefront, inspecting the
// current session and browsing the catalog, using the Cobra CLI framework.
package cmd

import (
	"fmt"
	"os"

	"freshmart/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "freshmart",
	Short:         "FreshMart storefront CLI",
	Long:          `freshmart signs you in to a FreshMart storefront, keeps the session in your OS keychain or a private local database, and lets you browse the catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("freshmart %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("Error", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write diagnostic logs to stderr")
}
