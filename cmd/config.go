// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"freshmart/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		pterm.Printf("api_url    %s\n", c.APIURL)
		pterm.Printf("store      %s\n", c.Store)
		pterm.Printf("log_level  %s\n", c.LogLevel)
		pterm.Printf("timeout    %ds\n", c.Timeout)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting (api_url, store, log_level, timeout)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile()
		if err != nil {
			return err
		}
		key, value := strings.ReplaceAll(args[0], "-", "_"), strings.TrimSpace(args[1])
		switch key {
		case "api_url":
			c.APIURL = strings.TrimRight(value, "/")
		case "store":
			v := strings.ToLower(value)
			if v != config.StoreKeyring && v != config.StoreSQLite {
				return fmt.Errorf("store must be %q or %q", config.StoreKeyring, config.StoreSQLite)
			}
			c.Store = v
		case "log_level":
			c.LogLevel = strings.ToLower(value)
		case "timeout":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("timeout must be a positive number of seconds")
			}
			c.Timeout = n
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}
		if err := config.Save(c); err != nil {
			return err
		}
		pterm.Success.Printf("%s set to %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
