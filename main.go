// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the FreshMart CLI application.
// It signs users in to a FreshMart storefront and manages the local session.
package main

import (
	"freshmart/cli/cmd"
)

// main is the entry point for the FreshMart CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
