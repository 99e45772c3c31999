// Copyright (c) 2025 FreshMart
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides utilities for terminal operations such as reading
// credentials and clearing prompts once they have been answered.
package terminal

import (
	"math"
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// Width returns the terminal width, or 80 when stdout is not a terminal.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// linesFor returns how many rows textLength characters occupy at width.
func linesFor(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	n := int(math.Ceil(float64(textLength) / float64(width)))
	if n < 1 {
		return 1
	}
	return n
}

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines the prompt plus the user's answer wrapped onto
// at the current width, then clears them along with the empty line the cursor
// moved to when Enter was pressed.
func ClearPreviousLines(textLength int) {
	if !IsInteractive() {
		return
	}
	cursor.ClearLinesUp(linesFor(textLength, Width()))
	cursor.StartOfLine()
}
