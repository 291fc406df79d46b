// Package console reports terminal capabilities used for decorative output.
package console

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of f, or fallback when it is not a terminal.
func Width(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		return cols
	}
	return fallback
}
