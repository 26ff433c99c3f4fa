package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Minimum comfortable terminal size for the eight-dice grid plus stats.
const (
	MinWidth  = 60
	MinHeight = 20
)

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// SizeWarning returns a human-readable warning when the terminal is smaller
// than the recommended minimum, or "" when the size is fine or unknown.
func SizeWarning() string {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return ""
	}
	if width < MinWidth || height < MinHeight {
		return fmt.Sprintf("terminal may be too small (%dx%d), recommended minimum %dx%d",
			width, height, MinWidth, MinHeight)
	}
	return ""
}
