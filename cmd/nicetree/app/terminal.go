package app

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalSupportsColor reports whether f is attached to an interactive
// terminal that has not declared itself colorless.
func terminalSupportsColor(f *os.File) bool {
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return strings.ToLower(os.Getenv("TERM")) != "dumb"
}
