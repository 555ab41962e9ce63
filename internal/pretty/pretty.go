// Helpers for dynamic terminal output.
package pretty

import (
	"os"

	"golang.org/x/term"
)

var colorEnabled = true

const resetCode string = "\x1b[0m"
const greenCode string = "\x1b[32m"
const redCode string = "\x1b[31m"
const dimCode string = "\x1b[2m"

// AllowDynamic reports whether f supports color and cursor movement.
func AllowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetColorEnabled controls whether the color functions emit ANSI codes.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func Reset() string {
	if colorEnabled {
		return resetCode
	}

	return ""
}

func Green() string {
	if colorEnabled {
		return greenCode
	}

	return ""
}

func Red() string {
	if colorEnabled {
		return redCode
	}

	return ""
}

func Dim() string {
	if colorEnabled {
		return dimCode
	}

	return ""
}
