// Package output builds termenv outputs that honor NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects how the color profile is chosen.
type Mode int

const (
	// Detect asks the environment what the terminal supports. Used for logs.
	Detect Mode = iota
	// Basic always uses 16 ANSI colors. Used for reports that end up in CI logs.
	Basic
)

// Profile returns the color profile for mode. NO_COLOR always wins.
func Profile(mode Mode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if mode == Basic {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w, or stderr when w is nil.
func New(w io.Writer, mode Mode) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile(mode)), termenv.WithTTY(true))
}
