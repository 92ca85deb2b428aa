// Package style holds the palette and status icons shared by the logger and the report.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Pass   = lipgloss.Color("#22A06B")
	Fail   = lipgloss.Color("#D93025")
	Notice = lipgloss.Color("#F59E0B")
)

// Status icons.
const (
	Passed  = "✓"
	Failed  = "✗"
	Warning = "!"
	Trace   = "●"
	Summary = "○"
)

// Term converts a palette color for termenv output.
func Term(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}
