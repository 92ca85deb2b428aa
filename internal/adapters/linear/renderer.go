// Package linear provides synchronous, line-oriented report renderers for terminals and CI.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/ui/output"
	"go.trai.ch/changed/internal/ui/style"
)

// Renderer implements ports.Renderer as one line per scenario followed by the summary.
type Renderer struct {
	w io.Writer

	passed  lipgloss.Style
	failed  lipgloss.Style
	ignored lipgloss.Style
	faint   lipgloss.Style
	bold    lipgloss.Style
}

// NewRenderer creates a new Renderer writing to w, or stdout when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(output.Profile(output.Basic))

	return &Renderer{
		w:       w,
		passed:  lr.NewStyle().Foreground(style.Pass),
		failed:  lr.NewStyle().Foreground(style.Fail),
		ignored: lr.NewStyle().Foreground(style.Muted),
		faint:   lr.NewStyle().Foreground(style.Muted),
		bold:    lr.NewStyle().Bold(true),
	}
}

// Render writes every executed scenario, the summary lines and the totals.
// Ignored scenarios are only counted.
func (r *Renderer) Render(report *domain.Report) error {
	var b strings.Builder

	for _, res := range report.Results {
		switch res.Status {
		case domain.StatusPassed:
			fmt.Fprintf(&b, "%s %s %s\n", r.passed.Render(style.Passed), res.Rel, r.faint.Render(formatDuration(res.Duration)))
		case domain.StatusFailed:
			fmt.Fprintf(&b, "%s %s %s\n", r.failed.Render(style.Failed), res.Rel, r.faint.Render(formatDuration(res.Duration)))
			if res.Error != "" {
				fmt.Fprintf(&b, "  %s\n", r.failed.Render(res.Error))
			}
		case domain.StatusIgnored:
		}
	}

	if len(report.Summary) > 0 {
		b.WriteString("\n")
		for _, line := range report.Summary {
			fmt.Fprintf(&b, "%s %s\n", r.ignored.Render(style.Summary), line)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d passed, %d failed, %d ignored",
		r.bold.Render("#"),
		report.Count(domain.StatusPassed),
		report.Count(domain.StatusFailed),
		report.Count(domain.StatusIgnored),
	)
	if elapsed := report.Elapsed(); elapsed > 0 {
		fmt.Fprintf(&b, " %s", r.faint.Render(formatDuration(elapsed)))
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func formatDuration(d time.Duration) string {
	return "(" + d.Round(time.Millisecond).String() + ")"
}
