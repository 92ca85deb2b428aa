package ports

import "go.trai.ch/changed/internal/core/domain"

// Renderer presents the final report of a run.
type Renderer interface {
	// Render writes the report.
	Render(report *domain.Report) error
}
