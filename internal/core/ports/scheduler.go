package ports

import (
	"iter"

	"go.trai.ch/changed/internal/core/domain"
)

// ScenarioScheduler is the list of scenarios to execute for a run.
type ScenarioScheduler interface {
	// All iterates every discovered scenario, including ignored ones.
	All() iter.Seq[*domain.Scenario]

	// Ignore excludes the scenario from execution.
	Ignore(scenario *domain.Scenario)
}

// Report receives human-readable summary lines for the end of a run.
type Report interface {
	// AddSummary appends a line. Order is preserved and duplicates are allowed.
	AddSummary(text string)
}
