package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioStatus is the outcome of a scenario in a run.
type ScenarioStatus string

const (
	// StatusPassed indicates the scenario ran and succeeded.
	StatusPassed ScenarioStatus = "passed"
	// StatusFailed indicates the scenario ran and failed.
	StatusFailed ScenarioStatus = "failed"
	// StatusIgnored indicates the scenario was excluded from execution.
	StatusIgnored ScenarioStatus = "ignored"
)

// ScenarioResult records what happened to one scenario.
type ScenarioResult struct {
	Scenario *Scenario      `json:"-"`
	Rel      string         `json:"scenario"`
	Status   ScenarioStatus `json:"status"`
	Duration time.Duration  `json:"duration,omitzero"`
	Error    string         `json:"error,omitzero"`
}

// Report collects the results and summary lines of a run.
type Report struct {
	RunID     string           `json:"run_id"`
	StartedAt time.Time        `json:"started_at,omitzero"`
	EndedAt   time.Time        `json:"ended_at,omitzero"`
	Results   []ScenarioResult `json:"results"`
	Summary   []string         `json:"summary"`
}

// NewReport creates an empty report with a fresh run ID.
func NewReport() *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Results: []ScenarioResult{},
		Summary: []string{},
	}
}

// AddSummary appends a summary line. Order is preserved and duplicates are kept.
func (r *Report) AddSummary(text string) {
	r.Summary = append(r.Summary, text)
}

// Record appends a scenario result.
func (r *Report) Record(result ScenarioResult) {
	if result.Scenario != nil && result.Rel == "" {
		result.Rel = result.Scenario.Rel
	}
	r.Results = append(r.Results, result)
}

// Count returns the number of results with the given status.
func (r *Report) Count(status ScenarioStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Elapsed returns the wall time of the run.
func (r *Report) Elapsed() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
