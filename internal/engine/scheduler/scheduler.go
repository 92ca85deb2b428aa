// Package scheduler implements the scenario schedule and its parallel runner.
package scheduler

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/changed/internal/core/domain"
)

// Scheduler holds the discovered scenarios of a run and which of them are ignored.
// It implements ports.ScenarioScheduler.
type Scheduler struct {
	scenarios []*domain.Scenario

	mu      sync.RWMutex
	ignored map[string]struct{}
}

// NewScheduler creates a Scheduler over a copy of scenarios, ordered by path.
func NewScheduler(scenarios []*domain.Scenario) *Scheduler {
	sorted := slices.Clone(scenarios)
	slices.SortStableFunc(sorted, func(a, b *domain.Scenario) int {
		return strings.Compare(a.Path, b.Path)
	})

	return &Scheduler{
		scenarios: sorted,
		ignored:   make(map[string]struct{}),
	}
}

// All iterates every discovered scenario in path order, ignored ones included.
func (s *Scheduler) All() iter.Seq[*domain.Scenario] {
	return func(yield func(*domain.Scenario) bool) {
		for _, scenario := range s.scenarios {
			if !yield(scenario) {
				return
			}
		}
	}
}

// Ignore excludes the scenario from execution. Ignoring twice is a no-op.
func (s *Scheduler) Ignore(scenario *domain.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ignored[scenario.Path] = struct{}{}
}

// IsIgnored reports whether the scenario was excluded.
func (s *Scheduler) IsIgnored(scenario *domain.Scenario) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ignored[scenario.Path]
	return ok
}

// Scheduled returns the scenarios that still have to run, in path order.
func (s *Scheduler) Scheduled() []*domain.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scheduled := make([]*domain.Scenario, 0, len(s.scenarios))
	for _, scenario := range s.scenarios {
		if _, ok := s.ignored[scenario.Path]; !ok {
			scheduled = append(scheduled, scenario)
		}
	}
	return scheduled
}

// Len returns the number of discovered scenarios.
func (s *Scheduler) Len() int {
	return len(s.scenarios)
}
