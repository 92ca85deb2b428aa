package ports

import "go.trai.ch/changed/internal/core/domain"

// ScenarioFinder discovers scenario files for a project.
//
//go:generate mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type ScenarioFinder interface {
	// Find returns the scenarios under the configured scenarios directory, sorted by path.
	Find(cfg *domain.ProjectConfig) ([]*domain.Scenario, error)
}
