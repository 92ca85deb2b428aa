package ports

import "go.trai.ch/changed/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to find the project file and returns the resolved configuration.
	// When no project file exists, defaults rooted at cwd are returned.
	Load(cwd string) (*domain.ProjectConfig, error)
}
