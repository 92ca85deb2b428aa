package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
)

// Finder implements ports.ScenarioFinder on top of Walker.
type Finder struct {
	walker *Walker
	logger ports.Logger
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker, logger ports.Logger) *Finder {
	return &Finder{walker: walker, logger: logger}
}

// Find returns the scenarios below the configured scenarios directory.
// A missing directory yields no scenarios.
func (f *Finder) Find(cfg *domain.ProjectConfig) ([]*domain.Scenario, error) {
	root := filepath.Join(cfg.ProjectDir, cfg.ScenariosDir)

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		f.logger.Warn(fmt.Sprintf("scenarios directory %s does not exist", root))
		return nil, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(domain.ErrScenarioDiscoveryFailed, err.Error()), "dir", root)
	case !info.IsDir():
		return nil, zerr.With(zerr.Wrap(domain.ErrScenarioDiscoveryFailed, "not a directory"), "dir", root)
	}

	var scenarios []*domain.Scenario
	for path, walkErr := range f.walker.WalkFiles(root, cfg.Pattern) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrScenarioDiscoveryFailed, walkErr.Error()), "dir", root)
		}
		scenarios = append(scenarios, domain.NewScenario(cfg.ProjectDir, path))
	}

	f.logger.Debug(fmt.Sprintf("discovered %d scenarios in %s", len(scenarios), root))
	return scenarios, nil
}
