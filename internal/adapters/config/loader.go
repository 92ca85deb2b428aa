// Package config provides the configuration loader for changed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from cwd looking for changed.yaml and resolves it into a ProjectConfig.
// Without a project file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.ProjectConfig, error) {
	cwd = filepath.Clean(cwd)

	configPath, found := findProjectfile(cwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults in %s", domain.ConfigFileName, cwd))
		return domain.DefaultProjectConfig(cwd), nil
	}

	var pf Projectfile
	if err := readAndUnmarshalYAML(configPath, &pf); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if pf.Version != "" && pf.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, continuing", pf.Version, configPath))
	}

	cfg := domain.DefaultProjectConfig(resolveRoot(configPath, pf.Root))
	if err := apply(cfg, &pf); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	l.Logger.Debug(fmt.Sprintf("loaded %s", configPath))
	return cfg, nil
}

func findProjectfile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.ProjectConfig, pf *Projectfile) error {
	if pf.Scenarios != "" {
		dir, err := validateScenariosDir(cfg.ProjectDir, pf.Scenarios)
		if err != nil {
			return err
		}
		cfg.ScenariosDir = dir
	}

	if pf.Pattern != "" {
		if _, err := filepath.Match(pf.Pattern, ""); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidPattern, err.Error()), "pattern", pf.Pattern)
		}
		cfg.Pattern = pf.Pattern
	}

	if pf.Runner != nil {
		if len(*pf.Runner) == 0 || strings.TrimSpace((*pf.Runner)[0]) == "" {
			return zerr.Wrap(domain.ErrEmptyRunner, "invalid runner")
		}
		cfg.Runner = append([]string(nil), *pf.Runner...)
	}

	if pf.Parallelism != nil {
		switch {
		case *pf.Parallelism < 0:
			return zerr.With(zerr.Wrap(domain.ErrInvalidParallelism, "invalid parallelism"), "parallelism", *pf.Parallelism)
		case *pf.Parallelism > 0:
			cfg.Parallelism = *pf.Parallelism
		}
	}

	for k, v := range pf.Env {
		cfg.Env[k] = v
	}

	return nil
}

// validateScenariosDir returns dir relative to projectDir, rejecting anything outside of it.
func validateScenariosDir(projectDir, dir string) (string, error) {
	abs := dir
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(projectDir, abs)
	}

	rel, err := filepath.Rel(projectDir, filepath.Clean(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidScenariosDir, "invalid scenarios directory"), "scenarios", dir)
	}
	return rel, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findProjectfile
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
