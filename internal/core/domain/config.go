package domain

import "runtime"

// DefaultCacheDuration is the default maximum age, in seconds, of a previous fetch.
const DefaultCacheDuration = 60

// ChangedOptions holds the git-changed options parsed from the command line.
type ChangedOptions struct {
	// Branch is the reference branch.
	Branch string
	// BranchSet reports that the branch flag was given, even with an empty value.
	BranchSet bool
	// CacheDuration is the maximum age in seconds of a previous fetch before a new one is triggered.
	CacheDuration int
	// NoFetch skips fetching entirely.
	NoFetch bool
}

// Enabled reports whether a reference branch was supplied.
func (o ChangedOptions) Enabled() bool {
	return o.BranchSet || o.Branch != ""
}

// ProjectConfig is the resolved project configuration.
type ProjectConfig struct {
	// ProjectDir is the absolute project directory.
	ProjectDir string
	// ScenariosDir is the scenarios directory relative to ProjectDir.
	ScenariosDir string
	// Pattern is a filepath.Match pattern applied to scenario file names.
	Pattern string
	// Runner is the command prefix; the scenario path is appended as the last argument.
	Runner []string
	// Parallelism bounds concurrently running scenarios.
	Parallelism int
	// Env holds environment overrides for scenario processes.
	Env map[string]string
}

// DefaultProjectConfig returns the configuration used when no project file exists.
func DefaultProjectConfig(projectDir string) *ProjectConfig {
	return &ProjectConfig{
		ProjectDir:   projectDir,
		ScenariosDir: DefaultScenariosDir,
		Pattern:      DefaultPattern,
		Runner:       DefaultRunner(),
		Parallelism:  runtime.NumCPU(),
		Env:          map[string]string{},
	}
}
