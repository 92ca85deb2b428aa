package domain

import (
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Scenario is a single executable test case backed by a file.
type Scenario struct {
	// ID is a stable identifier derived from Rel.
	ID string
	// Path is the absolute, cleaned path of the scenario file.
	Path string
	// Rel is Path relative to the project directory, using forward slashes.
	Rel string
}

// NewScenario creates a Scenario for the file at path inside projectDir.
func NewScenario(projectDir, path string) *Scenario {
	path = filepath.Clean(path)
	rel, err := filepath.Rel(projectDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	return &Scenario{
		ID:   ScenarioID(rel),
		Path: path,
		Rel:  rel,
	}
}

// ScenarioID hashes a project-relative scenario path into a short hex identifier.
func ScenarioID(rel string) string {
	return strconv.FormatUint(xxhash.Sum64String(rel), 16)
}
