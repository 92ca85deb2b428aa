package domain

import (
	"iter"
	"maps"
	"path/filepath"
	"slices"
)

// PathSet is a set of cleaned absolute file paths.
type PathSet struct {
	paths map[string]struct{}
}

// NewPathSet builds a PathSet from the given paths.
func NewPathSet(paths ...string) PathSet {
	s := PathSet{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.paths[filepath.Clean(p)] = struct{}{}
	}
	return s
}

// Contains reports whether path is in the set.
func (s PathSet) Contains(path string) bool {
	_, ok := s.paths[filepath.Clean(path)]
	return ok
}

// Len returns the number of paths.
func (s PathSet) Len() int {
	return len(s.paths)
}

// All iterates the paths in lexical order.
func (s PathSet) All() iter.Seq[string] {
	return slices.Values(s.Sorted())
}

// Sorted returns the paths in lexical order.
func (s PathSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s.paths))
}
