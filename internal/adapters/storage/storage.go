// Package storage implements project-scoped key-value local storage for plugins.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
)

// Storage implements ports.LocalStorage using one JSON file per scope.
// The file is read on first access; Put only changes memory until Flush.
type Storage struct {
	path string

	mu     sync.Mutex
	loaded bool
	dirty  bool
	data   map[string]json.RawMessage
}

// New creates a Storage backed by the file at path.
func New(path string) *Storage {
	return &Storage{
		path: filepath.Clean(path),
		data: make(map[string]json.RawMessage),
	}
}

// Path returns the backing file path.
func (s *Storage) Path() string {
	return s.path
}

// Get decodes the value stored under key into dst.
func (s *Storage) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return false, err
	}

	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStorageUnmarshalFailed.Error()), "key", key)
	}
	return true, nil
}

// Put stores value under key in memory.
func (s *Storage) Put(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageMarshalFailed.Error()), "key", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}
	s.data[key] = raw
	s.dirty = true
	return nil
}

// Flush writes the current content to disk atomically.
func (s *Storage) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStorageMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageWriteFailed.Error()), "path", s.path)
	}

	s.dirty = false
	return nil
}

func (s *Storage) loadLocked() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and built from the project directory
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStorageReadFailed.Error()), "path", s.path)
	}

	if len(data) > 0 {
		stored := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &stored); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStorageUnmarshalFailed.Error()), "path", s.path)
		}
		for k, v := range stored {
			if _, pending := s.data[k]; !pending {
				s.data[k] = v
			}
		}
	}

	s.loaded = true
	return nil
}

// Factory implements ports.StorageFactory.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the storage for scope under projectDir/.changed/local_storage.
func (f *Factory) Create(scope, projectDir string) (ports.LocalStorage, error) {
	if scope == "" || filepath.Base(scope) != scope {
		return nil, zerr.With(zerr.New("invalid storage scope"), "scope", scope)
	}
	path := filepath.Join(projectDir, domain.DefaultLocalStoragePath(), scope+".json")
	return New(path), nil
}
