package ports

import "context"

// LocalStorage is a persisted key-value store scoped to one plugin and project.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LocalStorage interface {
	// Get decodes the value stored under key into dst.
	// It reports false without touching dst when the key is absent.
	Get(ctx context.Context, key string, dst any) (bool, error)

	// Put stores value under key. The change is not durable until Flush.
	Put(ctx context.Context, key string, value any) error

	// Flush writes pending changes to disk.
	Flush(ctx context.Context) error
}

// StorageFactory creates local storage for a scope inside a project.
type StorageFactory interface {
	// Create returns the storage for scope under projectDir.
	Create(scope, projectDir string) (LocalStorage, error)
}
