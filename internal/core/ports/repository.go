package ports

import (
	"context"

	"go.trai.ch/changed/internal/core/domain"
)

// Repository isolates all interaction with the version-control tool.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Fetch updates the local knowledge of the remote state.
	Fetch(ctx context.Context) error

	// ChangedFiles returns the absolute paths of files added, copied, modified,
	// type-changed or renamed between origin/<branch> and HEAD that lie strictly
	// inside targetDir.
	ChangedFiles(ctx context.Context, branch, targetDir string) (domain.PathSet, error)
}
