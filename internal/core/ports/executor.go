// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/changed/internal/core/domain"
)

// Executor defines the interface for executing scenarios.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the scenario with the project's runner command.
	//
	// Output of the process is streamed to stdout and stderr.
	// It returns an error if the process cannot be started or exits unsuccessfully.
	Execute(ctx context.Context, cfg *domain.ProjectConfig, scenario *domain.Scenario, stdout, stderr io.Writer) error
}
