package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/changed/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/changed/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/changed/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/changed/internal/engine/changed"
	"go.trai.ch/changed/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FinderNodeID,
			scheduler.NodeID,
			progrock.NodeID,
			logger.NodeID,
			changed.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ScenarioFinder](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*scheduler.Runner](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	gitChanged, err := graft.Dep[*changed.Controller](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, finder, runner, telemetry, log, gitChanged), nil
}
