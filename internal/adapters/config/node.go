package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/adapters/logger"
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID identifies the changed.yaml loader in the graft graph.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run:       runLoaderNode,
	})
}

func runLoaderNode(ctx context.Context) (ports.ConfigLoader, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewLoader(log), nil
}
