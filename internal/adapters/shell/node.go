package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/adapters/logger"
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID identifies the scenario executor in the graft graph.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run:       runExecutorNode,
	})
}

// runExecutorNode builds the executor that runs scenarios through the configured runner command.
func runExecutorNode(ctx context.Context) (ports.Executor, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewExecutor(log), nil
}
