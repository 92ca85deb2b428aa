package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/adapters/logger"
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID is the unique identifier for the repository gateway Graft node.
const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.Repository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Repository, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGateway(log), nil
		},
	})
}
