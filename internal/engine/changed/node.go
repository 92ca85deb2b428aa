package changed

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/changed/internal/adapters/git"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/changed/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/changed/internal/adapters/storage" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID is the unique identifier for the git-changed plugin Graft node.
const NodeID graft.ID = "engine.changed"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			storage.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Controller, error) {
			repo, err := graft.Dep[ports.Repository](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.StorageFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewController(repo, factory, clockwork.NewRealClock(), log), nil
		},
	})
}
