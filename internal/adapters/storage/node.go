package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/changed/internal/core/ports"
)

// NodeID is the unique identifier for the local storage factory Graft node.
const NodeID graft.ID = "adapter.local_storage"

func init() {
	graft.Register(graft.Node[ports.StorageFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StorageFactory, error) {
			return NewFactory(), nil
		},
	})
}
