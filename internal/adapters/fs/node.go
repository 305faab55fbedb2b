package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relay/internal/core/ports"
)

// StoreNodeID is the unique identifier for the resource store Graft node.
const StoreNodeID graft.ID = "adapter.fs.store"

func init() {
	graft.Register(graft.Node[ports.ResourceStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResourceStore, error) {
			return NewResourceStore(), nil
		},
	})
}
