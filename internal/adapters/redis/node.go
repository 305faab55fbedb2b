package redis

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relay/internal/core/ports"
)

// NodeID is the unique identifier for the Redis connector Graft node.
const NodeID graft.ID = "adapter.redis"

func init() {
	graft.Register(graft.Node[ports.MessengerConnector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MessengerConnector, error) {
			return NewConnector(), nil
		},
	})
}
