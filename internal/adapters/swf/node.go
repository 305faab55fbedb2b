package swf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/relay/internal/core/ports"
)

// NodeID is the unique identifier for the SWF connector Graft node.
const NodeID graft.ID = "adapter.swf"

func init() {
	graft.Register(graft.Node[ports.QueueConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.QueueConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(log), nil
		},
	})
}
