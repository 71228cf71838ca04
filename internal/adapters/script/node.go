package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.script_engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Engine, error) {
			return NewEngine(), nil
		},
	})
}
