package sink

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecstagger/internal/core/ports"
)

// NodeID is the unique identifier for the record sink Graft node.
const NodeID graft.ID = "adapter.sink"

func init() {
	graft.Register(graft.Node[ports.RecordEmitter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecordEmitter, error) {
			return New(os.Stdout), nil
		},
	})
}
