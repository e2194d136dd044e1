package eventbridge

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecstagger/internal/adapters/logger"
	"go.trai.ch/ecstagger/internal/core/ports"
)

const (
	// LambdaNodeID is the unique identifier for the Lambda event source Graft node.
	LambdaNodeID graft.ID = "adapter.eventbridge.lambda"
	// ReplayNodeID is the unique identifier for the replay source factory Graft node.
	ReplayNodeID graft.ID = "adapter.eventbridge.replay"
)

func init() {
	graft.Register(graft.Node[*LambdaSource]{
		ID:        LambdaNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*LambdaSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLambdaSource(log), nil
		},
	})

	graft.Register(graft.Node[ports.ReplaySourceFactory]{
		ID:        ReplayNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReplaySourceFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSourceFactory(log), nil
		},
	})
}
