package ecs

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/grindlemire/graft"
	cfgadapter "go.trai.ch/ecstagger/internal/adapters/config"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
)

// NodeID is the unique identifier for the ECS describer Graft node.
const NodeID graft.ID = "adapter.ecs"

func init() {
	graft.Register(graft.Node[ports.TaskDefinitionDescriber]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cfgadapter.NodeID},
		Run: func(ctx context.Context) (ports.TaskDefinitionDescriber, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			var opts []func(*config.LoadOptions) error
			if cfg.AWS.Region != "" {
				opts = append(opts, config.WithRegion(cfg.AWS.Region))
			}
			awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
			if err != nil {
				return nil, errors.Join(domain.ErrAWSConfigFailed, err)
			}

			return NewDescriber(ecs.NewFromConfig(awsCfg), cfg.Lookup.Timeout), nil
		},
	})
}
