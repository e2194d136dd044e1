package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/ecstagger/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the config loader Graft node.
	LoaderNodeID graft.ID = "adapter.config_loader"
	// NodeID is the unique identifier for the loaded configuration Graft node.
	NodeID graft.ID = "adapter.config"
)

// Both nodes are rebuilt on every execution so ECSTAGGER_CONFIG and the
// ECSTAGGER_* overrides are read when the graph runs, not when it first ran.
func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: false,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(os.Getenv(EnvConfigFile)), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: false,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
