package ldd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcollect/internal/adapters/config"
	"go.trai.ch/depcollect/internal/adapters/shell"
	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
)

// NodeID is the unique identifier for the dependency probe Graft node.
const NodeID graft.ID = "adapter.prober"

func init() {
	graft.Register(graft.Node[ports.Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(runner, cfg.Probe), nil
		},
	})
}
