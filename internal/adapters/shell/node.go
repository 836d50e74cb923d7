package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcollect/internal/adapters/config"
	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Probe.CleanEnv {
				return NewCleanRunner(), nil
			}
			return NewRunner(), nil
		},
	})
}
