package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcollect/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/depcollect/internal/adapters/ldd"                //nolint:depguard // Wired in app layer
	"go.trai.ch/depcollect/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcollect/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/depcollect/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcollect/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ldd.NodeID,
			fs.StagerNodeID,
			fs.WalkerNodeID,
			fs.VerifierNodeID,
			manifest.WriterNodeID,
			manifest.ReaderNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       a,
				Logger:    log,
				Telemetry: telemetry,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	prober, err := graft.Dep[ports.Prober](ctx)
	if err != nil {
		return nil, err
	}

	stagers, err := graft.Dep[ports.StagerFactory](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.TreeWalker](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.BundleVerifier](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(prober, stagers, walker, writer, reader, verifier, telemetry, log), nil
}
