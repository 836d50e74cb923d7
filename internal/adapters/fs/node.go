package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcollect/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	StagerNodeID   graft.ID = "adapter.fs.stager"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	// Walker Node
	graft.Register(graft.Node[ports.TreeWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TreeWalker, error) {
			return NewWalker(), nil
		},
	})

	// Stager Node
	graft.Register(graft.Node[ports.StagerFactory]{
		ID:        StagerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StagerFactory, error) {
			return NewStagerFactory(), nil
		},
	})

	// Hasher Node (Concrete implementation needed by Verifier)
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Verifier Node
	graft.Register(graft.Node[ports.BundleVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.BundleVerifier, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(hasher), nil
		},
	})
}
