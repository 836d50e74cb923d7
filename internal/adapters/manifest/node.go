package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcollect/internal/core/ports"
)

const (
	WriterNodeID graft.ID = "adapter.manifest.writer"
	ReaderNodeID graft.ID = "adapter.manifest.reader"
)

func init() {
	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestWriter, error) {
			return NewEmitter(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestReader, error) {
			return NewReader(), nil
		},
	})
}
