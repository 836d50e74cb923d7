package manifest

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader parses manifests written by Emitter.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads the manifest stored in root.
func (r *Reader) Read(root string) (*domain.DependencyGraph, error) {
	path := filepath.Join(root, domain.ManifestFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "no manifest in staging root"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	graph, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return graph, nil
}

// Decode parses a manifest document, preserving the order of keys and list entries.
func Decode(data []byte) (*domain.DependencyGraph, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidManifest, err), "failed to parse manifest")
	}

	graph := domain.NewDependencyGraph()

	// A manifest with only the header comment is an empty graph.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return graph, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return graph, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, invalid("manifest root must be a mapping", root)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, invalid("dependent must be a scalar", key)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, invalid("dependencies must be a list", value)
		}

		dependent := domain.NewDependencyPath(key.Value)
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, invalid("dependency must be a scalar", item)
			}
			graph.AddEdge(dependent, domain.NewDependencyPath(item.Value))
		}
	}

	return graph, nil
}

func invalid(msg string, node *yaml.Node) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidManifest, msg), "line", node.Line)
}
