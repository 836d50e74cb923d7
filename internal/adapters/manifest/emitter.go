// Package manifest writes and reads the depending-on.yaml document stored in a staging root.
package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Header is the comment line opening every manifest.
const Header = "# keys represent the path to the binaries. " +
	"Their respective value is a list containing paths to libs the respective binary depends on."

var _ ports.ManifestWriter = (*Emitter)(nil)

// Emitter renders a dependency graph as a YAML mapping of dependents to their direct dependencies.
type Emitter struct{}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Encode renders graph. Dependents keep their insertion order and every block is followed by
// a blank line. Paths are written verbatim.
func (e *Emitter) Encode(graph *domain.DependencyGraph) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header)
	buf.WriteByte('\n')

	for dependent, deps := range graph.Dependents() {
		buf.WriteString(dependent.String())
		buf.WriteString(":\n")
		for _, dep := range deps {
			buf.WriteString("  - ")
			buf.WriteString(dep.String())
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Write stores the manifest for graph in root, replacing any previous manifest.
// The root is created when nothing was staged into it.
func (e *Emitter) Write(root string, graph *domain.DependencyGraph) (string, error) {
	path := filepath.Join(root, domain.ManifestFilename)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", writeError(err, "failed to create staging root", path)
	}

	//nolint:gosec // the manifest is meant to be world readable
	if err := os.WriteFile(path, e.Encode(graph), 0o644); err != nil {
		return "", writeError(err, "failed to write manifest file", path)
	}
	return path, nil
}

func writeError(err error, msg, path string) error {
	return errors.Join(domain.ErrManifestWriteFailed, zerr.With(zerr.Wrap(err, msg), "path", path))
}
