package ports

import "go.trai.ch/depcollect/internal/core/domain"

// ManifestWriter serializes a dependency graph into the staging root.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestWriter interface {
	// Write stores the manifest for graph under root and returns the written path.
	Write(root string, graph *domain.DependencyGraph) (string, error)
}

// ManifestReader loads a previously written manifest.
type ManifestReader interface {
	// Read parses the manifest stored under root.
	Read(root string) (*domain.DependencyGraph, error)
}
