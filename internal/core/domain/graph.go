// Package domain contains the core domain models for shared-library dependency collection.
package domain

import "iter"

// DependencyGraph maps each dependent to the ordered list of libraries it directly depends on.
// Keys are kept in the order they were first added, and every dependency list keeps the order
// its edges were recorded in, so that serializing the graph is deterministic.
type DependencyGraph struct {
	edges map[DependencyPath][]DependencyPath
	order []DependencyPath
}

// NewDependencyGraph creates a new empty DependencyGraph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		edges: make(map[DependencyPath][]DependencyPath),
	}
}

// AddEdge records that dependent directly depends on dependency.
// The dependent becomes a key on its first edge.
func (g *DependencyGraph) AddEdge(dependent, dependency DependencyPath) {
	deps, exists := g.edges[dependent]
	if !exists {
		g.order = append(g.order, dependent)
	}
	g.edges[dependent] = append(deps, dependency)
}

// Has reports whether path is a key of the graph.
func (g *DependencyGraph) Has(path DependencyPath) bool {
	_, ok := g.edges[path]
	return ok
}

// DependenciesOf returns a copy of the dependency list recorded for dependent.
func (g *DependencyGraph) DependenciesOf(dependent DependencyPath) []DependencyPath {
	deps := g.edges[dependent]
	if deps == nil {
		return nil
	}
	out := make([]DependencyPath, len(deps))
	copy(out, deps)
	return out
}

// Len returns the number of dependents in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

// Dependents yields every dependent in insertion order together with its dependency list.
// The yielded slices must not be modified.
func (g *DependencyGraph) Dependents() iter.Seq2[DependencyPath, []DependencyPath] {
	return func(yield func(DependencyPath, []DependencyPath) bool) {
		for _, dependent := range g.order {
			if !yield(dependent, g.edges[dependent]) {
				return
			}
		}
	}
}

// Dependencies yields every distinct dependency recorded in the graph, in first-seen order.
func (g *DependencyGraph) Dependencies() iter.Seq[DependencyPath] {
	return func(yield func(DependencyPath) bool) {
		seen := make(map[DependencyPath]struct{})
		for _, dependent := range g.order {
			for _, dep := range g.edges[dependent] {
				if _, ok := seen[dep]; ok {
					continue
				}
				seen[dep] = struct{}{}
				if !yield(dep) {
					return
				}
			}
		}
	}
}
