// Package closure computes the transitive shared-library closure of binaries and stages every
// library it discovers.
package closure

import (
	"context"
	"fmt"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder accumulates the dependency graph of one collection run.
// The graph and the discovered set are shared by every Resolve call on the same Builder, so a
// library reached from several binaries is staged and expanded only once.
type Builder struct {
	prober ports.Prober
	stager ports.Stager
	logger ports.Logger

	graph      *domain.DependencyGraph
	discovered *domain.DiscoveredSet
	stats      domain.RunStats
}

// NewBuilder creates a Builder with an empty graph.
func NewBuilder(prober ports.Prober, stager ports.Stager, logger ports.Logger) *Builder {
	return &Builder{
		prober:     prober,
		stager:     stager,
		logger:     logger,
		graph:      domain.NewDependencyGraph(),
		discovered: domain.NewDiscoveredSet(),
	}
}

// frame is one level of the depth-first descent: a dependent, its probed dependencies and the
// index of the next dependency to visit.
type frame struct {
	path domain.DependencyPath
	deps []domain.DependencyPath
	next int
}

// Resolve probes binary and descends into every dependency not seen before, in probe order.
// Each new library is staged, recorded as a dependency of the binary or library that first
// reached it, marked discovered and then probed itself before its next sibling is visited.
// A staging failure aborts the descent.
func (b *Builder) Resolve(ctx context.Context, binary string) error {
	b.stats.Binaries++
	root := domain.NewDependencyPath(binary)

	b.note(ctx, domain.LogLevelInfo, fmt.Sprintf("Analyzing binary '%s'", binary))

	stack := []frame{{path: root, deps: b.probe(ctx, root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}

		dependent := top.path
		lib := top.deps[top.next]
		top.next++

		if b.discovered.Contains(lib) {
			b.stats.Repeats++
			continue
		}

		if err := b.stage(ctx, dependent, lib); err != nil {
			return err
		}

		b.note(ctx, domain.LogLevelDebug, fmt.Sprintf("Saving '%s' in dependency tree", lib))
		b.graph.AddEdge(dependent, lib)
		b.discovered.Mark(lib)
		b.stats.Libraries++

		stack = append(stack, frame{path: lib, deps: b.probe(ctx, lib)})
	}

	return nil
}

// Graph returns the accumulated dependency graph. Callers must not modify it.
func (b *Builder) Graph() *domain.DependencyGraph {
	return b.graph
}

// Stats returns counters for the work done so far.
func (b *Builder) Stats() domain.RunStats {
	return b.stats
}

func (b *Builder) probe(ctx context.Context, path domain.DependencyPath) []domain.DependencyPath {
	b.stats.Probes++
	res := b.prober.Probe(ctx, path.String())

	switch res.Status {
	case domain.ProbeToolError:
		b.stats.ToolErrors++
		b.note(ctx, domain.LogLevelWarn, fmt.Sprintf("Could not inspect '%s': %v", path, res.Err))
	case domain.ProbeNotApplicable:
		b.note(ctx, domain.LogLevelDebug, fmt.Sprintf("'%s' is not dynamically linked", path))
	case domain.ProbeResolved:
	}

	return res.Dependencies
}

func (b *Builder) stage(ctx context.Context, dependent, lib domain.DependencyPath) error {
	dest := b.stager.Destination(lib.String())

	copied, err := b.stager.Stage(lib.String())
	if err != nil {
		err = zerr.Wrap(err, "failed to collect dependency")
		return zerr.With(zerr.With(err, "dependency", lib.String()), "dependent", dependent.String())
	}

	if copied {
		b.stats.Copies++
		b.note(ctx, domain.LogLevelInfo, fmt.Sprintf("Copying '%s' to '%s'", lib, dest))
	} else {
		b.note(ctx, domain.LogLevelDebug, fmt.Sprintf("'%s' is already staged at '%s'", lib, dest))
	}
	return nil
}

// note records msg on the vertex carried by ctx, or logs it when there is none.
func (b *Builder) note(ctx context.Context, level domain.LogLevel, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(level, msg)
		return
	}

	switch {
	case level >= domain.LogLevelWarn:
		b.logger.Warn(msg)
	case level >= domain.LogLevelInfo:
		b.logger.Info(msg)
	default:
		b.logger.Debug(msg)
	}
}
