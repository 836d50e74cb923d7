// Package app implements the application layer for depcollect.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/depcollect/internal/engine/closure"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	prober    ports.Prober
	stagers   ports.StagerFactory
	walker    ports.TreeWalker
	writer    ports.ManifestWriter
	reader    ports.ManifestReader
	verifier  ports.BundleVerifier
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	prober ports.Prober,
	stagers ports.StagerFactory,
	walker ports.TreeWalker,
	writer ports.ManifestWriter,
	reader ports.ManifestReader,
	verifier ports.BundleVerifier,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		prober:    prober,
		stagers:   stagers,
		walker:    walker,
		writer:    writer,
		reader:    reader,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    log,
	}
}

// Collect stages the shared-library closure of every binary found in inputs below dest and
// writes the manifest into dest. Inputs are processed in order and share one dependency graph,
// so a library needed by several binaries is copied once.
func (a *App) Collect(ctx context.Context, dest string, inputs []string) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	builder := closure.NewBuilder(a.prober, a.stagers.ForRoot(dest), a.logger)

	var previous string
	for _, input := range inputs {
		var opts []ports.VertexOption
		if previous != "" {
			opts = append(opts, ports.WithInputs(previous))
		}
		vctx, vertex := a.telemetry.Record(ctx, input, opts...)

		before := builder.Stats()
		err := a.collectInput(vctx, builder, input)
		if err == nil && builder.Stats().Libraries == before.Libraries {
			vertex.Cached()
		}
		vertex.Complete(err)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to collect dependencies"), "input", input)
		}
		previous = input
	}

	path, err := a.writer.Write(dest, builder.Graph())
	if err != nil {
		return err
	}

	stats := builder.Stats()
	a.logger.Info(fmt.Sprintf(
		"Collected %d libraries for %d binaries (%d copied), manifest written to '%s'",
		stats.Libraries, stats.Binaries, stats.Copies, path,
	))
	if stats.ToolErrors > 0 {
		a.logger.Warn(fmt.Sprintf("%d files could not be inspected", stats.ToolErrors))
	}
	return nil
}

func (a *App) collectInput(ctx context.Context, builder *closure.Builder, input string) error {
	found := 0
	for binary := range a.walker.Walk(input) {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "collection interrupted")
		}
		found++
		if err := builder.Resolve(ctx, binary); err != nil {
			return err
		}
	}

	if found == 0 {
		a.logger.Warn(fmt.Sprintf("No files found in '%s'", input))
	}
	return nil
}

// Verify re-reads the manifest in dest and checks that every listed library is staged and
// still matches its source.
func (a *App) Verify(ctx context.Context, dest string) error {
	graph, err := a.reader.Read(dest)
	if err != nil {
		return err
	}

	vctx, vertex := a.telemetry.Record(ctx, "verify "+dest)
	report, err := a.verifier.Verify(vctx, dest, graph)
	if err != nil {
		vertex.Complete(err)
		return zerr.With(zerr.Wrap(err, "failed to verify bundle"), "destination", dest)
	}

	for _, path := range report.Missing {
		vertex.Log(domain.LogLevelWarn, fmt.Sprintf("Missing '%s'", path))
	}
	for _, path := range report.Mismatched {
		vertex.Log(domain.LogLevelWarn, fmt.Sprintf("Staged copy of '%s' differs from the original", path))
	}

	if !report.OK() {
		err := zerr.Wrap(domain.ErrBundleIncomplete, "bundle verification failed")
		err = zerr.With(zerr.With(err, "missing", len(report.Missing)), "mismatched", len(report.Mismatched))
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	a.logger.Info(fmt.Sprintf("Verified %d libraries in '%s'", report.Checked, dest))
	return nil
}
