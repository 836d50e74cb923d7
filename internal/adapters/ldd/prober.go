package ldd

import (
	"context"
	"maps"
	"os"
	"slices"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
)

var _ ports.Prober = (*Prober)(nil)

// Prober implements ports.Prober by running the configured introspection tool.
type Prober struct {
	runner ports.CommandRunner
	cfg    domain.ProbeConfig
	exists func(string) bool
}

// NewProber creates a Prober that runs cfg.Command through runner.
func NewProber(runner ports.CommandRunner, cfg domain.ProbeConfig) *Prober {
	return &Prober{
		runner: runner,
		cfg:    cfg,
		exists: pathExists,
	}
}

// Probe runs the tool against path and parses its report.
// Tool failures never escape as errors; they are classified in the result instead.
func (p *Prober) Probe(ctx context.Context, path string) domain.ProbeResult {
	args := append(slices.Clone(p.cfg.Args), path)

	res, err := p.runner.Run(ctx, p.cfg.Command, args, p.env())
	deps, notDynamic := ParseOutput(res.Output, p.exists)

	switch {
	case err != nil && notDynamic:
		return domain.ProbeResult{Status: domain.ProbeNotApplicable}
	case err != nil:
		return domain.ProbeResult{Status: domain.ProbeToolError, Err: err}
	case len(deps) == 0 && notDynamic:
		return domain.ProbeResult{Status: domain.ProbeNotApplicable}
	default:
		return domain.ProbeResult{Status: domain.ProbeResolved, Dependencies: deps}
	}
}

func (p *Prober) env() []string {
	if len(p.cfg.Env) == 0 {
		return nil
	}
	env := make([]string, 0, len(p.cfg.Env))
	for _, k := range slices.Sorted(maps.Keys(p.cfg.Env)) {
		env = append(env, k+"="+p.cfg.Env[k])
	}
	return env
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
