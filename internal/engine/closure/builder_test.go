package closure_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/depcollect/internal/core/ports/mocks"
	"go.trai.ch/depcollect/internal/engine/closure"
	"go.uber.org/mock/gomock"
)

// harness wires a Builder to mocks that answer probes from tree and record staging calls.
type harness struct {
	builder *closure.Builder
	prober  *mocks.MockProber
	stager  *mocks.MockStager
	staged  []string
	probed  []string
}

func newHarness(t *testing.T, tree map[string][]string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		prober: mocks.NewMockProber(ctrl),
		stager: mocks.NewMockStager(ctrl),
	}

	h.prober.EXPECT().Probe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string) domain.ProbeResult {
			h.probed = append(h.probed, path)
			deps, ok := tree[path]
			if !ok {
				return domain.ProbeResult{Status: domain.ProbeNotApplicable}
			}
			return domain.ProbeResult{Status: domain.ProbeResolved, Dependencies: domain.Paths(deps...)}
		}).AnyTimes()

	h.stager.EXPECT().Destination(gomock.Any()).
		DoAndReturn(func(path string) string { return "/stage" + path }).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	h.builder = closure.NewBuilder(h.prober, h.stager, logger)
	return h
}

// stageAll makes every Stage call succeed with a copy.
func (h *harness) stageAll() {
	h.stager.EXPECT().Stage(gomock.Any()).
		DoAndReturn(func(path string) (bool, error) {
			h.staged = append(h.staged, path)
			return true, nil
		}).AnyTimes()
}

func dependents(g *domain.DependencyGraph) map[string][]string {
	out := make(map[string][]string)
	for dependent, deps := range g.Dependents() {
		for _, d := range deps {
			out[dependent.String()] = append(out[dependent.String()], d.String())
		}
	}
	return out
}

func TestBuilder_Resolve_NoDependencies(t *testing.T) {
	h := newHarness(t, map[string][]string{})
	// No Stage expectation: any call fails the test.

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/static"))

	assert.Equal(t, 0, h.builder.Graph().Len())
	assert.Equal(t, []string{"/bin/static"}, h.probed)
	assert.Equal(t, domain.RunStats{Binaries: 1, Probes: 1}, h.builder.Stats())
}

func TestBuilder_Resolve_Chain(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/app":       {"/lib/libfoo.so"},
		"/lib/libfoo.so": {"/lib/libbar.so"},
		"/lib/libbar.so": {},
	})
	h.stageAll()

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/app"))

	assert.Equal(t, map[string][]string{
		"/bin/app":       {"/lib/libfoo.so"},
		"/lib/libfoo.so": {"/lib/libbar.so"},
	}, dependents(h.builder.Graph()))
	assert.Equal(t, []string{"/lib/libfoo.so", "/lib/libbar.so"}, h.staged)
	assert.False(t, h.builder.Graph().Has(domain.NewDependencyPath("/lib/libbar.so")))
}

func TestBuilder_Resolve_DiamondStagedOnce(t *testing.T) {
	// app -> a, b; a -> c; b -> c
	h := newHarness(t, map[string][]string{
		"/bin/app":  {"/lib/a.so", "/lib/b.so"},
		"/lib/a.so": {"/lib/c.so"},
		"/lib/b.so": {"/lib/c.so"},
	})
	h.stageAll()

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/app"))

	assert.Equal(t, []string{"/lib/a.so", "/lib/c.so", "/lib/b.so"}, h.staged)
	// The second path to c is not recorded: c is already discovered.
	assert.Equal(t, map[string][]string{
		"/bin/app":  {"/lib/a.so", "/lib/b.so"},
		"/lib/a.so": {"/lib/c.so"},
	}, dependents(h.builder.Graph()))
	assert.Equal(t, 1, h.builder.Stats().Repeats)
	assert.Equal(t, 3, h.builder.Stats().Copies)
}

func TestBuilder_Resolve_DepthFirstOrder(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/app":   {"/lib/a.so", "/lib/b.so"},
		"/lib/a.so":  {"/lib/a1.so", "/lib/a2.so"},
		"/lib/a1.so": {"/lib/a11.so"},
	})
	h.stageAll()

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/app"))

	assert.Equal(t, []string{"/lib/a.so", "/lib/a1.so", "/lib/a11.so", "/lib/a2.so", "/lib/b.so"}, h.staged)
	assert.Equal(t,
		[]string{"/bin/app", "/lib/a.so", "/lib/a1.so", "/lib/a11.so", "/lib/a2.so", "/lib/b.so"},
		h.probed,
	)

	var keys []string
	for dependent := range h.builder.Graph().Dependents() {
		keys = append(keys, dependent.String())
	}
	assert.Equal(t, []string{"/bin/app", "/lib/a.so", "/lib/a1.so"}, keys)
}

func TestBuilder_Resolve_Cycle(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/app":  {"/lib/a.so"},
		"/lib/a.so": {"/lib/b.so"},
		"/lib/b.so": {"/lib/a.so"},
	})
	h.stageAll()

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/app"))

	assert.Equal(t, []string{"/lib/a.so", "/lib/b.so"}, h.staged)
	assert.Equal(t, map[string][]string{
		"/bin/app":  {"/lib/a.so"},
		"/lib/a.so": {"/lib/b.so"},
	}, dependents(h.builder.Graph()))
}

func TestBuilder_Resolve_SharedAcrossRoots(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/one": {"/lib/libc.so.6", "/lib/libm.so.6"},
		"/bin/two": {"/lib/libc.so.6"},
	})
	h.stageAll()

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/one"))
	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/two"))

	assert.Equal(t, []string{"/lib/libc.so.6", "/lib/libm.so.6"}, h.staged)
	// two only reaches already discovered libraries and never becomes a key.
	assert.False(t, h.builder.Graph().Has(domain.NewDependencyPath("/bin/two")))
	assert.Equal(t, domain.RunStats{Binaries: 2, Libraries: 2, Probes: 4, Copies: 2, Repeats: 1}, h.builder.Stats())
}

func TestBuilder_Resolve_AlreadyStaged(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/app": {"/lib/libc.so.6"},
	})
	h.stager.EXPECT().Stage("/lib/libc.so.6").Return(false, nil)

	require.NoError(t, h.builder.Resolve(context.Background(), "/bin/app"))

	// The edge is still recorded even though nothing was copied.
	assert.Equal(t, map[string][]string{"/bin/app": {"/lib/libc.so.6"}}, dependents(h.builder.Graph()))
	assert.Equal(t, 0, h.builder.Stats().Copies)
}

func TestBuilder_Resolve_StagingError(t *testing.T) {
	h := newHarness(t, map[string][]string{
		"/bin/app": {"/lib/a.so", "/lib/b.so"},
	})
	h.stager.EXPECT().Stage("/lib/a.so").Return(false, errors.Join(domain.ErrStagingFailed, errors.New("disk full")))

	err := h.builder.Resolve(context.Background(), "/bin/app")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStagingFailed)
	assert.Equal(t, 0, h.builder.Graph().Len())
}

func TestBuilder_Resolve_ToolErrorContinues(t *testing.T) {
	ctrl := gomock.NewController(t)

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any(), "/bin/app").Return(domain.ProbeResult{
		Status: domain.ProbeToolError,
		Err:    errors.New("exit status 1"),
	})

	logger := mocks.NewMockLogger(ctrl)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Log(domain.LogLevelInfo, gomock.Any())
	vertex.EXPECT().Log(domain.LogLevelWarn, "Could not inspect '/bin/app': exit status 1")
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	builder := closure.NewBuilder(prober, mocks.NewMockStager(ctrl), logger)

	require.NoError(t, builder.Resolve(ctx, "/bin/app"))
	assert.Equal(t, 1, builder.Stats().ToolErrors)
	assert.Equal(t, 0, builder.Graph().Len())
}

func TestBuilder_Resolve_ToolErrorWithoutVertexIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any(), "/bin/app").Return(domain.ProbeResult{
		Status: domain.ProbeToolError,
		Err:    errors.New("exit status 1"),
	})

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("Analyzing binary '/bin/app'")
	logger.EXPECT().Warn("Could not inspect '/bin/app': exit status 1")

	builder := closure.NewBuilder(prober, mocks.NewMockStager(ctrl), logger)

	require.NoError(t, builder.Resolve(context.Background(), "/bin/app"))
	assert.Equal(t, 1, builder.Stats().ToolErrors)
}
