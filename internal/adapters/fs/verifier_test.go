package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcollect/internal/adapters/fs"
	"go.trai.ch/depcollect/internal/core/domain"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libfoo.so")
	require.NoError(t, os.WriteFile(path, []byte("foo"), 0o600))

	got, err := fs.NewHasher().ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("foo"), got)

	_, err = fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestVerifier_Verify(t *testing.T) {
	srcDir := t.TempDir()
	dest := t.TempDir()

	write := func(path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	good := filepath.Join(srcDir, "libgood.so")
	changed := filepath.Join(srcDir, "libchanged.so")
	missing := filepath.Join(srcDir, "libmissing.so")
	gone := filepath.Join(srcDir, "libgone.so")

	write(good, "good")
	write(dest+good, "good")
	write(changed, "new")
	write(dest+changed, "old")
	write(missing, "missing")
	write(dest+gone, "gone")

	app := filepath.Join(srcDir, "app")
	graph := domain.NewDependencyGraph()
	graph.AddEdge(domain.NewDependencyPath(app), domain.NewDependencyPath(good))
	graph.AddEdge(domain.NewDependencyPath(app), domain.NewDependencyPath(changed))
	graph.AddEdge(domain.NewDependencyPath(good), domain.NewDependencyPath(missing))
	graph.AddEdge(domain.NewDependencyPath(good), domain.NewDependencyPath(gone))
	graph.AddEdge(domain.NewDependencyPath(changed), domain.NewDependencyPath(good))

	report, err := fs.NewVerifier(fs.NewHasher()).Verify(context.Background(), dest, graph)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, []string{missing}, report.Missing)
	assert.Equal(t, []string{changed}, report.Mismatched)
	assert.False(t, report.OK())
}

func TestVerifier_Verify_Empty(t *testing.T) {
	report, err := fs.NewVerifier(fs.NewHasher()).Verify(context.Background(), t.TempDir(), domain.NewDependencyGraph())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Checked)
	assert.True(t, report.OK())
}
