package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcollect/internal/adapters/fs"
)

func TestWalker_Walk(t *testing.T) {
	// tmp/
	//   bin/
	//     app
	//     tool -> app
	//     self -> bin (dir symlink, not followed)
	//   lib/
	//     nested/
	//       libbar.so
	//     libfoo.so
	//   .hidden
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "bin"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "lib", "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bin", "app"), []byte("app"), 0o600))
	require.NoError(t, os.Symlink("app", filepath.Join(tmpDir, "bin", "tool")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "bin"), filepath.Join(tmpDir, "bin", "self")))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "lib", "libfoo.so"), []byte("foo"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "lib", "nested", "libbar.so"), []byte("bar"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".hidden"), []byte("hidden"), 0o600))

	walker := fs.NewWalker()

	var got []string
	for path := range walker.Walk(tmpDir) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		got = append(got, rel)
	}

	assert.Equal(t, []string{
		".hidden",
		"bin/app",
		"bin/tool",
		"lib/libfoo.so",
		"lib/nested/libbar.so",
	}, got)
}

func TestWalker_Walk_RegularFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "app")
	require.NoError(t, os.WriteFile(file, []byte("app"), 0o600))

	got := slices.Collect(fs.NewWalker().Walk(file))

	assert.Equal(t, []string{file}, got)
}

func TestWalker_Walk_SymlinkedRoot(t *testing.T) {
	// tmp/
	//   usr/bin/app
	//   bin -> usr/bin
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "usr", "bin"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "usr", "bin", "app"), []byte("app"), 0o600))
	require.NoError(t, os.Symlink(filepath.Join("usr", "bin"), filepath.Join(tmpDir, "bin")))

	got := slices.Collect(fs.NewWalker().Walk(filepath.Join(tmpDir, "bin")))

	assert.Equal(t, []string{filepath.Join(tmpDir, "bin", "app")}, got)
}

func TestWalker_Walk_Missing(t *testing.T) {
	got := slices.Collect(fs.NewWalker().Walk(filepath.Join(t.TempDir(), "missing")))

	assert.Empty(t, got)
}

func TestWalker_Walk_EarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0o600))
	}

	var got []string
	for path := range fs.NewWalker().Walk(tmpDir) {
		got = append(got, filepath.Base(path))
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, got)
}
