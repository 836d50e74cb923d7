package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Stager        = (*Stager)(nil)
	_ ports.StagerFactory = (*StagerFactory)(nil)
)

// StagerFactory creates Stagers bound to a staging root.
type StagerFactory struct{}

// NewStagerFactory creates a new StagerFactory.
func NewStagerFactory() *StagerFactory {
	return &StagerFactory{}
}

// ForRoot returns a Stager copying into root.
func (f *StagerFactory) ForRoot(root string) ports.Stager {
	return NewStager(root)
}

// Stager copies files and directories below a staging root, mirroring their absolute paths.
type Stager struct {
	root string
}

// NewStager creates a Stager for the given staging root.
// The root itself is only created once the first dependency is staged.
func NewStager(root string) *Stager {
	return &Stager{root: root}
}

// Destination returns the staged location of path.
func (s *Stager) Destination(path string) string {
	return filepath.Join(s.root, path)
}

// Stage copies path into the staging root unless the destination already exists.
// It returns true when a copy was made. An existing destination is left untouched.
func (s *Stager) Stage(path string) (bool, error) {
	dest := s.Destination(path)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, stageError(err, "failed to create staging directory", path, dest)
	}

	if _, err := os.Lstat(dest); err == nil {
		return false, nil
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return false, stageError(err, "failed to inspect staged file", path, dest)
	}

	src, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false, stageError(err, "failed to resolve source", path, dest)
	}

	if err := cp.Copy(src, dest, copyOptions()); err != nil {
		return false, stageError(err, "failed to copy", path, dest)
	}
	return true, nil
}

func stageError(err error, msg, src, dest string) error {
	cause := zerr.With(zerr.With(zerr.Wrap(err, msg), "source", src), "destination", dest)
	return errors.Join(domain.ErrStagingFailed, cause)
}

// copyOptions keeps permission bits and mtimes. Symlinks inside a copied directory are
// recreated with their original targets and special files are skipped.
func copyOptions() cp.Options {
	return cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		Skip: func(info iofs.FileInfo, _, _ string) (bool, error) {
			mode := info.Mode()
			return !mode.IsDir() && !mode.IsRegular() && mode&iofs.ModeSymlink == 0, nil
		},
		PermissionControl: cp.PerservePermission,
		PreserveTimes:     true,
	}
}
