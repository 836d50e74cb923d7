// Package fs provides file system adapters for walking input trees, staging dependencies
// and verifying staged bundles.
package fs

import (
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/depcollect/internal/core/ports"
)

var _ ports.TreeWalker = (*Walker)(nil)

// Walker enumerates candidate binaries below an input path.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields root when it is a regular file, and every regular file at any depth when it is
// a directory, in lexical directory-listing order. Symlinks inside a tree are yielded when they
// point at a regular file; symlinked directories below root are not descended into, while a
// symlinked root is followed. Missing, unreadable and special entries are skipped silently.
func (w *Walker) Walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		info, err := os.Stat(root)
		if err != nil {
			return
		}
		if info.Mode().IsRegular() {
			yield(root)
			return
		}
		if !info.IsDir() {
			return
		}

		// WalkDir does not follow a symlinked root, so walk through it explicitly.
		start := root
		if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&iofs.ModeSymlink != 0 {
			start = root + string(filepath.Separator)
		}

		_ = filepath.WalkDir(start, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directories are skipped, the rest of the tree is still walked.
				if d != nil && d.IsDir() && path != start {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isRegularFile(path, d) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func isRegularFile(path string, d iofs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&iofs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
