package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.BundleVerifier = (*Verifier)(nil)

// Verifier checks that every dependency of a manifest is present below a staging root
// and that staged regular files still match their sources.
type Verifier struct {
	hasher *Hasher
}

// NewVerifier creates a new Verifier.
func NewVerifier(hasher *Hasher) *Verifier {
	return &Verifier{hasher: hasher}
}

type checkResult int

const (
	checkOK checkResult = iota
	checkMissing
	checkMismatched
)

// Verify checks all distinct dependencies of graph concurrently.
// Missing and mismatched paths are reported sorted. Sources that no longer exist on the host
// are only checked for presence in the bundle.
func (v *Verifier) Verify(ctx context.Context, root string, graph *domain.DependencyGraph) (domain.VerifyReport, error) {
	var (
		mu     sync.Mutex
		report domain.VerifyReport
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for dep := range graph.Dependencies() {
		path := dep.String()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := v.check(root, path)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checked++
			switch res {
			case checkMissing:
				report.Missing = append(report.Missing, path)
			case checkMismatched:
				report.Mismatched = append(report.Mismatched, path)
			case checkOK:
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.VerifyReport{}, err
	}

	slices.Sort(report.Missing)
	slices.Sort(report.Mismatched)
	return report, nil
}

func (v *Verifier) check(root, path string) (checkResult, error) {
	staged := filepath.Join(root, path)

	stagedInfo, err := os.Stat(staged)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return checkMissing, nil
		}
		return checkOK, zerr.With(zerr.Wrap(err, "failed to stat staged file"), "path", staged)
	}

	srcInfo, err := os.Stat(path)
	if err != nil || !srcInfo.Mode().IsRegular() || !stagedInfo.Mode().IsRegular() {
		return checkOK, nil
	}

	if srcInfo.Size() != stagedInfo.Size() {
		return checkMismatched, nil
	}

	want, err := v.hasher.ComputeFileHash(path)
	if err != nil {
		return checkOK, err
	}
	got, err := v.hasher.ComputeFileHash(staged)
	if err != nil {
		return checkOK, err
	}
	if want != got {
		return checkMismatched, nil
	}
	return checkOK, nil
}
