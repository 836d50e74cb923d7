package ports

import (
	"context"

	"go.trai.ch/depcollect/internal/core/domain"
)

// BundleVerifier checks staged dependencies against their original files.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type BundleVerifier interface {
	// Verify checks every dependency in graph below root.
	Verify(ctx context.Context, root string, graph *domain.DependencyGraph) (domain.VerifyReport, error)
}
