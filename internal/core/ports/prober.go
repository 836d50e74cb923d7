// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/depcollect/internal/core/domain"
)

// Prober reports the direct dynamic dependencies of a binary.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe asks the introspection tool about path.
	//
	// Probing is best-effort: failures are reported through the result's Status,
	// never as an error, and leave Dependencies empty.
	Probe(ctx context.Context, path string) domain.ProbeResult
}
