package domain

import "unique"

// DependencyPath identifies a binary or shared library by its filesystem path.
// It wraps a unique.Handle[string] so that library paths repeated across many
// dependents share a single allocation and compare in constant time.
// Equality is exact string equality; no symlink resolution or cleaning is applied.
type DependencyPath struct {
	h unique.Handle[string]
}

// NewDependencyPath interns p and returns its DependencyPath.
func NewDependencyPath(p string) DependencyPath {
	return DependencyPath{h: unique.Make(p)}
}

// String returns the path as reported by the probe.
func (p DependencyPath) String() string {
	if p.IsZero() {
		return ""
	}
	return p.h.Value()
}

// IsZero reports whether p was never assigned.
func (p DependencyPath) IsZero() bool {
	var zero unique.Handle[string]
	return p.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (p DependencyPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DependencyPath) UnmarshalText(text []byte) error {
	p.h = unique.Make(string(text))
	return nil
}

// Paths converts plain strings into DependencyPath values, preserving order.
func Paths(ss ...string) []DependencyPath {
	out := make([]DependencyPath, len(ss))
	for i, s := range ss {
		out[i] = NewDependencyPath(s)
	}
	return out
}
