// Package ldd implements the dependency probe on top of the ldd introspection tool.
package ldd

import (
	"bufio"
	"bytes"
	"strings"

	"go.trai.ch/depcollect/internal/core/domain"
)

const (
	resolvedMarker = "=>"
	notFound       = "not found"
)

// notDynamicMarkers are the lines ldd prints for binaries without dynamic dependencies.
var notDynamicMarkers = []string{
	"statically linked",
	"not a dynamic executable",
}

// ParseOutput extracts dependency paths from ldd output, in the order ldd reports them.
//
// Resolved lines ("libc.so.6 => /lib/libc.so.6 (0x...)") contribute the path after the marker.
// Other lines contribute their leading token only when exists reports it present on disk, which
// keeps the dynamic loader and drops virtual objects such as linux-vdso.so.1.
// The second return value reports whether ldd declared the binary static or not dynamic.
func ParseOutput(output []byte, exists func(string) bool) ([]domain.DependencyPath, bool) {
	var (
		deps       []domain.DependencyPath
		notDynamic bool
	)

	sc := bufio.NewScanner(bytes.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(strings.ReplaceAll(sc.Text(), "\t", ""))
		if line == "" {
			continue
		}
		if isNotDynamic(line) {
			notDynamic = true
			continue
		}

		if _, resolved, ok := strings.Cut(line, resolvedMarker); ok {
			path := stripLoadAddress(resolved)
			if path == "" || path == notFound {
				continue
			}
			deps = append(deps, domain.NewDependencyPath(path))
			continue
		}

		path := stripLoadAddress(line)
		if path != "" && exists(path) {
			deps = append(deps, domain.NewDependencyPath(path))
		}
	}

	return deps, notDynamic
}

func isNotDynamic(line string) bool {
	for _, marker := range notDynamicMarkers {
		if line == marker {
			return true
		}
	}
	return false
}

// stripLoadAddress drops a trailing "(0x...)" annotation and surrounding whitespace.
func stripLoadAddress(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
