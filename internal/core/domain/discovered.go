package domain

// DiscoveredSet holds the paths that have already been probed and staged during a run.
// It is kept apart from the graph keys: a library without dependencies of its own is
// discovered but never becomes a key.
type DiscoveredSet struct {
	paths map[DependencyPath]struct{}
}

// NewDiscoveredSet creates a new empty DiscoveredSet.
func NewDiscoveredSet() *DiscoveredSet {
	return &DiscoveredSet{paths: make(map[DependencyPath]struct{})}
}

// Mark adds path to the set. It returns false if the path was already present.
func (s *DiscoveredSet) Mark(path DependencyPath) bool {
	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

// Contains reports whether path has been discovered.
func (s *DiscoveredSet) Contains(path DependencyPath) bool {
	_, ok := s.paths[path]
	return ok
}

// Len returns the number of discovered paths.
func (s *DiscoveredSet) Len() int {
	return len(s.paths)
}
