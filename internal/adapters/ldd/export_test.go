package ldd

// WithExistsFunc replaces the on-disk existence check used for unresolved entries.
func (p *Prober) WithExistsFunc(fn func(string) bool) *Prober {
	p.exists = fn
	return p
}
