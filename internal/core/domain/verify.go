package domain

// VerifyReport lists the staged dependencies that failed verification.
type VerifyReport struct {
	Checked    int
	Missing    []string
	Mismatched []string
}

// OK reports whether every staged dependency was present and matched its source.
func (r VerifyReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}
