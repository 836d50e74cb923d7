package domain

// ProbeStatus classifies the outcome of asking the introspection tool about a binary.
type ProbeStatus int

const (
	// ProbeResolved means the tool ran and reported the binary's dependencies.
	ProbeResolved ProbeStatus = iota
	// ProbeNotApplicable means the target is statically linked or not a dynamic executable.
	ProbeNotApplicable
	// ProbeToolError means the tool could not be run or exited abnormally.
	ProbeToolError
)

// String returns a short name for the status.
func (s ProbeStatus) String() string {
	switch s {
	case ProbeResolved:
		return "resolved"
	case ProbeNotApplicable:
		return "not-applicable"
	case ProbeToolError:
		return "tool-error"
	default:
		return "unknown"
	}
}

// ProbeResult is the outcome of probing a single binary.
// Dependencies is empty whenever Status is not ProbeResolved, and Err is only set for ProbeToolError.
type ProbeResult struct {
	Status       ProbeStatus
	Dependencies []DependencyPath
	Err          error
}
