package domain

// RunStats summarizes the work done by a collection run.
// Libraries counts distinct libraries discovered; Repeats counts dependencies skipped because
// they had already been discovered.
type RunStats struct {
	Binaries   int
	Libraries  int
	Probes     int
	Copies     int
	Repeats    int
	ToolErrors int
}
