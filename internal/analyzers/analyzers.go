// Package analyzers implements the heuristic resume checks. Each analyzer
// is a pure function of the resume text: it holds no state, performs no
// I/O, and returns the same result for the same input, so callers may run
// them concurrently without coordination.
package analyzers

// Status classifies an analyzer finding for rendering layers.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)
