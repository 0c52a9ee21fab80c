// Package types provides type definitions for structured data used throughout the workflow validator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FileResult is the outcome of the external schema check for a single workflow file
type FileResult struct {
	Path       string `json:"path"`
	Passed     bool   `json:"passed"`
	ExitCode   *int   `json:"exit_code,omitempty"` // Exit status of the validator, nil when it never ran or was killed
	DurationMS int64  `json:"duration_ms"`
	Output     string `json:"output,omitempty"` // Captured validator output, diagnostic only
	Error      string `json:"error,omitempty"`
}

// BatchResult holds the per-file results of a batch run in input order
type BatchResult struct {
	Results []FileResult `json:"results"`
}

// Total returns the number of files that were checked.
func (r *BatchResult) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Results)
}

// Failed returns the paths whose check failed, preserving input order.
// The returned slice is never nil.
func (r *BatchResult) Failed() []string {
	failed := make([]string, 0)
	if r == nil {
		return failed
	}
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res.Path)
		}
	}
	return failed
}

// Passed reports whether every file passed. An empty batch passes.
func (r *BatchResult) Passed() bool {
	return len(r.Failed()) == 0
}

// ExitCode returns the process exit status for the batch: 0 when every file passed, 1 otherwise.
func (r *BatchResult) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}
