package validation

import "fmt"

// CheckError represents a failed external schema check for one workflow file
type CheckError struct {
	Path     string
	ExitCode int    // -1 when the validator could not be started or was killed
	Output   string // Combined validator output, diagnostic only
	Message  string
	Cause    error
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema check error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema check error: %s: %s", e.Path, e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// FailedError is returned when at least one file in a batch failed its check
type FailedError struct {
	Failed []string
	Total  int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("validation failed for %d of %d workflow file(s)", len(e.Failed), e.Total)
}
