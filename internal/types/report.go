//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Report is the JSON summary written with --report
type Report struct {
	RunID     string       `json:"run_id"`
	Schema    string       `json:"schema"`
	Validator string       `json:"validator"`
	StartedAt time.Time    `json:"started_at"`
	Passed    bool         `json:"passed"`
	Results   []FileResult `json:"results"`
	Failed    []string     `json:"failed"`
}

// NewReport builds a Report for a finished batch with a fresh run ID.
func NewReport(result *BatchResult, schema, validator string, startedAt time.Time) *Report {
	results := make([]FileResult, 0, result.Total())
	if result != nil {
		results = append(results, result.Results...)
	}

	return &Report{
		RunID:     uuid.NewString(),
		Schema:    schema,
		Validator: validator,
		StartedAt: startedAt.UTC(),
		Passed:    result.Passed(),
		Results:   results,
		Failed:    result.Failed(),
	}
}
