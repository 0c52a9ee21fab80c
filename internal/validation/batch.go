// Package validation runs workflow files through an external XML schema validator.
package validation

import (
	"context"
	"errors"
	"time"

	"github.com/jonathan/workflow-validator/internal/observability"
	"github.com/jonathan/workflow-validator/internal/types"
	"github.com/rs/zerolog"
)

// Batch checks a list of workflow files one after another and collects the failures
type Batch struct {
	checker Checker
	printer *observability.Printer
	logger  zerolog.Logger
	now     func() time.Time
}

// BatchOption configures a Batch
type BatchOption func(*Batch)

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger zerolog.Logger) BatchOption {
	return func(b *Batch) {
		b.logger = logger
	}
}

// WithClock overrides the time source used for durations.
func WithClock(now func() time.Time) BatchOption {
	return func(b *Batch) {
		b.now = now
	}
}

// NewBatch creates a Batch that checks files with checker and reports through printer.
func NewBatch(checker Checker, printer *observability.Printer, opts ...BatchOption) *Batch {
	b := &Batch{
		checker: checker,
		printer: printer,
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.printer == nil {
		b.printer = observability.NewPrinter(nil)
	}
	return b
}

// Run checks every path in order. A failing file never stops the batch;
// every remaining path is still checked before the summary is printed.
func (b *Batch) Run(ctx context.Context, paths []string) *types.BatchResult {
	result := &types.BatchResult{Results: make([]types.FileResult, 0, len(paths))}

	for _, path := range paths {
		b.printer.PrintChecking(path)

		start := b.now()
		err := b.checker.Check(ctx, path)
		elapsed := b.now().Sub(start)

		res := types.FileResult{
			Path:       path,
			Passed:     err == nil,
			DurationMS: elapsed.Milliseconds(),
		}
		if err != nil {
			res.Error = err.Error()
			var checkErr *CheckError
			if errors.As(err, &checkErr) {
				if checkErr.ExitCode >= 0 {
					exitCode := checkErr.ExitCode
					res.ExitCode = &exitCode
				}
				res.Output = checkErr.Output
			}
			b.logger.Debug().
				Str("path", path).
				Err(err).
				Dur("duration", elapsed).
				Msg("workflow failed schema check")
		} else {
			b.logger.Debug().
				Str("path", path).
				Dur("duration", elapsed).
				Msg("workflow passed schema check")
		}

		b.printer.PrintFileResult(res)
		result.Results = append(result.Results, res)
	}

	b.printer.PrintSummary(result)
	return result
}

// Err returns a *FailedError when result contains failures, nil otherwise.
func Err(result *types.BatchResult) error {
	if result.Passed() {
		return nil
	}
	return &FailedError{Failed: result.Failed(), Total: result.Total()}
}
