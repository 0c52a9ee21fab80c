package validation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// DefaultValidator is the schema validation binary used when none is configured
const DefaultValidator = "xmllint"

// waitDelay bounds how long a killed validator may hold its output pipes open
const waitDelay = 2 * time.Second

// Checker runs the schema check for a single file. A nil error means the file passed.
type Checker interface {
	Check(ctx context.Context, path string) error
}

// XMLLintChecker validates files by invoking xmllint (or a compatible binary) with --schema
type XMLLintChecker struct {
	Binary  string
	Schema  string
	Timeout time.Duration // Zero means no timeout
	Verbose bool          // Stream validator output to Output
	Output  io.Writer
}

// NewXMLLintChecker creates a checker for the given validator binary and XSD path.
func NewXMLLintChecker(binary, schema string) *XMLLintChecker {
	if binary == "" {
		binary = DefaultValidator
	}
	return &XMLLintChecker{
		Binary: binary,
		Schema: schema,
		Output: io.Discard,
	}
}

// Args returns the validator arguments used to check path.
func (c *XMLLintChecker) Args(path string) []string {
	return []string{"--noout", "--schema", c.Schema, path}
}

// Check runs the validator against path. Only the exit status decides the outcome;
// the output is kept on the returned error for diagnostics.
func (c *XMLLintChecker) Check(ctx context.Context, path string) error {
	binary := c.Binary
	if binary == "" {
		binary = DefaultValidator
	}

	if _, err := exec.LookPath(binary); err != nil {
		return &CheckError{
			Path:     path,
			ExitCode: -1,
			Message:  fmt.Sprintf("%s not found in PATH. Please install libxml2 utilities or set XMLLINT", binary),
			Cause:    err,
		}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, c.Args(path)...)
	cmd.WaitDelay = waitDelay

	// Same writer for both streams so exec serializes the writes
	var output strings.Builder
	var w io.Writer = &output
	if c.Verbose && c.Output != nil {
		w = io.MultiWriter(c.Output, &output)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	runErr := cmd.Run()
	if runErr == nil {
		return nil
	}

	checkErr := &CheckError{
		Path:     path,
		ExitCode: -1,
		Output:   output.String(),
		Message:  "schema validation failed",
		Cause:    runErr,
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		checkErr.ExitCode = exitErr.ExitCode()
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		checkErr.Message = fmt.Sprintf("validator timed out after %s", c.Timeout)
	}

	return checkErr
}
