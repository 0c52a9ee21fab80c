// Package main provides the validate-workflows CLI, which checks Oozie workflow
// XML files against an XSD with an external schema validator.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/workflow-validator/internal/validation"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		// The summary has already been printed for failed batches
		var failedErr *validation.FailedError
		if !errors.As(err, &failedErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
