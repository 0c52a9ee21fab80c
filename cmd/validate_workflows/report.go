package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/workflow-validator/internal/config"
	internalschemas "github.com/jonathan/workflow-validator/internal/schemas"
	"github.com/jonathan/workflow-validator/internal/types"
	"github.com/jonathan/workflow-validator/schemas"
	"github.com/rs/zerolog"
)

// writeReport writes the JSON report for result and checks it against the
// embedded report schema. A schema mismatch only logs a warning.
func writeReport(path string, result *types.BatchResult, cfg *config.Config, startedAt time.Time, logger zerolog.Logger) error {
	report := types.NewReport(result, cfg.Schema, cfg.Validator, startedAt)

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	// Validate output against schema (non-fatal)
	if err := internalschemas.ValidateJSONBytes(schemas.ReportName, schemas.Report, jsonBytes); err != nil {
		var validationErr *internalschemas.ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn().Err(err).Str("report", path).Msg("generated report does not validate against schema")
		} else {
			logger.Warn().Err(err).Str("report", path).Msg("could not validate report against schema")
		}
	}

	logger.Debug().Str("report", path).Str("run_id", report.RunID).Msg("wrote validation report")
	return nil
}
