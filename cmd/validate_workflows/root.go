package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/workflow-validator/internal/config"
	"github.com/jonathan/workflow-validator/internal/observability"
	"github.com/jonathan/workflow-validator/internal/observability/logging"
	"github.com/jonathan/workflow-validator/internal/schemas"
	"github.com/jonathan/workflow-validator/internal/validation"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	schema     string
	validator  string
	report     string
	timeout    string
	verbose    bool

	lookupEnv func(string) (string, bool)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{lookupEnv: os.LookupEnv}

	cmd := &cobra.Command{
		Use:   "validate-workflows [flags] <path>...",
		Short: "Validate Oozie workflow XML files against the workflow XSD",
		Long: "Runs an external XML schema validator (xmllint by default) against every workflow file given,\n" +
			"lists the files that failed and exits non-zero if any did. Set VERBOSE=1 to see validator output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to JSON or YAML config file (optional)")
	flags.StringVarP(&opts.schema, "schema", "s", "", "Path to the workflow XSD (default: "+config.DefaultSchema+" next to the binary)")
	flags.StringVar(&opts.validator, "validator", "", "Schema validator binary (default: "+validation.DefaultValidator+")")
	flags.StringVarP(&opts.report, "report", "r", "", "Write a JSON report to this path (optional)")
	flags.StringVar(&opts.timeout, "timeout", "", "Per-file validator timeout, e.g. 30s (default: none)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Stream validator output")

	return cmd
}

// resolveConfig merges built-in defaults, the config file, the environment and
// flags, in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(opts.lookupEnv)

	flags := cmd.Flags()
	if flags.Changed("schema") {
		cfg.Schema = opts.schema
	}
	if flags.Changed("validator") {
		cfg.Validator = opts.validator
	}
	if flags.Changed("report") {
		cfg.Report = opts.report
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	merged := cfg.MergeWithDefaults(config.Config{
		Schema:    config.DefaultSchema,
		Validator: validation.DefaultValidator,
	})

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	merged.Schema = schemaPath(merged.Schema)

	return &merged, nil
}

// schemaPath locates the built-in default XSD relative to the installation
// directory. Any other value came from the user and is used as given, so
// relative paths stay relative to the working directory. An unresolved
// default is passed through; the validator then fails every file.
func schemaPath(schema string) string {
	if schema != config.DefaultSchema {
		return schema
	}
	if resolved := schemas.ResolveSchemaPath(schema); resolved != "" {
		return resolved
	}
	return schema
}

func runValidate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ForVerbosity(cfg.Verbose)
	logCfg.Out = stderr
	logger := logging.New(logCfg)

	paths := args
	if len(paths) == 0 {
		paths = cfg.Files
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}

	checker := validation.NewXMLLintChecker(cfg.Validator, cfg.Schema)
	checker.Timeout = timeout
	checker.Verbose = cfg.Verbose
	checker.Output = stdout

	logger.Debug().
		Str("schema", cfg.Schema).
		Str("validator", cfg.Validator).
		Int("files", len(paths)).
		Msg("starting workflow validation")

	startedAt := time.Now()
	batch := validation.NewBatch(checker, observability.NewPrinter(stdout), validation.WithLogger(logger))
	result := batch.Run(ctx, paths)

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, result, cfg, startedAt, logger); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(stdout, "Report: %s\n", cfg.Report)
	}

	return validation.Err(result)
}
