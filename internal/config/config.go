// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSchema is the XSD location relative to the tool's installation directory
	DefaultSchema = "schemas/oozie-workflow-0.5.xsd"

	// EnvVerbose toggles validator output streaming when set to a truthy value
	EnvVerbose = "VERBOSE"
	// EnvSchema overrides the XSD path
	EnvSchema = "WORKFLOW_SCHEMA"
	// EnvValidator overrides the validator binary
	EnvValidator = "XMLLINT"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	Schema    string   `json:"schema,omitempty" yaml:"schema,omitempty"`                                 // Path to the workflow XSD
	Validator string   `json:"validator,omitempty" yaml:"validator,omitempty"`                           // Validator binary (xmllint compatible)
	Verbose   bool     `json:"verbose,omitempty" yaml:"verbose,omitempty"`                               // Stream validator output
	Report    string   `json:"report,omitempty" yaml:"report,omitempty"`                                 // Path to JSON report output
	Timeout   string   `json:"timeout,omitempty" yaml:"timeout,omitempty"`                               // Per-file timeout, e.g. "30s"
	Files     []string `json:"files,omitempty" yaml:"files,omitempty" validate:"omitempty,dive,required"` // Files checked when no arguments are given
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid 'timeout' %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config error: 'timeout' must be non-negative")
	}
	return d, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Validator == "" {
		result.Validator = defaults.Validator
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.Timeout == "" {
		result.Timeout = defaults.Timeout
	}
	if len(result.Files) == 0 && len(defaults.Files) > 0 {
		result.Files = append([]string(nil), defaults.Files...)
	}

	// Bool fields: unset and false look the same, so a true default wins
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}

// ApplyEnv overrides fields from environment variables read through lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvVerbose); ok && IsTruthy(v) {
		c.Verbose = true
	}
	if v, ok := lookup(EnvSchema); ok && v != "" {
		c.Schema = v
	}
	if v, ok := lookup(EnvValidator); ok && v != "" {
		c.Validator = v
	}
}

// IsTruthy interprets an environment toggle. Boolean strings follow strconv.ParseBool;
// any other non-empty value counts as enabled.
func IsTruthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
