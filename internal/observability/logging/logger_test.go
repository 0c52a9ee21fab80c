package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_JSONFormatRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Out: &buf})

	logger.Debug().Msg("hidden")
	logger.Warn().Str("path", "a.xml").Msg("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"message":"shown"`)
	assert.Contains(t, output, `"path":"a.xml"`)
}

func TestNew_InvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "chatty", Format: "json", Out: &buf})

	logger.Info().Msg("hidden")
	logger.Error().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "console", Out: &buf})

	logger.Debug().Msg("checking workflow")

	assert.Contains(t, buf.String(), "checking workflow")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestForVerbosity(t *testing.T) {
	assert.Equal(t, "debug", ForVerbosity(true))
	assert.Equal(t, "warn", ForVerbosity(false))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.NotNil(t, cfg.Out)
}
