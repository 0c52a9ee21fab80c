package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["path", "passed"],
  "properties": {
    "path": {"type": "string", "minLength": 1},
    "passed": {"type": "boolean"}
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSONBytes(t *testing.T) {
	assert.NoError(t, ValidateJSONBytes("inline", []byte(testSchema), []byte(`{"path": "a.xml", "passed": false}`)))

	err := ValidateJSONBytes("inline", []byte(testSchema), []byte(`{"path": "", "passed": "no"}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateJSONBytes_BrokenSchema(t *testing.T) {
	err := ValidateJSONBytes("broken", []byte(`{ not json`), []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "broken", loadErr.Path)
}
