//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchResult_Empty(t *testing.T) {
	result := &BatchResult{}

	assert.Equal(t, 0, result.Total())
	assert.True(t, result.Passed())
	assert.Equal(t, 0, result.ExitCode())
	assert.NotNil(t, result.Failed())
	assert.Empty(t, result.Failed())
}

func TestBatchResult_Nil(t *testing.T) {
	var result *BatchResult

	assert.Equal(t, 0, result.Total())
	assert.True(t, result.Passed())
	assert.Empty(t, result.Failed())
}

func TestBatchResult_FailedPreservesInputOrder(t *testing.T) {
	result := &BatchResult{Results: []FileResult{
		{Path: "d.xml", Passed: false},
		{Path: "a.xml", Passed: true},
		{Path: "c.xml", Passed: false},
		{Path: "b.xml", Passed: false},
	}}

	assert.Equal(t, []string{"d.xml", "c.xml", "b.xml"}, result.Failed())
	assert.False(t, result.Passed())
	assert.Equal(t, 1, result.ExitCode())
	assert.Equal(t, 4, result.Total())
}

func TestBatchResult_AllPassed(t *testing.T) {
	result := &BatchResult{Results: []FileResult{
		{Path: "a.xml", Passed: true},
		{Path: "b.xml", Passed: true},
	}}

	assert.True(t, result.Passed())
	assert.Equal(t, 0, result.ExitCode())
	assert.Empty(t, result.Failed())
}
