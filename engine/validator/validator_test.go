package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("SELECT a FROM t WHERE b > 1"))
	assert.Error(t, Validate("SELECT * FORM t"))
}

func TestValidateWithDetails_Valid(t *testing.T) {
	result := ValidateWithDetails("SELECT a, COUNT(b) FROM t GROUP BY a")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
}

func TestValidateWithDetails_SyntaxError(t *testing.T) {
	result := ValidateWithDetails("SELECT * FORM t")
	require.False(t, result.Valid)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 1, result.Line)
	assert.Greater(t, result.Column, 0)
}

func TestExtractPosition(t *testing.T) {
	line, column := extractPosition(`syntax error at line 3 column 14 near "FORM"`)
	assert.Equal(t, 3, line)
	assert.Equal(t, 14, column)

	line, column = extractPosition("no position here")
	assert.Zero(t, line)
	assert.Zero(t, column)
}
