package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
functions:
  legacy_udf: bridge_udf
table_mapping:
  projects:
    proj: cat
  datasets:
    ds: sch
  tables:
    old_name: new_name
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "bridge_udf", set.Functions["legacy_udf"])
	assert.Equal(t, "cat", set.Tables.Projects["proj"])
	assert.Equal(t, "sch", set.Tables.Datasets["ds"])
	assert.Equal(t, "new_name", set.Tables.Tables["old_name"])
	assert.False(t, set.IsEmpty())
}

func TestParse_Malformed(t *testing.T) {
	set, err := Parse([]byte("functions: [not, a, map]"))
	require.Error(t, err)
	assert.True(t, set.IsEmpty(), "malformed document degrades to the empty set")
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	set, err := Load(path)
	require.Error(t, err)
	assert.True(t, set.IsEmpty())
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bridge_udf", set.Functions["legacy_udf"])
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, (*Set)(nil).IsEmpty())
	assert.False(t, (&Set{Functions: map[string]string{"a": "b"}}).IsEmpty())
}

func TestFingerprint(t *testing.T) {
	a := &Set{Functions: map[string]string{"x": "1", "y": "2"}}
	b := &Set{Functions: map[string]string{"y": "2", "x": "1"}}
	c := &Set{Functions: map[string]string{"x": "changed"}}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "fingerprint is order independent")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, Empty().Fingerprint(), a.Fingerprint())
}
