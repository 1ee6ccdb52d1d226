package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"doubled timestamp suffix",
			"CAST(a AS TIMESTAMPSTAMP)",
			"CAST(a AS TIMESTAMP)",
		},
		{
			"space inside parens",
			"SELECT COUNT( x ) FROM t",
			"SELECT COUNT(x) FROM t",
		},
		{
			"repeated inner spaces",
			"SELECT COUNT(  x  ) FROM t",
			"SELECT COUNT(x) FROM t",
		},
		{
			"current timestamp call form",
			"SELECT CURRENT_TIMESTAMP() FROM t",
			"SELECT CURRENT_TIMESTAMP FROM t",
		},
		{
			"surrounding whitespace",
			"  SELECT 1  ",
			"SELECT 1",
		},
		{
			"clean text untouched",
			"SELECT a FROM t",
			"SELECT a FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.in))
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	in := "SELECT COUNT( x ), CURRENT_TIMESTAMP() FROM t"
	once := Apply(in)
	assert.Equal(t, once, Apply(once))
}
