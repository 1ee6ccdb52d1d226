package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspile_FunctionRenames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"countif",
			"select countif(x > 0) from t",
			"SELECT COUNT_IF(x > 0) FROM t",
		},
		{
			"safe cast",
			"SELECT SAFE_CAST(a AS INT64) FROM t",
			"SELECT TRY_CAST(a AS BIGINT) FROM t",
		},
		{
			"generate array",
			"SELECT GENERATE_ARRAY(1, 10)",
			"SELECT SEQUENCE(1, 10)",
		},
		{
			"ifnull",
			"SELECT IFNULL(a, 0) FROM t",
			"SELECT COALESCE(a, 0) FROM t",
		},
		{
			"regexp contains",
			"SELECT REGEXP_CONTAINS(name, 'abc') FROM t",
			"SELECT REGEXP_LIKE(name, 'abc') FROM t",
		},
	}

	d := NewDialect()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Transpile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranspile_SwappedFormatArgs(t *testing.T) {
	d := NewDialect()

	got, err := d.Transpile("SELECT PARSE_DATE('%Y-%m-%d', col) FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT TO_DATE(col, 'yyyy-MM-dd') FROM t", got)

	got, err = d.Transpile("SELECT FORMAT_DATE('%Y/%m', d) FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT DATE_FORMAT(d, 'yyyy/MM') FROM t", got)
}

func TestTranspile_FormatOnlyInsideFormatCalls(t *testing.T) {
	d := NewDialect()

	// A literal that looks like a format string stays untouched outside
	// TO_DATE / TO_TIMESTAMP / DATE_FORMAT
	got, err := d.Transpile("SELECT CONCAT(a, '%Y') FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT CONCAT(a, '%Y') FROM t", got)
}

func TestTranspile_TypeRenames(t *testing.T) {
	d := NewDialect()

	got, err := d.Transpile("SELECT CAST(a AS INT64), CAST(b AS FLOAT64), CAST(c AS BYTES) FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT CAST(a AS BIGINT), CAST(b AS DOUBLE), CAST(c AS BINARY) FROM t", got)
}

func TestTranspile_TypedArrayFusion(t *testing.T) {
	d := NewDialect()

	got, err := d.Transpile("SELECT ARRAY<INT64>[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "SELECT ARRAY<BIGINT>[1, 2, 3]", got)
}

func TestTranspile_Spacing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"keyword keeps space before paren",
			"SELECT a FROM t WHERE x IN (1, 2)",
			"SELECT a FROM t WHERE x IN (1, 2)",
		},
		{
			"function hugs paren",
			"SELECT COUNT(*) FROM t",
			"SELECT COUNT(*) FROM t",
		},
		{
			"qualified names",
			"SELECT t.a FROM db.t",
			"SELECT t.a FROM db.t",
		},
		{
			"date literal keeps its space",
			"SELECT DATE '2024-01-01'",
			"SELECT DATE '2024-01-01'",
		},
	}

	d := NewDialect()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Transpile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranspile_KeywordsUppercased(t *testing.T) {
	d := NewDialect()

	got, err := d.Transpile("select a from t where b is not null order by a desc")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE b IS NOT NULL ORDER BY a DESC", got)
}

func TestTranspile_Errors(t *testing.T) {
	d := NewDialect()

	_, err := d.Transpile("   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = d.Transpile("SELECT (a FROM t")
	assert.ErrorIs(t, err, ErrUnbalancedParens)

	_, err = d.Transpile("SELECT a] FROM t")
	assert.ErrorIs(t, err, ErrUnbalancedBrackets)

	_, err = d.Transpile("SELECT (a FROM t")
	assert.Contains(t, err.Error(), "failed to transpile BigQuery query")
}

func TestTranspile_CommentsDropped(t *testing.T) {
	d := NewDialect()

	got, err := d.Transpile("SELECT a -- pick a\nFROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t", got)
}
