package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDistinct(t *testing.T) {
	triggered := Input{
		Original: "SELECT ARRAY_AGG(DISTINCT x) FROM t",
		Text:     "SELECT COLLECT_LIST(DISTINCT x) FROM t",
	}
	got, err := aggregateDistinct(triggered)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COLLECT_SET(x) FROM t", got)

	// Without DISTINCT in the source, COLLECT_LIST stands
	plain := Input{
		Original: "SELECT ARRAY_AGG(x) FROM t",
		Text:     "SELECT COLLECT_LIST(x) FROM t",
	}
	got, err = aggregateDistinct(plain)
	require.NoError(t, err)
	assert.Equal(t, plain.Text, got)
}

func TestConditionalCount(t *testing.T) {
	got, err := conditionalCount(Input{Text: "SELECT COUNT_IF(x > 0) FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT SUM(CASE WHEN x > 0 THEN 1 ELSE 0 END) FROM t", got)

	// Conditions carrying nested commas survive intact
	got, err = conditionalCount(Input{Text: "SELECT COUNT_IF(COALESCE(a, b) > 0) FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT SUM(CASE WHEN COALESCE(a, b) > 0 THEN 1 ELSE 0 END) FROM t", got)
}

func TestTernaryIf(t *testing.T) {
	got, err := ternaryIf(Input{Text: "SELECT IF(a > 1, 'yes', 'no') FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT CASE WHEN a > 1 THEN 'yes' ELSE 'no' END FROM t", got)

	// Two-argument IF is not the ternary form
	got, err = ternaryIf(Input{Text: "SELECT IF(a, b) FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT IF(a, b) FROM t", got)

	// Nested ternaries unwind outside-in
	got, err = ternaryIf(Input{Text: "IF(a, IF(b, 1, 2), 3)"})
	require.NoError(t, err)
	assert.Equal(t, "CASE WHEN a THEN CASE WHEN b THEN 1 ELSE 2 END ELSE 3 END", got)
}

func TestStructLiteral(t *testing.T) {
	got, err := structLiteral(Input{Text: "SELECT STRUCT(1 AS a, 'x' AS b)"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT named_struct('a', 1, 'b', 'x')", got)

	// Unaliased fields pass through positionally
	got, err = structLiteral(Input{Text: "SELECT STRUCT(a, b)"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT named_struct(a, b)", got)
}

func TestTypedArray(t *testing.T) {
	got, err := typedArray(Input{Text: "SELECT ARRAY<BIGINT>[1, 2, 3]"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT ARRAY(1, 2, 3)", got)

	got, err = typedArray(Input{Text: "SELECT ARRAY<STRING>['a', 'b']"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT ARRAY('a', 'b')", got)
}

func TestDateInterval(t *testing.T) {
	got, err := dateInterval(Input{Text: "SELECT DATE '2024-01-01' + 3"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT DATE '2024-01-01' + INTERVAL 3 DAY", got)

	got, err = dateInterval(Input{Text: "SELECT CAST(d AS DATE) + 7 FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT CAST(d AS DATE) + INTERVAL 7 DAY FROM t", got)

	// Plain numeric addition is not date math
	got, err = dateInterval(Input{Text: "SELECT a + 3 FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT a + 3 FROM t", got)
}

func TestPartitionSpec(t *testing.T) {
	got, err := partitionSpec(Input{Text: "CREATE TABLE t PARTITION BY DATE(created) AS SELECT 1"})
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE t PARTITIONED BY (created) AS SELECT 1", got)

	// Window functions keep their PARTITION BY
	got, err = partitionSpec(Input{Text: "ROW_NUMBER() OVER (PARTITION BY a ORDER BY b)"})
	require.NoError(t, err)
	assert.Equal(t, "ROW_NUMBER() OVER (PARTITION BY a ORDER BY b)", got)
}

func TestClusterKeyword(t *testing.T) {
	got, err := clusterKeyword(Input{Text: "CREATE TABLE t CLUSTER BY x"})
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE t CLUSTERED BY x", got)
}

func TestSequenceExplode(t *testing.T) {
	got, err := sequenceExplode(Input{Text: "SELECT * FROM UNNEST(SEQUENCE(1, 10))"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM EXPLODE(SEQUENCE(1, 10))", got)

	// UNNEST over a column is left alone
	got, err = sequenceExplode(Input{Text: "SELECT * FROM UNNEST(items)"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM UNNEST(items)", got)
}

func TestPrefixSuffixPredicate(t *testing.T) {
	got, err := prefixSuffixPredicate(Input{Text: "SELECT STARTS_WITH(name, 'A') FROM t"})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT CASE WHEN name LIKE CONCAT('A', '%') THEN TRUE ELSE FALSE END FROM t", got)

	got, err = prefixSuffixPredicate(Input{Text: "SELECT ENDS_WITH(name, suffix) FROM t"})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT CASE WHEN name LIKE CONCAT('%', suffix) THEN TRUE ELSE FALSE END FROM t", got)
}

func TestJSONPath(t *testing.T) {
	got, err := jsonPath(Input{Text: "SELECT data:name FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT get_json_object(data, '$.name') FROM t", got)

	got, err = jsonPath(Input{Text: "SELECT data['name'] FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT get_json_object(data, '$.name') FROM t", got)

	// Colons inside string literals are not JSON accessors
	got, err = jsonPath(Input{Text: "SELECT '12:30' FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT '12:30' FROM t", got)
}

func TestSearchContains(t *testing.T) {
	got, err := searchContains(Input{Text: "SELECT SEARCH(body, 'term') FROM t"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT CONTAINS(body, 'term') FROM t", got)
}

func TestChain_Order(t *testing.T) {
	want := []string{
		"aggregate-distinct",
		"conditional-count",
		"ternary-if",
		"struct-literal",
		"typed-array",
		"date-interval",
		"partition-spec",
		"cluster-keyword",
		"sequence-explode",
		"prefix-suffix-predicate",
		"json-path",
		"search-contains",
	}
	assert.Equal(t, want, NewChain().Names())
}

func TestChain_NoTriggerIsIdentity(t *testing.T) {
	text := "SELECT a, b FROM t WHERE a > 1"
	got, err := NewChain().Run(text, text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestChain_Deterministic(t *testing.T) {
	original := "SELECT ARRAY_AGG(DISTINCT x), COUNT_IF(y > 0) FROM t"
	text := "SELECT COLLECT_LIST(DISTINCT x), COUNT_IF(y > 0) FROM t"

	chain := NewChain()
	first, err := chain.Run(original, text)
	require.NoError(t, err)
	second, err := chain.Run(original, text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "SELECT COLLECT_SET(x), SUM(CASE WHEN y > 0 THEN 1 ELSE 0 END) FROM t", first)
}

func TestChain_PanicBecomesPassError(t *testing.T) {
	chain := &Chain{passes: []Pass{{
		Name: "boom",
		Apply: func(in Input) (string, error) {
			panic("exploded")
		},
	}}}

	_, err := chain.Run("q", "q")
	require.Error(t, err)

	var passErr *PassError
	require.ErrorAs(t, err, &passErr)
	assert.Equal(t, "boom", passErr.Pass)
}
