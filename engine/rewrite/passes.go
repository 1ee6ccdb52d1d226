package rewrite

import (
	"regexp"
	"strings"
)

var (
	reAggDistinctTrigger = regexp.MustCompile(`(?i)ARRAY_AGG\s*\(\s*DISTINCT\b`)
	reCollectDistinct    = regexp.MustCompile(`(?i)COLLECT_LIST\s*\(\s*DISTINCT\s*`)
	reTypedArray         = regexp.MustCompile(`(?i)\bARRAY<\w+>\s*\[`)
	reDateAdd            = regexp.MustCompile(`(?i)((?:DATE\s+'[^']*'|CAST\([^)]*AS\s+DATE\)))\s*\+\s*(\d+)`)
	rePartitionDate      = regexp.MustCompile(`(?i)\bPARTITION\s+BY\s+DATE\s*\(\s*(\w+)\s*\)`)
	reClusterBy          = regexp.MustCompile(`(?i)\bCLUSTER\s+BY\b`)
	reSequenceCall       = regexp.MustCompile(`(?i)^SEQUENCE\s*\(`)
	reJSONColon          = regexp.MustCompile(`(\w+):(\w+)`)
	reJSONBracket        = regexp.MustCompile(`(\w+)\['(\w+)'\]`)
)

// aggregateDistinct turns the transpiled COLLECT_LIST(DISTINCT ...) form into
// COLLECT_SET(...), but only when the source query used the
// ARRAY_AGG(DISTINCT ...) idiom
func aggregateDistinct(in Input) (string, error) {
	if !reAggDistinctTrigger.MatchString(in.Original) {
		return in.Text, nil
	}
	return reCollectDistinct.ReplaceAllString(in.Text, "COLLECT_SET("), nil
}

// conditionalCount expands COUNT_IF(cond) into SUM(CASE WHEN cond THEN 1 ELSE 0 END)
func conditionalCount(in Input) (string, error) {
	out := rewriteCalls(in.Text, "COUNT_IF", func(args []string) (string, bool) {
		cond := strings.Join(args, ", ")
		if cond == "" {
			return "", false
		}
		return "SUM(CASE WHEN " + cond + " THEN 1 ELSE 0 END)", true
	})
	return out, nil
}

// ternaryIf expands IF(cond, then, else) into a CASE expression
func ternaryIf(in Input) (string, error) {
	out := rewriteCalls(in.Text, "IF", func(args []string) (string, bool) {
		if len(args) != 3 {
			return "", false
		}
		return "CASE WHEN " + args[0] + " THEN " + args[1] + " ELSE " + args[2] + " END", true
	})
	return out, nil
}

// structLiteral turns STRUCT(a AS x, b AS y) into named_struct('x', a, 'y', b),
// preserving field order
func structLiteral(in Input) (string, error) {
	out := rewriteCalls(in.Text, "STRUCT", func(args []string) (string, bool) {
		fields := make([]string, 0, len(args))
		for _, arg := range args {
			if expr, alias, ok := splitAs(arg); ok {
				fields = append(fields, "'"+alias+"', "+expr)
				continue
			}
			fields = append(fields, arg)
		}
		return "named_struct(" + strings.Join(fields, ", ") + ")", true
	})
	return out, nil
}

// typedArray turns ARRAY<T>[...] into ARRAY(...), dropping the element type -
// Spark infers it
func typedArray(in Input) (string, error) {
	text := in.Text
	for {
		loc := reTypedArray.FindStringIndex(text)
		if loc == nil {
			return text, nil
		}
		open := loc[1] - 1
		closing := matchBracket(text, open)
		if closing < 0 {
			return text, nil
		}
		text = text[:loc[0]] + "ARRAY(" + text[open+1:closing] + ")" + text[closing+1:]
	}
}

// dateInterval adds the interval unit Spark requires for date addition:
// DATE '...' + 3 becomes DATE '...' + INTERVAL 3 DAY
func dateInterval(in Input) (string, error) {
	return reDateAdd.ReplaceAllString(in.Text, "$1 + INTERVAL $2 DAY"), nil
}

// partitionSpec rewrites PARTITION BY DATE(col) into Spark's table
// partitioning clause PARTITIONED BY (col)
func partitionSpec(in Input) (string, error) {
	return rePartitionDate.ReplaceAllString(in.Text, "PARTITIONED BY ($1)"), nil
}

// clusterKeyword rewrites CLUSTER BY into CLUSTERED BY
func clusterKeyword(in Input) (string, error) {
	return reClusterBy.ReplaceAllString(in.Text, "CLUSTERED BY"), nil
}

// sequenceExplode rewrites UNNEST(SEQUENCE(...)) into EXPLODE(SEQUENCE(...)).
// UNNEST over anything else is left for Spark's LATERAL VIEW handling.
func sequenceExplode(in Input) (string, error) {
	out := rewriteCalls(in.Text, "UNNEST", func(args []string) (string, bool) {
		if len(args) != 1 || !reSequenceCall.MatchString(args[0]) {
			return "", false
		}
		return "EXPLODE(" + args[0] + ")", true
	})
	return out, nil
}

// prefixSuffixPredicate expands STARTS_WITH / ENDS_WITH, which Spark lacks,
// into CASE ... LIKE CONCAT expressions
func prefixSuffixPredicate(in Input) (string, error) {
	out := rewriteCalls(in.Text, "STARTS_WITH", func(args []string) (string, bool) {
		if len(args) != 2 {
			return "", false
		}
		return "CASE WHEN " + args[0] + " LIKE CONCAT(" + args[1] + ", '%') THEN TRUE ELSE FALSE END", true
	})
	out = rewriteCalls(out, "ENDS_WITH", func(args []string) (string, bool) {
		if len(args) != 2 {
			return "", false
		}
		return "CASE WHEN " + args[0] + " LIKE CONCAT('%', " + args[1] + ") THEN TRUE ELSE FALSE END", true
	})
	return out, nil
}

// jsonPath rewrites colon (col:field) and bracket (col['field']) JSON
// accessors into get_json_object calls. String literals are left alone so
// time-of-day text like '12:30' survives.
func jsonPath(in Input) (string, error) {
	out := rewriteOutsideQuotes(in.Text, func(seg string) string {
		return reJSONColon.ReplaceAllString(seg, "get_json_object($1, '$$.$2')")
	})
	out = reJSONBracket.ReplaceAllString(out, "get_json_object($1, '$$.$2')")
	return out, nil
}

// searchContains rewrites the SEARCH(a, b) shorthand into CONTAINS(a, b)
func searchContains(in Input) (string, error) {
	out := rewriteCalls(in.Text, "SEARCH", func(args []string) (string, bool) {
		if len(args) != 2 {
			return "", false
		}
		return "CONTAINS(" + args[0] + ", " + args[1] + ")", true
	})
	return out, nil
}
