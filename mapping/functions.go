package mapping

import "strings"

// Functions maps BigQuery function names to their Spark SQL equivalents.
// Used by the transpiler for direct renames - constructs that need more than
// a rename (IF, STRUCT, STARTS_WITH, ...) are handled by the rewrite chain.
var Functions = map[string]string{
	// ========== AGGREGATES ==========
	"ARRAY_AGG": "COLLECT_LIST", // COLLECT_SET when the source used DISTINCT
	"COUNTIF":   "COUNT_IF",
	"LOGICAL_AND": "BOOL_AND",
	"LOGICAL_OR":  "BOOL_OR",

	// ========== SAFE_ VARIANTS ==========
	"SAFE_CAST":   "TRY_CAST",
	"SAFE_DIVIDE": "TRY_DIVIDE",

	// ========== ARRAYS ==========
	"GENERATE_ARRAY": "SEQUENCE",
	"ARRAY_LENGTH":   "SIZE",
	"ARRAY_CONCAT":   "CONCAT",

	// ========== DATE / TIME ==========
	"FORMAT_DATE":      "DATE_FORMAT",
	"FORMAT_TIMESTAMP": "DATE_FORMAT",
	"PARSE_DATE":       "TO_DATE",
	"PARSE_TIMESTAMP":  "TO_TIMESTAMP",
	"CURRENT_DATETIME": "CURRENT_TIMESTAMP",
	"DATETIME_TRUNC":   "DATE_TRUNC",
	"TIMESTAMP_TRUNC":  "DATE_TRUNC",

	// ========== STRINGS / REGEX ==========
	"REGEXP_CONTAINS": "REGEXP_LIKE",
	"IFNULL":          "COALESCE",
}

// SwappedArgFunctions marks BigQuery functions whose (format, value) argument
// order is reversed in Spark. Keyed by the BigQuery name.
var SwappedArgFunctions = map[string]bool{
	"PARSE_DATE":       true,
	"PARSE_TIMESTAMP":  true,
	"FORMAT_DATE":      true,
	"FORMAT_TIMESTAMP": true,
}

// FormatArgFunctions marks Spark functions whose string argument is a date
// format pattern that must be converted from strftime to java.time style.
var FormatArgFunctions = map[string]bool{
	"TO_DATE":      true,
	"TO_TIMESTAMP": true,
	"DATE_FORMAT":  true,
}

// KnownFunctions are uppercased by the transpiler when they appear as calls.
// Covers both dialects so already-converted text round-trips unchanged.
var KnownFunctions = map[string]bool{
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
	"CAST": true, "COALESCE": true, "CONCAT": true, "IF": true,
	"STRUCT": true, "UNNEST": true, "DATE": true, "ABS": true,
	"ROUND": true, "LOWER": true, "UPPER": true, "TRIM": true,
	"LENGTH": true, "SUBSTR": true, "REPLACE": true, "SPLIT": true,
	"STARTS_WITH": true, "ENDS_WITH": true, "SEARCH": true,
	"COUNT_IF": true, "COLLECT_LIST": true, "COLLECT_SET": true,
	"EXPLODE": true, "SEQUENCE": true, "SIZE": true,
	"TO_DATE": true, "TO_TIMESTAMP": true, "DATE_FORMAT": true,
	"TRY_CAST": true, "TRY_DIVIDE": true, "REGEXP_LIKE": true,
	"DATE_TRUNC": true, "DATE_ADD": true, "DATE_SUB": true, "DATE_DIFF": true,
	"CURRENT_TIMESTAMP": true, "CURRENT_DATE": true,
	"BOOL_AND": true, "BOOL_OR": true, "CONTAINS": true,
}

// SparkFunctions is the lint whitelist for converted output: anything the
// bridge itself can emit plus common Spark SQL builtins. Lowercase-insensitive
// lookups go through IsSparkFunction.
var SparkFunctions = map[string]bool{
	"COLLECT_LIST": true, "COLLECT_SET": true, "COUNT_IF": true,
	"EXPLODE": true, "SEQUENCE": true, "GET_JSON_OBJECT": true,
	"NAMED_STRUCT": true, "CONTAINS": true, "DATE_FORMAT": true,
	"TO_DATE": true, "TO_TIMESTAMP": true, "TRY_CAST": true,
	"TRY_DIVIDE": true, "REGEXP_LIKE": true, "DATE_TRUNC": true,
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
	"CAST": true, "COALESCE": true, "CONCAT": true, "IF": true,
	"SIZE": true, "ABS": true, "ROUND": true, "FLOOR": true, "CEIL": true,
	"LOWER": true, "UPPER": true, "TRIM": true, "LTRIM": true, "RTRIM": true,
	"LENGTH": true, "SUBSTR": true, "SUBSTRING": true, "REPLACE": true,
	"SPLIT": true, "CURRENT_TIMESTAMP": true, "CURRENT_DATE": true,
	"DATE_ADD": true, "DATE_SUB": true, "DATEDIFF": true, "DATE_DIFF": true,
	"YEAR": true, "MONTH": true, "DAY": true, "HOUR": true, "MINUTE": true,
	"SECOND": true, "UNIX_TIMESTAMP": true, "FROM_UNIXTIME": true,
	"BOOL_AND": true, "BOOL_OR": true, "FIRST": true, "LAST": true,
	"ROW_NUMBER": true, "RANK": true, "DENSE_RANK": true, "LEAD": true,
	"LAG": true, "NVL": true, "NULLIF": true, "GREATEST": true, "LEAST": true,
	"MD5": true, "SHA2": true, "HASH": true, "RAND": true, "ARRAY": true,
	"MAP": true, "STRUCT": true, "REGEXP_EXTRACT": true,
	"REGEXP_REPLACE": true, "INSTR": true, "LOCATE": true, "LPAD": true,
	"RPAD": true, "REVERSE": true, "INITCAP": true, "FORMAT_NUMBER": true,
}

// IsSparkFunction checks the lint whitelist case-insensitively
func IsSparkFunction(name string) bool {
	return SparkFunctions[strings.ToUpper(name)]
}
