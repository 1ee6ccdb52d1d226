package mapping

// Types maps BigQuery type names to Spark SQL type names.
// Identity entries are kept so type tokens get a consistent uppercase form.
var Types = map[string]string{
	"INT64":      "BIGINT",
	"FLOAT64":    "DOUBLE",
	"BOOL":       "BOOLEAN",
	"BYTES":      "BINARY",
	"NUMERIC":    "DECIMAL",
	"BIGNUMERIC": "DECIMAL",
	"DATETIME":   "TIMESTAMP",
	"STRING":     "STRING",
	"DATE":       "DATE",
	"TIMESTAMP":  "TIMESTAMP",
}
