package mapping

// SupportedDialects lists the dialect pair the bridge understands
var SupportedDialects = []string{"BigQuery", "Spark"}

// SourceDialect is the dialect queries are written in
const SourceDialect = "BigQuery"

// TargetDialect is the dialect queries are converted into
const TargetDialect = "Spark"

// IsSupportedDialect checks if a dialect name is known
func IsSupportedDialect(name string) bool {
	for _, d := range SupportedDialects {
		if d == name {
			return true
		}
	}
	return false
}
