// Package validator checks converted Spark SQL before it ships. The grammar
// check is best-effort: it runs the text through a general SQL parser, so
// Spark-only clauses (CLUSTERED BY, LATERAL VIEW) can show up as false
// failures. Results carry position info and lint hints, never hard errors.
package validator

import (
	"regexp"
	"strconv"

	"github.com/xwb1989/sqlparser"
)

// ValidationResult contains detailed validation info
type ValidationResult struct {
	Valid  bool
	Error  string
	Line   int
	Column int
	Hints  []string
}

// Validate runs a quick syntax check over converted SQL
func Validate(query string) error {
	_, err := sqlparser.Parse(query)
	return err
}

// ValidateWithDetails runs the deep grammar check plus the function lint
// and merges both into one result
func ValidateWithDetails(query string) *ValidationResult {
	result := validateDetailed(query)
	result.Hints = LintFunctions(query)
	return result
}

var rePosition = regexp.MustCompile(`line (\d+) column (\d+)`)

// extractPosition pulls line/column out of a parser error message
func extractPosition(msg string) (line, column int) {
	groups := rePosition.FindStringSubmatch(msg)
	if groups == nil {
		return 0, 0
	}
	line, _ = strconv.Atoi(groups[1])
	column, _ = strconv.Atoi(groups[2])
	return line, column
}
