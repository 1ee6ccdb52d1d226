package validator

import (
	"github.com/pingcap/tidb/parser"
	_ "github.com/pingcap/tidb/parser/test_driver"
)

// validateDetailed parses the query with a full SQL grammar and reports
// the failure position when it does not parse
func validateDetailed(query string) *ValidationResult {
	p := parser.New()
	_, _, err := p.Parse(query, "", "")
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	line, column := extractPosition(err.Error())
	return &ValidationResult{
		Valid:  false,
		Error:  err.Error(),
		Line:   line,
		Column: column,
	}
}
