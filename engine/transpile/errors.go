package transpile

import (
	"errors"
	"fmt"

	"github.com/bridgeql-engine/bridgeql/mapping"
)

var (
	ErrEmptyQuery         = errors.New("empty query")
	ErrUnbalancedParens   = errors.New("unbalanced parentheses")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)

// Error reports that the source query could not be transpiled
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to transpile %s query: %v", mapping.SourceDialect, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
