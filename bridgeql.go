// Package bql converts BigQuery SQL into Spark SQL. The pipeline is a pure
// function of (query, rule set): generic transpilation, the ordered construct
// rewrite chain, rule-driven identifier remapping, then artifact cleanup.
// Failures never escape - they come back as a diagnostic string.
package bql

import (
	"errors"
	"strings"

	"github.com/bridgeql-engine/bridgeql/engine/normalize"
	"github.com/bridgeql-engine/bridgeql/engine/remap"
	"github.com/bridgeql-engine/bridgeql/engine/rewrite"
	"github.com/bridgeql-engine/bridgeql/engine/rules"
	"github.com/bridgeql-engine/bridgeql/engine/transpile"
)

// DiagnosticPrefix marks a failed conversion. Callers distinguish success
// from failure by this marker alone - no error value crosses the boundary.
const DiagnosticPrefix = "-- ERROR: "

var ErrEmptyQuery = errors.New("empty query")

// Converter runs the conversion pipeline. It holds no per-query state and
// is safe for concurrent use.
type Converter struct {
	transpiler transpile.Transpiler
	chain      *rewrite.Chain
	rules      *rules.Set
	rulesErr   error
}

// Option configures a Converter
type Option func(*Converter)

// WithTranspiler swaps the generic transpiler stage
func WithTranspiler(t transpile.Transpiler) Option {
	return func(c *Converter) {
		c.transpiler = t
	}
}

// WithRules injects an already-parsed rule set
func WithRules(set *rules.Set) Option {
	return func(c *Converter) {
		if set != nil {
			c.rules = set
		}
	}
}

// WithRulesFile loads the rule document once at construction. Load failures
// degrade to the empty set; RulesErr exposes them for callers that log.
func WithRulesFile(path string) Option {
	return func(c *Converter) {
		c.rules, c.rulesErr = rules.Load(path)
	}
}

// New creates a Converter with the default BigQuery -> Spark stages
func New(opts ...Option) *Converter {
	c := &Converter{
		transpiler: transpile.NewDialect(),
		chain:      rewrite.NewChain(),
		rules:      rules.Empty(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rules returns the active rule set
func (c *Converter) Rules() *rules.Set {
	return c.rules
}

// RulesErr returns the soft failure from loading the rule document, if any.
// A non-nil value never blocks conversion.
func (c *Converter) RulesErr() error {
	return c.rulesErr
}

// Convert runs the pipeline. The result is either converted Spark SQL or a
// diagnostic string starting with DiagnosticPrefix - never an error.
func (c *Converter) Convert(query string) string {
	out, err := c.convert(query)
	if err != nil {
		return Diagnostic(err)
	}
	return out
}

func (c *Converter) convert(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	text, err := c.transpiler.Transpile(query)
	if err != nil {
		return "", err
	}

	text, err = c.chain.Run(query, text)
	if err != nil {
		return "", err
	}

	text = remap.Apply(text, c.rules)

	return normalize.Apply(text), nil
}

// Convert converts a single query with the default pipeline and no rule set
func Convert(query string) string {
	return New().Convert(query)
}

// Diagnostic renders an error as the sentinel output value
func Diagnostic(err error) string {
	return DiagnosticPrefix + err.Error()
}

// IsDiagnostic reports whether a conversion result is a failure marker
func IsDiagnostic(result string) bool {
	return strings.HasPrefix(result, DiagnosticPrefix)
}
