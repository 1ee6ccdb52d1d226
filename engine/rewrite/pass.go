package rewrite

import "fmt"

// Input is what a pass operates on: the evolving text plus the untouched
// source query, for passes whose trigger keys on the original form
type Input struct {
	Original string
	Text     string
}

// Pass is one named construct rewrite. A pass whose trigger pattern is
// absent must return the text byte-identical.
type Pass struct {
	Name  string
	Apply func(in Input) (string, error)
}

// PassError reports a pass that failed while computing a replacement
type PassError struct {
	Pass string
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("rewrite pass %q: %v", e.Pass, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// Chain is the ordered construct rewrite sequence. Passes are not
// commutative - their position is part of the contract, not an
// implementation detail.
type Chain struct {
	passes []Pass
}

// NewChain builds the default chain in its fixed order
func NewChain() *Chain {
	return &Chain{passes: []Pass{
		{Name: "aggregate-distinct", Apply: aggregateDistinct},
		{Name: "conditional-count", Apply: conditionalCount},
		{Name: "ternary-if", Apply: ternaryIf},
		{Name: "struct-literal", Apply: structLiteral},
		{Name: "typed-array", Apply: typedArray},
		{Name: "date-interval", Apply: dateInterval},
		{Name: "partition-spec", Apply: partitionSpec},
		{Name: "cluster-keyword", Apply: clusterKeyword},
		{Name: "sequence-explode", Apply: sequenceExplode},
		{Name: "prefix-suffix-predicate", Apply: prefixSuffixPredicate},
		{Name: "json-path", Apply: jsonPath},
		{Name: "search-contains", Apply: searchContains},
	}}
}

// Names lists the pass names in execution order
func (c *Chain) Names() []string {
	names := make([]string, len(c.passes))
	for i, p := range c.passes {
		names[i] = p.Name
	}
	return names
}

// Run applies every pass in order. Failures, including panics inside a
// replacement computation, surface as a *PassError.
func (c *Chain) Run(original, text string) (string, error) {
	out := text
	for _, p := range c.passes {
		applied, err := c.apply(p, Input{Original: original, Text: out})
		if err != nil {
			return "", err
		}
		out = applied
	}
	return out, nil
}

func (c *Chain) apply(p Pass, in Input) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PassError{Pass: p.Name, Err: fmt.Errorf("%v", r)}
		}
	}()

	out, err = p.Apply(in)
	if err != nil {
		return "", &PassError{Pass: p.Name, Err: err}
	}
	return out, nil
}
