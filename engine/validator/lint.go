package validator

import (
	"fmt"
	"strings"

	"github.com/bridgeql-engine/bridgeql/engine/lexer"
	"github.com/bridgeql-engine/bridgeql/mapping"
)

// LintFunctions scans converted SQL for function calls that are not known
// Spark builtins. Each unknown name yields one hint, with a suggestion when
// a builtin is within editing distance.
func LintFunctions(query string) []string {
	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return nil
	}

	var hints []string
	seen := make(map[string]bool)

	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i].Type != lexer.TOKEN_WORD || tokens[i+1].Type != lexer.TOKEN_LPAREN {
			continue
		}
		name := strings.ToUpper(tokens[i].Value)
		if mapping.IsSparkFunction(name) || mapping.Keywords[name] || seen[name] {
			continue
		}
		seen[name] = true

		hint := fmt.Sprintf("unknown function '%s'", tokens[i].Value)
		if suggestion := SuggestSimilar(name); suggestion != "" {
			hint += fmt.Sprintf(". Did you mean '%s'?", suggestion)
		}
		hints = append(hints, hint)
	}

	return hints
}

// SuggestSimilar finds the closest known Spark function name
func SuggestSimilar(unknown string) string {
	unknown = strings.ToUpper(unknown)

	var bestMatch string
	bestDistance := 999
	maxDistance := 2 // only suggest within 2 edits

	for name := range mapping.SparkFunctions {
		dist := levenshtein(unknown, name)
		if dist < bestDistance && dist <= maxDistance {
			bestDistance = dist
			bestMatch = name
		} else if dist == bestDistance && dist <= maxDistance && name < bestMatch {
			// Deterministic tie-break across map iteration order
			bestMatch = name
		}
	}

	return bestMatch
}

// levenshtein calculates edit distance between two strings
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = minOf(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
