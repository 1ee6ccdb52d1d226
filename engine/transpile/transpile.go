package transpile

import (
	"strings"

	"github.com/bridgeql-engine/bridgeql/engine/lexer"
	"github.com/bridgeql-engine/bridgeql/mapping"
)

// Transpiler converts source-dialect SQL text into target-dialect SQL text.
// The rewrite chain and remap stages run on its output, so any implementation
// can be swapped in as long as it emits Spark-flavored SQL.
type Transpiler interface {
	Transpile(query string) (string, error)
}

// Dialect is the default BigQuery -> Spark SQL transpiler. It tokenizes the
// query, rewrites the token stream table-driven (function and type renames,
// keyword normalization, date format patterns, typed array fusion) and
// re-prints it. Comments in the input are dropped.
type Dialect struct{}

// NewDialect creates the default BigQuery -> Spark transpiler
func NewDialect() *Dialect {
	return &Dialect{}
}

// Transpile converts one BigQuery query to Spark SQL text
func (d *Dialect) Transpile(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", &Error{Err: ErrEmptyQuery}
	}

	tokens, err := lexer.Tokenize(query)
	if err != nil {
		return "", &Error{Err: err}
	}

	if err := checkBalance(tokens); err != nil {
		return "", &Error{Err: err}
	}

	tokens = fuseTypedArrays(tokens)
	tokens = renameCalls(tokens)
	tokens = renameTypes(tokens)
	tokens = uppercaseKeywords(tokens)
	tokens = convertDateFormats(tokens)

	return Print(tokens), nil
}

// checkBalance verifies parentheses and brackets pair up before any
// rewriting happens
func checkBalance(tokens []lexer.Token) error {
	parens, brackets := 0, 0
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.TOKEN_LPAREN:
			parens++
		case lexer.TOKEN_RPAREN:
			parens--
			if parens < 0 {
				return ErrUnbalancedParens
			}
		case lexer.TOKEN_LBRACKET:
			brackets++
		case lexer.TOKEN_RBRACKET:
			brackets--
			if brackets < 0 {
				return ErrUnbalancedBrackets
			}
		}
	}
	if parens != 0 {
		return ErrUnbalancedParens
	}
	if brackets != 0 {
		return ErrUnbalancedBrackets
	}
	return nil
}

// fuseTypedArrays collapses ARRAY < T > into a single ARRAY<T> token so the
// typed-array literal keeps its shape through printing
func fuseTypedArrays(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if i+3 < len(tokens) &&
			tokens[i].Type == lexer.TOKEN_WORD && strings.EqualFold(tokens[i].Value, "ARRAY") &&
			isOp(tokens[i+1], "<") &&
			tokens[i+2].Type == lexer.TOKEN_WORD &&
			isOp(tokens[i+3], ">") {
			elem := strings.ToUpper(tokens[i+2].Value)
			if mapped, ok := mapping.Types[elem]; ok {
				elem = mapped
			}
			fused := tokens[i]
			fused.Value = "ARRAY<" + elem + ">"
			out = append(out, fused)
			i += 3
			continue
		}
		out = append(out, tokens[i])
	}
	return out
}

// renameCalls maps BigQuery function names onto Spark names and fixes
// reversed argument order where the dialects disagree
func renameCalls(tokens []lexer.Token) []lexer.Token {
	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i].Type != lexer.TOKEN_WORD || tokens[i+1].Type != lexer.TOKEN_LPAREN {
			continue
		}
		name := strings.ToUpper(tokens[i].Value)
		if mapping.SwappedArgFunctions[name] {
			tokens = swapTwoArgs(tokens, i+1)
		}
		if target, ok := mapping.Functions[name]; ok {
			tokens[i].Value = target
		} else if mapping.KnownFunctions[name] {
			tokens[i].Value = name
		}
	}
	return tokens
}

// swapTwoArgs reverses the two top-level arguments of the call whose opening
// paren sits at open. Calls with any other arity are left untouched.
func swapTwoArgs(tokens []lexer.Token, open int) []lexer.Token {
	depth := 0
	closing := -1
	var commas []int
	for j := open; j < len(tokens); j++ {
		switch tokens[j].Type {
		case lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET:
			depth++
		case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET:
			depth--
			if depth == 0 {
				closing = j
			}
		case lexer.TOKEN_COMMA:
			if depth == 1 {
				commas = append(commas, j)
			}
		}
		if closing != -1 {
			break
		}
	}
	if closing == -1 || len(commas) != 1 {
		return tokens
	}

	comma := commas[0]
	out := make([]lexer.Token, 0, len(tokens))
	out = append(out, tokens[:open+1]...)
	out = append(out, tokens[comma+1:closing]...)
	out = append(out, tokens[comma])
	out = append(out, tokens[open+1:comma]...)
	out = append(out, tokens[closing:]...)
	return out
}

// renameTypes maps BigQuery type names onto Spark type names
func renameTypes(tokens []lexer.Token) []lexer.Token {
	for i := range tokens {
		if tokens[i].Type != lexer.TOKEN_WORD {
			continue
		}
		if mapped, ok := mapping.Types[strings.ToUpper(tokens[i].Value)]; ok {
			tokens[i].Value = mapped
		}
	}
	return tokens
}

// uppercaseKeywords normalizes reserved words to uppercase
func uppercaseKeywords(tokens []lexer.Token) []lexer.Token {
	for i := range tokens {
		if tokens[i].Type != lexer.TOKEN_WORD {
			continue
		}
		upper := strings.ToUpper(tokens[i].Value)
		if mapping.Keywords[upper] {
			tokens[i].Value = upper
		}
	}
	return tokens
}

// convertDateFormats rewrites strftime format literals that appear directly
// inside TO_DATE / TO_TIMESTAMP / DATE_FORMAT calls into java.time patterns
func convertDateFormats(tokens []lexer.Token) []lexer.Token {
	var stack []string
	for i := 0; i < len(tokens); i++ {
		switch tokens[i].Type {
		case lexer.TOKEN_LPAREN:
			name := ""
			if i > 0 && tokens[i-1].Type == lexer.TOKEN_WORD {
				name = strings.ToUpper(tokens[i-1].Value)
			}
			stack = append(stack, name)
		case lexer.TOKEN_RPAREN:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case lexer.TOKEN_STRING:
			if len(stack) == 0 {
				continue
			}
			call := stack[len(stack)-1]
			if mapping.FormatArgFunctions[call] && mapping.LooksLikeDateFormat(tokens[i].Value) {
				tokens[i].Value = mapping.ConvertDateFormat(tokens[i].Value)
			}
		}
	}
	return tokens
}

func isOp(tok lexer.Token, op string) bool {
	return tok.Type == lexer.TOKEN_OPERATOR && tok.Value == op
}
