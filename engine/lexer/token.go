package lexer

// TokenType represents the category of a token
type TokenType int

const (
	TOKEN_UNKNOWN  TokenType = iota
	TOKEN_WORD               // identifiers, keywords, function names
	TOKEN_STRING             // 'text', "text"
	TOKEN_NUMBER             // 25, 3.14
	TOKEN_BACKTICK           // `project.dataset.table`, `col name`
	TOKEN_OPERATOR           // =, <, >, +, -, ||, ...
	TOKEN_LPAREN             // (
	TOKEN_RPAREN             // )
	TOKEN_LBRACKET           // [
	TOKEN_RBRACKET           // ]
	TOKEN_COMMA              // ,
	TOKEN_DOT                // .
	TOKEN_COLON              // : (BigQuery JSON path access)
	TOKEN_SEMICOLON          // ;
	TOKEN_EOF                // end of input
)

// Token represents a single token with position info
type Token struct {
	Type     TokenType
	Value    string // for strings/backticks: content without the quotes
	Position int    // character position in input
	Line     int    // line number (1-indexed)
	Column   int    // column number (1-indexed)
}

// String returns a human-readable token type name
func (t TokenType) String() string {
	names := []string{
		"UNKNOWN",
		"WORD",
		"STRING",
		"NUMBER",
		"BACKTICK",
		"OPERATOR",
		"LPAREN",
		"RPAREN",
		"LBRACKET",
		"RBRACKET",
		"COMMA",
		"DOT",
		"COLON",
		"SEMICOLON",
		"EOF",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return "INVALID"
}
