package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenizer converts input string to tokens
type Tokenizer struct {
	input  string
	pos    int
	line   int
	column int
	tokens []Token
}

// Tokenize converts a SQL string to tokens. Comments are skipped; string
// literals and backtick identifiers become single tokens.
func Tokenize(input string) ([]Token, error) {
	t := &Tokenizer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
	return t.tokenize()
}

func (t *Tokenizer) tokenize() ([]Token, error) {
	for t.pos < len(t.input) {
		// Skip whitespace
		if t.skipWhitespace() {
			continue
		}

		// Skip comments
		skipped, err := t.skipComment()
		if err != nil {
			return nil, err
		}
		if skipped {
			continue
		}

		ch := t.input[t.pos]

		// Single character tokens
		switch ch {
		case '(':
			t.addToken(TOKEN_LPAREN, "(")
			t.advance()
			continue
		case ')':
			t.addToken(TOKEN_RPAREN, ")")
			t.advance()
			continue
		case '[':
			t.addToken(TOKEN_LBRACKET, "[")
			t.advance()
			continue
		case ']':
			t.addToken(TOKEN_RBRACKET, "]")
			t.advance()
			continue
		case ',':
			t.addToken(TOKEN_COMMA, ",")
			t.advance()
			continue
		case '.':
			if t.peekDigit() {
				token := t.scanNumber()
				t.tokens = append(t.tokens, token)
				continue
			}
			t.addToken(TOKEN_DOT, ".")
			t.advance()
			continue
		case ':':
			t.addToken(TOKEN_COLON, ":")
			t.advance()
			continue
		case ';':
			t.addToken(TOKEN_SEMICOLON, ";")
			t.advance()
			continue
		case '`':
			token, err := t.scanBacktick()
			if err != nil {
				return nil, err
			}
			t.tokens = append(t.tokens, token)
			continue
		case '\'', '"':
			token, err := t.scanString(ch)
			if err != nil {
				return nil, err
			}
			t.tokens = append(t.tokens, token)
			continue
		}

		// Words: identifiers, keywords, function names
		if unicode.IsLetter(rune(ch)) || ch == '_' {
			token := t.scanWord()
			t.tokens = append(t.tokens, token)
			continue
		}

		// Numbers
		if unicode.IsDigit(rune(ch)) {
			token := t.scanNumber()
			t.tokens = append(t.tokens, token)
			continue
		}

		// Operators: =, !=, <>, >, <, >=, <=, +, -, *, /, %, ||
		if isOperatorChar(ch) {
			token := t.scanOperator()
			t.tokens = append(t.tokens, token)
			continue
		}

		// Unknown character
		return nil, &ParseError{
			Message:  fmt.Sprintf("unexpected character '%c'", ch),
			Position: t.pos,
			Line:     t.line,
			Column:   t.column,
		}
	}

	t.addToken(TOKEN_EOF, "")

	return t.tokens, nil
}

func (t *Tokenizer) skipWhitespace() bool {
	skipped := false
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == ' ' || ch == '\t' {
			t.column++
			t.pos++
			skipped = true
		} else if ch == '\n' {
			t.line++
			t.column = 1
			t.pos++
			skipped = true
		} else if ch == '\r' {
			t.pos++
			skipped = true
		} else {
			break
		}
	}
	return skipped
}

// skipComment consumes -- line comments and /* */ block comments
func (t *Tokenizer) skipComment() (bool, error) {
	if t.pos+1 >= len(t.input) {
		return false, nil
	}

	if t.input[t.pos] == '-' && t.input[t.pos+1] == '-' {
		for t.pos < len(t.input) && t.input[t.pos] != '\n' {
			t.advance()
		}
		return true, nil
	}

	if t.input[t.pos] == '/' && t.input[t.pos+1] == '*' {
		startLine := t.line
		startCol := t.column
		start := t.pos
		t.advance()
		t.advance()
		for t.pos+1 < len(t.input) {
			if t.input[t.pos] == '*' && t.input[t.pos+1] == '/' {
				t.advance()
				t.advance()
				return true, nil
			}
			if t.input[t.pos] == '\n' {
				t.line++
				t.column = 0
			}
			t.advance()
		}
		return false, &ParseError{
			Message:  "unclosed block comment",
			Position: start,
			Line:     startLine,
			Column:   startCol,
		}
	}

	return false, nil
}

func (t *Tokenizer) advance() {
	t.pos++
	t.column++
}

func (t *Tokenizer) peekDigit() bool {
	if t.pos+1 < len(t.input) {
		return unicode.IsDigit(rune(t.input[t.pos+1]))
	}
	return false
}

func (t *Tokenizer) addToken(tokenType TokenType, value string) {
	t.tokens = append(t.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: t.pos,
		Line:     t.line,
		Column:   t.column,
	})
}

// scanString reads a quoted literal. The value keeps escape sequences
// verbatim; the printer re-emits them single-quoted.
func (t *Tokenizer) scanString(quote byte) (Token, error) {
	startPos := t.pos
	startLine := t.line
	startCol := t.column

	t.advance() // skip opening quote

	var value strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		if ch == '\\' && t.pos+1 < len(t.input) {
			value.WriteByte(ch)
			t.advance()
			value.WriteByte(t.input[t.pos])
			t.advance()
			continue
		}

		if ch == quote {
			t.advance() // skip closing quote
			return Token{
				Type:     TOKEN_STRING,
				Value:    value.String(),
				Position: startPos,
				Line:     startLine,
				Column:   startCol,
			}, nil
		}

		if ch == '\n' {
			t.line++
			t.column = 0
		}
		value.WriteByte(ch)
		t.advance()
	}

	return Token{}, &ParseError{
		Message:  fmt.Sprintf("unclosed string, expected %c", quote),
		Position: startPos,
		Line:     startLine,
		Column:   startCol,
	}
}

// scanBacktick reads a backtick-quoted identifier. Dots stay inside the
// token (`project.dataset.table`) - the remap stage relies on that.
func (t *Tokenizer) scanBacktick() (Token, error) {
	startPos := t.pos
	startLine := t.line
	startCol := t.column

	t.advance() // skip opening backtick

	var value strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == '`' {
			t.advance()
			return Token{
				Type:     TOKEN_BACKTICK,
				Value:    value.String(),
				Position: startPos,
				Line:     startLine,
				Column:   startCol,
			}, nil
		}
		if ch == '\n' {
			t.line++
			t.column = 0
		}
		value.WriteByte(ch)
		t.advance()
	}

	return Token{}, &ParseError{
		Message:  "unclosed backtick identifier",
		Position: startPos,
		Line:     startLine,
		Column:   startCol,
	}
}

func (t *Tokenizer) scanNumber() Token {
	startPos := t.pos
	startCol := t.column

	var value strings.Builder

	for t.pos < len(t.input) && unicode.IsDigit(rune(t.input[t.pos])) {
		value.WriteByte(t.input[t.pos])
		t.advance()
	}

	// Decimal part
	if t.pos < len(t.input) && t.input[t.pos] == '.' && t.peekDigit() {
		value.WriteByte('.')
		t.advance()
		for t.pos < len(t.input) && unicode.IsDigit(rune(t.input[t.pos])) {
			value.WriteByte(t.input[t.pos])
			t.advance()
		}
	}

	return Token{
		Type:     TOKEN_NUMBER,
		Value:    value.String(),
		Position: startPos,
		Line:     t.line,
		Column:   startCol,
	}
}

func (t *Tokenizer) scanWord() Token {
	startPos := t.pos
	startCol := t.column

	var value strings.Builder
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_' {
			value.WriteByte(ch)
			t.advance()
		} else {
			break
		}
	}

	return Token{
		Type:     TOKEN_WORD,
		Value:    value.String(),
		Position: startPos,
		Line:     t.line,
		Column:   startCol,
	}
}

func (t *Tokenizer) scanOperator() Token {
	startPos := t.pos
	startCol := t.column

	op := string(t.input[t.pos])
	t.advance()

	// Two-character operators
	if t.pos < len(t.input) {
		switch op + string(t.input[t.pos]) {
		case "<=", ">=", "!=", "<>", "||":
			op += string(t.input[t.pos])
			t.advance()
		}
	}

	return Token{
		Type:     TOKEN_OPERATOR,
		Value:    op,
		Position: startPos,
		Line:     t.line,
		Column:   startCol,
	}
}

func isOperatorChar(ch byte) bool {
	return ch == '=' || ch == '!' || ch == '<' || ch == '>' ||
		ch == '+' || ch == '-' || ch == '*' || ch == '/' ||
		ch == '%' || ch == '|' || ch == '&'
}
