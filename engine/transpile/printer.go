package transpile

import (
	"strings"

	"github.com/bridgeql-engine/bridgeql/engine/lexer"
	"github.com/bridgeql-engine/bridgeql/mapping"
)

// Print re-emits a token stream as SQL text. String literals come out
// single-quoted, backtick identifiers keep their backticks.
func Print(tokens []lexer.Token) string {
	var b strings.Builder
	var prev lexer.Token
	havePrev := false

	for _, tok := range tokens {
		if tok.Type == lexer.TOKEN_EOF {
			break
		}
		if havePrev && needSpace(prev, tok) {
			b.WriteByte(' ')
		}
		b.WriteString(render(tok))
		prev = tok
		havePrev = true
	}

	return b.String()
}

func render(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_STRING:
		return "'" + escapeSingle(tok.Value) + "'"
	case lexer.TOKEN_BACKTICK:
		return "`" + tok.Value + "`"
	default:
		return tok.Value
	}
}

// escapeSingle quotes bare single quotes; existing escape sequences are
// passed through untouched
func escapeSingle(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\\' && i+1 < len(s) {
			b.WriteByte(ch)
			i++
			b.WriteByte(s[i])
			continue
		}
		if ch == '\'' {
			b.WriteString("\\'")
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// needSpace decides whether a space separates prev and next when printing
func needSpace(prev, next lexer.Token) bool {
	switch next.Type {
	case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_COMMA,
		lexer.TOKEN_DOT, lexer.TOKEN_COLON, lexer.TOKEN_SEMICOLON:
		return false
	case lexer.TOKEN_LBRACKET:
		// Array index / typed literal sticks to the value before it
		switch prev.Type {
		case lexer.TOKEN_WORD, lexer.TOKEN_BACKTICK, lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET:
			return false
		}
	case lexer.TOKEN_LPAREN:
		// Function calls hug their paren, keywords do not: COUNT(x) vs IN (1, 2)
		if prev.Type == lexer.TOKEN_WORD && !mapping.Keywords[strings.ToUpper(prev.Value)] {
			return false
		}
	}

	switch prev.Type {
	case lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET, lexer.TOKEN_DOT, lexer.TOKEN_COLON:
		return false
	}

	return true
}
