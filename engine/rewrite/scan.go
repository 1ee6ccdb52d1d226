package rewrite

import "strings"

// Balanced-expression scanning over SQL text. The construct passes need to
// capture call arguments that themselves contain commas and parentheses
// (nested calls), which non-greedy pattern matching gets wrong, so argument
// extraction walks the text with quote-aware depth tracking instead.

func isQuote(ch byte) bool {
	return ch == '\'' || ch == '"' || ch == '`'
}

func isWordChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// skipQuoted advances past the quoted region opening at i and returns the
// index just after the closing quote
func skipQuoted(s string, i int) int {
	quote := s[i]
	i++
	for i < len(s) {
		if s[i] == '\\' && quote != '`' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == quote {
			return i + 1
		}
		i++
	}
	return len(s)
}

// matchParen returns the index of the ')' closing the '(' at open, or -1
func matchParen(s string, open int) int {
	return matchDelim(s, open, '(', ')')
}

// matchBracket returns the index of the ']' closing the '[' at open, or -1
func matchBracket(s string, open int) int {
	return matchDelim(s, open, '[', ']')
}

func matchDelim(s string, open int, opening, closing byte) int {
	depth := 0
	for i := open; i < len(s); {
		ch := s[i]
		if isQuote(ch) {
			i = skipQuoted(s, i)
			continue
		}
		if ch == opening {
			depth++
		} else if ch == closing {
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

// splitArgs splits a call's inner text on top-level commas, trimming each part
func splitArgs(inner string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); {
		ch := inner[i]
		if isQuote(ch) {
			i = skipQuoted(inner, i)
			continue
		}
		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
		i++
	}
	parts = append(parts, strings.TrimSpace(inner[start:]))
	return parts
}

// findCall locates the next name(...) call at an identifier boundary,
// case-insensitively, skipping quoted regions
func findCall(s, name string, from int) (start, open int, ok bool) {
	uname := strings.ToUpper(name)
	for i := from; i+len(uname) <= len(s); {
		ch := s[i]
		if isQuote(ch) {
			i = skipQuoted(s, i)
			continue
		}
		if !strings.EqualFold(s[i:i+len(uname)], uname) {
			i++
			continue
		}
		if i > 0 && isWordChar(s[i-1]) {
			i++
			continue
		}
		j := i + len(uname)
		if j < len(s) && isWordChar(s[j]) {
			i++
			continue
		}
		for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
			j++
		}
		if j < len(s) && s[j] == '(' {
			return i, j, true
		}
		i++
	}
	return 0, 0, false
}

// rewriteCalls rewrites every name(...) call using repl, which receives the
// trimmed top-level arguments and reports whether this call should change.
// Replacements are rescanned, so calls nested inside captured arguments are
// rewritten too; repl output must not reintroduce the call shape.
func rewriteCalls(s, name string, repl func(args []string) (string, bool)) string {
	i := 0
	for {
		start, open, ok := findCall(s, name, i)
		if !ok {
			return s
		}
		closing := matchParen(s, open)
		if closing < 0 {
			return s
		}
		out, changed := repl(splitArgs(s[open+1 : closing]))
		if !changed {
			i = closing + 1
			continue
		}
		s = s[:start] + out + s[closing+1:]
		i = start
	}
}

// splitAs splits "expr AS alias" on its top-level AS keyword. ok is false
// when the argument carries no alias at depth zero.
func splitAs(arg string) (expr, alias string, ok bool) {
	depth := 0
	for i := 0; i < len(arg); {
		ch := arg[i]
		if isQuote(ch) {
			i = skipQuoted(arg, i)
			continue
		}
		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		if depth == 0 && (ch == 'A' || ch == 'a') && i+2 <= len(arg) &&
			strings.EqualFold(arg[i:i+2], "AS") &&
			i > 0 && !isWordChar(arg[i-1]) &&
			(i+2 == len(arg) || !isWordChar(arg[i+2])) {
			return strings.TrimSpace(arg[:i]), strings.TrimSpace(arg[i+2:]), true
		}
		i++
	}
	return "", "", false
}

// rewriteOutsideQuotes applies fn to the stretches of s that sit outside
// string literals and backtick identifiers
func rewriteOutsideQuotes(s string, fn func(string) string) string {
	var b strings.Builder
	start := 0
	for i := 0; i < len(s); {
		if isQuote(s[i]) {
			b.WriteString(fn(s[start:i]))
			end := skipQuoted(s, i)
			b.WriteString(s[i:end])
			i = end
			start = end
			continue
		}
		i++
	}
	b.WriteString(fn(s[start:]))
	return b.String()
}
