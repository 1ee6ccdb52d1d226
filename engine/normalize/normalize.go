// Package normalize corrects known transpiler artifacts as the final stage.
// Every correction is unconditional and idempotent, so output stays stable
// when the generic transpiler is swapped for one that does not produce them.
package normalize

import "strings"

// Apply cleans up the converted text: collapses the doubled timestamp
// suffix some transpilations emit, removes whitespace just inside
// parentheses, and reduces the zero-argument current-timestamp call to its
// keyword form.
func Apply(text string) string {
	text = strings.ReplaceAll(text, "TIMESTAMPSTAMP", "TIMESTAMP")

	for strings.Contains(text, "( ") {
		text = strings.ReplaceAll(text, "( ", "(")
	}
	for strings.Contains(text, " )") {
		text = strings.ReplaceAll(text, " )", ")")
	}

	text = strings.ReplaceAll(text, "CURRENT_TIMESTAMP()", "CURRENT_TIMESTAMP")

	return strings.TrimSpace(text)
}
