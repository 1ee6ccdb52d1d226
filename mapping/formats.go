package mapping

import "strings"

// DateFormats maps strftime directives (BigQuery format strings) to
// java.time patterns (Spark format strings)
var DateFormats = map[string]string{
	"%Y": "yyyy",
	"%y": "yy",
	"%m": "MM",
	"%d": "dd",
	"%e": "d",
	"%H": "HH",
	"%I": "hh",
	"%M": "mm",
	"%S": "ss",
	"%f": "SSSSSS",
	"%j": "DDD",
	"%b": "MMM",
	"%B": "MMMM",
	"%a": "EEE",
	"%A": "EEEE",
	"%p": "a",
	"%z": "ZZZZ",
	"%%": "%",
}

// ConvertDateFormat rewrites a strftime format string into java.time style.
// Unknown directives are passed through unchanged.
func ConvertDateFormat(format string) string {
	var out strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			directive := format[i : i+2]
			if mapped, ok := DateFormats[directive]; ok {
				out.WriteString(mapped)
				i++
				continue
			}
		}
		out.WriteByte(format[i])
	}
	return out.String()
}

// LooksLikeDateFormat reports whether a string literal contains at least one
// strftime directive
func LooksLikeDateFormat(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' {
			c := s[i+1]
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				return true
			}
		}
	}
	return false
}
