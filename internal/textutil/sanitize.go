package textutil

import "strings"

// tokenReplacer removes path-hostile characters from identifier tokens.
var tokenReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"/", "",
	"\\", "",
	"|", "",
	"?", "",
	"*", "",
)

// SanitizeToken strips characters that are unsafe in folder and file names.
// The result is trimmed of leading/trailing whitespace.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return strings.TrimSpace(tokenReplacer.Replace(value))
}

// Ternary is a generic conditional helper that returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
