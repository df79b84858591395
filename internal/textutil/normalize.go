package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics strips combining diacritical marks so accented names compare
// equal to their ASCII spellings. Input is returned unchanged if the transform
// fails.
func FoldDiacritics(value string) string {
	folded, _, err := transform.String(diacriticFolder, value)
	if err != nil {
		return value
	}
	return folded
}

// NormalizeName produces the canonical comparison form of a person name:
// diacritics folded, lowercased, trimmed, with internal whitespace collapsed
// to single spaces.
func NormalizeName(value string) string {
	value = FoldDiacritics(value)
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	return strings.Join(strings.Fields(value), " ")
}

// ConcatenateName removes all whitespace from an already-normalized name so
// inputs like "jennyduan" match the indexed form of "jenny duan".
func ConcatenateName(value string) string {
	if !strings.ContainsAny(value, " \t") {
		return value
	}
	return strings.Join(strings.Fields(value), "")
}

// FirstWord returns the first whitespace-delimited word of value, or the
// empty string when value is blank.
func FirstWord(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
