package recording

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxWeekNumber bounds numeric week values; anything outside [1, MaxWeekNumber]
// is rejected during parsing.
const MaxWeekNumber = 52

// Week holds an extracted week marker. Purely numeric weeks populate Number;
// alphanumeric tags like "2B" are kept verbatim in Tag. The zero value means
// no week was extracted.
type Week struct {
	Number int
	Tag    string
}

// Valid reports whether a week value was extracted.
func (w Week) Valid() bool {
	return w.Number > 0 || w.Tag != ""
}

// String renders the week for logs and catalog rows.
func (w Week) String() string {
	switch {
	case w.Number > 0:
		return strconv.Itoa(w.Number)
	case w.Tag != "":
		return w.Tag
	default:
		return ""
	}
}

// Token renders the identifier week token: "Wk" plus a zero-padded number for
// numeric weeks or the raw tag for alphanumeric ones. Invalid weeks render as
// "WkUnknown".
func (w Week) Token() string {
	switch {
	case w.Number > 0:
		return fmt.Sprintf("Wk%02d", w.Number)
	case w.Tag != "":
		return "Wk" + w.Tag
	default:
		return "WkUnknown"
	}
}

// ParseWeek interprets a captured week value. Purely numeric values must fall
// in [1, MaxWeekNumber]; mixed alphanumeric values are accepted verbatim as
// tags. Returns the zero Week when the value is empty or out of range.
func ParseWeek(raw string) Week {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Week{}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > MaxWeekNumber {
			return Week{}
		}
		return Week{Number: n}
	}
	return Week{Tag: strings.ToUpper(raw)}
}
