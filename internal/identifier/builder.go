// Package identifier assembles the deterministic canonical identifier string
// used as the folder and file name for a resolved recording.
//
// The format is
//
//	<Type>_<Coach>_<StudentFirst>_<WkToken>_<YYYY-MM-DD>[_M:<meetingID>U:<uuid>]
//
// Assembly is pure string work: the same resolution and date always produce
// the same identifier, and the optional uniqueness suffix keeps two otherwise
// identical recordings distinguishable.
package identifier

import (
	"strings"
	"time"

	"stencil/internal/recording"
	"stencil/internal/textutil"
)

// DateLayout is the date token format.
const DateLayout = "2006-01-02"

// Identifier is the canonical identifier and its structured parts. Construct
// via Build; never mutate afterward.
type Identifier struct {
	SessionTypePrefix string
	CoachToken        string
	StudentToken      string
	WeekToken         string
	DateToken         string
	UniquenessSuffix  string
}

// String joins the tokens into the final identifier.
func (id Identifier) String() string {
	parts := []string{id.SessionTypePrefix, id.CoachToken, id.StudentToken, id.WeekToken, id.DateToken}
	if id.UniquenessSuffix != "" {
		parts = append(parts, id.UniquenessSuffix)
	}
	return strings.Join(parts, "_")
}

// Build formats a resolution into its canonical identifier. Build is total:
// unresolved fields render as their unknown tokens and a malformed date falls
// back to the current day, so downstream callers always receive a usable
// name. The uniqueness suffix is appended only when both meetingID and uid
// are present.
func Build(res recording.Resolution, date string, meetingID, uid string) Identifier {
	id := Identifier{
		SessionTypePrefix: res.SessionType.Prefix(),
		CoachToken:        coachToken(res.Coach),
		StudentToken:      studentToken(res.Student),
		WeekToken:         weekToken(res),
		DateToken:         dateToken(date),
	}
	meetingID = textutil.SanitizeToken(meetingID)
	uid = textutil.SanitizeToken(uid)
	if meetingID != "" && uid != "" {
		id.UniquenessSuffix = "M:" + meetingID + "U:" + uid
	}
	return id
}

// coachToken is the canonical coach name with internal whitespace stripped,
// or "unknown" when unresolved.
func coachToken(coach string) string {
	if coach == "" || coach == recording.Unknown {
		return "unknown"
	}
	token := textutil.SanitizeToken(coach)
	token = strings.Join(strings.Fields(token), "")
	if token == "" {
		return "unknown"
	}
	return token
}

// studentToken is the first word of the canonical student name, or "Unknown".
func studentToken(student string) string {
	if student == "" || student == recording.Unknown {
		return recording.Unknown
	}
	token := textutil.FirstWord(textutil.SanitizeToken(student))
	if token == "" {
		return recording.Unknown
	}
	return token
}

// weekToken renders the week. MISC and Admin sessions always name as
// WkUnknown regardless of any extracted week.
func weekToken(res recording.Resolution) string {
	if res.SessionType == recording.SessionMISC || res.SessionType == recording.SessionAdmin {
		return "WkUnknown"
	}
	return res.Week.Token()
}

// dateToken passes through a valid YYYY-MM-DD date and otherwise formats the
// current day, keeping Build total under malformed input.
func dateToken(date string) string {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err == nil {
		return date
	}
	if ts, err := time.Parse(time.RFC3339, date); err == nil {
		return ts.UTC().Format(DateLayout)
	}
	return time.Now().UTC().Format(DateLayout)
}
