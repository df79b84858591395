// Package classify assigns each recording a session-type category from a
// deterministic, ordered rule set. First match wins, and the ordering is
// load-bearing: keyword checks outrank everything, and the coach/student
// pairing check runs before the short-duration and missing-student checks so
// a known coaching pair is never reclassified as trivial purely because the
// call was short.
package classify

import (
	"strings"

	"stencil/internal/recording"
)

// shortSessionSeconds is the duration floor below which an otherwise
// unclassified recording is treated as MISC.
const shortSessionSeconds = 300

// Confidence levels reported per winning check.
const (
	confidenceKeyword  = 95
	confidencePairing  = 80
	confidenceHostRoom = 70
	confidenceDuration = 60
	confidenceDefault  = 30
)

// Classify determines the session type for a recording given the resolved
// coach and student names. It returns the category and a 0-100 confidence
// reflecting which check decided it. Classify is total: any input, including
// a nil-ish empty context, yields a category.
func Classify(ctx *recording.Context, coach, student string) (recording.SessionType, int) {
	topic := ""
	duration := 0
	if ctx != nil {
		topic = strings.ToLower(ctx.Topic)
		duration = ctx.DurationSeconds
	}
	coachKnown := coach != "" && coach != recording.Unknown
	studentKnown := student != "" && student != recording.Unknown

	switch {
	case strings.Contains(topic, "game plan"):
		return recording.SessionGamePlan, confidenceKeyword
	case strings.Contains(topic, "sat prep"), strings.Contains(topic, "sat session"):
		return recording.SessionSAT, confidenceKeyword
	case strings.Contains(topic, "test"):
		return recording.SessionMISC, confidenceKeyword
	case coachKnown && studentKnown:
		return recording.SessionCoaching, confidencePairing
	case strings.Contains(topic, "personal meeting room") && coachKnown:
		return recording.SessionCoaching, confidenceHostRoom
	case duration > 0 && duration < shortSessionSeconds:
		return recording.SessionMISC, confidenceDuration
	case !studentKnown:
		return recording.SessionMISC, confidenceDefault
	default:
		return recording.SessionMISC, confidenceDefault
	}
}
