package resolve

import (
	"testing"

	"stencil/internal/recording"
)

func TestScoreCapsAtHundred(t *testing.T) {
	res := recording.Resolution{
		Coach:         "Jenny",
		Student:       "Arshiya",
		Week:          recording.Week{Number: 16},
		SessionType:   recording.SessionCoaching,
		CoachSource:   recording.SourcePattern,
		StudentSource: recording.SourcePattern,
		WeekSource:    recording.SourcePattern,
	}
	score(&res, 80)
	if res.Overall != 100 {
		t.Errorf("overall = %d, want 100", res.Overall)
	}
	if res.Confidence.Coach != 50 || res.Confidence.Student != 50 {
		t.Errorf("field confidence = %+v, want 50/50", res.Confidence)
	}
	if res.Confidence.SessionType != 80 {
		t.Errorf("session type confidence = %d, want 80", res.Confidence.SessionType)
	}
}

func TestScoreFallbackIsZero(t *testing.T) {
	res := recording.Resolution{
		Coach:         recording.Unknown,
		Student:       recording.Unknown,
		SessionType:   recording.SessionMISC,
		CoachSource:   recording.SourceFallback,
		StudentSource: recording.SourceFallback,
		WeekSource:    recording.SourceFallback,
	}
	score(&res, 30)
	if res.Overall != 0 {
		t.Errorf("overall = %d, want 0", res.Overall)
	}
	if res.Confidence.Coach != 0 || res.Confidence.Student != 0 || res.Confidence.Week != 0 {
		t.Errorf("field confidence = %+v, want zeros", res.Confidence)
	}
}

func TestScoreMediumSources(t *testing.T) {
	res := recording.Resolution{
		Coach:         "Noor",
		Student:       "Priya",
		SessionType:   recording.SessionCoaching,
		CoachSource:   recording.SourceHostEmail,
		StudentSource: recording.SourceParticipants,
		WeekSource:    recording.SourceFallback,
	}
	score(&res, 80)
	// Base is the stronger of the two name sources (35), plus name and
	// session-type bonuses.
	want := 35 + bonusCoachResolved + bonusStudentResolved + bonusTypedSession
	if res.Overall != want {
		t.Errorf("overall = %d, want %d", res.Overall, want)
	}
}
