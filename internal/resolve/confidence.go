package resolve

import "stencil/internal/recording"

// Base scores per resolving source. Pattern extraction is the strongest
// signal; emails and folder placement are circumstantial; fallback means
// nothing was found.
var sourceBase = map[string]int{
	recording.SourcePattern:      50,
	recording.SourceHostEmail:    35,
	recording.SourceParticipants: 30,
	recording.SourceTranscript:   30,
	recording.SourceChat:         25,
	recording.SourceFolder:       25,
	recording.SourceFallback:     0,
}

// Additive bonuses applied to the overall score.
const (
	bonusCoachResolved   = 15
	bonusStudentResolved = 15
	bonusWeekExtracted   = 10
	bonusTypedSession    = 10
)

// score annotates per-field confidence from each field's resolving source and
// folds everything into a single capped 0-100 overall score that downstream
// consumers can use as a review gate.
func score(res *recording.Resolution, typeConfidence int) {
	coachBase := sourceBase[res.CoachSource]
	studentBase := sourceBase[res.StudentSource]
	weekBase := sourceBase[res.WeekSource]

	if res.CoachResolved() {
		res.Confidence.Coach = coachBase
	}
	if res.StudentResolved() {
		res.Confidence.Student = studentBase
	}
	if res.Week.Valid() {
		res.Confidence.Week = weekBase
	}
	res.Confidence.SessionType = typeConfidence

	overall := coachBase
	if studentBase > overall {
		overall = studentBase
	}
	if res.CoachResolved() {
		overall += bonusCoachResolved
	}
	if res.StudentResolved() {
		overall += bonusStudentResolved
	}
	if res.Week.Valid() {
		overall += bonusWeekExtracted
	}
	if res.SessionType != recording.SessionMISC && res.SessionType != recording.SessionAdmin {
		overall += bonusTypedSession
	}
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}
	res.Overall = overall
}
