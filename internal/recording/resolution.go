package recording

// Unknown is the placeholder used for any entity the cascade cannot resolve.
// Coach tokens lowercase it during identifier assembly; student tokens keep
// it capitalized.
const Unknown = "Unknown"

// Source tags identify which resolution stage supplied a field. They appear
// in the method trail in cascade order.
const (
	SourcePattern      = "pattern"
	SourceHostEmail    = "host_email"
	SourceParticipants = "participants"
	SourceTranscript   = "transcript"
	SourceChat         = "chat"
	SourceFolder       = "folder"
	SourceFallback     = "fallback"
)

// Partial is the output of a single resolution stage. Empty strings mean the
// stage has no opinion; Unknown means the stage looked and failed.
type Partial struct {
	Coach           string
	Student         string
	Week            Week
	SessionTypeHint SessionType
	Source          string
}

// Empty reports whether the stage produced nothing usable.
func (p Partial) Empty() bool {
	return !p.hasCoach() && !p.hasStudent() && !p.Week.Valid() && p.SessionTypeHint == ""
}

func (p Partial) hasCoach() bool {
	return p.Coach != "" && p.Coach != Unknown
}

func (p Partial) hasStudent() bool {
	return p.Student != "" && p.Student != Unknown
}

// Confidence carries per-field 0-100 scores.
type Confidence struct {
	Coach       int
	Student     int
	Week        int
	SessionType int
}

// Resolution is the finalized outcome for one recording. Coach and Student
// hold canonical registry names or Unknown. MethodTrail lists every stage
// consulted, in order, regardless of whether it contributed a field.
type Resolution struct {
	Coach         string
	Student       string
	Week          Week
	SessionType   SessionType
	Confidence    Confidence
	Overall       int
	MethodTrail   []string
	CoachSource   string
	StudentSource string
	WeekSource    string
}

// CoachResolved reports whether the cascade produced a canonical coach.
func (r *Resolution) CoachResolved() bool {
	return r.Coach != "" && r.Coach != Unknown
}

// StudentResolved reports whether the cascade produced a canonical student.
func (r *Resolution) StudentResolved() bool {
	return r.Student != "" && r.Student != Unknown
}
