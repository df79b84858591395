package recording

// Participant is one attendee from the meeting roster.
type Participant struct {
	Name  string
	Email string
}

// Context bundles everything known about one recording before resolution.
// All fields are optional except Topic; missing data simply narrows which
// resolution stages can make progress.
type Context struct {
	Topic           string
	HostEmail       string
	Participants    []Participant
	TranscriptText  string
	ChatText        string
	FolderPath      []string
	DurationSeconds int
	Timestamp       string
	MeetingID       string
	UUID            string
}
