package resolve

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stencil/internal/extract"
	"stencil/internal/recording"
	"stencil/internal/registry"
	"stencil/internal/textutil"
)

// patternStage applies the ordered topic rules.
type patternStage struct {
	extractor *extract.Extractor
}

func (s *patternStage) Name() string { return recording.SourcePattern }

func (s *patternStage) Attempt(ctx *recording.Context, _ *recording.Resolution) *recording.Partial {
	if strings.TrimSpace(ctx.Topic) == "" {
		return nil
	}
	partial := s.extractor.Extract(ctx.Topic)
	return &partial
}

// hostEmailStage matches the host's email local part against the coach
// registry.
type hostEmailStage struct {
	coaches *registry.Registry
}

func (s *hostEmailStage) Name() string { return recording.SourceHostEmail }

func (s *hostEmailStage) Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial {
	if current.CoachResolved() || strings.TrimSpace(ctx.HostEmail) == "" {
		return nil
	}
	entry := s.coaches.LookupEmail(ctx.HostEmail)
	if entry == nil {
		return nil
	}
	return &recording.Partial{Coach: entry.CanonicalName, Source: recording.SourceHostEmail}
}

// participantsStage eliminates the resolved coach from the roster and takes
// the first remaining named participant as the student candidate.
type participantsStage struct {
	students     *registry.Registry
	coachDomains []string
	threshold    float64
}

func (s *participantsStage) Name() string { return recording.SourceParticipants }

func (s *participantsStage) Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial {
	if current.StudentResolved() || len(ctx.Participants) == 0 {
		return nil
	}
	coach := ""
	if current.CoachResolved() {
		coach = textutil.NormalizeName(current.Coach)
	}
	for _, participant := range ctx.Participants {
		name := strings.TrimSpace(participant.Name)
		if name == "" {
			continue
		}
		if s.isCoach(participant, coach) {
			continue
		}
		student := name
		if entry := s.students.LookupExact(name); entry != nil {
			student = entry.CanonicalName
		} else if entry := s.students.LookupFuzzy(name, s.threshold); entry != nil {
			student = entry.CanonicalName
		}
		return &recording.Partial{Student: student, Source: recording.SourceParticipants}
	}
	return nil
}

func (s *participantsStage) isCoach(participant recording.Participant, coach string) bool {
	if coach != "" {
		name := textutil.NormalizeName(participant.Name)
		if name != "" && (strings.Contains(name, coach) || strings.Contains(coach, name)) {
			return true
		}
	}
	email := strings.ToLower(strings.TrimSpace(participant.Email))
	if at := strings.IndexByte(email, '@'); at >= 0 {
		domain := email[at+1:]
		for _, coachDomain := range s.coachDomains {
			if domain == strings.ToLower(strings.TrimSpace(coachDomain)) {
				return true
			}
		}
	}
	return false
}

// transcriptStage scans transcript lines for student speakers. It only runs
// for personal-meeting-room style topics, where the topic itself carries no
// student signal.
type transcriptStage struct {
	students *registry.Registry
}

func (s *transcriptStage) Name() string { return recording.SourceTranscript }

func (s *transcriptStage) Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial {
	if current.StudentResolved() || !isPersonalRoomTopic(ctx.Topic) {
		return nil
	}
	return scanForStudent(ctx.TranscriptText, s.students, current.Coach, recording.SourceTranscript)
}

// chatStage applies the transcript scanner to the meeting chat log.
type chatStage struct {
	students *registry.Registry
}

func (s *chatStage) Name() string { return recording.SourceChat }

func (s *chatStage) Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial {
	if current.StudentResolved() || !isPersonalRoomTopic(ctx.Topic) {
		return nil
	}
	return scanForStudent(ctx.ChatText, s.students, current.Coach, recording.SourceChat)
}

// folderStage walks the recording's folder hierarchy looking for a coach
// marker segment; the segment after it names the student.
type folderStage struct {
	coaches   *registry.Registry
	students  *registry.Registry
	keywords  []string
	threshold float64
}

func (s *folderStage) Name() string { return recording.SourceFolder }

var coachSegmentPattern = regexp.MustCompile(`(?i)^coach\s+(.+)$`)

func (s *folderStage) Attempt(ctx *recording.Context, current *recording.Resolution) *recording.Partial {
	if len(ctx.FolderPath) == 0 {
		return nil
	}
	partial := recording.Partial{Source: recording.SourceFolder}
	for i, segment := range ctx.FolderPath {
		segment = strings.TrimSpace(segment)
		coachName := s.coachFromSegment(segment)
		if coachName == "" {
			continue
		}
		partial.Coach = coachName
		if i+1 < len(ctx.FolderPath) {
			partial.Student = s.studentFromSegment(ctx.FolderPath[i+1])
		}
		break
	}
	if partial.Coach == "" && partial.Student == "" {
		return nil
	}
	return &partial
}

func (s *folderStage) coachFromSegment(segment string) string {
	if match := coachSegmentPattern.FindStringSubmatch(segment); match != nil {
		if entry := s.coaches.Lookup(match[1]); entry != nil {
			return entry.CanonicalName
		}
		return strings.TrimSpace(match[1])
	}
	normalized := textutil.NormalizeName(segment)
	for _, keyword := range s.keywords {
		if normalized == textutil.NormalizeName(keyword) {
			if entry := s.coaches.LookupExact(segment); entry != nil {
				return entry.CanonicalName
			}
			return segment
		}
	}
	return ""
}

// studentFromSegment accepts the segment after a coach marker when it looks
// like a proper-cased name and is not an archived "OLD_" folder.
func (s *folderStage) studentFromSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" || strings.HasPrefix(segment, "OLD_") || !looksLikeProperName(segment) {
		return ""
	}
	if entry := s.students.LookupExact(segment); entry != nil {
		return entry.CanonicalName
	}
	if entry := s.students.LookupFuzzy(segment, s.threshold); entry != nil {
		return entry.CanonicalName
	}
	return textutil.FirstWord(segment)
}

var titleCaser = cases.Title(language.Und)

// looksLikeProperName reports whether a folder segment reads as a capitalized
// person name ("Arshiya", "Priya Sharma") rather than an organizational
// folder ("recordings", "2024 archive").
func looksLikeProperName(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '\'' && r != '-' {
			return false
		}
	}
	return segment == titleCaser.String(strings.ToLower(segment))
}
