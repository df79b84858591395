package resolve

import (
	"bufio"
	"regexp"
	"strings"

	"stencil/internal/recording"
	"stencil/internal/registry"
	"stencil/internal/textutil"
)

// maxScanLines caps transcript/chat scanning so a pathological blob cannot
// stall resolution.
const maxScanLines = 2000

// Speaker-label shapes seen in transcript exports: "Name:", a timestamped
// "HH:MM:SS - Name:", and "Name (role)".
var speakerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d{1,2}:\d{2}:\d{2}\s*-\s*([^:()]+?)\s*:`),
	regexp.MustCompile(`^\s*([^:()\d][^:()]*?)\s*:`),
	regexp.MustCompile(`^\s*([^:()]+?)\s*\(`),
}

func isPersonalRoomTopic(topic string) bool {
	return strings.Contains(strings.ToLower(topic), "personal meeting room")
}

// scanForStudent walks text line by line looking for a known student: first
// via speaker labels, then via alias substrings on lines that do not also
// mention the coach. Returns nil when the text yields nothing.
func scanForStudent(text string, students *registry.Registry, coach, source string) *recording.Partial {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	coachNorm := ""
	if coach != "" && coach != recording.Unknown {
		coachNorm = textutil.NormalizeName(coach)
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := 0
	for scanner.Scan() && lines < maxScanLines {
		lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if entry := speakerMatch(line, students); entry != nil {
			return &recording.Partial{Student: entry.CanonicalName, Source: source}
		}
		if coachNorm != "" && strings.Contains(textutil.NormalizeName(line), coachNorm) {
			continue
		}
		if entry := students.FindAliasIn(line); entry != nil {
			return &recording.Partial{Student: entry.CanonicalName, Source: source}
		}
	}
	return nil
}

func speakerMatch(line string, students *registry.Registry) *registry.Entry {
	for _, re := range speakerPatterns {
		match := re.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		speaker := strings.TrimSpace(match[1])
		if speaker == "" {
			continue
		}
		if entry := students.LookupExact(speaker); entry != nil {
			return entry
		}
	}
	return nil
}
