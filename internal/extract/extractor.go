package extract

import (
	"fmt"
	"regexp"

	"stencil/internal/recording"
	"stencil/internal/registry"
)

// rule is one ordered topic pattern. Rules that set hint bypass name
// extraction; rules with coach/student groups feed captures through the
// registries for canonicalization.
type rule struct {
	name string
	re   *regexp.Regexp
	hint recording.SessionType
}

// mustRule compiles a rule and verifies that every named group the rule is
// expected to fill actually exists in the pattern. A mismatch is a
// programming error, so it fails fast at package load.
func mustRule(name, pattern string, hint recording.SessionType, groups ...string) rule {
	re := regexp.MustCompile(pattern)
	for _, group := range groups {
		if re.SubexpIndex(group) < 0 {
			panic(fmt.Sprintf("extract: rule %q missing capture group %q", name, group))
		}
	}
	return rule{name: name, re: re, hint: hint}
}

// topicRules is the priority cascade over topic strings. Explicit separators
// outrank the generic single-dash split; keyword rules for session types come
// first and short-circuit name extraction.
var topicRules = []rule{
	mustRule("game_plan_keyword", `(?i)\bgame\s*plan\b`, recording.SessionGamePlan),
	mustRule("sat_keyword", `(?i)\bsat\s+(?:prep|session)\b`, recording.SessionSAT),
	mustRule("angle_separator", `^\s*(?P<coach>.+?)\s*<>\s*(?P<student>.+?)\s*$`, "", "coach", "student"),
	mustRule("ampersand_separator", `^\s*(?P<coach>[^&:]+?)\s*&\s*(?P<student>[^&:]+?)\s*(?::.*)?$`, "", "coach", "student"),
	mustRule("and_separator", `^\s*(?P<coach>[\pL'. -]+?)\s+[Aa]nd\s+(?P<student>[\pL'. -]+?)\s*(?::.*)?$`, "", "coach", "student"),
	mustRule("with_separator", `(?i)^\s*(?P<student>.+?)\s+(?:w/|with)\s+(?:coach\s+)?(?P<coach>.+?)\s*(?::.*)?$`, "", "coach", "student"),
	mustRule("personal_room", `(?i)^\s*(?P<coach>.+?)['’]s\s+personal\s+meeting\s+room\s*$`, "", "coach"),
	mustRule("dash_separator", `^\s*(?P<coach>[^-]+?)\s*-\s*(?P<student>[^-]+?)\s*$`, "", "coach", "student"),
}

// weekPatterns is tried in order against the full topic; the first capture
// that survives range validation wins.
var weekPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bweek\s*#?\s*(\d+[a-z]*)\b`),
	regexp.MustCompile(`(?i)\bwk\s*\.?\s*#?\s*(\d+[a-z]*)\b`),
	regexp.MustCompile(`(?i)\bsession\s*#?\s*(\d+[a-z]*)\b`),
	regexp.MustCompile(`#\s*(\d+[a-z]*)\b`),
}

// Extractor canonicalizes topic captures against the coach and student
// registries.
type Extractor struct {
	coaches   *registry.Registry
	students  *registry.Registry
	threshold float64
}

// NewExtractor builds an extractor. A non-positive threshold falls back to
// the registry default.
func NewExtractor(coaches, students *registry.Registry, threshold float64) *Extractor {
	if threshold <= 0 {
		threshold = registry.DefaultFuzzyThreshold
	}
	return &Extractor{coaches: coaches, students: students, threshold: threshold}
}

// Extract applies the rule cascade to a topic. The first matching rule wins.
// Captured names are canonicalized; captures with no registry match degrade
// to Unknown rather than leaking raw text. Week markers are parsed
// independently of the winning rule.
func (e *Extractor) Extract(topic string) recording.Partial {
	partial := recording.Partial{Source: recording.SourcePattern}
	if topic == "" {
		return partial
	}
	partial.Week = ExtractWeek(topic)

	for _, r := range topicRules {
		match := r.re.FindStringSubmatch(topic)
		if match == nil {
			continue
		}
		if r.hint != "" {
			partial.SessionTypeHint = r.hint
			return partial
		}
		if idx := r.re.SubexpIndex("coach"); idx >= 0 && idx < len(match) {
			partial.Coach = e.canonicalize(e.coaches, match[idx])
		}
		if idx := r.re.SubexpIndex("student"); idx >= 0 && idx < len(match) {
			partial.Student = e.canonicalize(e.students, match[idx])
		}
		return partial
	}
	return partial
}

// ExtractWeek parses a week marker from topic text, trying patterns in
// priority order.
func ExtractWeek(text string) recording.Week {
	for _, re := range weekPatterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if week := recording.ParseWeek(match[1]); week.Valid() {
			return week
		}
	}
	return recording.Week{}
}

func (e *Extractor) canonicalize(reg *registry.Registry, raw string) string {
	if entry := reg.LookupExact(raw); entry != nil {
		return entry.CanonicalName
	}
	if entry := reg.LookupFuzzy(raw, e.threshold); entry != nil {
		return entry.CanonicalName
	}
	return recording.Unknown
}
