package identifier

import (
	"strings"
	"testing"
	"time"

	"stencil/internal/recording"
)

func TestBuildCoachingIdentifier(t *testing.T) {
	res := recording.Resolution{
		Coach:       "Jenny",
		Student:     "Arshiya",
		Week:        recording.Week{Number: 16},
		SessionType: recording.SessionCoaching,
	}

	id := Build(res, "2026-03-14", "", "")
	if got := id.String(); got != "Coaching_Jenny_Arshiya_Wk16_2026-03-14" {
		t.Errorf("identifier = %q", got)
	}
}

func TestBuildWeekTokens(t *testing.T) {
	tests := []struct {
		name string
		week recording.Week
		want string
	}{
		{"numeric zero padded", recording.Week{Number: 7}, "Wk07"},
		{"two digit numeric", recording.Week{Number: 16}, "Wk16"},
		{"alphanumeric tag", recording.Week{Tag: "2B"}, "Wk2B"},
		{"absent week", recording.Week{}, "WkUnknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := recording.Resolution{Coach: "Jenny", Student: "Arshiya", Week: tt.week, SessionType: recording.SessionCoaching}
			id := Build(res, "2026-03-14", "", "")
			if id.WeekToken != tt.want {
				t.Errorf("week token = %q, want %q", id.WeekToken, tt.want)
			}
		})
	}
}

func TestBuildMiscForcesUnknownWeek(t *testing.T) {
	res := recording.Resolution{
		Coach:       "Jenny",
		Student:     "Arshiya",
		Week:        recording.Week{Number: 16},
		SessionType: recording.SessionMISC,
	}
	id := Build(res, "2026-03-14", "", "")
	if id.WeekToken != "WkUnknown" {
		t.Errorf("week token = %q, want WkUnknown for MISC", id.WeekToken)
	}
	if id.SessionTypePrefix != "MISC" {
		t.Errorf("prefix = %q, want MISC", id.SessionTypePrefix)
	}
}

func TestBuildUnknownEverything(t *testing.T) {
	res := recording.Resolution{
		Coach:       recording.Unknown,
		Student:     recording.Unknown,
		SessionType: recording.SessionMISC,
	}
	id := Build(res, "2026-03-14", "", "")
	if got := id.String(); got != "MISC_unknown_Unknown_WkUnknown_2026-03-14" {
		t.Errorf("identifier = %q", got)
	}
}

func TestBuildStudentFirstWordOnly(t *testing.T) {
	res := recording.Resolution{
		Coach:       "Noor Hassan",
		Student:     "Priya Sharma",
		SessionType: recording.SessionCoaching,
	}
	id := Build(res, "2026-03-14", "", "")
	if id.CoachToken != "NoorHassan" {
		t.Errorf("coach token = %q, want NoorHassan", id.CoachToken)
	}
	if id.StudentToken != "Priya" {
		t.Errorf("student token = %q, want Priya", id.StudentToken)
	}
}

func TestBuildSanitizesHostileCharacters(t *testing.T) {
	res := recording.Resolution{
		Coach:       `Jen<ny/Du:an`,
		Student:     `Ar*sh?iya`,
		SessionType: recording.SessionCoaching,
	}
	id := Build(res, "2026-03-14", "", "")
	if strings.ContainsAny(id.String(), `<>:"/\|?*`) {
		t.Errorf("identifier contains hostile characters: %q", id.String())
	}
	if id.CoachToken != "JennyDuan" {
		t.Errorf("coach token = %q, want JennyDuan", id.CoachToken)
	}
	if id.StudentToken != "Arshiya" {
		t.Errorf("student token = %q, want Arshiya", id.StudentToken)
	}
}

func TestBuildUniquenessSuffix(t *testing.T) {
	res := recording.Resolution{Coach: "Jenny", Student: "Arshiya", SessionType: recording.SessionCoaching}

	withBoth := Build(res, "2026-03-14", "8241", "3f1c2d")
	if withBoth.UniquenessSuffix != "M:8241U:3f1c2d" {
		t.Errorf("suffix = %q, want M:8241U:3f1c2d", withBoth.UniquenessSuffix)
	}
	if !strings.HasSuffix(withBoth.String(), "_M:8241U:3f1c2d") {
		t.Errorf("identifier = %q, want uniqueness suffix appended", withBoth.String())
	}

	// Suffix requires both parts.
	if id := Build(res, "2026-03-14", "8241", ""); id.UniquenessSuffix != "" {
		t.Errorf("suffix = %q, want empty without uuid", id.UniquenessSuffix)
	}
	if id := Build(res, "2026-03-14", "", "3f1c2d"); id.UniquenessSuffix != "" {
		t.Errorf("suffix = %q, want empty without meeting id", id.UniquenessSuffix)
	}
}

func TestBuildDateFallback(t *testing.T) {
	res := recording.Resolution{Coach: "Jenny", Student: "Arshiya", SessionType: recording.SessionCoaching}

	id := Build(res, "2026-03-14T09:30:00Z", "", "")
	if id.DateToken != "2026-03-14" {
		t.Errorf("date token = %q, want 2026-03-14 from RFC3339 input", id.DateToken)
	}

	malformed := Build(res, "not-a-date", "", "")
	if _, err := time.Parse(DateLayout, malformed.DateToken); err != nil {
		t.Errorf("date token = %q, want a valid fallback date", malformed.DateToken)
	}
}
