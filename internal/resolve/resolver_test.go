package resolve

import (
	"reflect"
	"testing"

	"stencil/internal/recording"
	"stencil/internal/registry"
)

func testResolver() *Resolver {
	coaches := registry.New([]registry.Entry{
		{CanonicalName: "Jenny", FirstName: "Jenny", LastName: "Duan", Aliases: []string{"Jenny Duan"}, EmailLocalPart: "jenny.duan"},
		{CanonicalName: "Noor", FirstName: "Noor", LastName: "Hassan", Aliases: []string{"Noor Hassan"}, EmailLocalPart: "noor.hassan"},
	})
	students := registry.New([]registry.Entry{
		{CanonicalName: "Arshiya", FirstName: "Arshiya", LastName: "Kapoor", Aliases: []string{"Arshiya Kapoor"}, ParentNames: []string{"Ritu Kapoor"}},
		{CanonicalName: "Priya", FirstName: "Priya", LastName: "Sharma", Aliases: []string{"Priya Sharma"}},
	})
	return New(coaches, students, Options{
		CoachEmailDomains: []string{"brightpath.example"},
		CoachKeywords:     []string{"Jenny", "Noor"},
	}, nil)
}

func TestResolveTopicPattern(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{Topic: "Jenny & Arshiya: Week 16"})

	if res.Coach != "Jenny" {
		t.Errorf("coach = %q, want Jenny", res.Coach)
	}
	if res.Student != "Arshiya" {
		t.Errorf("student = %q, want Arshiya", res.Student)
	}
	if res.Week.String() != "16" {
		t.Errorf("week = %q, want 16", res.Week.String())
	}
	if res.SessionType != recording.SessionCoaching {
		t.Errorf("session type = %q, want Coaching", res.SessionType)
	}
	if res.CoachSource != recording.SourcePattern || res.StudentSource != recording.SourcePattern {
		t.Errorf("sources = %q/%q, want pattern/pattern", res.CoachSource, res.StudentSource)
	}
	if res.Overall != 100 {
		t.Errorf("overall = %d, want 100", res.Overall)
	}
	if len(res.MethodTrail) == 0 || res.MethodTrail[0] != recording.SourcePattern {
		t.Errorf("method trail = %v, want pattern first", res.MethodTrail)
	}
}

func TestResolveTestCall(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{Topic: "Test call", DurationSeconds: 120})

	if res.SessionType != recording.SessionMISC {
		t.Errorf("session type = %q, want MISC", res.SessionType)
	}
	if res.Coach != recording.Unknown || res.Student != recording.Unknown {
		t.Errorf("names = %q/%q, want Unknown/Unknown", res.Coach, res.Student)
	}
}

func TestResolveTranscriptScan(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{
		Topic:          "Noor Hassan's Personal Meeting Room",
		TranscriptText: "00:00:02 - Noor: welcome in\nPriya: I think we should review the essay first\n",
	})

	if res.Coach != "Noor" {
		t.Errorf("coach = %q, want Noor", res.Coach)
	}
	if res.Student != "Priya" {
		t.Errorf("student = %q, want Priya", res.Student)
	}
	if res.StudentSource != recording.SourceTranscript {
		t.Errorf("student source = %q, want transcript", res.StudentSource)
	}
	found := false
	for _, tag := range res.MethodTrail {
		if tag == recording.SourceTranscript {
			found = true
		}
	}
	if !found {
		t.Errorf("method trail %v missing transcript", res.MethodTrail)
	}
	if res.SessionType != recording.SessionCoaching {
		t.Errorf("session type = %q, want Coaching", res.SessionType)
	}
}

func TestResolveChatScanAfterEmptyTranscript(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{
		Topic:    "Noor Hassan's Personal Meeting Room",
		ChatText: "Priya Sharma: uploaded the worksheet\n",
	})

	if res.Student != "Priya" {
		t.Errorf("student = %q, want Priya", res.Student)
	}
	if res.StudentSource != recording.SourceChat {
		t.Errorf("student source = %q, want chat", res.StudentSource)
	}
}

func TestResolveEmptyContext(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{})

	if res.Coach != recording.Unknown || res.Student != recording.Unknown {
		t.Errorf("names = %q/%q, want Unknown/Unknown", res.Coach, res.Student)
	}
	if res.Week.Valid() {
		t.Errorf("week = %v, want invalid", res.Week)
	}
	if res.SessionType != recording.SessionMISC {
		t.Errorf("session type = %q, want MISC", res.SessionType)
	}
	if res.Overall != 0 {
		t.Errorf("overall = %d, want 0", res.Overall)
	}
	last := res.MethodTrail[len(res.MethodTrail)-1]
	if last != recording.SourceFallback {
		t.Errorf("method trail = %v, want fallback last", res.MethodTrail)
	}
}

func TestResolveNilContext(t *testing.T) {
	r := testResolver()

	res := r.Resolve(nil)
	if res.Coach != recording.Unknown || res.Student != recording.Unknown {
		t.Errorf("nil context names = %q/%q, want Unknown/Unknown", res.Coach, res.Student)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := testResolver()
	ctx := &recording.Context{
		Topic:     "Jenny & Arshiya: Week 16",
		HostEmail: "jenny.duan@brightpath.example",
		Participants: []recording.Participant{
			{Name: "Jenny Duan", Email: "jenny.duan@brightpath.example"},
			{Name: "Arshiya Kapoor", Email: "arshiya@family.example"},
		},
	}

	first := r.Resolve(ctx)
	second := r.Resolve(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolutions differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestResolveHostEmailStage(t *testing.T) {
	r := testResolver()

	res := r.Resolve(&recording.Context{
		Topic:     "Weekly catch-up",
		HostEmail: "noor.hassan@brightpath.example",
		Participants: []recording.Participant{
			{Name: "Noor Hassan", Email: "noor.hassan@brightpath.example"},
			{Name: "Arshiya Kapoor", Email: "arshiya@family.example"},
		},
	})

	if res.Coach != "Noor" {
		t.Errorf("coach = %q, want Noor", res.Coach)
	}
	if res.CoachSource != recording.SourceHostEmail {
		t.Errorf("coach source = %q, want host_email", res.CoachSource)
	}
	if res.Student != "Arshiya" {
		t.Errorf("student = %q, want Arshiya", res.Student)
	}
	if res.StudentSource != recording.SourceParticipants {
		t.Errorf("student source = %q, want participants", res.StudentSource)
	}
}

func TestParticipantEliminationSkipsCoachDomain(t *testing.T) {
	r := testResolver()

	// The assistant shares the coach email domain and must be eliminated
	// even though their name does not match the resolved coach.
	res := r.Resolve(&recording.Context{
		Topic:     "Weekly catch-up",
		HostEmail: "noor.hassan@brightpath.example",
		Participants: []recording.Participant{
			{Name: "Ops Assistant", Email: "ops@brightpath.example"},
			{Name: "Priya Sharma", Email: "priya@family.example"},
		},
	})

	if res.Student != "Priya" {
		t.Errorf("student = %q, want Priya", res.Student)
	}
}

func TestResolveFolderStage(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name        string
		folders     []string
		wantCoach   string
		wantStudent string
	}{
		{"coach prefix segment", []string{"Recordings", "Coach Jenny", "Arshiya"}, "Jenny", "Arshiya"},
		{"keyword segment", []string{"Recordings", "Noor", "Priya Sharma"}, "Noor", "Priya"},
		{"archived student skipped", []string{"Coach Jenny", "OLD_Arshiya"}, "Jenny", recording.Unknown},
		{"lowercase segment not a name", []string{"Coach Jenny", "misc recordings"}, "Jenny", recording.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(&recording.Context{Topic: "ad hoc", FolderPath: tt.folders})
			if res.Coach != tt.wantCoach {
				t.Errorf("coach = %q, want %q", res.Coach, tt.wantCoach)
			}
			if res.Student != tt.wantStudent {
				t.Errorf("student = %q, want %q", res.Student, tt.wantStudent)
			}
		})
	}
}

func TestResolveStopsAfterFirstCompletePair(t *testing.T) {
	r := testResolver()

	// Pattern resolves both names; no later stage may run, even though the
	// folder hierarchy disagrees. First complete pair wins.
	res := r.Resolve(&recording.Context{
		Topic:      "Jenny & Arshiya: Week 2",
		FolderPath: []string{"Coach Noor", "Priya"},
	})

	if res.Coach != "Jenny" || res.Student != "Arshiya" {
		t.Errorf("names = %q/%q, want Jenny/Arshiya", res.Coach, res.Student)
	}
	for _, tag := range res.MethodTrail {
		if tag == recording.SourceFolder {
			t.Errorf("method trail %v contains folder stage after pair resolved", res.MethodTrail)
		}
	}
}
