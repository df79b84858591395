package classify

import (
	"testing"

	"stencil/internal/recording"
)

func TestClassifyOrdering(t *testing.T) {
	tests := []struct {
		name     string
		ctx      recording.Context
		coach    string
		student  string
		want     recording.SessionType
	}{
		{
			name: "game plan outranks everything",
			ctx:  recording.Context{Topic: "Game Plan - Arshiya", DurationSeconds: 120},
			coach: "Jenny", student: "Arshiya",
			want: recording.SessionGamePlan,
		},
		{
			name: "sat prep keyword",
			ctx:  recording.Context{Topic: "SAT Prep with Priya"},
			coach: "Noor", student: "Priya",
			want: recording.SessionSAT,
		},
		{
			name: "sat session keyword",
			ctx:  recording.Context{Topic: "Weekly SAT Session"},
			want: recording.SessionSAT,
		},
		{
			name: "test keyword forces misc",
			ctx:  recording.Context{Topic: "Test call"},
			coach: "Jenny", student: "Arshiya",
			want: recording.SessionMISC,
		},
		{
			name: "resolved pair is coaching even when short",
			ctx:  recording.Context{Topic: "Jenny & Arshiya", DurationSeconds: 120},
			coach: "Jenny", student: "Arshiya",
			want: recording.SessionCoaching,
		},
		{
			name: "personal room with known coach",
			ctx:  recording.Context{Topic: "Noor Hassan's Personal Meeting Room"},
			coach: "Noor", student: recording.Unknown,
			want: recording.SessionCoaching,
		},
		{
			name: "short duration without names",
			ctx:  recording.Context{Topic: "Quick sync", DurationSeconds: 90},
			coach: recording.Unknown, student: recording.Unknown,
			want: recording.SessionMISC,
		},
		{
			name: "unresolved student",
			ctx:  recording.Context{Topic: "Weekly call", DurationSeconds: 1800},
			coach: "Jenny", student: recording.Unknown,
			want: recording.SessionMISC,
		},
		{
			name: "default misc",
			ctx:  recording.Context{},
			want: recording.SessionMISC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, confidence := Classify(&tt.ctx, tt.coach, tt.student)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
			if confidence <= 0 || confidence > 100 {
				t.Errorf("confidence = %d, want within (0, 100]", confidence)
			}
		})
	}
}

func TestClassifyNilContext(t *testing.T) {
	got, _ := Classify(nil, "Jenny", "Arshiya")
	if got != recording.SessionCoaching {
		t.Errorf("Classify(nil ctx) = %q, want Coaching", got)
	}
}
