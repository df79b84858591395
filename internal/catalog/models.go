package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"stencil/internal/recording"
)

// Record is a resolved recording persisted in SQLite.
type Record struct {
	ID                int64
	Identifier        string
	SessionType       string
	Coach             string
	Student           string
	WeekToken         string
	SessionDate       string
	MeetingID         string
	UUID              string
	Topic             string
	Overall           int
	CoachConfidence   int
	StudentConfidence int
	WeekConfidence    int
	TypeConfidence    int
	CoachSource       string
	StudentSource     string
	WeekSource        string
	MethodTrailJSON   string
	NeedsReview       bool
	ReviewReason      string
	RunID             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewRecord builds a catalog record from a resolution outcome.
func NewRecord(identifier string, res *recording.Resolution, rc *recording.Context, runID string) (*Record, error) {
	if res == nil {
		return nil, fmt.Errorf("resolution is nil")
	}
	rec := &Record{
		Identifier:        identifier,
		SessionType:       string(res.SessionType),
		Coach:             res.Coach,
		Student:           res.Student,
		WeekToken:         res.Week.Token(),
		Overall:           res.Overall,
		CoachConfidence:   res.Confidence.Coach,
		StudentConfidence: res.Confidence.Student,
		WeekConfidence:    res.Confidence.Week,
		TypeConfidence:    res.Confidence.SessionType,
		CoachSource:       res.CoachSource,
		StudentSource:     res.StudentSource,
		WeekSource:        res.WeekSource,
		RunID:             runID,
	}
	if rc != nil {
		rec.SessionDate = rc.Timestamp
		rec.MeetingID = rc.MeetingID
		rec.UUID = rc.UUID
		rec.Topic = rc.Topic
	}
	if err := rec.SetMethodTrail(res.MethodTrail); err != nil {
		return nil, err
	}
	return rec, nil
}

// MethodTrail decodes the stored stage trail.
func (r *Record) MethodTrail() []string {
	if r == nil || r.MethodTrailJSON == "" {
		return nil
	}
	var trail []string
	if err := json.Unmarshal([]byte(r.MethodTrailJSON), &trail); err != nil {
		return nil
	}
	return trail
}

// SetMethodTrail encodes the stage trail for storage.
func (r *Record) SetMethodTrail(trail []string) error {
	if len(trail) == 0 {
		r.MethodTrailJSON = ""
		return nil
	}
	data, err := json.Marshal(trail)
	if err != nil {
		return fmt.Errorf("marshal method trail: %w", err)
	}
	r.MethodTrailJSON = string(data)
	return nil
}

// HealthSummary describes aggregated catalog counts.
type HealthSummary struct {
	Total          int
	NeedsReview    int
	UnknownCoach   int
	UnknownStudent int
}
