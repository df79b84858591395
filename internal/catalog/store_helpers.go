package catalog

import (
	"database/sql"
	"errors"
	"time"
)

const recordColumns = "id, identifier, session_type, coach, student, week_token, session_date, meeting_id, uuid, topic, overall_confidence, coach_confidence, student_confidence, week_confidence, type_confidence, coach_source, student_source, week_source, method_trail_json, needs_review, review_reason, run_id, created_at, updated_at"

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id            int64
		identifier    string
		sessionType   string
		coach         sql.NullString
		student       sql.NullString
		weekToken     sql.NullString
		sessionDate   sql.NullString
		meetingID     sql.NullString
		uuid          sql.NullString
		topic         sql.NullString
		overall       sql.NullInt64
		coachConf     sql.NullInt64
		studentConf   sql.NullInt64
		weekConf      sql.NullInt64
		typeConf      sql.NullInt64
		coachSource   sql.NullString
		studentSource sql.NullString
		weekSource    sql.NullString
		methodTrail   sql.NullString
		needsReview   sql.NullInt64
		reviewReason  sql.NullString
		runID         sql.NullString
		createdRaw    sql.NullString
		updatedRaw    sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&identifier,
		&sessionType,
		&coach,
		&student,
		&weekToken,
		&sessionDate,
		&meetingID,
		&uuid,
		&topic,
		&overall,
		&coachConf,
		&studentConf,
		&weekConf,
		&typeConf,
		&coachSource,
		&studentSource,
		&weekSource,
		&methodTrail,
		&needsReview,
		&reviewReason,
		&runID,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	rec := &Record{
		ID:                id,
		Identifier:        identifier,
		SessionType:       sessionType,
		Coach:             coach.String,
		Student:           student.String,
		WeekToken:         weekToken.String,
		SessionDate:       sessionDate.String,
		MeetingID:         meetingID.String,
		UUID:              uuid.String,
		Topic:             topic.String,
		Overall:           int(overall.Int64),
		CoachConfidence:   int(coachConf.Int64),
		StudentConfidence: int(studentConf.Int64),
		WeekConfidence:    int(weekConf.Int64),
		TypeConfidence:    int(typeConf.Int64),
		CoachSource:       coachSource.String,
		StudentSource:     studentSource.String,
		WeekSource:        weekSource.String,
		MethodTrailJSON:   methodTrail.String,
		ReviewReason:      reviewReason.String,
		RunID:             runID.String,
	}
	if needsReview.Valid {
		rec.NeedsReview = needsReview.Int64 != 0
	}

	if created, err := parseTimeString(createdRaw.String); err == nil {
		rec.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		rec.UpdatedAt = updated
	}
	return rec, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
