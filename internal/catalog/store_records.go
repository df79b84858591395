package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Save inserts a new record and returns the stored row.
func (s *Store) Save(ctx context.Context, rec *Record) (*Record, error) {
	if rec == nil {
		return nil, errors.New("record is nil")
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO records (
            identifier, session_type, coach, student, week_token,
            session_date, meeting_id, uuid, topic,
            overall_confidence, coach_confidence, student_confidence, week_confidence, type_confidence,
            coach_source, student_source, week_source, method_trail_json,
            needs_review, review_reason, run_id, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Identifier,
		rec.SessionType,
		nullableString(rec.Coach),
		nullableString(rec.Student),
		nullableString(rec.WeekToken),
		nullableString(rec.SessionDate),
		nullableString(rec.MeetingID),
		nullableString(rec.UUID),
		nullableString(rec.Topic),
		rec.Overall,
		rec.CoachConfidence,
		rec.StudentConfidence,
		rec.WeekConfidence,
		rec.TypeConfidence,
		nullableString(rec.CoachSource),
		nullableString(rec.StudentSource),
		nullableString(rec.WeekSource),
		nullableString(rec.MethodTrailJSON),
		boolToInt(rec.NeedsReview),
		nullableString(rec.ReviewReason),
		nullableString(rec.RunID),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Update persists changes to an existing record.
func (s *Store) Update(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("record is nil")
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE records
         SET identifier = ?, session_type = ?, coach = ?, student = ?, week_token = ?,
             session_date = ?, meeting_id = ?, uuid = ?, topic = ?,
             overall_confidence = ?, coach_confidence = ?, student_confidence = ?,
             week_confidence = ?, type_confidence = ?,
             coach_source = ?, student_source = ?, week_source = ?, method_trail_json = ?,
             needs_review = ?, review_reason = ?, run_id = ?, updated_at = ?
         WHERE id = ?`,
		rec.Identifier,
		rec.SessionType,
		nullableString(rec.Coach),
		nullableString(rec.Student),
		nullableString(rec.WeekToken),
		nullableString(rec.SessionDate),
		nullableString(rec.MeetingID),
		nullableString(rec.UUID),
		nullableString(rec.Topic),
		rec.Overall,
		rec.CoachConfidence,
		rec.StudentConfidence,
		rec.WeekConfidence,
		rec.TypeConfidence,
		nullableString(rec.CoachSource),
		nullableString(rec.StudentSource),
		nullableString(rec.WeekSource),
		nullableString(rec.MethodTrailJSON),
		boolToInt(rec.NeedsReview),
		nullableString(rec.ReviewReason),
		nullableString(rec.RunID),
		rec.UpdatedAt.Format(time.RFC3339Nano),
		rec.ID,
	); err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// GetByID fetches a record by row id. A nil record means no match.
func (s *Store) GetByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// FindByIdentifier returns the first record matching a canonical identifier.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+recordColumns+` FROM records WHERE identifier = ? ORDER BY id LIMIT 1`,
		identifier,
	)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by identifier: %w", err)
	}
	return rec, nil
}

// List returns all records ordered by creation time.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListNeedsReview returns records flagged for manual review.
func (s *Store) ListNeedsReview(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records WHERE needs_review = 1 ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list review records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListByRun returns records produced by a specific batch run.
func (s *Store) ListByRun(ctx context.Context, runID string) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records WHERE run_id = ? ORDER BY created_at, id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// MarkReviewed clears the review flag on a record.
func (s *Store) MarkReviewed(ctx context.Context, id int64) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.execWithoutResultRetry(
		ctx,
		`UPDATE records SET needs_review = 0, review_reason = NULL, updated_at = ? WHERE id = ?`,
		timestamp,
		id,
	); err != nil {
		return fmt.Errorf("mark reviewed: %w", err)
	}
	return nil
}

// Remove deletes a record and reports whether a row was removed.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("remove record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear deletes all records and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM records`)
	if err != nil {
		return 0, fmt.Errorf("clear records: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// Health reports aggregate catalog counts.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	var summary HealthSummary
	row := s.db.QueryRowContext(ctx, `
        SELECT
            COUNT(1),
            COALESCE(SUM(CASE WHEN needs_review = 1 THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN coach IS NULL OR coach = 'Unknown' THEN 1 ELSE 0 END), 0),
            COALESCE(SUM(CASE WHEN student IS NULL OR student = 'Unknown' THEN 1 ELSE 0 END), 0)
        FROM records`)
	if err := row.Scan(&summary.Total, &summary.NeedsReview, &summary.UnknownCoach, &summary.UnknownStudent); err != nil {
		return HealthSummary{}, fmt.Errorf("catalog health: %w", err)
	}
	return summary, nil
}

func collectRecords(rows *sql.Rows) ([]*Record, error) {
	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
