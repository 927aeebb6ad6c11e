package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type drillRepo struct {
	db  *sql.DB
	seq sequence
}

func (r *drillRepo) RecordDrill(ctx context.Context, rec DrillRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO drill_results
		(sequence, timestamp, drill_id, lesson_number, questions, answered, correct, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, rec.Timestamp.UnixMilli(), rec.DrillID, rec.LessonNumber,
		rec.Questions, rec.Answered, rec.Correct, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save drill result: %w", err)
	}
	return nil
}

func (r *drillRepo) RecentDrills(ctx context.Context, limit int) ([]DrillRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `SELECT sequence, timestamp, drill_id, lesson_number,
		questions, answered, correct, duration_ms
		FROM drill_results ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query drill results: %w", err)
	}
	defer rows.Close()

	var out []DrillRecord
	for rows.Next() {
		var (
			rec       DrillRecord
			ts, durMs int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.DrillID, &rec.LessonNumber,
			&rec.Questions, &rec.Answered, &rec.Correct, &durMs); err != nil {
			return nil, fmt.Errorf("scan drill result: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		rec.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}
