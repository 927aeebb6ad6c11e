package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// runRepo implements RunRepo over the pipeline_runs table.
type runRepo struct {
	db  *sql.DB
	seq sequence
}

func (r *runRepo) RecordRun(ctx context.Context, rec RunRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO pipeline_runs
		(sequence, timestamp, lesson_number, status, quality_passed, vocabulary_count,
		 mistakes_count, sentences_count, total_exercises, error_message, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, rec.Timestamp.UnixMilli(), rec.LessonNumber, rec.Status, rec.QualityPassed,
		rec.VocabularyCount, rec.MistakesCount, rec.SentencesCount, rec.TotalExercises,
		rec.ErrorMessage, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save pipeline run: %w", err)
	}
	return nil
}

func (r *runRepo) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `SELECT sequence, timestamp, lesson_number, status,
		quality_passed, vocabulary_count, mistakes_count, sentences_count, total_exercises,
		error_message, duration_ms
		FROM pipeline_runs ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pipeline runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec       RunRecord
			ts, durMs int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.LessonNumber, &rec.Status,
			&rec.QualityPassed, &rec.VocabularyCount, &rec.MistakesCount, &rec.SentencesCount,
			&rec.TotalExercises, &rec.ErrorMessage, &durMs); err != nil {
			return nil, fmt.Errorf("scan pipeline run: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		rec.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}
