package store

import (
	"context"
	"database/sql"
)

// sequence hands out the ordering number shared by LLM events, pipeline runs
// and drills, so rows from the three tables interleave in recording order.
// The single-row UPDATE ... RETURNING is atomic inside SQLite.
type sequence struct {
	db *sql.DB
}

func (s sequence) Next(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&n)
	return n, err
}
