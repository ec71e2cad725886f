package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// attemptRepo implements AttemptRepo with raw SQL.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, rec AttemptRecord) error {
	if rec.ID == "" {
		return errors.New("save attempt: missing id")
	}

	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, started_at, finished_at, score, total, answers)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UnixMilli(),
		rec.FinishedAt.UnixMilli(),
		rec.Score,
		rec.Total,
		string(answers),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	query := `SELECT seq, id, started_at, finished_at, score, total, answers
		FROM attempts ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var (
			rec                 AttemptRecord
			startedMs, finishMs int64
			answers             string
		)
		if err := rows.Scan(&rec.Sequence, &rec.ID, &startedMs, &finishMs, &rec.Score, &rec.Total, &answers); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.StartedAt = time.UnixMilli(startedMs)
		rec.FinishedAt = time.UnixMilli(finishMs)
		if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return records, nil
}

func (r *attemptRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attempts`)
	if err != nil {
		return 0, fmt.Errorf("clear attempts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear attempts: %w", err)
	}
	return n, nil
}
