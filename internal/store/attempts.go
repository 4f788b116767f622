package store

import (
	"context"
	"time"

	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

// AppendAttempt inserts one attempt row. Attempts are append-only.
func (s *Store) AppendAttempt(r history.AttemptRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO attempts (num1, operation, num2, correct, time_taken, typing_time_estimate, difficulty, timestamp, session_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Num1,
		string(r.Operation),
		r.Num2,
		boolToInt(r.Correct),
		r.TimeTaken,
		r.TypingTimeEstimate,
		r.Difficulty,
		r.Timestamp.Format(time.RFC3339Nano),
		r.SessionID,
	)
	return err
}

// LoadHistory reads all attempts in insertion order. Rows with an
// unparseable timestamp are skipped rather than failing the load.
func (s *Store) LoadHistory(ctx context.Context) ([]history.AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT num1, operation, num2, correct, time_taken, typing_time_estimate, difficulty, timestamp, session_id
		 FROM attempts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []history.AttemptRecord
	for rows.Next() {
		var (
			r       history.AttemptRecord
			op      string
			correct int
			ts      string
		)
		if err := rows.Scan(&r.Num1, &op, &r.Num2, &correct, &r.TimeTaken, &r.TypingTimeEstimate, &r.Difficulty, &ts, &r.SessionID); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		r.Operation = problem.Operator(op)
		r.Correct = correct != 0
		r.Timestamp = parsed
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountAttempts returns the total number of stored attempts.
func (s *Store) CountAttempts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attempts`).Scan(&n)
	return n, err
}

// Reset deletes all attempts and the stored config.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM config`)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
