// Package history keeps the append-only log of answer attempts and the
// statistics derived from it.
package history

import (
	"time"

	"github.com/abhisek/fastmath/internal/problem"
)

// AttemptRecord is one logged answer event. Records are appended once
// per completed round and never mutated or deleted.
type AttemptRecord struct {
	Num1               int              `json:"num1"`
	Operation          problem.Operator `json:"operation"`
	Num2               int              `json:"num2"`
	Correct            bool             `json:"correct"`
	TimeTaken          float64          `json:"time_taken"`
	TypingTimeEstimate float64          `json:"typing_time_estimate"`
	Difficulty         int              `json:"difficulty"`
	Timestamp          time.Time        `json:"timestamp"`
	SessionID          string           `json:"session_id,omitempty"`
}

// Problem reconstructs the typed problem this record was an answer to.
func (r AttemptRecord) Problem() problem.Problem {
	return problem.New(r.Num1, r.Operation, r.Num2)
}
