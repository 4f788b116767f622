package history

import (
	"github.com/abhisek/fastmath/internal/problem"
)

// Log is the in-memory ordered attempt log. Oldest records first.
// Single-writer, no locking: the session owns it exclusively.
type Log struct {
	records []AttemptRecord
}

// NewLog creates a log seeded with previously persisted records.
func NewLog(records []AttemptRecord) *Log {
	return &Log{records: records}
}

// Append adds a record to the end of the log.
func (l *Log) Append(r AttemptRecord) {
	l.records = append(l.records, r)
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// All returns the full log, oldest first. Callers must not mutate it.
func (l *Log) All() []AttemptRecord {
	return l.records
}

// LastN returns up to n most recent records, oldest first.
func (l *Log) LastN(n int) []AttemptRecord {
	if n >= len(l.records) {
		return l.records
	}
	return l.records[len(l.records)-n:]
}

// ForOperator returns all records for op, oldest first.
func (l *Log) ForOperator(op problem.Operator) []AttemptRecord {
	var out []AttemptRecord
	for _, r := range l.records {
		if r.Operation == op {
			out = append(out, r)
		}
	}
	return out
}

// LastNForOperator returns up to n most recent records for op,
// oldest first among the returned slice.
func (l *Log) LastNForOperator(op problem.Operator, n int) []AttemptRecord {
	recs := l.ForOperator(op)
	if n >= len(recs) {
		return recs
	}
	return recs[len(recs)-n:]
}

// FactHistory returns the exact-match history for a fact and, for
// commutative operators, the operand-swapped variants as similar
// history. An a==b fact has no distinct swapped variant.
func (l *Log) FactHistory(a int, op problem.Operator, b int) (exact, similar []AttemptRecord) {
	for _, r := range l.records {
		if r.Operation != op {
			continue
		}
		if r.Num1 == a && r.Num2 == b {
			exact = append(exact, r)
			continue
		}
		if op.Commutative() && r.Num1 == b && r.Num2 == a {
			similar = append(similar, r)
		}
	}
	return exact, similar
}

// RecentAnswerTexts returns the decimal answer text of the last n
// records, used to discourage rote answer repeats.
func (l *Log) RecentAnswerTexts(n int) []string {
	recent := l.LastN(n)
	out := make([]string, 0, len(recent))
	for _, r := range recent {
		out = append(out, r.Problem().AnswerText())
	}
	return out
}

// RecentOperands returns the set of operand values seen in the last n
// records, used to discourage stagnant number reuse.
func (l *Log) RecentOperands(n int) map[int]bool {
	seen := make(map[int]bool)
	for _, r := range l.LastN(n) {
		seen[r.Num1] = true
		seen[r.Num2] = true
	}
	return seen
}
