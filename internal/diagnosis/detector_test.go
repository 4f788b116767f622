package diagnosis

import (
	"testing"
	"time"

	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

func attempt(a int, op problem.Operator, b int, correct bool) history.AttemptRecord {
	return history.AttemptRecord{
		Num1:      a,
		Operation: op,
		Num2:      b,
		Correct:   correct,
		Timestamp: time.Now(),
	}
}

func TestDetectNeedsEnoughRecords(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 9; i++ {
		l.Append(attempt(7, problem.OpAdd, 8, false))
	}
	if got := Detect(l); got != PatternNone {
		t.Errorf("Detect with %d records = %s, want none", l.Len(), got)
	}
}

func TestDetectNeedsEnoughErrors(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 28; i++ {
		l.Append(attempt(2, problem.OpAdd, 3, true))
	}
	l.Append(attempt(7, problem.OpAdd, 8, false))
	l.Append(attempt(6, problem.OpAdd, 9, false))
	if got := Detect(l); got != PatternNone {
		t.Errorf("Detect with 2 errors = %s, want none", got)
	}
}

func TestDetectCarrying(t *testing.T) {
	l := history.NewLog(nil)
	// 27 correct plus exactly 3 carrying-type errors inside the window.
	for i := 0; i < 27; i++ {
		l.Append(attempt(2, problem.OpAdd, 3, true))
	}
	l.Append(attempt(17, problem.OpAdd, 25, false))
	l.Append(attempt(38, problem.OpAdd, 14, false))
	l.Append(attempt(29, problem.OpAdd, 13, false))

	if got := Detect(l); got != PatternCarrying {
		t.Errorf("Detect = %s, want carrying", got)
	}
}

func TestDetectBorrowing(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 20; i++ {
		l.Append(attempt(9, problem.OpSub, 4, true))
	}
	for i := 0; i < 4; i++ {
		l.Append(attempt(52, problem.OpSub, 7, false))
	}
	if got := Detect(l); got != PatternBorrowing {
		t.Errorf("Detect = %s, want borrowing", got)
	}
}

func TestDetectTables(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 15; i++ {
		l.Append(attempt(6, problem.OpAdd, 3, true))
	}
	for i := 0; i < 5; i++ {
		l.Append(attempt(6, problem.OpMul, 8, false))
	}
	if got := Detect(l); got != PatternTables {
		t.Errorf("Detect = %s, want multiplication_tables", got)
	}
}

func TestDetectZeroHandling(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 15; i++ {
		l.Append(attempt(6, problem.OpAdd, 3, true))
	}
	for i := 0; i < 4; i++ {
		l.Append(attempt(0, problem.OpMul, 25, false))
	}
	if got := Detect(l); got != PatternZeroHandling {
		t.Errorf("Detect = %s, want zero_handling", got)
	}
}

func TestDetectOnlyUsesRecentWindow(t *testing.T) {
	l := history.NewLog(nil)
	// Old carrying errors that a fresh window of successes pushes out.
	for i := 0; i < 10; i++ {
		l.Append(attempt(17, problem.OpAdd, 25, false))
	}
	for i := 0; i < 30; i++ {
		l.Append(attempt(2, problem.OpAdd, 3, true))
	}
	if got := Detect(l); got != PatternNone {
		t.Errorf("Detect = %s, want none once errors age out", got)
	}
}

func TestDetectTieBreaksByOrder(t *testing.T) {
	l := history.NewLog(nil)
	for i := 0; i < 10; i++ {
		l.Append(attempt(4, problem.OpSub, 1, true))
	}
	// Equal tallies for carrying and borrowing.
	for i := 0; i < 3; i++ {
		l.Append(attempt(17, problem.OpAdd, 25, false))
		l.Append(attempt(52, problem.OpSub, 7, false))
	}
	if got := Detect(l); got != PatternCarrying {
		t.Errorf("Detect = %s, want carrying on tie", got)
	}
}
