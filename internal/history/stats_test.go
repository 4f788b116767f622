package history

import (
	"math"
	"testing"

	"github.com/abhisek/fastmath/internal/problem"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{nil, 0},
		{[]float64{3}, 3},
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		if got := Median(tt.values); got != tt.want {
			t.Errorf("Median(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestMode(t *testing.T) {
	got := Mode([]float64{1.5, 2.0, 1.5, 3.0})
	if got != 1.5 {
		t.Errorf("Mode = %v, want 1.5", got)
	}
	// Ties resolve to the first value seen.
	if got := Mode([]float64{2.0, 1.0}); got != 2.0 {
		t.Errorf("Mode tie = %v, want 2.0", got)
	}
}

func TestStdDev(t *testing.T) {
	if got := StdDev([]float64{5}); got != 0 {
		t.Errorf("single sample stddev = %v, want 0", got)
	}
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.138) > 0.001 {
		t.Errorf("stddev = %v, want ~2.138", got)
	}
}

func TestLongestStreak(t *testing.T) {
	l := NewLog(nil)
	outcomes := []bool{true, true, false, true, true, true, false, true}
	for _, ok := range outcomes {
		l.Append(record(2, problem.OpAdd, 3, ok, 1))
	}
	if got := l.LongestStreak(); got != 3 {
		t.Errorf("longest streak = %d, want 3", got)
	}
}

func TestReportsSkipEmptyOperators(t *testing.T) {
	l := NewLog(nil)
	l.Append(record(6, problem.OpAdd, 7, true, 2.0))
	l.Append(record(8, problem.OpAdd, 9, false, 4.0))

	reports := l.Reports()
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	rep := reports[0]
	if rep.Op != problem.OpAdd {
		t.Errorf("op = %s, want +", rep.Op)
	}
	if rep.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", rep.Accuracy)
	}
	if rep.AvgTime != 3.0 {
		t.Errorf("avg = %v, want 3.0", rep.AvgTime)
	}
}

func TestRecentSummary(t *testing.T) {
	l := NewLog(nil)
	if got := l.Recent(10); got.Attempts != 0 {
		t.Errorf("empty recent attempts = %d, want 0", got.Attempts)
	}
	for i := 0; i < 12; i++ {
		l.Append(record(i, problem.OpAdd, 1, i%2 == 0, 2.0))
	}
	got := l.Recent(10)
	if got.Attempts != 10 {
		t.Errorf("attempts = %d, want 10", got.Attempts)
	}
	if got.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got.Accuracy)
	}
}
