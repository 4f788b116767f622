package history

import (
	"math"
	"sort"

	"github.com/abhisek/fastmath/internal/problem"
)

// OperatorReport summarizes accuracy and response-time statistics for
// one operator over the full log.
type OperatorReport struct {
	Op         problem.Operator
	Attempts   int
	Correct    int
	Accuracy   float64 // 0-1
	AvgTime    float64
	MedianTime float64
	ModeTime   float64
	StdDevTime float64
}

// RecentSummary is the rolling accuracy/latency trend over the most
// recent records.
type RecentSummary struct {
	Attempts int
	Accuracy float64
	AvgTime  float64
}

// Reports computes per-operator summaries, omitting operators with no
// attempts, in canonical operator order.
func (l *Log) Reports() []OperatorReport {
	var out []OperatorReport
	for _, op := range problem.Operators {
		recs := l.ForOperator(op)
		if len(recs) == 0 {
			continue
		}
		times := make([]float64, 0, len(recs))
		correct := 0
		for _, r := range recs {
			times = append(times, r.TimeTaken)
			if r.Correct {
				correct++
			}
		}
		out = append(out, OperatorReport{
			Op:         op,
			Attempts:   len(recs),
			Correct:    correct,
			Accuracy:   float64(correct) / float64(len(recs)),
			AvgTime:    Mean(times),
			MedianTime: Median(times),
			ModeTime:   Mode(times),
			StdDevTime: StdDev(times),
		})
	}
	return out
}

// LongestStreak returns the longest run of consecutive correct answers
// anywhere in the log.
func (l *Log) LongestStreak() int {
	longest, current := 0, 0
	for _, r := range l.records {
		if r.Correct {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// Recent summarizes the last n records.
func (l *Log) Recent(n int) RecentSummary {
	recs := l.LastN(n)
	if len(recs) == 0 {
		return RecentSummary{}
	}
	correct := 0
	total := 0.0
	for _, r := range recs {
		if r.Correct {
			correct++
		}
		total += r.TimeTaken
	}
	return RecentSummary{
		Attempts: len(recs),
		Accuracy: float64(correct) / float64(len(recs)),
		AvgTime:  total / float64(len(recs)),
	}
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value, or 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mode returns the most frequent value; ties resolve to the value seen
// first. Returns 0 for an empty slice.
func Mode(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(values))
	best, bestCount := values[0], 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// StdDev returns the sample standard deviation, or 0 with fewer than
// two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
