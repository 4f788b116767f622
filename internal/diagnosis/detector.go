package diagnosis

import (
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

const (
	// recentWindow is how many records back the detector looks.
	recentWindow = 30

	// minTotalRecords is the minimum log size before detection runs.
	minTotalRecords = 10

	// minErrors is the minimum number of recent mistakes required.
	minErrors = 3

	// dominanceRatio is the share of recent errors the winning pattern
	// must account for.
	dominanceRatio = 0.2
)

// Detect scans the most recent attempts for a dominant error pattern.
// Returns PatternNone when there is not enough data or no category
// accounts for at least 20% of the recent mistakes.
func Detect(log *history.Log) ErrorPattern {
	if log.Len() < minTotalRecords {
		return PatternNone
	}

	var errs []history.AttemptRecord
	for _, r := range log.LastN(recentWindow) {
		if !r.Correct {
			errs = append(errs, r)
		}
	}
	if len(errs) < minErrors {
		return PatternNone
	}

	tally := make(map[ErrorPattern]int)
	for _, r := range errs {
		for _, p := range classify(r) {
			tally[p]++
		}
	}

	best := PatternNone
	bestCount := 0
	for _, p := range patternOrder {
		if tally[p] > bestCount {
			best, bestCount = p, tally[p]
		}
	}

	if float64(bestCount) >= float64(len(errs))*dominanceRatio {
		return best
	}
	return PatternNone
}

// classify returns every pattern a single wrong answer exhibits.
// A record can count toward more than one category.
func classify(r history.AttemptRecord) []ErrorPattern {
	var out []ErrorPattern

	switch r.Operation {
	case problem.OpAdd:
		if r.Num1%10+r.Num2%10 >= 10 {
			out = append(out, PatternCarrying)
		}
	case problem.OpSub:
		if r.Num1%10 < r.Num2%10 {
			out = append(out, PatternBorrowing)
		}
	case problem.OpMul:
		if r.Num1 >= 1 && r.Num1 <= 12 && r.Num2 >= 1 && r.Num2 <= 12 {
			out = append(out, PatternTables)
		}
	case problem.OpDiv:
		// Unreachable with the exact-division generator; kept so the
		// category triggers if remainders are ever introduced.
		if r.Num2 != 0 && r.Num1%r.Num2 != 0 {
			out = append(out, PatternRemainder)
		}
	}

	if r.Num1 > 100 || r.Num2 > 100 {
		out = append(out, PatternLargeNumbers)
	}
	if r.Num1 == 0 || r.Num2 == 0 {
		out = append(out, PatternZeroHandling)
	}
	return out
}
