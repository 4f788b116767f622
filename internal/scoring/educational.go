package scoring

import (
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

// roundBases are the round-number subtraction bases worth drilling.
var roundBases = map[int]bool{10: true, 20: true, 50: true, 100: true, 200: true, 500: true, 1000: true}

// AdjustScore scales a candidate's base score by its educational value
// at the learner's current difficulty level.
func AdjustScore(log *history.Log, a int, op problem.Operator, b int, score float64, difficulty int) float64 {
	adjusted := score

	if isCommonPattern(a, op, b) {
		adjusted *= 1.5
	}

	larger := max(a, b)
	switch {
	case difficulty <= 3:
		// Beginners: small numbers and fundamental facts.
		if (op == problem.OpAdd || op == problem.OpSub) && larger <= 10 {
			adjusted *= 1.2
		}
		if (op == problem.OpMul || op == problem.OpDiv) && larger <= 5 {
			adjusted *= 1.2
		}
	case difficulty <= 7:
		// Intermediate: teen numbers and the table range.
		if (op == problem.OpAdd || op == problem.OpSub) && larger >= 10 && larger <= 20 {
			adjusted *= 1.2
		}
		if op == problem.OpMul && larger >= 5 && larger <= 12 {
			adjusted *= 1.2
		}
	default:
		if larger >= 20 {
			adjusted *= 1.1
		}
	}

	// Number bonds build number sense.
	if op == problem.OpAdd && (a+b == 10 || a+b == 100) {
		adjusted *= 1.3
	}

	// Encourage variety: both operands seen in the last ten rounds
	// means the numbers are going stale.
	recent := log.RecentOperands(10)
	if recent[a] && recent[b] {
		adjusted *= 0.7
	}

	return adjusted
}

// isCommonPattern reports whether the fact is one of the pedagogically
// important patterns that deserve extra practice weight.
func isCommonPattern(a int, op problem.Operator, b int) bool {
	switch op {
	case problem.OpMul:
		if a >= 2 && a <= 10 && b >= 2 && b <= 10 {
			return true
		}
		// Nines and elevens have memorable digit patterns.
		if a == 9 || a == 11 || b == 9 || b == 11 {
			return true
		}
	case problem.OpAdd:
		if a == 9 || b == 9 {
			return true
		}
		// Doubling.
		if a == b {
			return true
		}
	case problem.OpSub:
		if a%10 == 9 {
			return true
		}
		if roundBases[a] && b < 10 {
			return true
		}
	case problem.OpDiv:
		// Halving.
		if b != 0 && a == 2*b {
			return true
		}
		if a%10 == 0 && b > 1 {
			return true
		}
	}
	return false
}
