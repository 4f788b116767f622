package scoring

import (
	"sort"
	"time"

	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

// Spaced-repetition due-factor thresholds and multipliers.
const (
	tooSoonFactor   = 0.5
	optimalLow      = 0.8
	optimalHigh     = 1.2
	overdueFactor   = 2.0
	tooSoonPenalty  = 0.5
	optimalBoost    = 1.5
	overdueBoost    = 1.3
	repeatedPenalty = 0.7
)

// Score rates how much practice value a candidate problem has for the
// learner right now. Higher means more useful. The result is always
// positive; callers normalize across a candidate set.
func Score(log *history.Log, a int, op problem.Operator, b int, normalizedTypingTime float64, now time.Time) float64 {
	exact, similar := log.FactHistory(a, op, b)

	score := 1.0

	// Facts the learner got wrong before deserve priority; facts
	// already mastered back off, but never to zero.
	exactWrong, exactCorrect := countOutcomes(exact)
	if exactWrong > 0 {
		score += minf(0.5*float64(exactWrong), 2.0)
	}
	if exactCorrect > 0 {
		score = maxf(0.5, score-0.3*float64(exactCorrect))
	}

	// Commutative variants count at reduced weight.
	if len(similar) > 0 {
		similarWrong, similarCorrect := countOutcomes(similar)
		if similarWrong > 0 {
			score += minf(0.3*float64(similarWrong), 1.0)
		}
		if similarCorrect > 0 {
			score = maxf(0.3, score-0.2*float64(similarCorrect))
		}
	}

	// Repeating an answer string just typed is rote keying, not
	// arithmetic practice.
	answerText := problem.New(a, op, b).AnswerText()
	for _, recent := range log.RecentAnswerTexts(5) {
		if recent == answerText {
			score *= repeatedPenalty
			break
		}
	}

	score *= dueFactorMultiplier(exact, similar, now)

	// Longer answers take longer to key in; give them a small boost so
	// the extra motor time doesn't crowd out harder facts.
	score *= 1.0 + 0.3*normalizedTypingTime

	return score
}

// dueFactorMultiplier applies a simplified forgetting-curve adjustment:
// facts reviewed at the optimal interval score highest, facts seen too
// recently are suppressed.
func dueFactorMultiplier(exact, similar []history.AttemptRecord, now time.Time) float64 {
	combined := make([]history.AttemptRecord, 0, len(exact)+len(similar))
	combined = append(combined, exact...)
	combined = append(combined, similar...)
	if len(combined) == 0 {
		return 1.0
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].Timestamp.Before(combined[j].Timestamp)
	})

	latest := combined[len(combined)-1].Timestamp
	daysSince := now.Sub(latest).Hours() / 24

	correct := 0
	for _, r := range combined {
		if r.Correct {
			correct++
		}
	}
	correctRatio := float64(correct) / float64(len(combined))

	// 1-6 days depending on performance.
	optimalInterval := 1.0 + correctRatio*5.0
	dueFactor := daysSince / optimalInterval

	switch {
	case dueFactor < tooSoonFactor:
		return tooSoonPenalty
	case dueFactor > optimalLow && dueFactor < optimalHigh:
		return optimalBoost
	case dueFactor > overdueFactor:
		return overdueBoost
	}
	return 1.0
}

func countOutcomes(records []history.AttemptRecord) (wrong, correct int) {
	for _, r := range records {
		if r.Correct {
			correct++
		} else {
			wrong++
		}
	}
	return wrong, correct
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
