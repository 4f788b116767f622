// Package selection orchestrates the generator, scorer, and pattern
// detector to pick which operation and which problem to drill next.
package selection

import (
	"time"

	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

const (
	// weightFloor and weightCap bound operation weights so no single
	// operation dominates or disappears from the rotation.
	weightFloor = 1.0
	weightCap   = 5.0

	// decayHorizonHours is how far back an attempt still contributes
	// to the time-decayed accuracy signal.
	decayHorizonHours = 24.0

	// decayScaleHours spreads the decay across difficulty levels so
	// harder material decays more slowly.
	decayScaleHours = 18.0
)

// OperationWeights returns a selection weight per operator in
// [1, 5]. Higher means the operation needs more practice. Operators
// with no history weigh 1 so every enabled operation keeps a chance.
func OperationWeights(log *history.Log, now time.Time) map[problem.Operator]float64 {
	type opStats struct {
		correctWeight float64
		attempts      int
		difficultySum int
	}
	stats := make(map[problem.Operator]*opStats)

	for _, r := range log.All() {
		st := stats[r.Operation]
		if st == nil {
			st = &opStats{}
			stats[r.Operation] = st
		}

		difficulty := r.Difficulty
		if difficulty < 1 {
			difficulty = 1
		}
		hoursSince := now.Sub(r.Timestamp).Hours()
		timeWeight := (decayHorizonHours - hoursSince) / (decayScaleHours * float64(difficulty))
		if timeWeight < 0 {
			timeWeight = 0
		}

		if r.Correct {
			st.correctWeight += timeWeight
		}
		st.attempts++
		st.difficultySum += difficulty
	}

	weights := make(map[problem.Operator]float64, len(problem.Operators))
	for _, op := range problem.Operators {
		st := stats[op]
		if st == nil || st.attempts == 0 {
			weights[op] = weightFloor
			continue
		}
		accuracy := st.correctWeight / float64(st.attempts)
		avgDifficulty := float64(st.difficultySum) / float64(st.attempts)
		w := (1.0 / (accuracy + 0.1)) * avgDifficulty
		if w < weightFloor {
			w = weightFloor
		}
		if w > weightCap {
			w = weightCap
		}
		weights[op] = w
	}
	return weights
}
