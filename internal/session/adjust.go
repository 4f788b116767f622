package session

import (
	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

const (
	// adjustWindow is how many recent attempts per operation feed the
	// difficulty decision.
	adjustWindow = 20

	// raiseAccuracy and raiseZ gate a difficulty increase: accuracy
	// above the threshold and a response time at least half a standard
	// deviation faster than the window mean.
	raiseAccuracy = 0.75
	raiseZ       = -0.5

	// lowerAccuracy and lowerZ trigger a decrease on either signal.
	lowerAccuracy = 0.6
	lowerZ        = 0.5
)

// adjustDifficulty recomputes the operation's difficulty from its last
// attempts, including the one just logged. Returns the change made, or
// nil when the level stays put.
func adjustDifficulty(log *history.Log, cfg *config.Config, op problem.Operator, timeTaken float64) *DifficultyChange {
	recent := log.LastNForOperator(op, adjustWindow)
	if len(recent) == 0 {
		return nil
	}

	correct := 0
	times := make([]float64, 0, len(recent))
	for _, r := range recent {
		if r.Correct {
			correct++
		}
		times = append(times, r.TimeTaken)
	}
	accuracy := float64(correct) / float64(len(recent))

	// A z-score of this round's time against the recent window. With
	// fewer than two samples, or no spread, there is no signal.
	z := 0.0
	if len(times) > 1 {
		if sd := history.StdDev(times); sd > 0 {
			z = (timeTaken - history.Mean(times)) / sd
		}
	}

	from := cfg.Difficulty(op)
	to := from
	switch {
	case accuracy > raiseAccuracy && z <= raiseZ:
		to = from + 1
	case accuracy < lowerAccuracy || z >= lowerZ:
		to = from - 1
		if to < config.MinDifficulty {
			to = config.MinDifficulty
		}
	}

	if to == from {
		return nil
	}
	cfg.SetDifficulty(op, to)
	return &DifficultyChange{Operation: op, From: from, To: to}
}
