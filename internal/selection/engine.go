package selection

import (
	"math/rand"
	"time"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/diagnosis"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
	"github.com/abhisek/fastmath/internal/problemgen"
	"github.com/abhisek/fastmath/internal/scoring"
)

const (
	// maxCandidates is the candidate pool size per round.
	maxCandidates = 25

	// fillAttempts bounds the generation loop.
	fillAttempts = 50

	// minCandidates is the pool size below which selection falls back
	// to a single plain draw.
	minCandidates = 5

	// targetPatternChance is the probability of targeting a detected
	// error pattern this round.
	targetPatternChance = 0.7

	// educationalFocusChance is the probability that a round's filler
	// candidates favor educationally weighted generation.
	educationalFocusChance = 0.25

	// targetedScoreBoost lifts targeted candidates in the ranking.
	targetedScoreBoost = 1.5
)

// Candidate is a generated, not-yet-selected problem with its score.
type Candidate struct {
	Problem problem.Problem
	Score   float64
}

// Engine picks operations and problems for a session.
type Engine struct {
	log *history.Log
	gen *problemgen.Generator
	rnd *rand.Rand
	now func() time.Time
}

// NewEngine creates an engine reading from the given attempt log.
func NewEngine(log *history.Log) *Engine {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		log: log,
		gen: problemgen.NewWithRand(rnd),
		rnd: rnd,
		now: time.Now,
	}
}

// NewEngineWithRand creates a deterministic engine for tests.
func NewEngineWithRand(log *history.Log, rnd *rand.Rand, now func() time.Time) *Engine {
	return &Engine{
		log: log,
		gen: problemgen.NewWithRand(rnd),
		rnd: rnd,
		now: now,
	}
}

// PickOperation draws an enabled operation, weighted by how much each
// one needs practice.
func (e *Engine) PickOperation(cfg *config.Config) problem.Operator {
	ops := cfg.EnabledOperations()
	if len(ops) == 0 {
		return problem.OpAdd
	}
	if len(ops) == 1 {
		return ops[0]
	}

	weights := OperationWeights(e.log, e.now())
	total := 0.0
	for _, op := range ops {
		total += weights[op]
	}

	r := e.rnd.Float64() * total
	acc := 0.0
	for _, op := range ops {
		acc += weights[op]
		if r <= acc {
			return op
		}
	}
	return ops[len(ops)-1]
}

// PickProblem generates a candidate pool for op at the given
// difficulty, scores each candidate against the learner's history, and
// draws one proportionally to its score. With too few usable
// candidates it falls back to a plain draw.
func (e *Engine) PickProblem(op problem.Operator, difficulty int, allowNegative bool) problem.Problem {
	maxVal := problemgen.MaxValue(difficulty)
	now := e.now()

	var candidates []Candidate

	// Target a detected weakness most of the time.
	pattern := diagnosis.Detect(e.log)
	if pattern != diagnosis.PatternNone && e.rnd.Float64() < targetPatternChance {
		targetRange := problemgen.SmartMaxValue(difficulty)
		for i := 0; i < maxCandidates; i++ {
			p, ok := e.gen.Targeted(pattern, targetRange, allowNegative)
			if !ok {
				break
			}
			if problemgen.IsTrivial(p.A, p.Op, p.B, difficulty) {
				continue
			}
			score := e.scoreCandidate(p, difficulty, now) * targetedScoreBoost
			candidates = append(candidates, Candidate{Problem: p, Score: score})
		}
	}

	// Fill the rest of the pool with plain or educational candidates.
	educationalFocus := e.rnd.Float64() < educationalFocusChance
	for attempts := 0; len(candidates) < maxCandidates && attempts < fillAttempts; attempts++ {
		var p problem.Problem
		if educationalFocus {
			p = e.gen.Educational(op, maxVal, allowNegative)
		} else {
			p = e.gen.PlainInRange(op, maxVal, allowNegative)
		}

		// Swap commutative operands half the time so both orderings
		// get practiced.
		if p.Op.Commutative() && e.rnd.Float64() < 0.5 {
			p = problem.New(p.B, p.Op, p.A)
		}

		if problemgen.IsTrivial(p.A, p.Op, p.B, difficulty) {
			continue
		}
		candidates = append(candidates, Candidate{Problem: p, Score: e.scoreCandidate(p, difficulty, now)})
	}

	if len(candidates) < minCandidates {
		return e.plainFallback(op, difficulty, allowNegative)
	}

	return e.drawWeighted(candidates)
}

// scoreCandidate runs the history scorer and the educational-value
// adjustment for one candidate.
func (e *Engine) scoreCandidate(p problem.Problem, difficulty int, now time.Time) float64 {
	norm := scoring.NormalizeTypingTime(scoring.EstimateTypingTime(p.AnswerText()))
	score := scoring.Score(e.log, p.A, p.Op, p.B, norm, now)
	return scoring.AdjustScore(e.log, p.A, p.Op, p.B, score, difficulty)
}

// plainFallback draws plainly, retrying a bounded number of times to
// avoid trivial problems.
func (e *Engine) plainFallback(op problem.Operator, difficulty int, allowNegative bool) problem.Problem {
	var p problem.Problem
	for i := 0; i < fillAttempts; i++ {
		p = e.gen.Plain(op, difficulty, allowNegative)
		if !problemgen.IsTrivial(p.A, p.Op, p.B, difficulty) {
			return p
		}
	}
	return p
}

// drawWeighted selects a candidate with probability proportional to
// its score. A zero total falls back to the first candidate.
func (e *Engine) drawWeighted(candidates []Candidate) problem.Problem {
	total := 0.0
	for _, c := range candidates {
		total += c.Score
	}
	if total <= 0 {
		return candidates[0].Problem
	}

	r := e.rnd.Float64() * total
	acc := 0.0
	for _, c := range candidates {
		acc += c.Score
		if r <= acc {
			return c.Problem
		}
	}
	return candidates[len(candidates)-1].Problem
}
