// Package problemgen produces arithmetic problems within a
// difficulty-derived numeric range. It has three modes: plain uniform
// generation, pattern-targeted generation, and educationally weighted
// generation.
package problemgen

import (
	"math"
	"math/rand"
	"time"

	"github.com/abhisek/fastmath/internal/problem"
)

const (
	// baseValue and growthFactor control the exponential difficulty
	// scaling of the operand range.
	baseValue    = 5.0
	growthFactor = 1.1

	// smartRangeFloor is the minimum operand range used by the
	// candidate-based selection path.
	smartRangeFloor = 10
)

// Generator builds problems from a private randomness source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator with an explicit source, for tests.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// MaxValue returns the largest operand for a difficulty level:
// round(5 * 1.1^(level-1)).
func MaxValue(difficulty int) int {
	if difficulty < 1 {
		difficulty = 1
	}
	return int(math.Round(baseValue * math.Pow(growthFactor, float64(difficulty-1))))
}

// SmartMaxValue is MaxValue with the floor applied for the smart
// selection path, which needs room to construct targeted problems.
func SmartMaxValue(difficulty int) int {
	v := MaxValue(difficulty)
	if v < smartRangeFloor {
		return smartRangeFloor
	}
	return v
}

// Plain generates a uniform random problem for op within the range for
// difficulty. Division always divides exactly: the dividend is built
// from a random divisor and quotient.
func (g *Generator) Plain(op problem.Operator, difficulty int, allowNegative bool) problem.Problem {
	maxVal := MaxValue(difficulty)
	return g.PlainInRange(op, maxVal, allowNegative)
}

// PlainInRange generates a plain problem within an explicit operand
// range, used by the candidate-based selection path.
func (g *Generator) PlainInRange(op problem.Operator, maxVal int, allowNegative bool) problem.Problem {
	if maxVal < 1 {
		maxVal = 1
	}
	switch op {
	case problem.OpAdd, problem.OpMul:
		a := g.intn(1, maxVal)
		b := g.intn(1, maxVal)
		return problem.New(a, op, b)
	case problem.OpSub:
		a := g.intn(1, maxVal)
		var b int
		if allowNegative {
			b = g.intn(1, maxVal)
		} else {
			b = g.intn(1, a)
		}
		return problem.New(a, op, b)
	case problem.OpDiv:
		divisor := g.intn(1, maxVal)
		quotient := g.intn(1, maxVal)
		return problem.New(divisor*quotient, op, divisor)
	}
	return problem.Problem{}
}

// intn returns a uniform value in [lo, hi]. Degenerate ranges collapse
// to lo.
func (g *Generator) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}

// chance returns true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.rnd.Float64() < p
}

// pick returns a uniformly chosen element of vals.
func (g *Generator) pick(vals []int) int {
	return vals[g.rnd.Intn(len(vals))]
}
