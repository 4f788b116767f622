package problemgen

import (
	"github.com/abhisek/fastmath/internal/diagnosis"
	"github.com/abhisek/fastmath/internal/problem"
)

// targetedAttempts bounds rejection sampling when constructing a
// problem that must satisfy a pattern condition.
const targetedAttempts = 32

// Targeted generates a problem that exhibits the given error pattern
// within [1, maxVal]. The second return is false when the pattern
// cannot be satisfied at the current range; callers fall back to plain
// generation.
func (g *Generator) Targeted(pattern diagnosis.ErrorPattern, maxVal int, allowNegative bool) (problem.Problem, bool) {
	switch pattern {
	case diagnosis.PatternCarrying:
		return g.targetedCarrying(maxVal)
	case diagnosis.PatternBorrowing:
		return g.targetedBorrowing(maxVal, allowNegative)
	case diagnosis.PatternTables:
		return g.targetedTables(maxVal)
	case diagnosis.PatternRemainder:
		return g.targetedRemainder(maxVal)
	case diagnosis.PatternLargeNumbers:
		return g.targetedLargeNumbers(maxVal, allowNegative)
	case diagnosis.PatternZeroHandling:
		return g.targetedZero(maxVal, allowNegative)
	}
	return problem.Problem{}, false
}

// targetedCarrying builds an addition whose ones digits sum to 10 or
// more.
func (g *Generator) targetedCarrying(maxVal int) (problem.Problem, bool) {
	if maxVal < 10 {
		return problem.Problem{}, false
	}
	hi1 := min(maxVal, 90)
	hi2 := min(maxVal, 99)
	for i := 0; i < targetedAttempts; i++ {
		a := g.intn(1, hi1)
		b := g.intn(1, hi2)
		if a%10+b%10 >= 10 {
			return problem.New(a, problem.OpAdd, b), true
		}
	}
	return problem.Problem{}, false
}

// targetedBorrowing builds a subtraction whose ones digit of the
// minuend is smaller than that of the subtrahend.
func (g *Generator) targetedBorrowing(maxVal int, allowNegative bool) (problem.Problem, bool) {
	if maxVal < 10 {
		return problem.Problem{}, false
	}
	hi := min(maxVal, 99)
	for i := 0; i < targetedAttempts; i++ {
		a := g.intn(10, hi)
		var b int
		if allowNegative {
			b = g.intn(1, hi)
		} else {
			b = g.intn(1, a)
		}
		if a%10 < b%10 {
			return problem.New(a, problem.OpSub, b), true
		}
	}
	return problem.Problem{}, false
}

func (g *Generator) targetedTables(maxVal int) (problem.Problem, bool) {
	if maxVal < 2 {
		return problem.Problem{}, false
	}
	hi := min(maxVal, 12)
	a := g.intn(2, hi)
	b := g.intn(2, hi)
	return problem.New(a, problem.OpMul, b), true
}

// targetedRemainder practices division with small numbers. Remainders
// are not supported, so the construction stays exact.
func (g *Generator) targetedRemainder(maxVal int) (problem.Problem, bool) {
	if maxVal < 4 {
		return problem.Problem{}, false
	}
	divisor := g.intn(2, min(maxVal, 12))
	quotient := g.intn(1, max(1, maxVal/divisor))
	return problem.New(divisor*quotient, problem.OpDiv, divisor), true
}

func (g *Generator) targetedLargeNumbers(maxVal int, allowNegative bool) (problem.Problem, bool) {
	scale := min(maxVal/10, 100)
	if scale < 10 {
		return problem.Problem{}, false
	}
	a := g.intn(scale, min(maxVal, scale*10))
	b := g.intn(1, min(maxVal, 20))

	ops := []problem.Operator{problem.OpAdd, problem.OpSub, problem.OpMul}
	op := ops[g.rnd.Intn(len(ops))]
	switch op {
	case problem.OpSub:
		if b > a && !allowNegative {
			a, b = b, a
		}
	case problem.OpMul:
		if a*b > maxVal {
			a = max(1, maxVal/b)
		}
	}
	return problem.New(a, op, b), true
}

func (g *Generator) targetedZero(maxVal int, allowNegative bool) (problem.Problem, bool) {
	ops := []problem.Operator{problem.OpAdd, problem.OpSub, problem.OpMul}
	op := ops[g.rnd.Intn(len(ops))]

	a, b := 0, g.intn(1, maxVal)
	if g.chance(0.5) {
		a, b = b, a
	}
	if op == problem.OpSub && b > a && !allowNegative {
		a, b = b, a
	}
	return problem.New(a, op, b), true
}
