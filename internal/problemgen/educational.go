package problemgen

import "github.com/abhisek/fastmath/internal/problem"

// Educational generates a problem biased toward pedagogically notable
// facts: number bonds to 10/100, multiplication tables, nines,
// doubling and halving, and round-number bases.
func (g *Generator) Educational(op problem.Operator, maxVal int, allowNegative bool) problem.Problem {
	if maxVal < 1 {
		maxVal = 1
	}
	switch op {
	case problem.OpAdd:
		return g.educationalAdd(maxVal, allowNegative)
	case problem.OpSub:
		return g.educationalSub(maxVal, allowNegative)
	case problem.OpMul:
		return g.educationalMul(maxVal)
	case problem.OpDiv:
		return g.educationalDiv(maxVal)
	}
	return problem.Problem{}
}

// educationalAdd favors "make 10" and "make 100" number bonds.
func (g *Generator) educationalAdd(maxVal int, allowNegative bool) problem.Problem {
	if g.chance(0.3) && maxVal >= 10 {
		target := 10
		if g.chance(0.5) && maxVal >= 100 {
			target = 100
		}
		a := g.intn(1, min(target-1, maxVal))
		return problem.New(a, problem.OpAdd, target-a)
	}
	return g.PlainInRange(problem.OpAdd, maxVal, allowNegative)
}

// educationalSub favors subtracting from round bases (10, 20, 100).
func (g *Generator) educationalSub(maxVal int, allowNegative bool) problem.Problem {
	if g.chance(0.4) {
		var bases []int
		for _, base := range []int{10, 20, 100} {
			if maxVal >= base {
				bases = append(bases, base)
			}
		}
		if len(bases) > 0 {
			a := g.pick(bases)
			hi := a
			if allowNegative {
				hi = min(a+10, maxVal)
			}
			b := g.intn(1, hi)
			return problem.New(a, problem.OpSub, b)
		}
	}
	return g.PlainInRange(problem.OpSub, maxVal, allowNegative)
}

// educationalMul cycles between table facts, nines, and doubling.
func (g *Generator) educationalMul(maxVal int) problem.Problem {
	switch {
	case g.chance(0.6):
		// Multiplication tables.
		a := g.intn(2, min(12, max(2, maxVal)))
		b := g.intn(2, min(12, max(2, maxVal)))
		return problem.New(a, problem.OpMul, b)
	case g.chance(0.5) && maxVal >= 9:
		// Nines have a memorable digit pattern.
		factor := g.intn(2, min(max(2, maxVal/9), 12))
		return problem.New(9, problem.OpMul, factor)
	default:
		// Doubling and near-doubles.
		mult := g.pick([]int{2, 4, 8})
		if maxVal < mult*2 {
			a := g.intn(2, min(max(2, maxVal), 12))
			b := g.intn(2, min(max(2, maxVal), 12))
			return problem.New(a, problem.OpMul, b)
		}
		a := g.intn(2, maxVal/mult)
		return problem.New(a, problem.OpMul, mult)
	}
}

// educationalDiv favors single-digit divisors, halving, and round
// divisors, always dividing exactly.
func (g *Generator) educationalDiv(maxVal int) problem.Problem {
	switch {
	case g.chance(0.4) && maxVal >= 4:
		divisor := g.intn(2, min(9, maxVal))
		quotient := g.intn(2, max(2, maxVal/divisor))
		return problem.New(divisor*quotient, problem.OpDiv, divisor)
	case g.chance(0.3) && maxVal >= 4:
		// Halving.
		quotient := g.intn(2, max(2, maxVal/2))
		return problem.New(2*quotient, problem.OpDiv, 2)
	default:
		var divisors []int
		for _, d := range []int{5, 10, 25} {
			if maxVal >= d {
				divisors = append(divisors, d)
			}
		}
		if len(divisors) == 0 {
			return g.PlainInRange(problem.OpDiv, maxVal, false)
		}
		divisor := g.pick(divisors)
		quotient := g.intn(2, max(2, maxVal/divisor))
		return problem.New(divisor*quotient, problem.OpDiv, divisor)
	}
}
