package problemgen

import "github.com/abhisek/fastmath/internal/problem"

// IsTrivial reports whether a problem is too basic to be worth
// practice: identity operations, zero results, and, above difficulty 3,
// problems where both operands are small.
func IsTrivial(a int, op problem.Operator, b int, difficulty int) bool {
	switch op {
	case problem.OpAdd:
		if a == 0 || b == 0 {
			return true
		}
	case problem.OpSub:
		if a == b {
			return true
		}
		if a == 0 {
			return true
		}
	case problem.OpMul:
		if a == 1 || b == 1 {
			return true
		}
	case problem.OpDiv:
		if b == 1 {
			return true
		}
		if a == b && a != 0 {
			return true
		}
		if a == 0 {
			return true
		}
	}

	// Small operands stop being useful once the learner has moved on.
	if difficulty > 3 && a < 5 && b < 5 {
		return true
	}

	return false
}
