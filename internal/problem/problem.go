// Package problem defines the arithmetic problem model shared by the
// generator, scorer, and session packages.
package problem

import (
	"fmt"
	"strconv"
)

// Operator identifies one of the four supported arithmetic operations.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Operators lists all operators in canonical order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Name returns the long operation name used in config and stats output.
func (op Operator) Name() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	}
	return string(op)
}

// Commutative reports whether operand order is interchangeable.
func (op Operator) Commutative() bool {
	return op == OpAdd || op == OpMul
}

// Problem is a single binary arithmetic problem. The answer is computed
// at construction time; the display string is a projection, never the
// source of truth.
type Problem struct {
	A      int
	Op     Operator
	B      int
	Answer int
}

// New builds a problem with its answer precomputed via Apply.
func New(a int, op Operator, b int) Problem {
	return Problem{A: a, Op: op, B: b, Answer: Apply(op, a, b)}
}

// Apply evaluates the operation on two operands. Division truncates;
// generators only ever construct exact divisions with a nonzero
// divisor, and a zero divisor yields 0 rather than panicking.
func Apply(op Operator, a, b int) int {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return 0
		}
		return a / b
	}
	return 0
}

// String renders the problem for display, e.g. "12 * 4".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op, p.B)
}

// AnswerText returns the decimal text the learner must type.
func (p Problem) AnswerText() string {
	return strconv.Itoa(p.Answer)
}
