package problemgen

import (
	"math/rand"
	"testing"

	"github.com/abhisek/fastmath/internal/diagnosis"
	"github.com/abhisek/fastmath/internal/problem"
)

func testGenerator() *Generator {
	return NewWithRand(rand.New(rand.NewSource(1)))
}

func TestMaxValue(t *testing.T) {
	tests := []struct {
		difficulty int
		want       int
	}{
		{1, 5},
		{2, 6}, // round(5.5)
		{5, 7}, // round(7.3205)
		{10, 12},
	}
	for _, tt := range tests {
		if got := MaxValue(tt.difficulty); got != tt.want {
			t.Errorf("MaxValue(%d) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestSmartMaxValueFloor(t *testing.T) {
	if got := SmartMaxValue(1); got != 10 {
		t.Errorf("SmartMaxValue(1) = %d, want 10", got)
	}
	if got := SmartMaxValue(10); got != 12 {
		t.Errorf("SmartMaxValue(10) = %d, want 12", got)
	}
}

func TestPlainAnswersAreExact(t *testing.T) {
	g := testGenerator()
	for _, op := range problem.Operators {
		for i := 0; i < 500; i++ {
			p := g.Plain(op, 8, true)
			if p.Answer != problem.Apply(p.Op, p.A, p.B) {
				t.Fatalf("%s: answer %d does not match operands", p, p.Answer)
			}
			if op == problem.OpDiv {
				if p.B == 0 {
					t.Fatalf("%s: zero divisor", p)
				}
				if p.A%p.B != 0 {
					t.Fatalf("%s: inexact division", p)
				}
			}
		}
	}
}

func TestPlainSubtractionRespectsNegativeToggle(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 500; i++ {
		p := g.Plain(problem.OpSub, 6, false)
		if p.Answer < 0 {
			t.Fatalf("%s: negative result with negatives disabled", p)
		}
	}
}

func TestIsTrivial(t *testing.T) {
	tests := []struct {
		a    int
		op   problem.Operator
		b    int
		want bool
	}{
		{1, problem.OpMul, 7, true},
		{7, problem.OpMul, 1, true},
		{5, problem.OpAdd, 0, true},
		{0, problem.OpAdd, 5, true},
		{6, problem.OpSub, 6, true},
		{0, problem.OpSub, 6, true},
		{9, problem.OpDiv, 1, true},
		{9, problem.OpDiv, 9, true},
		{0, problem.OpDiv, 5, true},
		{6, problem.OpAdd, 7, false},
		{12, problem.OpSub, 5, false},
		{6, problem.OpMul, 7, false},
		{12, problem.OpDiv, 4, false},
	}
	for _, tt := range tests {
		if got := IsTrivial(tt.a, tt.op, tt.b, 1); got != tt.want {
			t.Errorf("IsTrivial(%d, %s, %d) = %v, want %v", tt.a, tt.op, tt.b, got, tt.want)
		}
	}
}

func TestIsTrivialSmallOperandsAtHighDifficulty(t *testing.T) {
	if !IsTrivial(2, problem.OpAdd, 2, 4) {
		t.Error("2 + 2 should be trivial above difficulty 3")
	}
	if IsTrivial(2, problem.OpAdd, 2, 3) {
		t.Error("2 + 2 should not be trivial at difficulty 3")
	}
	if IsTrivial(2, problem.OpAdd, 7, 4) {
		t.Error("2 + 7 has a large operand, not trivial")
	}
}

func TestTargetedCarrying(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 200; i++ {
		p, ok := g.Targeted(diagnosis.PatternCarrying, 50, true)
		if !ok {
			continue
		}
		if p.Op != problem.OpAdd {
			t.Fatalf("%s: want addition", p)
		}
		if p.A%10+p.B%10 < 10 {
			t.Fatalf("%s: does not require carrying", p)
		}
	}
}

func TestTargetedBorrowing(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 200; i++ {
		p, ok := g.Targeted(diagnosis.PatternBorrowing, 50, false)
		if !ok {
			continue
		}
		if p.Op != problem.OpSub {
			t.Fatalf("%s: want subtraction", p)
		}
		if p.A%10 >= p.B%10 {
			t.Fatalf("%s: does not require borrowing", p)
		}
		if p.Answer < 0 {
			t.Fatalf("%s: negative result with negatives disabled", p)
		}
	}
}

func TestTargetedTables(t *testing.T) {
	g := testGenerator()
	p, ok := g.Targeted(diagnosis.PatternTables, 20, true)
	if !ok {
		t.Fatal("tables generation should succeed at range 20")
	}
	if p.A < 2 || p.A > 12 || p.B < 2 || p.B > 12 {
		t.Errorf("%s: operands outside table range", p)
	}
}

func TestTargetedFailsBelowRange(t *testing.T) {
	g := testGenerator()
	if _, ok := g.Targeted(diagnosis.PatternCarrying, 9, true); ok {
		t.Error("carrying should not be satisfiable below 10")
	}
	if _, ok := g.Targeted(diagnosis.PatternLargeNumbers, 50, true); ok {
		t.Error("large numbers should not be satisfiable at range 50")
	}
}

func TestTargetedDivisionIsExact(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 100; i++ {
		p, ok := g.Targeted(diagnosis.PatternRemainder, 40, true)
		if !ok {
			t.Fatal("remainder targeting should succeed at range 40")
		}
		if p.B == 0 || p.A%p.B != 0 {
			t.Fatalf("%s: division must stay exact", p)
		}
	}
}

func TestEducationalAnswersAreExact(t *testing.T) {
	g := testGenerator()
	for _, op := range problem.Operators {
		for i := 0; i < 300; i++ {
			p := g.Educational(op, SmartMaxValue(6), true)
			if p.Op != op {
				t.Fatalf("%s: op changed", p)
			}
			if p.Answer != problem.Apply(p.Op, p.A, p.B) {
				t.Fatalf("%s: answer %d does not match operands", p, p.Answer)
			}
			if op == problem.OpDiv && (p.B == 0 || p.A%p.B != 0) {
				t.Fatalf("%s: inexact or zero division", p)
			}
		}
	}
}
