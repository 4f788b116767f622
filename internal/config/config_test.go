package config

import (
	"testing"

	"github.com/abhisek/fastmath/internal/problem"
)

func TestDefault(t *testing.T) {
	c := Default()
	for _, op := range problem.Operators {
		if !c.Operations[op] {
			t.Errorf("%s should be enabled by default", op.Name())
		}
		if c.Difficulty(op) != MinDifficulty {
			t.Errorf("%s difficulty = %d, want %d", op.Name(), c.Difficulty(op), MinDifficulty)
		}
	}
	if !c.AllowNegative {
		t.Error("negative results should be allowed by default")
	}
}

func TestSetDifficultyClampsToFloor(t *testing.T) {
	c := Default()
	c.SetDifficulty(problem.OpAdd, -3)
	if got := c.Difficulty(problem.OpAdd); got != MinDifficulty {
		t.Errorf("difficulty = %d, want %d", got, MinDifficulty)
	}
	c.SetDifficulty(problem.OpAdd, 12)
	if got := c.Difficulty(problem.OpAdd); got != 12 {
		t.Errorf("difficulty = %d, want 12", got)
	}
}

func TestEnabledOperations(t *testing.T) {
	c := Default()
	c.Operations[problem.OpDiv] = false
	ops := c.EnabledOperations()
	if len(ops) != 3 {
		t.Fatalf("enabled = %d ops, want 3", len(ops))
	}
	for _, op := range ops {
		if op == problem.OpDiv {
			t.Error("division should be excluded")
		}
	}
}

func TestNormalizeRepairsPartialConfig(t *testing.T) {
	c := &Config{
		Operations:   map[problem.Operator]bool{problem.OpAdd: false},
		Difficulties: map[problem.Operator]int{problem.OpMul: 0},
	}
	c.Normalize()

	// Explicit toggle survives, missing entries default to enabled.
	if c.Operations[problem.OpAdd] {
		t.Error("explicit disable should survive normalization")
	}
	if !c.Operations[problem.OpSub] {
		t.Error("missing operators should default to enabled")
	}
	for _, op := range problem.Operators {
		if c.Difficulties[op] < MinDifficulty {
			t.Errorf("%s difficulty below floor after normalize", op.Name())
		}
	}
}
