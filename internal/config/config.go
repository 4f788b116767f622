// Package config holds the learner-adjustable settings: which
// operations are drilled, the per-operation difficulty level, and
// whether subtraction may produce negative results.
package config

import "github.com/abhisek/fastmath/internal/problem"

// MinDifficulty is the floor for every operation's difficulty level.
const MinDifficulty = 1

// Config is the process-wide configuration. It is owned by a single
// session and mutated by the difficulty adjuster and the settings UI.
type Config struct {
	Operations    map[problem.Operator]bool `json:"operations"`
	Difficulties  map[problem.Operator]int  `json:"difficulties"`
	AllowNegative bool                      `json:"allow_negative"`
}

// Default returns the documented default configuration: all operations
// enabled, all difficulties at the minimum, negative results allowed.
func Default() *Config {
	ops := make(map[problem.Operator]bool, len(problem.Operators))
	diffs := make(map[problem.Operator]int, len(problem.Operators))
	for _, op := range problem.Operators {
		ops[op] = true
		diffs[op] = MinDifficulty
	}
	return &Config{
		Operations:    ops,
		Difficulties:  diffs,
		AllowNegative: true,
	}
}

// EnabledOperations returns the enabled operators in canonical order.
func (c *Config) EnabledOperations() []problem.Operator {
	var ops []problem.Operator
	for _, op := range problem.Operators {
		if c.Operations[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

// Difficulty returns the difficulty level for op, never below the floor.
func (c *Config) Difficulty(op problem.Operator) int {
	d := c.Difficulties[op]
	if d < MinDifficulty {
		return MinDifficulty
	}
	return d
}

// SetDifficulty sets the difficulty level for op, clamped to the floor.
func (c *Config) SetDifficulty(op problem.Operator, level int) {
	if level < MinDifficulty {
		level = MinDifficulty
	}
	c.Difficulties[op] = level
}

// Normalize repairs a configuration loaded from storage: missing
// operators are filled in from defaults and difficulties are clamped.
func (c *Config) Normalize() {
	if c.Operations == nil {
		c.Operations = make(map[problem.Operator]bool, len(problem.Operators))
	}
	if c.Difficulties == nil {
		c.Difficulties = make(map[problem.Operator]int, len(problem.Operators))
	}
	for _, op := range problem.Operators {
		if _, ok := c.Operations[op]; !ok {
			c.Operations[op] = true
		}
		if c.Difficulties[op] < MinDifficulty {
			c.Difficulties[op] = MinDifficulty
		}
	}
}
