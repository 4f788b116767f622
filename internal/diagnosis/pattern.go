// Package diagnosis detects recurring error patterns in the learner's
// recent mistakes so the generator can target them.
package diagnosis

// ErrorPattern names a recurring category of mistakes.
type ErrorPattern string

const (
	PatternCarrying      ErrorPattern = "carrying"
	PatternBorrowing     ErrorPattern = "borrowing"
	PatternTables        ErrorPattern = "multiplication_tables"
	PatternRemainder     ErrorPattern = "division_remainder"
	PatternLargeNumbers  ErrorPattern = "large_numbers"
	PatternZeroHandling  ErrorPattern = "zero_handling"
	PatternNone          ErrorPattern = "none"
)

// patternOrder fixes the tie-break order: the first pattern with the
// maximum tally wins.
var patternOrder = []ErrorPattern{
	PatternCarrying,
	PatternBorrowing,
	PatternTables,
	PatternRemainder,
	PatternLargeNumbers,
	PatternZeroHandling,
}
