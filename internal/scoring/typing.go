// Package scoring assigns practice-priority scores to candidate
// problems based on the learner's history.
package scoring

const (
	// typingBaseSeconds is the fixed cost of starting to type.
	typingBaseSeconds = 0.5

	// typingPerCharSeconds is the modeled time per keyed character.
	typingPerCharSeconds = 0.2

	// typingNormalizeCeiling caps typing estimates when normalizing
	// to the [0, 1] range.
	typingNormalizeCeiling = 5.0
)

// EstimateTypingTime models the seconds needed to key in an answer,
// separating motor time from thinking time.
func EstimateTypingTime(answer string) float64 {
	return typingBaseSeconds + typingPerCharSeconds*float64(len(answer))
}

// NormalizeTypingTime maps a typing estimate to [0, 1].
func NormalizeTypingTime(estimate float64) float64 {
	n := estimate / typingNormalizeCeiling
	if n > 1 {
		return 1
	}
	if n < 0 {
		return 0
	}
	return n
}
