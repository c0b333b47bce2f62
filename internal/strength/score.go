package strength

import "github.com/ahmilon47/passgrade/internal/policy"

// clampScore clamps a raw score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Classify maps a clamped score to a category using the policy cut points.
// The cut points partition [0,100]: a score below Weak is Very Weak, a score
// at or above Strong is Strong.
func Classify(score int, t policy.Thresholds) Category {
	switch {
	case score < t.Weak:
		return CategoryVeryWeak
	case score < t.Fair:
		return CategoryWeak
	case score < t.Good:
		return CategoryFair
	case score < t.Strong:
		return CategoryGood
	default:
		return CategoryStrong
	}
}
