package engine

import "github.com/adaora/incilens/internal/kb"

// Compatibility ratio thresholds.
const (
	excellentRatio = 0.9
	goodRatio      = 0.7
	fairRatio      = 0.5
)

// SkinCompatibility rates the formula for each of the five fixed skin
// types. Unknown ingredients are compatible by default: they never count
// against a skin type. A zero-ingredient formula rates Excellent across
// the board (ratio 1.0).
func SkinCompatibility(ingredients []Ingredient) map[kb.SkinType]CompatRating {
	out := make(map[kb.SkinType]CompatRating, len(kb.SkinTypes))
	if len(ingredients) == 0 {
		for _, st := range kb.SkinTypes {
			out[st] = ratioRating(1)
		}
		return out
	}

	for _, st := range kb.SkinTypes {
		compatible := 0
		for _, ing := range ingredients {
			if !ing.Found || ing.Profile.SkinCompat.For(st) {
				compatible++
			}
		}
		out[st] = ratioRating(float64(compatible) / float64(len(ingredients)))
	}
	return out
}

func ratioRating(ratio float64) CompatRating {
	switch {
	case ratio >= excellentRatio:
		return CompatExcellent
	case ratio >= goodRatio:
		return CompatGood
	case ratio >= fairRatio:
		return CompatFair
	default:
		return CompatPoor
	}
}
