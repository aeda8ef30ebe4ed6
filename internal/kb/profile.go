package kb

// SafetyRating is the ordinal severity class assigned to an ingredient.
type SafetyRating string

const (
	RatingSafe    SafetyRating = "safe"
	RatingCaution SafetyRating = "caution"
	RatingAvoid   SafetyRating = "avoid"
)

// Penalty returns the safety-score deduction for this rating. The scale is
// a deliberate severity weighting for melanin-rich skin: "avoid" is four
// times as punitive as "caution".
func (r SafetyRating) Penalty() int {
	switch r {
	case RatingCaution:
		return 5
	case RatingAvoid:
		return 20
	default:
		return 0
	}
}

// SkinCompat records per-skin-type suitability with fixed keys, so a typo
// in a skin-type name is a compile error rather than a silent map miss.
type SkinCompat struct {
	Oily        bool `json:"oily"`
	Combination bool `json:"combination"`
	Normal      bool `json:"normal"`
	Dry         bool `json:"dry"`
	Sensitive   bool `json:"sensitive"`
}

// SkinType identifies one of the five fixed skin-type tags.
type SkinType string

const (
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinNormal      SkinType = "normal"
	SkinDry         SkinType = "dry"
	SkinSensitive   SkinType = "sensitive"
)

// SkinTypes lists the fixed skin-type tags in presentation order.
var SkinTypes = []SkinType{SkinOily, SkinCombination, SkinNormal, SkinDry, SkinSensitive}

// For reports whether the profile is generally suitable for the given skin type.
func (c SkinCompat) For(t SkinType) bool {
	switch t {
	case SkinOily:
		return c.Oily
	case SkinCombination:
		return c.Combination
	case SkinNormal:
		return c.Normal
	case SkinDry:
		return c.Dry
	case SkinSensitive:
		return c.Sensitive
	}
	return false
}

// Profile is one canonical cosmetic ingredient in the knowledge base.
type Profile struct {
	CanonicalName     string       `json:"canonical_name"`
	Aliases           []string     `json:"aliases,omitempty"`
	Category          string       `json:"category"`
	SafetyRating      SafetyRating `json:"safety_rating"`
	ChildSafe         bool         `json:"child_safe"`
	Concerns          []string     `json:"concerns,omitempty"`
	AllergenPotential bool         `json:"allergen_potential"`
	IrritantPotential bool         `json:"irritant_potential"`
	SkinCompat        SkinCompat   `json:"skin_type_compatibility"`
	Description       string       `json:"description"`
	Benefits          string       `json:"benefits"`
	Concentration     string       `json:"concentration,omitempty"`
}
