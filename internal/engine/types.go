package engine

import "github.com/adaora/incilens/internal/kb"

// Safety is the per-ingredient classification. It extends kb.SafetyRating
// with "unknown", which only unmatched ingredients receive.
type Safety string

const (
	SafetySafe    Safety = Safety(kb.RatingSafe)
	SafetyCaution Safety = Safety(kb.RatingCaution)
	SafetyAvoid   Safety = Safety(kb.RatingAvoid)
	SafetyUnknown Safety = "unknown"
)

// CompatRating is the qualitative skin-type compatibility tier.
type CompatRating string

const (
	CompatExcellent CompatRating = "Excellent"
	CompatGood      CompatRating = "Good"
	CompatFair      CompatRating = "Fair"
	CompatPoor      CompatRating = "Poor"
)

// Ingredient is the result of resolving one parsed token. When the token
// matched the knowledge base, Name carries the canonical name rather than
// the raw input; allergen extraction and recommendation matching key off
// canonical names downstream.
type Ingredient struct {
	Name     string      `json:"name"`
	Found    bool        `json:"found"`
	Safety   Safety      `json:"safety"`
	Concerns []string    `json:"concerns,omitempty"`
	Profile  *kb.Profile `json:"profile,omitempty"`
}

// Result is the terminal output for one analyzed formula.
type Result struct {
	TotalIngredients  int                          `json:"total_ingredients"`
	Ingredients       []Ingredient                 `json:"ingredients"`
	SafetyScore       int                          `json:"safety_score"`
	Allergens         []string                     `json:"allergens"`
	Irritants         []string                     `json:"irritants"`
	SkinCompatibility map[kb.SkinType]CompatRating `json:"skin_type_compatibility"`
	Recommendations   []string                     `json:"recommendations"`
	Summary           string                       `json:"summary"`
	Source            string                       `json:"source,omitempty"`
}
