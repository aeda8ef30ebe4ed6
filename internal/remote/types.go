package remote

// AnalyzeRequest is the wire request for the remote classifier.
type AnalyzeRequest struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// Ingredient mirrors one classified ingredient from the remote payload.
type Ingredient struct {
	Name     string   `json:"name"`
	Found    bool     `json:"found"`
	Safety   string   `json:"safety"`
	Concerns []string `json:"concerns,omitempty"`
}

// Result is the remote analysis payload. The remote schema is a superset
// of the local one and versions independently, so every field beyond the
// ingredient list is optional; the service layer fills defaults for
// whatever is missing.
type Result struct {
	TotalIngredients  int               `json:"total_ingredients"`
	Ingredients       []Ingredient      `json:"ingredients"`
	SafetyScore       *int              `json:"safety_score,omitempty"`
	Allergens         []string          `json:"allergens,omitempty"`
	Irritants         []string          `json:"irritants,omitempty"`
	SkinCompatibility map[string]string `json:"skin_type_compatibility,omitempty"`
	Recommendations   []string          `json:"recommendations,omitempty"`
	Summary           string            `json:"summary,omitempty"`
}
