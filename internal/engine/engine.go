// Package engine implements the local rule-based ingredient analysis:
// parsing free-text ingredient lists, resolving tokens against the
// knowledge base, and deriving safety scores, flag lists, and advice.
// Analysis is a pure function of its input text and the immutable
// registry, so concurrent calls need no synchronization.
package engine

import (
	"strings"

	"github.com/adaora/incilens/internal/kb"
)

// Fragments at or above this length are treated as garbage input
// (pasted prose, markup) and silently dropped during parsing.
const maxFragmentLen = 100

// Analyzer resolves and scores ingredient lists against a registry.
// The registry is injected at construction so tests can run against
// fixture knowledge bases.
type Analyzer struct {
	registry *kb.Registry
}

// New creates an Analyzer over the given registry.
func New(registry *kb.Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// ParseIngredients splits raw label text into ingredient-name tokens.
// Commas, semicolons, and newlines all delimit; fragments are trimmed,
// and empty or over-long fragments are dropped. Order is preserved and
// duplicates are kept.
func ParseIngredients(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || len(f) >= maxFragmentLen {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// AnalyzeIngredient resolves a single token. Matched tokens are renamed to
// their canonical form; a miss yields Safety "unknown" and is not an error.
func (a *Analyzer) AnalyzeIngredient(name string) Ingredient {
	p, ok := a.registry.Find(name)
	if !ok {
		return Ingredient{Name: name, Found: false, Safety: SafetyUnknown}
	}
	return Ingredient{
		Name:     p.CanonicalName,
		Found:    true,
		Safety:   Safety(p.SafetyRating),
		Concerns: p.Concerns,
		Profile:  p,
	}
}

// Analyze runs the full pipeline on raw label text and assembles the result.
func (a *Analyzer) Analyze(text string) Result {
	tokens := ParseIngredients(text)

	ingredients := make([]Ingredient, len(tokens))
	for i, tok := range tokens {
		ingredients[i] = a.AnalyzeIngredient(tok)
	}

	allergens := extractAllergens(ingredients)
	irritants := extractIrritants(ingredients)
	score := SafetyScore(ingredients)

	return Result{
		TotalIngredients:  len(ingredients),
		Ingredients:       ingredients,
		SafetyScore:       score,
		Allergens:         allergens,
		Irritants:         irritants,
		SkinCompatibility: SkinCompatibility(ingredients),
		Recommendations:   Recommendations(ingredients, allergens, irritants),
		Summary:           Summary(score),
	}
}

// SafetyScore derives the composite 0-100 score. The penalty scale weights
// "avoid" four times heavier than "caution"; unmatched ingredients cost a
// flat 2-point uncertainty penalty. An empty list is vacuously safe (100).
func SafetyScore(ingredients []Ingredient) int {
	score := 100
	for _, ing := range ingredients {
		if !ing.Found {
			score -= 2
			continue
		}
		score -= ing.Profile.SafetyRating.Penalty()
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// extractAllergens lists the canonical names of matched ingredients with
// allergen potential. Duplicate input tokens produce duplicate entries;
// the list mirrors the formula as submitted.
func extractAllergens(ingredients []Ingredient) []string {
	out := []string{}
	for _, ing := range ingredients {
		if ing.Found && ing.Profile.AllergenPotential {
			out = append(out, ing.Name)
		}
	}
	return out
}

func extractIrritants(ingredients []Ingredient) []string {
	out := []string{}
	for _, ing := range ingredients {
		if ing.Found && ing.Profile.IrritantPotential {
			out = append(out, ing.Name)
		}
	}
	return out
}
