package engine

import (
	"fmt"
	"strings"

	"github.com/adaora/incilens/internal/kb"
)

// strongActives are irritants that warrant a ramp-up schedule: exfoliating
// acids, retinoids, and peroxides. Keys are normalized canonical names.
var strongActives = map[string]bool{
	"salicylicacid":   true,
	"glycolicacid":    true,
	"lacticacid":      true,
	"mandelicacid":    true,
	"retinol":         true,
	"retinal":         true,
	"adapalene":       true,
	"benzoylperoxide": true,
}

// pregnancyRisk lists ingredients that call for medical advice during
// pregnancy. Keys are normalized canonical names.
var pregnancyRisk = map[string]bool{
	"retinol":       true,
	"salicylicacid": true,
	"hydroquinone":  true,
}

// Substrings of canonical names that mark photosensitizing actives.
var photosensitizing = []string{"vitamin c", "retinol", "acid"}

// Fixed advisory copy. The rules below fire independently and in order;
// everything that matches is included.
const (
	advicePatchTest = "Patch test on your inner forearm and wait 48 hours before first full use — this formula contains ingredients that may cause irritation."
	adviceStartLow  = "Introduce this product slowly, 1-2 times per week at first — overusing strong actives can trigger post-inflammatory hyperpigmentation on melanin-rich skin."
	adviceSPF       = "Wear broad-spectrum SPF 30+ every morning while using this product — actives such as vitamin C, retinoids, and acids raise sun sensitivity, and unprotected exposure darkens existing spots."
	adviceMultiple  = "This formula combines multiple active irritants — do not layer it with other exfoliants or retinoids in the same routine."
	advicePregnancy = "Consult your doctor before use if you are pregnant or breastfeeding — this formula contains ingredients not recommended during pregnancy."
	adviceStable    = "This formula appears stable and well tolerated for most skin types."
)

// Recommendations evaluates the fixed, ordered set of advisory rules.
func Recommendations(ingredients []Ingredient, allergens, irritants []string) []string {
	var out []string

	anyCaution := false
	for _, ing := range ingredients {
		if ing.Safety == SafetyCaution {
			anyCaution = true
			break
		}
	}
	if len(irritants) > 0 || anyCaution {
		out = append(out, advicePatchTest)
	}

	for _, name := range irritants {
		if strongActives[kb.Normalize(name)] {
			out = append(out, adviceStartLow)
			break
		}
	}

	for _, ing := range ingredients {
		if hasPhotosensitizer(ing.Name) {
			out = append(out, adviceSPF)
			break
		}
	}

	if len(allergens) > 0 {
		out = append(out, fmt.Sprintf("Contains potential allergens (%s) — avoid if you have known sensitivities to these ingredients.",
			strings.Join(allergens, ", ")))
	}

	if len(irritants) > 1 {
		out = append(out, adviceMultiple)
	}

	for _, ing := range ingredients {
		if pregnancyRisk[kb.Normalize(ing.Name)] {
			out = append(out, advicePregnancy)
			break
		}
	}

	if len(out) == 0 {
		out = append(out, adviceStable)
	}
	return out
}

// IsPregnancyRisk reports whether the named ingredient belongs to the
// fixed pregnancy-risk set.
func IsPregnancyRisk(name string) bool {
	return pregnancyRisk[kb.Normalize(name)]
}

func hasPhotosensitizer(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range photosensitizing {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Summary maps the composite score to one of four fixed severity tiers.
func Summary(score int) string {
	switch {
	case score >= 85:
		return "This product has an excellent safety profile for melanin-rich skin."
	case score >= 70:
		return "This product is generally safe, with a few ingredients worth monitoring."
	case score >= 50:
		return "This product contains several ingredients of concern — review the flagged items before regular use."
	default:
		return "This product contains high-risk ingredients and is not recommended without professional guidance."
	}
}
