package profile

import "github.com/adaora/incilens/internal/kb"

// SkinProfile is the structured view of the user's stored skin profile.
// All fields are optional; a zero-value profile disables every
// profile-aware advisory.
type SkinProfile struct {
	SkinType       kb.SkinType `json:"skin_type,omitempty"`
	ChildMode      bool        `json:"child_mode"`
	Pregnant       bool        `json:"pregnant"`
	KnownAllergies []string    `json:"known_allergies,omitempty"`
}

// Storage keys for the skin_profile table.
const (
	keySkinType       = "skin_type"
	keyChildMode      = "child_mode"
	keyPregnant       = "pregnant"
	keyKnownAllergies = "known_allergies"
)

// ValidSkinType reports whether s names one of the five fixed skin types.
func ValidSkinType(s string) bool {
	for _, st := range kb.SkinTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}
