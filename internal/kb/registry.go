package kb

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize lowercases s and strips every non-alphanumeric rune. It is
// total and idempotent; INCI names, common names, and user free text all
// collapse into the same key space ("Vitamin-C!" == "vitamin c").
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Registry is an immutable ingredient knowledge base with an eagerly built
// alias index. Construct it once with NewRegistry and share it freely;
// lookups are read-only and safe for concurrent use.
type Registry struct {
	byKey map[string]*Profile
	order []string // canonical keys in registration order
}

// NewRegistry builds a Registry from the given profiles. Every canonical
// name and every alias is registered under its normalized form. Two entries
// whose aliases collide after normalization are a data defect, reported as
// an error at construction time rather than resolved silently.
func NewRegistry(profiles []Profile) (*Registry, error) {
	r := &Registry{
		byKey: make(map[string]*Profile, len(profiles)*3),
		order: make([]string, 0, len(profiles)),
	}
	for i := range profiles {
		p := &profiles[i]
		key := Normalize(p.CanonicalName)
		if key == "" {
			return nil, fmt.Errorf("kb: profile %d has empty canonical name", i)
		}
		if prev, ok := r.byKey[key]; ok && prev.CanonicalName != p.CanonicalName {
			return nil, fmt.Errorf("kb: %q and %q normalize to the same key %q",
				prev.CanonicalName, p.CanonicalName, key)
		}
		r.byKey[key] = p
		r.order = append(r.order, key)

		for _, alias := range p.Aliases {
			ak := Normalize(alias)
			if ak == "" {
				continue
			}
			if prev, ok := r.byKey[ak]; ok && prev != p {
				return nil, fmt.Errorf("kb: alias %q of %q collides with %q",
					alias, p.CanonicalName, prev.CanonicalName)
			}
			r.byKey[ak] = p
		}
	}
	return r, nil
}

// MustRegistry is NewRegistry for static datasets that are validated by
// tests; it panics on a collision.
func MustRegistry(profiles []Profile) *Registry {
	r, err := NewRegistry(profiles)
	if err != nil {
		panic(err)
	}
	return r
}

// Find resolves a raw ingredient name to its profile. A miss is an expected
// outcome for free-text input, not an error.
func (r *Registry) Find(raw string) (*Profile, bool) {
	p, ok := r.byKey[Normalize(raw)]
	return p, ok
}

// Len returns the number of canonical entries.
func (r *Registry) Len() int {
	return len(r.order)
}

// Profiles returns the canonical entries in registration order.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, len(r.order))
	for i, k := range r.order {
		out[i] = r.byKey[k]
	}
	return out
}
