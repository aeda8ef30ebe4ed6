package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/adaora/incilens/internal/kb"
)

// ProfileStore defines the storage operations the Manager needs.
// Implemented by storage.Store.
type ProfileStore interface {
	SetProfileKey(key, value string) error
	GetProfileKey(key string) (string, error)
	GetAllProfileKeys() (map[string]string, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Manager provides cached, structured access to the skin profile stored in SQLite.
type Manager struct {
	store ProfileStore
	clock Clock
	ttl   time.Duration

	mu       sync.RWMutex
	cached   *SkinProfile
	cachedAt time.Time
}

// NewManager creates a Manager with a 60-second cache TTL.
func NewManager(store ProfileStore) *Manager {
	return &Manager{
		store: store,
		clock: realClock{},
		ttl:   60 * time.Second,
	}
}

// NewManagerWithClock creates a Manager with a custom clock (for testing).
func NewManagerWithClock(store ProfileStore, clock Clock, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		clock: clock,
		ttl:   ttl,
	}
}

// Get reads all profile keys from storage (or cache) and assembles a
// structured SkinProfile. Returns a zero-value profile on empty store.
func (m *Manager) Get() (SkinProfile, error) {
	m.mu.RLock()
	if m.cached != nil && m.clock.Now().Before(m.cachedAt.Add(m.ttl)) {
		p := *m.cached
		p.KnownAllergies = append([]string(nil), m.cached.KnownAllergies...)
		m.mu.RUnlock()
		return p, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock.
	if m.cached != nil && m.clock.Now().Before(m.cachedAt.Add(m.ttl)) {
		p := *m.cached
		p.KnownAllergies = append([]string(nil), m.cached.KnownAllergies...)
		return p, nil
	}

	keys, err := m.store.GetAllProfileKeys()
	if err != nil {
		return SkinProfile{}, fmt.Errorf("loading profile keys: %w", err)
	}

	p := buildProfile(keys)
	m.cached = &p
	m.cachedAt = m.clock.Now()

	out := p
	out.KnownAllergies = append([]string(nil), p.KnownAllergies...)
	return out, nil
}

// SetField validates and persists a profile key, then invalidates the cache.
func (m *Manager) SetField(key, value string) error {
	switch key {
	case keySkinType:
		if !ValidSkinType(value) {
			return fmt.Errorf("invalid skin type %q (valid: oily, combination, normal, dry, sensitive)", value)
		}
	case keyChildMode, keyPregnant:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
	case keyKnownAllergies:
		var list []string
		if err := json.Unmarshal([]byte(value), &list); err != nil {
			// Accept a comma-separated list and store it canonically as JSON.
			parts := strings.Split(value, ",")
			list = list[:0]
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					list = append(list, p)
				}
			}
			b, err := json.Marshal(list)
			if err != nil {
				return fmt.Errorf("marshalling allergies: %w", err)
			}
			value = string(b)
		}
	default:
		return fmt.Errorf("unknown profile key %q", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetProfileKey(key, value); err != nil {
		return fmt.Errorf("setting profile key %q: %w", key, err)
	}

	m.cached = nil
	return nil
}

// Summary renders the profile as a short sentence for display.
func (m *Manager) Summary() (string, error) {
	p, err := m.Get()
	if err != nil {
		return "", err
	}

	var parts []string
	if p.SkinType != "" {
		parts = append(parts, fmt.Sprintf("%s skin", p.SkinType))
	}
	if p.ChildMode {
		parts = append(parts, "child mode")
	}
	if p.Pregnant {
		parts = append(parts, "pregnancy precautions")
	}
	if len(p.KnownAllergies) > 0 {
		parts = append(parts, "allergic to "+strings.Join(p.KnownAllergies, ", "))
	}
	if len(parts) == 0 {
		return "no skin profile set", nil
	}
	return strings.Join(parts, "; "), nil
}

func buildProfile(keys map[string]string) SkinProfile {
	var p SkinProfile

	if v, ok := keys[keySkinType]; ok && ValidSkinType(v) {
		p.SkinType = kb.SkinType(v)
	}
	if v, ok := keys[keyChildMode]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.ChildMode = b
		}
	}
	if v, ok := keys[keyPregnant]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Pregnant = b
		}
	}
	if v, ok := keys[keyKnownAllergies]; ok {
		var list []string
		if err := json.Unmarshal([]byte(v), &list); err != nil {
			slog.Warn("skin profile: malformed known_allergies value, ignoring", "error", err)
		} else {
			p.KnownAllergies = list
		}
	}

	return p
}
