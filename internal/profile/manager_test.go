package profile

import (
	"testing"
	"time"

	"github.com/adaora/incilens/internal/kb"
)

// --- mock store ---

type mockStore struct {
	data     map[string]string
	getCalls int
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) SetProfileKey(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mockStore) GetProfileKey(key string) (string, error) {
	return m.data[key], nil
}

func (m *mockStore) GetAllProfileKeys() (map[string]string, error) {
	m.getCalls++
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// --- tests ---

func TestManager_GetEmpty(t *testing.T) {
	m := NewManager(newMockStore())
	p, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.SkinType != "" || p.ChildMode || p.Pregnant || len(p.KnownAllergies) != 0 {
		t.Errorf("empty store should yield zero profile, got %+v", p)
	}
}

func TestManager_SetAndGet(t *testing.T) {
	store := newMockStore()
	m := NewManager(store)

	if err := m.SetField("skin_type", "oily"); err != nil {
		t.Fatalf("SetField skin_type: %v", err)
	}
	if err := m.SetField("pregnant", "true"); err != nil {
		t.Fatalf("SetField pregnant: %v", err)
	}
	if err := m.SetField("known_allergies", `["Fragrance","Kojic Acid"]`); err != nil {
		t.Fatalf("SetField known_allergies: %v", err)
	}

	p, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.SkinType != kb.SkinOily {
		t.Errorf("SkinType = %q, want oily", p.SkinType)
	}
	if !p.Pregnant {
		t.Error("Pregnant = false, want true")
	}
	if len(p.KnownAllergies) != 2 || p.KnownAllergies[0] != "Fragrance" {
		t.Errorf("KnownAllergies = %v", p.KnownAllergies)
	}
}

func TestManager_SetFieldValidation(t *testing.T) {
	m := NewManager(newMockStore())

	if err := m.SetField("skin_type", "reptilian"); err == nil {
		t.Error("expected error for invalid skin type")
	}
	if err := m.SetField("child_mode", "maybe"); err == nil {
		t.Error("expected error for non-boolean child_mode")
	}
	if err := m.SetField("favorite_color", "blue"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestManager_AllergiesCommaSeparatedFallback(t *testing.T) {
	store := newMockStore()
	m := NewManager(store)

	if err := m.SetField("known_allergies", "Fragrance, Parabens"); err != nil {
		t.Fatalf("SetField: %v", err)
	}

	p, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(p.KnownAllergies) != 2 || p.KnownAllergies[1] != "Parabens" {
		t.Errorf("KnownAllergies = %v, want [Fragrance Parabens]", p.KnownAllergies)
	}
}

func TestManager_CacheTTL(t *testing.T) {
	store := newMockStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManagerWithClock(store, clock, time.Minute)

	if _, err := m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if store.getCalls != 1 {
		t.Errorf("store queried %d times within TTL, want 1", store.getCalls)
	}

	clock.now = clock.now.Add(2 * time.Minute)
	if _, err := m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if store.getCalls != 2 {
		t.Errorf("store queried %d times after TTL, want 2", store.getCalls)
	}
}

func TestManager_SetFieldInvalidatesCache(t *testing.T) {
	store := newMockStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManagerWithClock(store, clock, time.Hour)

	if _, err := m.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := m.SetField("skin_type", "dry"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	p, err := m.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.SkinType != kb.SkinDry {
		t.Errorf("SkinType = %q after set, want dry (cache must invalidate)", p.SkinType)
	}
}

func TestManager_Summary(t *testing.T) {
	m := NewManager(newMockStore())

	s, err := m.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s != "no skin profile set" {
		t.Errorf("empty summary = %q", s)
	}

	m.SetField("skin_type", "sensitive")
	m.SetField("pregnant", "true")
	s, err = m.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s != "sensitive skin; pregnancy precautions" {
		t.Errorf("Summary = %q", s)
	}
}
