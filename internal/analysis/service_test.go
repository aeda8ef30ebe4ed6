package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adaora/incilens/internal/engine"
	"github.com/adaora/incilens/internal/kb"
	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/remote"
	"github.com/adaora/incilens/internal/storage"
)

// --- mocks ---

type mockRemote struct {
	analyzeFunc func(ctx context.Context, req remote.AnalyzeRequest) (*remote.Result, error)
	calls       int
}

func (m *mockRemote) Analyze(ctx context.Context, req remote.AnalyzeRequest) (*remote.Result, error) {
	m.calls++
	return m.analyzeFunc(ctx, req)
}

type mockHistory struct {
	saved []storage.Analysis
	err   error
}

func (m *mockHistory) SaveAnalysis(a storage.Analysis) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, a)
	return nil
}

type mockProfiler struct {
	p   profile.SkinProfile
	err error
}

func (m *mockProfiler) Get() (profile.SkinProfile, error) {
	return m.p, m.err
}

func testRegistry(t *testing.T) *kb.Registry {
	t.Helper()
	reg, err := kb.NewRegistry([]kb.Profile{
		{
			CanonicalName: "Water",
			Aliases:       []string{"Aqua"},
			Category:      "solvent",
			SafetyRating:  kb.RatingSafe,
			ChildSafe:     true,
			SkinCompat:    kb.SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: true},
		},
		{
			CanonicalName: "Glycerin",
			Category:      "humectant",
			SafetyRating:  kb.RatingSafe,
			ChildSafe:     true,
			SkinCompat:    kb.SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: true},
		},
		{
			CanonicalName:     "Fragrance",
			Aliases:           []string{"Parfum"},
			Category:          "fragrance",
			SafetyRating:      kb.RatingCaution,
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:        kb.SkinCompat{Oily: true, Combination: true, Normal: true},
		},
		{
			CanonicalName:     "Hydroquinone",
			Category:          "brightener",
			SafetyRating:      kb.RatingAvoid,
			AllergenPotential: true,
			IrritantPotential: true,
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func localOnly(t *testing.T) *Service {
	t.Helper()
	reg := testRegistry(t)
	return New(nil, engine.New(reg), reg, nil, nil)
}

// --- input validation ---

func TestAnalyze_InvalidInput(t *testing.T) {
	svc := localOnly(t)
	for _, input := range []string{"", "  ", "ab", " a "} {
		if _, err := svc.Analyze(context.Background(), input, "test"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Analyze(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestAnalyze_ValidationBeforeRemote(t *testing.T) {
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return nil, errors.New("should not be called")
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	if _, err := svc.Analyze(context.Background(), "a", "test"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
	if rem.calls != 0 {
		t.Errorf("remote called %d times for invalid input, want 0", rem.calls)
	}
}

// --- remote-first and fallback ---

func TestAnalyze_RemoteFirst(t *testing.T) {
	score := 95
	rem := &mockRemote{analyzeFunc: func(_ context.Context, req remote.AnalyzeRequest) (*remote.Result, error) {
		if req.Text != "Water, Glycerin" {
			t.Errorf("remote received text %q", req.Text)
		}
		return &remote.Result{
			TotalIngredients: 2,
			Ingredients: []remote.Ingredient{
				{Name: "Water", Found: true, Safety: "safe"},
				{Name: "Glycerin", Found: true, Safety: "safe"},
			},
			SafetyScore: &score,
			Summary:     "Looks great.",
		}, nil
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	res, err := svc.Analyze(context.Background(), "Water, Glycerin", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Source != "remote" {
		t.Errorf("Source = %q, want remote", res.Source)
	}
	if res.SafetyScore != 95 {
		t.Errorf("SafetyScore = %d, want 95", res.SafetyScore)
	}
	if res.Summary != "Looks great." {
		t.Errorf("Summary = %q", res.Summary)
	}
}

func TestAnalyze_FallsBackToLocal(t *testing.T) {
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return nil, errors.New("service unavailable")
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	res, err := svc.Analyze(context.Background(), "Water, Glycerin", "test")
	if err != nil {
		t.Fatalf("Analyze should mask remote failure, got %v", err)
	}
	if res.Source != "local" {
		t.Errorf("Source = %q, want local", res.Source)
	}
	if res.SafetyScore != 100 {
		t.Errorf("SafetyScore = %d, want 100", res.SafetyScore)
	}
}

func TestAnalyze_LocalOnlyWhenNoRemote(t *testing.T) {
	svc := localOnly(t)
	res, err := svc.Analyze(context.Background(), "Hydroquinone", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Source != "local" {
		t.Errorf("Source = %q, want local", res.Source)
	}
	if res.SafetyScore != 80 {
		t.Errorf("SafetyScore = %d, want 80", res.SafetyScore)
	}
}

func TestAnalyze_UnavailableWhenBothBroken(t *testing.T) {
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return nil, errors.New("down")
	}}
	svc := New(rem, nil, nil, nil, nil)

	if _, err := svc.Analyze(context.Background(), "Water, Glycerin", "test"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}

// --- remote payload normalization ---

func TestAnalyze_RemoteDefaultsFilled(t *testing.T) {
	// Minimal remote payload: only the ingredient list.
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return &remote.Result{
			Ingredients: []remote.Ingredient{
				{Name: "Fragrance", Found: true, Safety: "caution"},
				{Name: "Mysteryol", Found: false, Safety: "unknown"},
			},
		}, nil
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	res, err := svc.Analyze(context.Background(), "Fragrance, Mysteryol", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.TotalIngredients != 2 {
		t.Errorf("TotalIngredients = %d, want 2 (derived from list)", res.TotalIngredients)
	}
	if res.SafetyScore != 93 {
		t.Errorf("SafetyScore = %d, want 93 (100 - 5 caution - 2 unknown)", res.SafetyScore)
	}
	if res.Allergens == nil || res.Irritants == nil {
		t.Error("allergen/irritant lists must be non-nil")
	}
	for _, st := range kb.SkinTypes {
		if res.SkinCompatibility[st] != engine.CompatGood {
			t.Errorf("SkinCompatibility[%s] = %q, want default Good", st, res.SkinCompatibility[st])
		}
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0] != defaultRemoteAdvice {
		t.Errorf("Recommendations = %v, want default advisory", res.Recommendations)
	}
	if res.Summary == "" {
		t.Error("Summary must be derived from the score when missing")
	}
}

func TestAnalyze_RemoteUnknownSafetyCoerced(t *testing.T) {
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return &remote.Result{
			Ingredients: []remote.Ingredient{{Name: "Water", Found: true, Safety: "hazard-level-7"}},
		}, nil
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	res, err := svc.Analyze(context.Background(), "Water, Glycerin", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Ingredients[0].Safety != engine.SafetyUnknown {
		t.Errorf("Safety = %q, want unknown for unrecognized class", res.Ingredients[0].Safety)
	}
}

func TestAnalyze_RemoteScoreClamped(t *testing.T) {
	score := 140
	rem := &mockRemote{analyzeFunc: func(context.Context, remote.AnalyzeRequest) (*remote.Result, error) {
		return &remote.Result{SafetyScore: &score}, nil
	}}
	reg := testRegistry(t)
	svc := New(rem, engine.New(reg), reg, nil, nil)

	res, err := svc.Analyze(context.Background(), "Water, Glycerin", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.SafetyScore != 100 {
		t.Errorf("SafetyScore = %d, want clamp to 100", res.SafetyScore)
	}
}

// --- profile advisories ---

func TestAnalyze_ChildModeAdvisory(t *testing.T) {
	reg := testRegistry(t)
	prof := &mockProfiler{p: profile.SkinProfile{ChildMode: true}}
	svc := New(nil, engine.New(reg), reg, nil, prof)

	res, err := svc.Analyze(context.Background(), "Water, Hydroquinone", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !containsSubstring(res.Recommendations, "Not suitable for children: Hydroquinone") {
		t.Errorf("missing child-mode advisory in %v", res.Recommendations)
	}
}

func TestAnalyze_PregnancyAdvisory(t *testing.T) {
	reg := testRegistry(t)
	prof := &mockProfiler{p: profile.SkinProfile{Pregnant: true}}
	svc := New(nil, engine.New(reg), reg, nil, prof)

	res, err := svc.Analyze(context.Background(), "Hydroquinone", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !containsSubstring(res.Recommendations, "Your profile notes pregnancy") {
		t.Errorf("missing pregnancy advisory in %v", res.Recommendations)
	}
}

func TestAnalyze_KnownAllergyAdvisory(t *testing.T) {
	reg := testRegistry(t)
	prof := &mockProfiler{p: profile.SkinProfile{KnownAllergies: []string{"parfum"}}}
	svc := New(nil, engine.New(reg), reg, nil, prof)

	// "Parfum" resolves to canonical "Fragrance"; the allergy entry matches
	// by normalized name against the canonical result.
	res, err := svc.Analyze(context.Background(), "Water, Fragrance", "test")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !containsSubstring(res.Recommendations, "allergy list: Fragrance") {
		t.Errorf("missing allergy advisory in %v", res.Recommendations)
	}
}

func TestAnalyze_ProfileErrorIsNonFatal(t *testing.T) {
	reg := testRegistry(t)
	prof := &mockProfiler{err: errors.New("db locked")}
	svc := New(nil, engine.New(reg), reg, nil, prof)

	if _, err := svc.Analyze(context.Background(), "Water, Glycerin", "test"); err != nil {
		t.Fatalf("profile failure must not fail analysis, got %v", err)
	}
}

// --- persistence ---

func TestAnalyze_SavesHistory(t *testing.T) {
	reg := testRegistry(t)
	hist := &mockHistory{}
	svc := New(nil, engine.New(reg), reg, hist, nil)

	res, err := svc.Analyze(context.Background(), "  Water, Glycerin  ", "paste")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(hist.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(hist.saved))
	}
	rec := hist.saved[0]
	if rec.ID == "" {
		t.Error("record ID must be set")
	}
	if rec.InputText != "Water, Glycerin" {
		t.Errorf("InputText = %q, want trimmed input", rec.InputText)
	}
	if rec.Source != "local" || rec.SafetyScore != res.SafetyScore {
		t.Errorf("record = %+v, result score %d", rec, res.SafetyScore)
	}
	if !strings.Contains(rec.ResultJSON, `"safety_score"`) {
		t.Errorf("ResultJSON = %q, want serialized result", rec.ResultJSON)
	}
}

func TestAnalyze_HistoryErrorIsNonFatal(t *testing.T) {
	reg := testRegistry(t)
	hist := &mockHistory{err: errors.New("disk full")}
	svc := New(nil, engine.New(reg), reg, hist, nil)

	if _, err := svc.Analyze(context.Background(), "Water, Glycerin", "test"); err != nil {
		t.Fatalf("history failure must not fail analysis, got %v", err)
	}
}

// --- batches ---

func TestAnalyzeBatch_PreservesOrder(t *testing.T) {
	svc := localOnly(t)
	texts := []string{"Water, Glycerin", "Hydroquinone", "Fragrance"}

	results, err := svc.AnalyzeBatch(context.Background(), texts, "batch")
	if err != nil {
		t.Fatalf("AnalyzeBatch: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantScores := []int{100, 80, 95}
	for i, want := range wantScores {
		if results[i].SafetyScore != want {
			t.Errorf("results[%d].SafetyScore = %d, want %d", i, results[i].SafetyScore, want)
		}
	}
}

func TestAnalyzeBatch_FailsOnInvalidItem(t *testing.T) {
	svc := localOnly(t)
	_, err := svc.AnalyzeBatch(context.Background(), []string{"Water, Glycerin", "ab"}, "batch")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want wrapped ErrInvalidInput", err)
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
