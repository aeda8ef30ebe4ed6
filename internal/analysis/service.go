// Package analysis orchestrates ingredient analysis: input validation,
// the remote-first/local-fallback decision, profile-aware advisories,
// and history persistence.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adaora/incilens/internal/engine"
	"github.com/adaora/incilens/internal/kb"
	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/remote"
	"github.com/adaora/incilens/internal/storage"
)

// Input shorter than this (after trimming) is rejected up front.
const minInputLen = 3

// Concurrent analyses per batch call.
const batchConcurrency = 4

var (
	// ErrInvalidInput is returned when the submitted text is missing or
	// too short to be an ingredient list.
	ErrInvalidInput = errors.New("ingredient text is missing or too short")

	// ErrUnavailable is returned only when both the remote and local
	// analysis paths are broken.
	ErrUnavailable = errors.New("analysis unavailable")
)

// RemoteAnalyzer abstracts the cloud classifier. Implemented by
// remote.Client; nil disables the remote path entirely.
type RemoteAnalyzer interface {
	Analyze(ctx context.Context, req remote.AnalyzeRequest) (*remote.Result, error)
}

// HistoryStore abstracts analysis persistence. Implemented by storage.Store.
type HistoryStore interface {
	SaveAnalysis(a storage.Analysis) error
}

// SkinProfiler abstracts the stored skin profile. Implemented by
// profile.Manager.
type SkinProfiler interface {
	Get() (profile.SkinProfile, error)
}

// Service runs analyses remote-first with silent local degradation. The
// remote path is best-effort: its failures are logged and masked, never
// surfaced. Only input validation and total failure of both paths reach
// the caller.
type Service struct {
	remote   RemoteAnalyzer
	local    *engine.Analyzer
	registry *kb.Registry
	history  HistoryStore
	profiles SkinProfiler
}

// New creates a Service. remote, history, and profiles may each be nil:
// without remote the service is local-only, without history nothing is
// persisted, without profiles no profile-aware advisories are added.
func New(remoteClient RemoteAnalyzer, local *engine.Analyzer, registry *kb.Registry, history HistoryStore, profiles SkinProfiler) *Service {
	return &Service{
		remote:   remoteClient,
		local:    local,
		registry: registry,
		history:  history,
		profiles: profiles,
	}
}

// Analyze validates the input, runs the remote-first pipeline, decorates
// the result with profile advisories, and persists it.
func (s *Service) Analyze(ctx context.Context, text, source string) (engine.Result, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minInputLen {
		return engine.Result{}, ErrInvalidInput
	}

	res, err := s.analyzeOnce(ctx, trimmed, source)
	if err != nil {
		return engine.Result{}, err
	}

	s.appendProfileAdvisories(&res)
	s.persist(trimmed, res)
	return res, nil
}

// AnalyzeBatch analyzes several formulas concurrently. Results are
// returned in input order; any invalid or failed item fails the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, texts []string, source string) ([]engine.Result, error) {
	results := make([]engine.Result, len(texts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, text := range texts {
		g.Go(func() error {
			res, err := s.Analyze(gCtx, text, source)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// analyzeOnce tries the remote classifier, then falls back to the local
// engine. The remote error is an explicit branch, not control flow by
// exception: it is logged and the local result is returned instead.
func (s *Service) analyzeOnce(ctx context.Context, text, source string) (engine.Result, error) {
	if s.remote != nil {
		remoteRes, err := s.remote.Analyze(ctx, remote.AnalyzeRequest{Text: text, Source: source})
		if err == nil {
			return s.normalizeRemote(remoteRes), nil
		}
		slog.Warn("remote analysis failed, falling back to local engine", "error", err)
	}

	if s.local == nil {
		return engine.Result{}, ErrUnavailable
	}

	res := s.local.Analyze(text)
	res.Source = "local"
	return res, nil
}

// Advisory used when the remote payload carries no recommendations.
const defaultRemoteAdvice = "Patch test new products and introduce one active at a time."

// normalizeRemote converts a remote payload into the local result shape,
// filling safe defaults for every field the remote service omitted.
func (s *Service) normalizeRemote(r *remote.Result) engine.Result {
	ingredients := make([]engine.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		safety := engine.Safety(ing.Safety)
		switch safety {
		case engine.SafetySafe, engine.SafetyCaution, engine.SafetyAvoid, engine.SafetyUnknown:
		default:
			safety = engine.SafetyUnknown
		}
		ingredients[i] = engine.Ingredient{
			Name:     ing.Name,
			Found:    ing.Found,
			Safety:   safety,
			Concerns: ing.Concerns,
		}
	}

	score := remoteScore(r, ingredients)

	total := r.TotalIngredients
	if total == 0 {
		total = len(ingredients)
	}

	out := engine.Result{
		TotalIngredients:  total,
		Ingredients:       ingredients,
		SafetyScore:       score,
		Allergens:         orEmpty(r.Allergens),
		Irritants:         orEmpty(r.Irritants),
		SkinCompatibility: remoteCompat(r.SkinCompatibility),
		Recommendations:   r.Recommendations,
		Summary:           r.Summary,
		Source:            "remote",
	}
	if len(out.Recommendations) == 0 {
		out.Recommendations = []string{defaultRemoteAdvice}
	}
	if out.Summary == "" {
		out.Summary = engine.Summary(score)
	}
	return out
}

// remoteScore uses the remote score when supplied, otherwise re-derives
// it from the per-ingredient classifications with the local penalty scale.
func remoteScore(r *remote.Result, ingredients []engine.Ingredient) int {
	if r.SafetyScore != nil {
		score := *r.SafetyScore
		if score < 0 {
			return 0
		}
		if score > 100 {
			return 100
		}
		return score
	}

	score := 100
	for _, ing := range ingredients {
		switch ing.Safety {
		case engine.SafetyCaution:
			score -= 5
		case engine.SafetyAvoid:
			score -= 20
		case engine.SafetyUnknown:
			score -= 2
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// remoteCompat validates remote compatibility ratings and guesses "Good"
// for every skin type the remote payload left out.
func remoteCompat(raw map[string]string) map[kb.SkinType]engine.CompatRating {
	out := make(map[kb.SkinType]engine.CompatRating, len(kb.SkinTypes))
	for _, st := range kb.SkinTypes {
		rating := engine.CompatRating(raw[string(st)])
		switch rating {
		case engine.CompatExcellent, engine.CompatGood, engine.CompatFair, engine.CompatPoor:
			out[st] = rating
		default:
			out[st] = engine.CompatGood
		}
	}
	return out
}

// appendProfileAdvisories adds advisories derived from the stored skin
// profile. Everything here is best-effort: a missing or broken profile
// never fails an analysis.
func (s *Service) appendProfileAdvisories(res *engine.Result) {
	if s.profiles == nil {
		return
	}
	p, err := s.profiles.Get()
	if err != nil {
		slog.Warn("loading skin profile for advisories", "error", err)
		return
	}

	if p.SkinType != "" {
		switch res.SkinCompatibility[p.SkinType] {
		case engine.CompatPoor, engine.CompatFair:
			res.Recommendations = append(res.Recommendations,
				fmt.Sprintf("This formula rates %s for your %s skin — consider an alternative better matched to your skin type.",
					strings.ToLower(string(res.SkinCompatibility[p.SkinType])), p.SkinType))
		}
	}

	if p.ChildMode && s.registry != nil {
		var flagged []string
		for _, ing := range res.Ingredients {
			if prof, ok := s.registry.Find(ing.Name); ok && !prof.ChildSafe {
				flagged = append(flagged, prof.CanonicalName)
			}
		}
		if len(flagged) > 0 {
			res.Recommendations = append(res.Recommendations,
				fmt.Sprintf("Not suitable for children: %s.", strings.Join(flagged, ", ")))
		}
	}

	if p.Pregnant {
		for _, ing := range res.Ingredients {
			if engine.IsPregnancyRisk(ing.Name) {
				res.Recommendations = append(res.Recommendations,
					"Your profile notes pregnancy — skip this product and ask your doctor about the flagged ingredients.")
				break
			}
		}
	}

	if len(p.KnownAllergies) > 0 {
		var hits []string
		for _, allergy := range p.KnownAllergies {
			for _, ing := range res.Ingredients {
				if kb.Normalize(ing.Name) == kb.Normalize(allergy) {
					hits = append(hits, ing.Name)
					break
				}
			}
		}
		if len(hits) > 0 {
			res.Recommendations = append(res.Recommendations,
				fmt.Sprintf("Contains ingredients on your allergy list: %s.", strings.Join(hits, ", ")))
		}
	}
}

// persist stores the analysis in history. Failures are logged, not surfaced;
// history is a convenience, not part of the analysis contract.
func (s *Service) persist(text string, res engine.Result) {
	if s.history == nil {
		return
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		slog.Warn("marshalling analysis result for history", "error", err)
		return
	}

	rec := storage.Analysis{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		InputText:   text,
		Source:      res.Source,
		SafetyScore: res.SafetyScore,
		ResultJSON:  string(resultJSON),
	}
	if err := s.history.SaveAnalysis(rec); err != nil {
		slog.Warn("saving analysis to history", "error", err)
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
