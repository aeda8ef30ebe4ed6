package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adaora/incilens/internal/analysis"
	"github.com/adaora/incilens/internal/kb"
	"github.com/adaora/incilens/internal/label"
)

const maxRequestBodySize = 1 << 20 // 1MB
const maxURLFetchSize = 5 << 20    // 5MB
const maxBatchItems = 20

// AnalyzeRequest is the public analyze endpoint's body. Exactly one of
// Text or URL should be set; when URL is given, the page is fetched and
// its ingredient section extracted before analysis.
type AnalyzeRequest struct {
	Text   string `json:"text"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// BatchRequest analyzes several formulas in one call.
type BatchRequest struct {
	Items  []string `json:"items"`
	Source string   `json:"source"`
}

// NewPublicHandler returns the unauthenticated REST surface: health,
// analysis, and knowledge-base lookups.
func NewPublicHandler(svc *analysis.Service, registry *kb.Registry, httpClient *http.Client) http.Handler {
	r := chi.NewRouter()
	registerPublicRoutes(r, svc, registry, httpClient)
	return r
}

func registerPublicRoutes(r chi.Router, svc *analysis.Service, registry *kb.Registry, httpClient *http.Client) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	r.Get("/health", handleHealth)
	r.Post("/v1/analyze", handleAnalyze(svc, httpClient))
	r.Post("/v1/analyze/batch", handleAnalyzeBatch(svc))
	r.Get("/v1/ingredients", handleListIngredients(registry))
	r.Get("/v1/ingredients/{name}", handleGetIngredient(registry))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleAnalyze(svc *analysis.Service, httpClient *http.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		if req.Text == "" && req.URL == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "one of text or url is required")
			return
		}

		text := req.Text
		source := req.Source
		if text == "" {
			fetched, err := fetchLabelText(r.Context(), httpClient, req.URL)
			if err != nil {
				httpError(w, http.StatusBadGateway, "api_error", "fetching label: %v", err)
				return
			}
			text = fetched
			if source == "" {
				source = "url"
			}
		}
		if source == "" {
			source = "api"
		}

		res, err := svc.Analyze(r.Context(), text, source)
		if err != nil {
			writeAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}

func handleAnalyzeBatch(svc *analysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if len(req.Items) == 0 {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "items is required and must not be empty")
			return
		}
		if len(req.Items) > maxBatchItems {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "at most %d items per batch", maxBatchItems)
			return
		}
		if req.Source == "" {
			req.Source = "api"
		}

		results, err := svc.AnalyzeBatch(r.Context(), req.Items, req.Source)
		if err != nil {
			writeAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"results": results})
	}
}

func handleListIngredients(registry *kb.Registry) http.HandlerFunc {
	type entry struct {
		CanonicalName string          `json:"canonical_name"`
		Category      string          `json:"category"`
		SafetyRating  kb.SafetyRating `json:"safety_rating"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		profiles := registry.Profiles()
		entries := make([]entry, len(profiles))
		for i, p := range profiles {
			entries[i] = entry{
				CanonicalName: p.CanonicalName,
				Category:      p.Category,
				SafetyRating:  p.SafetyRating,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

func handleGetIngredient(registry *kb.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		p, ok := registry.Find(name)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found", "unknown ingredient %q", name)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

// fetchLabelText downloads a product page and extracts its ingredient
// declaration.
func fetchLabelText(ctx context.Context, client *http.Client, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("url returned status %d", resp.StatusCode)
	}

	text, err := label.FromHTML(http.MaxBytesReader(nil, resp.Body, maxURLFetchSize))
	if err != nil {
		return "", err
	}
	return label.IngredientSection(text), nil
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	case errors.Is(err, analysis.ErrUnavailable):
		httpError(w, http.StatusServiceUnavailable, "api_error", "%v", err)
	default:
		httpError(w, http.StatusInternalServerError, "api_error", "analysis failed: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
