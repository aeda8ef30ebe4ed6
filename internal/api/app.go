package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/storage"
)

// AppDeps holds dependencies for the authenticated management API.
type AppDeps struct {
	Store   *storage.Store
	Profile *profile.Manager
	Token   string
}

// NewAppHandler returns the bearer-token-protected management surface:
// analysis history and the skin profile.
func NewAppHandler(deps AppDeps) http.Handler {
	r := chi.NewRouter()
	registerAppRoutes(r, deps)
	return r
}

func registerAppRoutes(r chi.Router, deps AppDeps) {
	r.Group(func(g chi.Router) {
		g.Use(BearerAuth(deps.Token))

		g.Get("/analyses", handleListAnalyses(deps))
		g.Get("/analyses/{id}", handleGetAnalysis(deps))
		g.Delete("/analyses/{id}", handleDeleteAnalysis(deps))
		g.Get("/profile", handleGetProfile(deps))
		g.Patch("/profile", handlePatchProfile(deps))
	})
}

// analysisSummary is the list view of one stored analysis; the full result
// JSON is only returned for single-record fetches.
type analysisSummary struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	Source      string `json:"source"`
	SafetyScore int    `json:"safety_score"`
	InputText   string `json:"input_text"`
}

func handleListAnalyses(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 20, 100)
		offset := parseIntParam(r, "offset", 0, 0)

		analyses, err := deps.Store.ListAnalyses(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list analyses: %v", err)
			return
		}

		summaries := make([]analysisSummary, len(analyses))
		for i, a := range analyses {
			summaries[i] = analysisSummary{
				ID:          a.ID,
				CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Source:      a.Source,
				SafetyScore: a.SafetyScore,
				InputText:   a.InputText,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	}
}

func handleGetAnalysis(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		a, err := deps.Store.GetAnalysis(id)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found", "analysis not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to get analysis: %v", err)
			return
		}

		// ResultJSON is already serialized; splice it in as raw JSON.
		out := map[string]any{
			"id":           a.ID,
			"created_at":   a.CreatedAt,
			"source":       a.Source,
			"safety_score": a.SafetyScore,
			"input_text":   a.InputText,
			"result":       json.RawMessage(a.ResultJSON),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

func handleDeleteAnalysis(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := deps.Store.DeleteAnalysis(id)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found", "analysis not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to delete analysis: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}

func handleGetProfile(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := deps.Profile.Get()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to get profile: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}
}

func handlePatchProfile(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		for key, value := range fields {
			if err := deps.Profile.SetField(key, value); err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "failed to set field %q: %v", key, err)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
