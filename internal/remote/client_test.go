package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestAnalyze_Success(t *testing.T) {
	score := 90
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analyze" {
			t.Errorf("path = %q, want /v1/analyze", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test-key", got)
		}
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Text != "Water, Glycerin" {
			t.Errorf("req.Text = %q", req.Text)
		}
		json.NewEncoder(w).Encode(Result{
			TotalIngredients: 2,
			Ingredients: []Ingredient{
				{Name: "Water", Found: true, Safety: "safe"},
				{Name: "Glycerin", Found: true, Safety: "safe"},
			},
			SafetyScore: &score,
		})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	res, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Water, Glycerin", Source: "cli"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalIngredients != 2 || len(res.Ingredients) != 2 {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.SafetyScore == nil || *res.SafetyScore != 90 {
		t.Errorf("SafetyScore = %v, want 90", res.SafetyScore)
	}
}

func TestAnalyze_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want unset for anonymous client", got)
		}
		json.NewEncoder(w).Encode(Result{})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("", srv.URL)
	if _, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Water"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	if _, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Water"}); err == nil {
		t.Fatal("expected error on HTTP 500, got nil")
	}
}

func TestAnalyze_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(Result{TotalIngredients: 1})
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	res, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Water"})
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if res.TotalIngredients != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3 (two 429s then success)", got)
	}
}

func TestAnalyze_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	if _, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Water"}); err == nil {
		t.Fatal("expected error after exhausting retries, got nil")
	}
	if got := calls.Load(); got != maxRetries {
		t.Errorf("server called %d times, want %d", got, maxRetries)
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClientWithBaseURL("k", srv.URL)
	if _, err := c.Analyze(ctx, AnalyzeRequest{Text: "Water"}); err == nil {
		t.Fatal("expected error with cancelled context, got nil")
	}
}
