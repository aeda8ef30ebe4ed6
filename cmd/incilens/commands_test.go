package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
	Auth   string
}

type testServer struct {
	server   *httptest.Server
	requests []recordedRequest
}

func newTestServer(t *testing.T, responses map[string]string) *testServer {
	t.Helper()
	ts := &testServer{}

	ts.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		body.ReadFrom(r.Body)

		ts.requests = append(ts.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.RequestURI(),
			Body:   body.String(),
			Auth:   r.Header.Get("Authorization"),
		})

		key := r.Method + " " + r.URL.Path
		if resp, ok := responses[key]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(resp))
			return
		}

		w.WriteHeader(404)
		w.Write([]byte(`{"error":{"message":"not found","type":"not_found"}}`))
	}))

	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) client() *apiClient {
	return &apiClient{
		baseURL:    ts.server.URL,
		token:      "test-token",
		httpClient: ts.server.Client(),
	}
}

func TestClient_ListAnalyses(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"GET /analyses": `[{"id":"abc12345","created_at":"2026-08-01T10:00:00Z","safety_score":95,"input_text":"Water, Glycerin"}]`,
	})

	resp, err := ts.client().get("/analyses?limit=20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var analyses []struct {
		ID          string `json:"id"`
		SafetyScore int    `json:"safety_score"`
	}
	if err := decodeJSON(resp, &analyses); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(analyses) != 1 || analyses[0].ID != "abc12345" || analyses[0].SafetyScore != 95 {
		t.Errorf("analyses = %+v", analyses)
	}

	r := ts.requests[0]
	if r.Auth != "Bearer test-token" {
		t.Errorf("auth = %q, want Bearer test-token", r.Auth)
	}
	if r.Path != "/analyses?limit=20" {
		t.Errorf("path = %q", r.Path)
	}
}

func TestClient_PatchProfile(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"PATCH /profile": `{"status":"updated"}`,
	})

	resp, err := ts.client().patch("/profile", map[string]string{"skin_type": "dry"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]string
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result["status"] != "updated" {
		t.Errorf("status = %q", result["status"])
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(ts.requests[0].Body), &body); err != nil {
		t.Fatalf("body parse error: %v", err)
	}
	if body["skin_type"] != "dry" {
		t.Errorf("body = %v", body)
	}
}

func TestClient_DeleteAnalysis(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"DELETE /analyses/abc12345": `{"status":"deleted"}`,
	})

	resp, err := ts.client().delete("/analyses/abc12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result map[string]string
	if err := decodeJSON(resp, &result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result["status"] != "deleted" {
		t.Errorf("status = %q", result["status"])
	}
}

func TestDecodeJSON_ErrorStatus(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.client().get("/missing")
	if err != nil {
		t.Fatalf("unexpected transport error: %v", err)
	}
	var v any
	if err := decodeJSON(resp, &v); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestResolveAnalyzeInput_Validation(t *testing.T) {
	if _, _, err := resolveAnalyzeInput(nil, "", ""); err == nil {
		t.Error("expected error when no input is given")
	}
	if _, _, err := resolveAnalyzeInput([]string{"Water"}, "label.pdf", ""); err == nil {
		t.Error("expected error when multiple inputs are given")
	}

	text, source, err := resolveAnalyzeInput([]string{"Water,", "Glycerin"}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Water, Glycerin" || source != "cli" {
		t.Errorf("text = %q, source = %q", text, source)
	}
}
