package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adaora/incilens/internal/profile"
	"github.com/adaora/incilens/internal/storage"
)

// Composes the full surface the way the server does at startup. chi
// panics when two handlers are mounted at the same path, so both route
// groups must share one router.
func TestNewRouter_PublicAndManagementTogether(t *testing.T) {
	svc, reg := testService(t)
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := NewRouter(svc, reg, nil, &AppDeps{
		Store:   store,
		Profile: profile.NewManager(store),
		Token:   testToken,
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, authedRequest(http.MethodGet, "/analyses", ""))
	if rr.Code != http.StatusOK {
		t.Errorf("authed /analyses status = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyses", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("unauthed /analyses status = %d, want 401", rr.Code)
	}
}

func TestNewRouter_WithoutManagementDeps(t *testing.T) {
	svc, reg := testService(t)
	h := NewRouter(svc, reg, nil, nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analyses", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("/analyses without management deps: status = %d, want 404", rr.Code)
	}
}
