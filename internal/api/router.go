package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaora/incilens/internal/analysis"
	"github.com/adaora/incilens/internal/kb"
)

// NewRouter builds the full HTTP surface on a single router: the public
// analysis routes, plus the bearer-protected management routes when app
// is non-nil. Both groups register on one router because chi rejects a
// second handler mounted at the same path.
func NewRouter(svc *analysis.Service, registry *kb.Registry, httpClient *http.Client, app *AppDeps) http.Handler {
	r := chi.NewRouter()
	registerPublicRoutes(r, svc, registry, httpClient)
	if app != nil {
		registerAppRoutes(r, *app)
	}
	return r
}
