package rest

import "net/http"

// NewRouter assembles the HTTP routes onto a ServeMux.
func NewRouter(health *HealthHandler, terms *TermsHandler, admin *AdminHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	mux.HandleFunc("GET /api/terms", terms.List)
	mux.HandleFunc("GET /api/terms/{slug}", terms.Get)

	mux.HandleFunc("POST /admin/seed", admin.Seed)

	return mux
}
