package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

type seedRunner interface {
	EnsureSeeded(ctx context.Context, force bool) (*domain.SeedBatchResult, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	seeder seedRunner
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(seeder seedRunner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		seeder: seeder,
		log:    logger.With("handler", "admin"),
	}
}

// Seed triggers one seeding batch. Returns 200 with the batch result, 204
// when the catalog is already fully seeded, 500 on batch failure.
// POST /admin/seed?force=true
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	result, err := h.seeder.EnsureSeeded(r.Context(), force)
	if err != nil {
		h.log.ErrorContext(r.Context(), "seed batch", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "seed batch failed")
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
