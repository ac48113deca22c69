package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

type termReader interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Term, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Term, error)
}

// TermsHandler serves the public glossary read endpoints.
type TermsHandler struct {
	terms termReader
	log   *slog.Logger
}

// NewTermsHandler creates a TermsHandler.
func NewTermsHandler(terms termReader, logger *slog.Logger) *TermsHandler {
	return &TermsHandler{
		terms: terms,
		log:   logger.With("handler", "terms"),
	}
}

// List performs a substring search over the catalog.
// GET /api/terms?q=flex&limit=20
func (h *TermsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := defaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	terms, err := h.terms.Search(r.Context(), query, limit)
	if err != nil {
		h.log.ErrorContext(r.Context(), "search terms", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, terms)
}

// Get returns one fully populated term.
// GET /api/terms/{slug}
func (h *TermsHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	term, err := h.terms.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "term not found")
			return
		}
		h.log.ErrorContext(r.Context(), "get term", slog.String("slug", slug), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, term)
}
