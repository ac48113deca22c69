package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil stays nil", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"deadline passes through", context.DeadlineExceeded, context.DeadlineExceeded},
		{"cancellation passes through", context.Canceled, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in, "term", "flexbox")
			if tt.want == nil {
				if got != nil {
					t.Fatalf("MapError = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError = %v, want wrapped %v", got, tt.want)
			}
			if !strings.Contains(got.Error(), `term "flexbox"`) {
				t.Errorf("error %q should name the entity and key", got)
			}
		})
	}
}

func TestMapError_UnknownErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	got := MapError(cause, "term", "grid")
	if !errors.Is(got, cause) {
		t.Errorf("MapError = %v, want wrapped cause", got)
	}
}
