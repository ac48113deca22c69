// Package seeder implements the catalog seeding pipeline: normalization of
// raw curated-term records, case-insensitive cross-catalog merging, and a
// resumable, budget-bounded batch upsert into the term store.
package seeder

import (
	"context"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// TermStore is the persistence contract consumed by the seeding pipeline.
// All methods use only domain types — no adapter imports.
// Implemented by term.Repo.
type TermStore interface {
	// CountTerms returns the number of persisted terms.
	CountTerms(ctx context.Context) (int, error)

	// ListTermNames returns the set of persisted term names, keyed by
	// their case-insensitive form (domain.NormalizeKey).
	ListTermNames(ctx context.Context) (map[string]bool, error)

	// UpsertTerm inserts or updates a term keyed by its unique name.
	// On insert, all child collections are created in the same transaction.
	// On update, only scalar fields and the examples blob change unless the
	// policy is ChildrenReplace. Returns true when a new row was inserted.
	UpsertTerm(ctx context.Context, term domain.Term, policy domain.ChildrenPolicy) (bool, error)

	// EnsureStatsRow creates the per-term stats row if absent, keyed by the
	// unique term name (stable across the insert and update paths of an
	// upsert). Callers treat failures as best-effort.
	EnsureStatsRow(ctx context.Context, name string) error
}
