// Package catalog holds the static curated-term catalogs the seeding
// pipeline is fed from. Catalog order matters: later catalogs win on scalar
// fields when a term appears in more than one (see seeder.Merge).
package catalog

import "github.com/glosariodev/glosario-backend/internal/domain"

// All returns every catalog in merge-precedence order: the general
// programming catalog first, the CSS-specific catalog second.
func All() [][]domain.RawTermInput {
	return [][]domain.RawTermInput{General(), CSS()}
}

// ExpectedCount is the deduplicated term count across all catalogs, i.e. the
// number of rows a fully seeded store holds.
func ExpectedCount() int {
	seen := make(map[string]bool)
	for _, c := range All() {
		for _, raw := range c {
			key := domain.NormalizeKey(raw.Term)
			if key != "" {
				seen[key] = true
			}
		}
	}
	return len(seen)
}

func ptr(s string) *string { return &s }
