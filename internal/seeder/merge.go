package seeder

import "github.com/glosariodev/glosario-backend/internal/domain"

// Merge folds normalized catalogs into one deduplicated list keyed by the
// case-insensitive term name. Catalogs are processed in the order supplied:
// later catalogs win on scalar fields, aliases and tags are set-unioned,
// examples are replaced only when the incoming list is non-empty, and child
// collections are concatenated (a term present in two catalogs deliberately
// ends up with both sets of use-cases/variants/FAQs/exercises — callers that
// want singletons must keep their catalogs disjoint by term name).
// Records with an empty key are skipped. Output preserves first-appearance
// order.
func Merge(catalogs ...[]domain.Term) []domain.Term {
	acc := make(map[string]domain.Term)
	var order []string

	for _, catalog := range catalogs {
		for _, incoming := range catalog {
			key := incoming.Key()
			if key == "" {
				continue
			}

			existing, seen := acc[key]
			if !seen {
				order = append(order, key)
				acc[key] = incoming
				continue
			}

			acc[key] = mergeTerm(existing, incoming)
		}
	}

	merged := make([]domain.Term, 0, len(order))
	for _, key := range order {
		merged = append(merged, acc[key])
	}
	return merged
}

// mergeTerm folds one incoming record into an existing one. Identity (ID,
// Name, CreatedAt) and a non-empty existing slug stay put; the rest follows
// the rules documented on Merge.
func mergeTerm(existing, incoming domain.Term) domain.Term {
	out := existing

	if out.Slug == "" {
		out.Slug = incoming.Slug
	}
	out.TitleEs = incoming.TitleEs
	out.TitleEn = incoming.TitleEn
	out.Translation = incoming.Translation
	out.Category = incoming.Category
	out.MeaningEs = incoming.MeaningEs
	out.MeaningEn = incoming.MeaningEn
	out.WhatEs = incoming.WhatEs
	out.WhatEn = incoming.WhatEn
	out.HowEs = incoming.HowEs
	out.HowEn = incoming.HowEn
	out.UpdatedAt = incoming.UpdatedAt

	out.Aliases = unionStrings(existing.Aliases, incoming.Aliases)
	out.Tags = unionStrings(existing.Tags, incoming.Tags)

	if len(incoming.Examples) > 0 {
		out.Examples = incoming.Examples
	}

	out.Variants = append(append([]domain.Variant{}, existing.Variants...), incoming.Variants...)
	out.UseCases = append(append([]domain.UseCase{}, existing.UseCases...), incoming.UseCases...)
	out.FAQs = append(append([]domain.FAQ{}, existing.FAQs...), incoming.FAQs...)
	out.Exercises = append(append([]domain.Exercise{}, existing.Exercises...), incoming.Exercises...)
	reposition(out.Variants, out.UseCases, out.FAQs, out.Exercises)

	return out
}

// reposition renumbers child positions after concatenation so persisted
// ordering stays stable.
func reposition(variants []domain.Variant, useCases []domain.UseCase, faqs []domain.FAQ, exercises []domain.Exercise) {
	for i := range variants {
		variants[i].Position = i
	}
	for i := range useCases {
		useCases[i].Position = i
	}
	for i := range faqs {
		faqs[i].Position = i
	}
	for i := range exercises {
		exercises[i].Position = i
	}
}

// unionStrings returns a ∪ b preserving first-occurrence order, with
// duplicates removed by exact match.
func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// BuildMerged normalizes each raw catalog and merges the results; the
// convenience entry point used by the coordinator and the seeding CLI.
func BuildMerged(catalogs ...[]domain.RawTermInput) ([]domain.Term, error) {
	normalized := make([][]domain.Term, 0, len(catalogs))
	for _, catalog := range catalogs {
		terms, err := NormalizeCatalog(catalog)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, terms)
	}
	return Merge(normalized...), nil
}
