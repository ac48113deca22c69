package seeder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// tagUtilityClass marks a term whose practice snippet doubles as its second
// example (Tailwind-style utility classes).
const tagUtilityClass = "tailwind"

// Normalize expands a raw catalog record into a fully populated Term.
// It is pure: no I/O, deterministic except for generated IDs and timestamps.
// A record with an empty term name or an unknown category is rejected with a
// ValidationError; every other input produces a Term with exactly one
// variant, three use-cases, one FAQ and one exercise with one solution.
func Normalize(raw domain.RawTermInput) (domain.Term, error) {
	name := strings.TrimSpace(raw.Term)
	if name == "" {
		return domain.Term{}, domain.NewValidationError("term", "must not be empty")
	}
	if !raw.Category.IsValid() {
		return domain.Term{}, domain.NewValidationError("category",
			fmt.Sprintf("unknown category %q", raw.Category))
	}

	profile := categoryProfiles[raw.Category]
	now := time.Now().UTC()

	t := domain.Term{
		ID:          uuid.New(),
		Name:        name,
		Slug:        domain.Slugify(name),
		TitleEs:     titleEs(name, raw.Translation),
		TitleEn:     name,
		Translation: raw.Translation,
		Category:    raw.Category,
		MeaningEs:   firstNonEmpty(raw.DescriptionEs, synthMeaningEs(name, raw.Translation)),
		MeaningEn:   firstNonEmpty(raw.DescriptionEn, synthMeaningEn(name, raw.Translation)),
		WhatEs:      firstNonEmpty(raw.WhatEs, profile.WhatEs(name)),
		WhatEn:      firstNonEmpty(raw.WhatEn, profile.WhatEn(name)),
		HowEs:       firstNonEmpty(raw.HowEs, profile.HowEs(name)),
		HowEn:       firstNonEmpty(raw.HowEn, profile.HowEn(name)),
		Aliases:     cloneOrEmpty(raw.Aliases),
		Tags:        cloneOrEmpty(raw.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	language := raw.LanguageOverride
	if language == "" {
		language = profile.DefaultLanguage
	}

	exerciseSnippet := raw.Example
	if raw.ExerciseExample != nil {
		exerciseSnippet = *raw.ExerciseExample
	}

	t.Examples = buildExamples(raw, exerciseSnippet)
	t.Variants = []domain.Variant{buildVariant(raw.Example, language)}
	t.UseCases = buildUseCases(t, profile)
	t.FAQs = []domain.FAQ{buildFAQ(t, raw.Example)}
	t.Exercises = []domain.Exercise{buildExercise(name, language, exerciseSnippet)}

	return t, nil
}

// titleEs renders the Spanish title: the term itself, with the short
// translation in parentheses when one exists.
func titleEs(name, translation string) string {
	if translation == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, translation)
}

// buildExamples applies the example-set policy: utility-class terms store
// [example, exerciseExample] so the practice snippet doubles as the second
// example; everyone else stores [example, secondExample?] with absent
// entries dropped.
func buildExamples(raw domain.RawTermInput, exerciseSnippet domain.CodeSnippet) []domain.CodeSnippet {
	if hasTag(raw.Tags, tagUtilityClass) {
		return []domain.CodeSnippet{raw.Example, exerciseSnippet}
	}
	examples := []domain.CodeSnippet{raw.Example}
	if raw.SecondExample != nil {
		examples = append(examples, *raw.SecondExample)
	}
	return examples
}

func buildVariant(example domain.CodeSnippet, language string) domain.Variant {
	level := domain.SkillIntermediate
	if language == "css" {
		level = domain.SkillBeginner
	}
	return domain.Variant{
		ID:       uuid.New(),
		Language: language,
		Code:     example.Code,
		NotesEs:  example.NotesEs,
		NotesEn:  example.NotesEn,
		Level:    level,
		Position: 0,
	}
}

func buildUseCases(t domain.Term, profile categoryProfile) []domain.UseCase {
	useCases := make([]domain.UseCase, 0, len(useCaseTemplates))
	for i, tpl := range useCaseTemplates {
		uc := domain.UseCase{
			ID:        uuid.New(),
			Context:   tpl.Context,
			SummaryEs: tpl.SummaryEs(t.Name, profile.PhraseEs),
			SummaryEn: tpl.SummaryEn(t.Name, profile.PhraseEn),
			StepsEs:   tpl.StepsEs(t.Name),
			StepsEn:   tpl.StepsEn(t.Name),
			TipsEs:    tpl.TipsEs(t.Name),
			TipsEn:    tpl.TipsEn(t.Name),
			Position:  i,
		}
		// Templates never render empty in practice; the what-text fallback
		// keeps the record usable if one ever does.
		if uc.SummaryEs == "" {
			uc.SummaryEs = t.WhatEs
		}
		if uc.SummaryEn == "" {
			uc.SummaryEn = t.WhatEn
		}
		useCases = append(useCases, uc)
	}
	return useCases
}

func buildFAQ(t domain.Term, example domain.CodeSnippet) domain.FAQ {
	return domain.FAQ{
		ID:         uuid.New(),
		QuestionEs: synthFAQQuestionEs(t.Name),
		QuestionEn: synthFAQQuestionEn(t.Name),
		AnswerEs:   t.MeaningEs + " " + t.HowEs,
		AnswerEn:   t.MeaningEn + " " + t.HowEn,
		Snippet:    example.Code,
		Position:   0,
	}
}

func buildExercise(name, language string, snippet domain.CodeSnippet) domain.Exercise {
	return domain.Exercise{
		ID:         uuid.New(),
		PromptEs:   synthExercisePromptEs(name),
		PromptEn:   synthExercisePromptEn(name),
		Difficulty: domain.DifficultyMedium,
		Solutions: []domain.Solution{{
			ID:            uuid.New(),
			Language:      language,
			Code:          snippet.Code,
			ExplanationEs: synthSolutionExplanationEs(name),
			ExplanationEn: synthSolutionExplanationEn(name),
			Position:      0,
		}},
		Position: 0,
	}
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(strings.TrimSpace(tag), want) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func cloneOrEmpty(s []string) []string {
	out := make([]string, 0, len(s))
	return append(out, s...)
}

// NormalizeCatalog normalizes a whole catalog, failing on the first invalid
// record with its index attached.
func NormalizeCatalog(catalog []domain.RawTermInput) ([]domain.Term, error) {
	terms := make([]domain.Term, 0, len(catalog))
	for i, raw := range catalog {
		t, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, raw.Term, err)
		}
		terms = append(terms, t)
	}
	return terms, nil
}
