//go:build integration

package term

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/glosariodev/glosario-backend/internal/adapter/postgres"
	"github.com/glosariodev/glosario-backend/internal/adapter/postgres/testhelper"
	"github.com/glosariodev/glosario-backend/internal/domain"
)

func setupRepo(t *testing.T) (*Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	repo := New(pool, postgres.NewTxManager(pool))
	cleanTerms(t, pool)
	t.Cleanup(func() { cleanTerms(t, pool) })
	return repo, pool
}

func cleanTerms(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	// terms cascades into every child table and term_stats.
	_, err := pool.Exec(context.Background(), "DELETE FROM terms")
	require.NoError(t, err)
}

func fullTerm(name string) domain.Term {
	notes := "nota"
	return domain.Term{
		ID:          uuid.New(),
		Name:        name,
		Slug:        domain.Slugify(name),
		TitleEs:     name + " (es)",
		TitleEn:     name,
		Translation: "traducción",
		Category:    domain.CategoryFrontend,
		MeaningEs:   "significado",
		MeaningEn:   "meaning",
		WhatEs:      "qué es",
		WhatEn:      "what it is",
		HowEs:       "cómo se usa",
		HowEn:       "how it is used",
		Aliases:     []string{name + " alias"},
		Tags:        []string{"css"},
		Examples: []domain.CodeSnippet{
			{TitleEs: "Ejemplo", TitleEn: "Example", Code: "code-a", NotesEs: &notes},
			{TitleEs: "Segundo", TitleEn: "Second", Code: "code-b"},
		},
		Variants: []domain.Variant{
			{ID: uuid.New(), Language: "css", Code: "code-a", Level: domain.SkillBeginner},
		},
		UseCases: []domain.UseCase{
			{ID: uuid.New(), Context: domain.UseCaseProject, SummaryEs: "s", SummaryEn: "s", StepsEs: "p", StepsEn: "p", TipsEs: "t", TipsEn: "t"},
			{ID: uuid.New(), Context: domain.UseCaseInterview, SummaryEs: "s", SummaryEn: "s", StepsEs: "p", StepsEn: "p", TipsEs: "t", TipsEn: "t", Position: 1},
			{ID: uuid.New(), Context: domain.UseCaseBug, SummaryEs: "s", SummaryEn: "s", StepsEs: "p", StepsEn: "p", TipsEs: "t", TipsEn: "t", Position: 2},
		},
		FAQs: []domain.FAQ{
			{ID: uuid.New(), QuestionEs: "¿q?", QuestionEn: "q?", AnswerEs: "a", AnswerEn: "a", Snippet: "code-a"},
		},
		Exercises: []domain.Exercise{
			{
				ID: uuid.New(), PromptEs: "haz", PromptEn: "do", Difficulty: domain.DifficultyMedium,
				Solutions: []domain.Solution{
					{ID: uuid.New(), Language: "css", Code: "code-a", ExplanationEs: "e", ExplanationEn: "e"},
				},
			},
		},
	}
}

func TestUpsertTerm_InsertCreatesChildren(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	inserted, err := repo.UpsertTerm(ctx, fullTerm("flexbox"), domain.ChildrenPreserve)
	require.NoError(t, err)
	assert.True(t, inserted)

	got, err := repo.GetBySlug(ctx, "flexbox")
	require.NoError(t, err)

	assert.Equal(t, "flexbox", got.Name)
	assert.Equal(t, []string{"flexbox alias"}, got.Aliases)
	assert.Len(t, got.Examples, 2)
	require.NotNil(t, got.Examples[0].NotesEs)
	assert.Equal(t, "nota", *got.Examples[0].NotesEs)
	assert.Len(t, got.Variants, 1)
	assert.Len(t, got.UseCases, 3)
	assert.Len(t, got.FAQs, 1)
	require.Len(t, got.Exercises, 1)
	assert.Len(t, got.Exercises[0].Solutions, 1)
}

func TestUpsertTerm_UpdatePreservesChildren(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	first := fullTerm("grid")
	_, err := repo.UpsertTerm(ctx, first, domain.ChildrenPreserve)
	require.NoError(t, err)

	// Same name, fresh identity and children; scalars changed.
	second := fullTerm("grid")
	second.MeaningEn = "updated meaning"
	second.Examples = []domain.CodeSnippet{{TitleEs: "Nuevo", TitleEn: "New", Code: "code-c"}}

	inserted, err := repo.UpsertTerm(ctx, second, domain.ChildrenPreserve)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetBySlug(ctx, "grid")
	require.NoError(t, err)

	// Row identity and children survive; scalars and examples refresh.
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "updated meaning", got.MeaningEn)
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "code-c", got.Examples[0].Code)
	assert.Equal(t, first.Variants[0].ID, got.Variants[0].ID)
	assert.Len(t, got.UseCases, 3)
}

func TestUpsertTerm_UpdateReplacesChildrenUnderReplacePolicy(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	first := fullTerm("hover")
	_, err := repo.UpsertTerm(ctx, first, domain.ChildrenPreserve)
	require.NoError(t, err)

	second := fullTerm("hover")
	second.UseCases = second.UseCases[:1]

	inserted, err := repo.UpsertTerm(ctx, second, domain.ChildrenReplace)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetBySlug(ctx, "hover")
	require.NoError(t, err)

	assert.Len(t, got.UseCases, 1)
	assert.NotEqual(t, first.Variants[0].ID, got.Variants[0].ID)
	require.Len(t, got.Exercises, 1)
	assert.Len(t, got.Exercises[0].Solutions, 1)
}

func TestCountAndListTermNames(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	count, err := repo.CountTerms(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.UpsertTerm(ctx, fullTerm("Flexbox"), domain.ChildrenPreserve)
	require.NoError(t, err)
	_, err = repo.UpsertTerm(ctx, fullTerm("grid"), domain.ChildrenPreserve)
	require.NoError(t, err)

	count, err = repo.CountTerms(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	names, err := repo.ListTermNames(ctx)
	require.NoError(t, err)
	assert.True(t, names["flexbox"], "names must be lowercased")
	assert.True(t, names["grid"])
	assert.False(t, names["Flexbox"])
}

func TestEnsureStatsRow(t *testing.T) {
	repo, pool := setupRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertTerm(ctx, fullTerm("truncate"), domain.ChildrenPreserve)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureStatsRow(ctx, "truncate"))
	// Idempotent.
	require.NoError(t, repo.EnsureStatsRow(ctx, "truncate"))
	// Unknown names are a silent no-op.
	require.NoError(t, repo.EnsureStatsRow(ctx, "nope"))

	var rows int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM term_stats").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSearch(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	flexbox := fullTerm("flexbox")
	flexbox.Translation = "caja flexible"
	flexbox.Aliases = []string{"flexible box"}
	grid := fullTerm("grid")
	grid.Translation = "rejilla"

	for _, term := range []domain.Term{flexbox, grid} {
		_, err := repo.UpsertTerm(ctx, term, domain.ChildrenPreserve)
		require.NoError(t, err)
	}

	t.Run("matches name substring case-insensitively", func(t *testing.T) {
		got, err := repo.Search(ctx, "FLEX", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "flexbox", got[0].Name)
	})

	t.Run("matches translation", func(t *testing.T) {
		got, err := repo.Search(ctx, "rejilla", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "grid", got[0].Name)
	})

	t.Run("matches aliases", func(t *testing.T) {
		got, err := repo.Search(ctx, "flexible box", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "flexbox", got[0].Name)
	})

	t.Run("empty query lists up to limit", func(t *testing.T) {
		got, err := repo.Search(ctx, "", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got, err := repo.Search(ctx, "zzz", 10)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
