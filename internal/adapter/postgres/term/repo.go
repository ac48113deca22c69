// Package term implements term persistence using PostgreSQL. Scalar fields
// live on the terms table (aliases/tags as text[], examples as a jsonb blob);
// child collections live in their own tables keyed by term_id.
package term

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glosariodev/glosario-backend/internal/adapter/postgres"
	"github.com/glosariodev/glosario-backend/internal/domain"
)

// Repo provides term persistence backed by PostgreSQL. It implements the
// seeder's store interface plus the read side the glossary UI consumes.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new term repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

const scalarColumns = `id, name, slug, title_es, title_en, translation, category,
meaning_es, meaning_en, what_es, what_en, how_es, how_en,
aliases, tags, examples, created_at, updated_at`

// upsertTermSQL inserts a term keyed by its unique name. On conflict the
// scalar fields are refreshed; created_at keeps the original value. The
// (xmax = 0) trick reports whether this statement inserted a new row.
const upsertTermSQL = `
INSERT INTO terms (
    id, name, slug, title_es, title_en, translation, category,
    meaning_es, meaning_en, what_es, what_en, how_es, how_en,
    aliases, tags, examples, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (name) DO UPDATE SET
    slug        = EXCLUDED.slug,
    title_es    = EXCLUDED.title_es,
    title_en    = EXCLUDED.title_en,
    translation = EXCLUDED.translation,
    category    = EXCLUDED.category,
    meaning_es  = EXCLUDED.meaning_es,
    meaning_en  = EXCLUDED.meaning_en,
    what_es     = EXCLUDED.what_es,
    what_en     = EXCLUDED.what_en,
    how_es      = EXCLUDED.how_es,
    how_en      = EXCLUDED.how_en,
    aliases     = EXCLUDED.aliases,
    tags        = EXCLUDED.tags,
    examples    = EXCLUDED.examples,
    updated_at  = EXCLUDED.updated_at
RETURNING id, (xmax = 0) AS inserted`

// ---------------------------------------------------------------------------
// Seeder store interface
// ---------------------------------------------------------------------------

// CountTerms returns the number of persisted terms.
func (r *Repo) CountTerms(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, `SELECT count(*) FROM terms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}

	return count, nil
}

// ListTermNames returns the set of persisted term names keyed by their
// lowercased form, matching the pipeline's case-insensitive dedup key.
func (r *Repo) ListTermNames(ctx context.Context) (map[string]bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, `SELECT lower(name) FROM terms`)
	if err != nil {
		return nil, fmt.Errorf("list term names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list term names: %w", err)
		}
		names[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list term names: %w", err)
	}

	return names, nil
}

// UpsertTerm inserts or refreshes a term in one transaction. On insert all
// child collections are created alongside the scalar row. On update only the
// scalar fields and the examples blob change, unless the policy is
// ChildrenReplace, in which case the children are dropped and recreated from
// the incoming term.
func (r *Repo) UpsertTerm(ctx context.Context, t domain.Term, policy domain.ChildrenPolicy) (bool, error) {
	examples, err := json.Marshal(t.Examples)
	if err != nil {
		return false, fmt.Errorf("marshal examples for %q: %w", t.Name, err)
	}

	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var inserted bool
	err = r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)
		now := time.Now().UTC().Truncate(time.Microsecond)

		var termID uuid.UUID
		row := querier.QueryRow(txCtx, upsertTermSQL,
			id, t.Name, t.Slug, t.TitleEs, t.TitleEn, t.Translation, string(t.Category),
			t.MeaningEs, t.MeaningEn, t.WhatEs, t.WhatEn, t.HowEs, t.HowEn,
			t.Aliases, t.Tags, examples, now, now,
		)
		if err := row.Scan(&termID, &inserted); err != nil {
			return postgres.MapError(err, "term", t.Name)
		}

		if !inserted {
			if policy != domain.ChildrenReplace {
				return nil
			}
			if err := deleteChildren(txCtx, querier, termID); err != nil {
				return postgres.MapError(err, "term", t.Name)
			}
		}

		if err := insertChildren(txCtx, querier, termID, t); err != nil {
			return postgres.MapError(err, "term", t.Name)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}

// EnsureStatsRow creates the per-term stats row if absent. Keyed by name so
// it targets the persisted row even when an upsert hit the update path.
func (r *Repo) EnsureStatsRow(ctx context.Context, name string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, `
INSERT INTO term_stats (term_id, updated_at)
SELECT id, now() FROM terms WHERE name = $1
ON CONFLICT (term_id) DO NOTHING`, name)
	if err != nil {
		return postgres.MapError(err, "term stats", name)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

// Search returns terms whose name, translation or aliases contain the query
// as a case-insensitive substring, ordered by name. Children are not loaded;
// the list view only needs the scalar fields. An empty query lists the first
// limit terms.
func (r *Repo) Search(ctx context.Context, query string, limit int) ([]domain.Term, error) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(scalarColumns).
		From("terms").
		OrderBy("name ASC").
		Limit(uint64(limit))

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"translation": pattern},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(aliases) alias WHERE alias ILIKE ?)", pattern),
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}
	defer rows.Close()

	terms := []domain.Term{}
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("search terms: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}

	return terms, nil
}

// GetBySlug returns one fully populated term (scalars plus all child
// collections). Returns domain.ErrNotFound when the slug is unknown.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, `SELECT `+scalarColumns+` FROM terms WHERE slug = $1`, slug)

	t, err := scanTerm(row)
	if err != nil {
		return nil, postgres.MapError(err, "term", slug)
	}

	if err := r.loadChildren(ctx, querier, &t); err != nil {
		return nil, postgres.MapError(err, "term", slug)
	}

	return &t, nil
}

// ---------------------------------------------------------------------------
// Child collections
// ---------------------------------------------------------------------------

// deleteChildren drops every child row of a term. Exercise solutions go via
// ON DELETE CASCADE on term_exercises.
func deleteChildren(ctx context.Context, querier postgres.Querier, termID uuid.UUID) error {
	for _, table := range []string{"term_variants", "term_use_cases", "term_faqs", "term_exercises"} {
		if _, err := querier.Exec(ctx, `DELETE FROM `+table+` WHERE term_id = $1`, termID); err != nil {
			return err
		}
	}
	return nil
}

// insertChildren queues all child inserts into one pgx batch and sends it.
func insertChildren(ctx context.Context, querier postgres.Querier, termID uuid.UUID, t domain.Term) error {
	batch := &pgx.Batch{}

	for _, v := range t.Variants {
		batch.Queue(`
INSERT INTO term_variants (id, term_id, language, code, notes_es, notes_en, level, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			orNewID(v.ID), termID, v.Language, v.Code, v.NotesEs, v.NotesEn, string(v.Level), v.Position)
	}

	for _, uc := range t.UseCases {
		batch.Queue(`
INSERT INTO term_use_cases (id, term_id, context, summary_es, summary_en, steps_es, steps_en, tips_es, tips_en, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			orNewID(uc.ID), termID, string(uc.Context), uc.SummaryEs, uc.SummaryEn, uc.StepsEs, uc.StepsEn, uc.TipsEs, uc.TipsEn, uc.Position)
	}

	for _, f := range t.FAQs {
		batch.Queue(`
INSERT INTO term_faqs (id, term_id, question_es, question_en, answer_es, answer_en, snippet, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			orNewID(f.ID), termID, f.QuestionEs, f.QuestionEn, f.AnswerEs, f.AnswerEn, f.Snippet, f.Position)
	}

	for _, ex := range t.Exercises {
		exID := orNewID(ex.ID)
		batch.Queue(`
INSERT INTO term_exercises (id, term_id, prompt_es, prompt_en, difficulty, position)
VALUES ($1, $2, $3, $4, $5, $6)`,
			exID, termID, ex.PromptEs, ex.PromptEn, string(ex.Difficulty), ex.Position)

		for _, s := range ex.Solutions {
			batch.Queue(`
INSERT INTO term_exercise_solutions (id, exercise_id, language, code, explanation_es, explanation_en, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				orNewID(s.ID), exID, s.Language, s.Code, s.ExplanationEs, s.ExplanationEn, s.Position)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

func (r *Repo) loadChildren(ctx context.Context, querier postgres.Querier, t *domain.Term) error {
	if err := loadVariants(ctx, querier, t); err != nil {
		return err
	}
	if err := loadUseCases(ctx, querier, t); err != nil {
		return err
	}
	if err := loadFAQs(ctx, querier, t); err != nil {
		return err
	}
	return loadExercises(ctx, querier, t)
}

func loadVariants(ctx context.Context, querier postgres.Querier, t *domain.Term) error {
	rows, err := querier.Query(ctx, `
SELECT id, language, code, notes_es, notes_en, level, position
FROM term_variants WHERE term_id = $1 ORDER BY position`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	t.Variants = []domain.Variant{}
	for rows.Next() {
		var v domain.Variant
		var level string
		if err := rows.Scan(&v.ID, &v.Language, &v.Code, &v.NotesEs, &v.NotesEn, &level, &v.Position); err != nil {
			return err
		}
		v.Level = domain.SkillLevel(level)
		t.Variants = append(t.Variants, v)
	}
	return rows.Err()
}

func loadUseCases(ctx context.Context, querier postgres.Querier, t *domain.Term) error {
	rows, err := querier.Query(ctx, `
SELECT id, context, summary_es, summary_en, steps_es, steps_en, tips_es, tips_en, position
FROM term_use_cases WHERE term_id = $1 ORDER BY position`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	t.UseCases = []domain.UseCase{}
	for rows.Next() {
		var uc domain.UseCase
		var uctx string
		if err := rows.Scan(&uc.ID, &uctx, &uc.SummaryEs, &uc.SummaryEn, &uc.StepsEs, &uc.StepsEn, &uc.TipsEs, &uc.TipsEn, &uc.Position); err != nil {
			return err
		}
		uc.Context = domain.UseCaseContext(uctx)
		t.UseCases = append(t.UseCases, uc)
	}
	return rows.Err()
}

func loadFAQs(ctx context.Context, querier postgres.Querier, t *domain.Term) error {
	rows, err := querier.Query(ctx, `
SELECT id, question_es, question_en, answer_es, answer_en, snippet, position
FROM term_faqs WHERE term_id = $1 ORDER BY position`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	t.FAQs = []domain.FAQ{}
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.QuestionEs, &f.QuestionEn, &f.AnswerEs, &f.AnswerEn, &f.Snippet, &f.Position); err != nil {
			return err
		}
		t.FAQs = append(t.FAQs, f)
	}
	return rows.Err()
}

func loadExercises(ctx context.Context, querier postgres.Querier, t *domain.Term) error {
	rows, err := querier.Query(ctx, `
SELECT id, prompt_es, prompt_en, difficulty, position
FROM term_exercises WHERE term_id = $1 ORDER BY position`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	t.Exercises = []domain.Exercise{}
	for rows.Next() {
		var ex domain.Exercise
		var difficulty string
		if err := rows.Scan(&ex.ID, &ex.PromptEs, &ex.PromptEn, &difficulty, &ex.Position); err != nil {
			return err
		}
		ex.Difficulty = domain.Difficulty(difficulty)
		ex.Solutions = []domain.Solution{}
		t.Exercises = append(t.Exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(t.Exercises) == 0 {
		return nil
	}

	solRows, err := querier.Query(ctx, `
SELECT s.id, s.exercise_id, s.language, s.code, s.explanation_es, s.explanation_en, s.position
FROM term_exercise_solutions s
JOIN term_exercises e ON e.id = s.exercise_id
WHERE e.term_id = $1
ORDER BY s.exercise_id, s.position`, t.ID)
	if err != nil {
		return err
	}
	defer solRows.Close()

	byExercise := make(map[uuid.UUID][]domain.Solution)
	for solRows.Next() {
		var s domain.Solution
		var exID uuid.UUID
		if err := solRows.Scan(&s.ID, &exID, &s.Language, &s.Code, &s.ExplanationEs, &s.ExplanationEn, &s.Position); err != nil {
			return err
		}
		byExercise[exID] = append(byExercise[exID], s)
	}
	if err := solRows.Err(); err != nil {
		return err
	}

	for i := range t.Exercises {
		if sols, ok := byExercise[t.Exercises[i].ID]; ok {
			t.Exercises[i].Solutions = sols
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanTerm scans the scalar columns of one terms row. Child collections are
// left empty.
func scanTerm(row pgx.Row) (domain.Term, error) {
	var (
		t        domain.Term
		category string
		examples []byte
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.TitleEs, &t.TitleEn, &t.Translation, &category,
		&t.MeaningEs, &t.MeaningEn, &t.WhatEs, &t.WhatEn, &t.HowEs, &t.HowEn,
		&t.Aliases, &t.Tags, &examples, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Term{}, err
	}

	t.Category = domain.Category(category)
	if len(examples) > 0 {
		if err := json.Unmarshal(examples, &t.Examples); err != nil {
			return domain.Term{}, fmt.Errorf("unmarshal examples: %w", err)
		}
	}
	if t.Examples == nil {
		t.Examples = []domain.CodeSnippet{}
	}

	return t, nil
}

// orNewID keeps a pre-assigned child ID and mints one for zero values.
func orNewID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
