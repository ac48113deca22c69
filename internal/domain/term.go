package domain

import (
	"time"

	"github.com/google/uuid"
)

// CodeSnippet is a titled, bilingual code example attached to a term.
// Notes are optional commentary shown under the rendered snippet.
type CodeSnippet struct {
	TitleEs string  `json:"titleEs"`
	TitleEn string  `json:"titleEn"`
	Code    string  `json:"code"`
	NotesEs *string `json:"notesEs,omitempty"`
	NotesEn *string `json:"notesEn,omitempty"`
}

// Variant is a language-tagged rendering of a term's primary example.
type Variant struct {
	ID       uuid.UUID  `json:"id"`
	Language string     `json:"language"`
	Code     string     `json:"code"`
	NotesEs  *string    `json:"notesEs,omitempty"`
	NotesEn  *string    `json:"notesEn,omitempty"`
	Level    SkillLevel `json:"level"`
	Position int        `json:"position"`
}

// UseCase is a bilingual, context-tagged explanation of how a term applies
// in practice (on a project, in an interview, while diagnosing a bug).
type UseCase struct {
	ID        uuid.UUID      `json:"id"`
	Context   UseCaseContext `json:"context"`
	SummaryEs string         `json:"summaryEs"`
	SummaryEn string         `json:"summaryEn"`
	StepsEs   string         `json:"stepsEs"`
	StepsEn   string         `json:"stepsEn"`
	TipsEs    string         `json:"tipsEs"`
	TipsEn    string         `json:"tipsEn"`
	Position  int            `json:"position"`
}

// FAQ is an interview-style question and answer about a term.
type FAQ struct {
	ID         uuid.UUID `json:"id"`
	QuestionEs string    `json:"questionEs"`
	QuestionEn string    `json:"questionEn"`
	AnswerEs   string    `json:"answerEs"`
	AnswerEn   string    `json:"answerEn"`
	Snippet    string    `json:"snippet"`
	Position   int       `json:"position"`
}

// Solution is one worked answer to an exercise.
type Solution struct {
	ID            uuid.UUID `json:"id"`
	Language      string    `json:"language"`
	Code          string    `json:"code"`
	ExplanationEs string    `json:"explanationEs"`
	ExplanationEn string    `json:"explanationEn"`
	Position      int       `json:"position"`
}

// Exercise is a practice prompt attached to a term.
type Exercise struct {
	ID         uuid.UUID  `json:"id"`
	PromptEs   string     `json:"promptEs"`
	PromptEn   string     `json:"promptEn"`
	Difficulty Difficulty `json:"difficulty"`
	Solutions  []Solution `json:"solutions"`
	Position   int        `json:"position"`
}

// Term is a fully populated glossary entry. It is produced by the catalog
// normalizer, folded by the merger, and persisted by the term repository.
// Name is the unique key (case-sensitive in storage, case-insensitive for
// dedup upstream).
type Term struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	TitleEs     string        `json:"titleEs"`
	TitleEn     string        `json:"titleEn"`
	Translation string        `json:"translation"`
	Category    Category      `json:"category"`
	MeaningEs   string        `json:"meaningEs"`
	MeaningEn   string        `json:"meaningEn"`
	WhatEs      string        `json:"whatEs"`
	WhatEn      string        `json:"whatEn"`
	HowEs       string        `json:"howEs"`
	HowEn       string        `json:"howEn"`
	Aliases     []string      `json:"aliases"`
	Tags        []string      `json:"tags"`
	Examples    []CodeSnippet `json:"examples"`
	Variants    []Variant     `json:"variants"`
	UseCases    []UseCase     `json:"useCases"`
	FAQs        []FAQ         `json:"faqs"`
	Exercises   []Exercise    `json:"exercises"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Key returns the case-insensitive dedup key for the term.
func (t Term) Key() string { return NormalizeKey(t.Name) }

// TermStats is the per-term counters row maintained best-effort by the
// seeding pipeline and incremented by the read side.
type TermStats struct {
	TermID       uuid.UUID  `json:"termId"`
	Views        int        `json:"views"`
	Searches     int        `json:"searches"`
	LastViewedAt *time.Time `json:"lastViewedAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
