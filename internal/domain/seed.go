package domain

// RawTermInput is an author-supplied catalog record. Only Term, Translation,
// Category and Example are required; everything else is synthesized by the
// normalizer when absent.
type RawTermInput struct {
	Term          string
	Translation   string
	Category      Category
	DescriptionEs string
	DescriptionEn string
	Aliases       []string
	Tags          []string

	// Example is the primary snippet. ExerciseExample, when set, is used for
	// the practice exercise (and doubles as the second example for
	// tailwind-tagged terms). SecondExample is an optional extra snippet.
	Example         CodeSnippet
	ExerciseExample *CodeSnippet
	SecondExample   *CodeSnippet

	// Optional overrides; empty means "synthesize from category templates".
	WhatEs string
	WhatEn string
	HowEs  string
	HowEn  string

	// LanguageOverride forces the variant/exercise language instead of the
	// category default.
	LanguageOverride string
}

// SeedBatchResult reports the outcome of one batch-upsert invocation.
// It is constructed fresh per call and never mutated after return.
type SeedBatchResult struct {
	Processed         int  `json:"processed"`
	Remaining         int  `json:"remaining"`
	TotalMissing      int  `json:"totalMissing"`
	Completed         bool `json:"completed"`
	BatchLimitReached bool `json:"batchLimitReached"`
	TimeBudgetReached bool `json:"timeBudgetReached"`
}
