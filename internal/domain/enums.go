package domain

// Category classifies a glossary term by the part of the stack it belongs to.
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "database"
	CategoryDevOps   Category = "devops"
	CategoryGeneral  Category = "general"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryDevOps, CategoryGeneral:
		return true
	}
	return false
}

// AllCategories returns the closed set of known categories.
func AllCategories() []Category {
	return []Category{CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryDevOps, CategoryGeneral}
}

// UseCaseContext tags a use-case write-up with the situation it describes.
type UseCaseContext string

const (
	UseCaseProject   UseCaseContext = "project"
	UseCaseInterview UseCaseContext = "interview"
	UseCaseBug       UseCaseContext = "bug"
)

func (u UseCaseContext) String() string { return string(u) }

func (u UseCaseContext) IsValid() bool {
	switch u {
	case UseCaseProject, UseCaseInterview, UseCaseBug:
		return true
	}
	return false
}

// SkillLevel is the audience level of a code variant.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (s SkillLevel) String() string { return string(s) }

func (s SkillLevel) IsValid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// Difficulty grades a practice exercise.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ChildrenPolicy decides what happens to a term's child collections
// (variants, use-cases, FAQs, exercises) when an existing row is updated.
// Inserts always create children; the policy only affects updates.
type ChildrenPolicy string

const (
	// ChildrenPreserve leaves existing child rows untouched on update.
	ChildrenPreserve ChildrenPolicy = "preserve"
	// ChildrenReplace deletes and recreates child rows on update.
	ChildrenReplace ChildrenPolicy = "replace"
)

func (p ChildrenPolicy) String() string { return string(p) }

func (p ChildrenPolicy) IsValid() bool {
	switch p {
	case ChildrenPreserve, ChildrenReplace:
		return true
	}
	return false
}
