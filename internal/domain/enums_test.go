package domain

import "testing"

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories() {
		if !c.IsValid() {
			t.Errorf("category %q should be valid", c)
		}
	}

	for _, c := range []Category{"", "FRONTEND", "css", "fullstack"} {
		if c.IsValid() {
			t.Errorf("category %q should be invalid", c)
		}
	}
}

func TestUseCaseContextIsValid(t *testing.T) {
	for _, u := range []UseCaseContext{UseCaseProject, UseCaseInterview, UseCaseBug} {
		if !u.IsValid() {
			t.Errorf("use-case context %q should be valid", u)
		}
	}
	if UseCaseContext("kanban").IsValid() {
		t.Error("unknown use-case context should be invalid")
	}
}

func TestChildrenPolicyIsValid(t *testing.T) {
	if !ChildrenPreserve.IsValid() || !ChildrenReplace.IsValid() {
		t.Error("known policies should be valid")
	}
	if ChildrenPolicy("merge").IsValid() {
		t.Error("unknown policy should be invalid")
	}
}
