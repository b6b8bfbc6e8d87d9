package findash

import (
	"errors"
	"testing"
)

func testTree(t *testing.T) CategoryTree {
	t.Helper()
	tree := NewCategoryTree(nil)
	var err error
	if tree, err = tree.AddCategory("c1", "Food"); err != nil {
		t.Fatalf("AddCategory error = %v", err)
	}
	if tree, err = tree.AddCategory("c2", "Housing"); err != nil {
		t.Fatalf("AddCategory error = %v", err)
	}
	if tree, err = tree.AddSubCategory("c1", "s1", "Groceries"); err != nil {
		t.Fatalf("AddSubCategory error = %v", err)
	}
	return tree
}

func TestAddCategoryDuplicate(t *testing.T) {
	tree := testTree(t)
	got, err := tree.AddCategory("c3", "Food")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	// the rejected tree is the receiver, unchanged
	if got.Len() != tree.Len() {
		t.Errorf("tree changed on rejected add: %d categories", got.Len())
	}
	// a different case is a different name
	if _, err := tree.AddCategory("c3", "food"); err != nil {
		t.Errorf("case-differing name rejected: %v", err)
	}
}

func TestAddCategoryTrimsName(t *testing.T) {
	tree := NewCategoryTree(nil)
	tree, err := tree.AddCategory("c1", "  Food  ")
	if err != nil {
		t.Fatalf("AddCategory error = %v", err)
	}
	if got := tree.Category("c1").Name; got != "Food" {
		t.Errorf("Name = %q, want trimmed Food", got)
	}
	if _, err := tree.AddCategory("c2", "   "); err == nil {
		t.Error("blank name was accepted")
	}
}

func TestAddSubCategoryScopedUniqueness(t *testing.T) {
	tree := testTree(t)
	// duplicate under the same parent is rejected
	if _, err := tree.AddSubCategory("c1", "s2", "Groceries"); err == nil {
		t.Error("duplicate sub-category accepted under the same parent")
	}
	// same name under a different parent is fine
	if _, err := tree.AddSubCategory("c2", "s2", "Groceries"); err != nil {
		t.Errorf("same name under another parent rejected: %v", err)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	tree := testTree(t)
	next, err := tree.DeleteCategory("c1")
	if err != nil {
		t.Fatalf("DeleteCategory error = %v", err)
	}
	if next.Category("c1") != nil {
		t.Error("category survived its delete")
	}
	if next.Resolve("Food", "Groceries") {
		t.Error("sub-category survived its parent's delete")
	}
	// siblings untouched
	if next.Category("c2") == nil {
		t.Error("sibling category vanished")
	}
	// the original snapshot is untouched
	if tree.Category("c1") == nil {
		t.Error("original tree mutated")
	}
}

func TestDeleteUnknown(t *testing.T) {
	tree := testTree(t)
	var nf *NotFoundError
	if _, err := tree.DeleteCategory("nope"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if _, err := tree.DeleteSubCategory("c1", "nope"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if _, err := tree.RenameCategory("nope", "x"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tree := testTree(t)
	tests := []struct {
		category, sub string
		want          bool
	}{
		{"Food", "", true},
		{"Food", "Groceries", true},
		{"Food", "Restaurants", false},
		{"Housing", "", true},
		{"Housing", "Groceries", false},
		{"Travel", "", false},
	}
	for _, tc := range tests {
		if got := tree.Resolve(tc.category, tc.sub); got != tc.want {
			t.Errorf("Resolve(%q, %q) = %v, want %v", tc.category, tc.sub, got, tc.want)
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	tree := testTree(t)
	list := tree.Categories()
	list[0].Name = "hacked"
	list[0].SubCategories[0].Name = "hacked"
	if tree.Category("c1").Name != "Food" {
		t.Error("mutating the returned list mutated the tree")
	}
	if !tree.Resolve("Food", "Groceries") {
		t.Error("mutating a returned sub-category mutated the tree")
	}
}
