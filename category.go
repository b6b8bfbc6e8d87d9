package findash

import "strings"

// SubCategory is a named leaf under a Category.
type SubCategory struct {
	ID   string
	Name string
}

// Category is one node of the two-level expense taxonomy.
type Category struct {
	ID            string
	Name          string
	SubCategories []SubCategory
}

// CategoryTree is an immutable snapshot of the category taxonomy.
//
// Every mutation returns a new tree, or an error with the receiver untouched;
// there is no partially-applied state. The caller serializes mutations: one
// edit produces the next snapshot before another is applied.
type CategoryTree struct {
	categories []Category
}

// NewCategoryTree builds a tree from a category list (e.g. loaded from the
// store). The list is copied.
func NewCategoryTree(categories []Category) CategoryTree {
	return CategoryTree{categories: cloneCategories(categories)}
}

func cloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c
		out[i].SubCategories = append([]SubCategory(nil), c.SubCategories...)
	}
	return out
}

// Categories returns a copy of the category list in insertion order.
func (ct CategoryTree) Categories() []Category { return cloneCategories(ct.categories) }

// Len returns the number of top-level categories.
func (ct CategoryTree) Len() int { return len(ct.categories) }

// Category returns the category with the given id, or nil if unknown.
func (ct CategoryTree) Category(id string) *Category {
	for i := range ct.categories {
		if ct.categories[i].ID == id {
			c := ct.categories[i]
			c.SubCategories = append([]SubCategory(nil), c.SubCategories...)
			return &c
		}
	}
	return nil
}

// Resolve reports whether a category name, and optionally a sub-category name
// under it, exist in the tree.
func (ct CategoryTree) Resolve(category, subCategory string) bool {
	for _, c := range ct.categories {
		if c.Name != category {
			continue
		}
		if subCategory == "" {
			return true
		}
		for _, s := range c.SubCategories {
			if s.Name == subCategory {
				return true
			}
		}
		return false
	}
	return false
}

// checkName trims and validates a candidate name, returning the trimmed form.
func checkName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationf("%s name is empty", kind)
	}
	return name, nil
}

// AddCategory returns a new tree with a category appended. The name must be
// non-empty after trimming and unique (case-sensitive) among categories.
func (ct CategoryTree) AddCategory(id, name string) (CategoryTree, error) {
	name, err := checkName("category", name)
	if err != nil {
		return ct, err
	}
	for _, c := range ct.categories {
		if c.Name == name {
			return ct, validationf("category %q already exists", name)
		}
	}
	next := cloneCategories(ct.categories)
	next = append(next, Category{ID: id, Name: name})
	return CategoryTree{categories: next}, nil
}

// RenameCategory returns a new tree with the category renamed, under the same
// uniqueness rule as AddCategory.
func (ct CategoryTree) RenameCategory(id, name string) (CategoryTree, error) {
	name, err := checkName("category", name)
	if err != nil {
		return ct, err
	}
	for _, c := range ct.categories {
		if c.Name == name && c.ID != id {
			return ct, validationf("category %q already exists", name)
		}
	}
	next := cloneCategories(ct.categories)
	for i := range next {
		if next[i].ID == id {
			next[i].Name = name
			return CategoryTree{categories: next}, nil
		}
	}
	return ct, &NotFoundError{Kind: "category", ID: id}
}

// DeleteCategory returns a new tree without the category. The delete cascades:
// all its sub-categories vanish with it; sibling categories are untouched.
func (ct CategoryTree) DeleteCategory(id string) (CategoryTree, error) {
	next := cloneCategories(ct.categories)
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			return CategoryTree{categories: next}, nil
		}
	}
	return ct, &NotFoundError{Kind: "category", ID: id}
}

// AddSubCategory returns a new tree with a sub-category appended under the
// given category. The name must be non-empty after trimming and unique within
// that parent; the same name may exist under a different parent.
func (ct CategoryTree) AddSubCategory(categoryID, id, name string) (CategoryTree, error) {
	name, err := checkName("sub-category", name)
	if err != nil {
		return ct, err
	}
	next := cloneCategories(ct.categories)
	for i := range next {
		if next[i].ID != categoryID {
			continue
		}
		for _, s := range next[i].SubCategories {
			if s.Name == name {
				return ct, validationf("sub-category %q already exists under %q", name, next[i].Name)
			}
		}
		next[i].SubCategories = append(next[i].SubCategories, SubCategory{ID: id, Name: name})
		return CategoryTree{categories: next}, nil
	}
	return ct, &NotFoundError{Kind: "category", ID: categoryID}
}

// RenameSubCategory returns a new tree with the sub-category renamed, under
// the same uniqueness rule as AddSubCategory.
func (ct CategoryTree) RenameSubCategory(categoryID, subID, name string) (CategoryTree, error) {
	name, err := checkName("sub-category", name)
	if err != nil {
		return ct, err
	}
	next := cloneCategories(ct.categories)
	for i := range next {
		if next[i].ID != categoryID {
			continue
		}
		for _, s := range next[i].SubCategories {
			if s.Name == name && s.ID != subID {
				return ct, validationf("sub-category %q already exists under %q", name, next[i].Name)
			}
		}
		for j := range next[i].SubCategories {
			if next[i].SubCategories[j].ID == subID {
				next[i].SubCategories[j].Name = name
				return CategoryTree{categories: next}, nil
			}
		}
		return ct, &NotFoundError{Kind: "sub-category", ID: subID}
	}
	return ct, &NotFoundError{Kind: "category", ID: categoryID}
}

// DeleteSubCategory returns a new tree without the sub-category. The parent
// category is unaffected.
func (ct CategoryTree) DeleteSubCategory(categoryID, subID string) (CategoryTree, error) {
	next := cloneCategories(ct.categories)
	for i := range next {
		if next[i].ID != categoryID {
			continue
		}
		for j := range next[i].SubCategories {
			if next[i].SubCategories[j].ID == subID {
				next[i].SubCategories = append(next[i].SubCategories[:j], next[i].SubCategories[j+1:]...)
				return CategoryTree{categories: next}, nil
			}
		}
		return ct, &NotFoundError{Kind: "sub-category", ID: subID}
	}
	return ct, &NotFoundError{Kind: "category", ID: categoryID}
}
