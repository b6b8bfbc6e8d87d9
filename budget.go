package findash

import "strings"

// Budget tracks spending against an allocation for one category.
type Budget struct {
	ID        string
	Category  string
	Allocated Money
	Spent     Money
}

// Validate checks the budget's invariants.
func (b Budget) Validate() error {
	if b.ID == "" {
		return validationf("budget id is missing")
	}
	if strings.TrimSpace(b.Category) == "" {
		return validationf("budget category is empty")
	}
	if !b.Allocated.IsPositive() {
		return validationf("budget %s allocation must be positive, got %s", b.Category, b.Allocated)
	}
	if b.Spent.IsNegative() {
		return validationf("budget %s spent amount %s is negative", b.Category, b.Spent)
	}
	return nil
}

// Progress returns spent/allocated ×100, unclamped (it may exceed 100%).
// A zero allocation yields 0, never NaN or Inf.
func (b Budget) Progress() Percent { return b.Spent.PercentOf(b.Allocated) }

// Goal is a savings target.
type Goal struct {
	ID     string
	Name   string
	Target Money
	Saved  Money
	Emoji  string
}

// Validate checks the goal's invariants.
func (g Goal) Validate() error {
	if g.ID == "" {
		return validationf("goal id is missing")
	}
	if strings.TrimSpace(g.Name) == "" {
		return validationf("goal name is empty")
	}
	if !g.Target.IsPositive() {
		return validationf("goal %s target must be positive, got %s", g.Name, g.Target)
	}
	if g.Saved.IsNegative() {
		return validationf("goal %s saved amount %s is negative", g.Name, g.Saved)
	}
	return nil
}

// Progress returns saved/target ×100 with the same zero guard as
// Budget.Progress.
func (g Goal) Progress() Percent { return g.Saved.PercentOf(g.Target) }
