package findash

import "strings"

// TransactionType is a typed string discriminating income from expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", validationf("unknown transaction type %q, want %q or %q", s, Income, Expense)
	}
}

// Transaction is a single income or expense movement.
//
// The amount is signed by convention: income is positive, expense is
// negative, and Type must agree with the sign. Category and SubCategory
// reference the category tree by name.
type Transaction struct {
	ID          string
	Date        Date
	Description string
	Amount      Money
	Category    string
	SubCategory string
	Type        TransactionType
}

// NewTransaction builds a transaction from a positive magnitude, applying the
// sign convention for the given type.
func NewTransaction(id string, day Date, description string, magnitude Money, category, subCategory string, typ TransactionType) Transaction {
	amount := magnitude.Abs()
	if typ == Expense {
		amount = amount.Neg()
	}
	return Transaction{
		ID:          id,
		Date:        day,
		Description: description,
		Amount:      amount,
		Category:    category,
		SubCategory: subCategory,
		Type:        typ,
	}
}

// Validate checks the transaction's own invariants. Category resolution
// against the tree is the Dashboard's job.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return validationf("transaction id is missing")
	}
	if t.Date.IsZero() {
		return validationf("transaction date is missing")
	}
	if strings.TrimSpace(t.Description) == "" {
		return validationf("transaction description is empty")
	}
	if strings.TrimSpace(t.Category) == "" {
		return validationf("transaction category is empty")
	}
	if t.Amount.IsZero() {
		return validationf("transaction amount is zero")
	}
	switch t.Type {
	case Income:
		if t.Amount.IsNegative() {
			return validationf("income transaction %q has a negative amount %s", t.Description, t.Amount)
		}
	case Expense:
		if t.Amount.IsPositive() {
			return validationf("expense transaction %q has a positive amount %s", t.Description, t.Amount)
		}
	default:
		return validationf("unknown transaction type %q", t.Type)
	}
	return nil
}

// Header implements Tabular with the canonical field names.
func (t Transaction) Header() []string {
	return []string{"id", "date", "description", "amount", "category", "subCategory", "type"}
}

// Row implements Tabular.
func (t Transaction) Row() []any {
	var sub any
	if t.SubCategory != "" {
		sub = t.SubCategory
	}
	return []any{t.ID, t.Date, t.Description, t.Amount, t.Category, sub, string(t.Type)}
}
