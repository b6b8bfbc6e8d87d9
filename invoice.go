package findash

import "strings"

// InvoiceStatus is the payment state of a business invoice.
type InvoiceStatus string

const (
	Paid    InvoiceStatus = "PAID"
	Pending InvoiceStatus = "PENDING"
	Overdue InvoiceStatus = "OVERDUE"
)

// Invoice is a billed amount owed by a client.
type Invoice struct {
	ID      string
	Client  string
	DueDate Date
	Status  InvoiceStatus
	Amount  Money
}

// Validate checks the invoice's invariants.
func (i Invoice) Validate() error {
	if i.ID == "" {
		return validationf("invoice id is missing")
	}
	if strings.TrimSpace(i.Client) == "" {
		return validationf("invoice client is empty")
	}
	if i.DueDate.IsZero() {
		return validationf("invoice due date is missing")
	}
	switch i.Status {
	case Paid, Pending, Overdue:
	default:
		return validationf("unknown invoice status %q", i.Status)
	}
	if !i.Amount.IsPositive() {
		return validationf("invoice %s amount must be positive, got %s", i.ID, i.Amount)
	}
	return nil
}

// Header implements Tabular with the canonical field names.
func (i Invoice) Header() []string {
	return []string{"id", "client", "dueDate", "status", "amount"}
}

// Row implements Tabular.
func (i Invoice) Row() []any {
	return []any{i.ID, i.Client, i.DueDate, string(i.Status), i.Amount}
}
