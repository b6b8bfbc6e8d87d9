package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// InvoicesMarkdown renders the invoice book and its revenue rollup.
func InvoicesMarkdown(invoices []findash.Invoice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Invoices")
	if len(invoices) == 0 {
		doc.PlainText("No invoices recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(invoices))
	for _, i := range invoices {
		rows = append(rows, []string{
			i.Client,
			i.DueDate.String(),
			string(i.Status),
			i.Amount.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Client", "Due", "Status", "Amount"},
		Rows:   rows,
	})

	s := findash.InvoiceStats(invoices)
	doc.PlainText(fmt.Sprintf("Paid: %s, Pending: %s, Overdue: %d invoice(s)",
		s.Paid, s.Pending, s.Overdue))

	return doc.String()
}
