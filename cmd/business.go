package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/findash/findash"
	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

// invoicesCmd holds the flags for the 'invoices' subcommand.
type invoicesCmd struct {
	csv bool
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "display the invoice book with revenue totals" }
func (*invoicesCmd) Usage() string {
	return `fds invoices [-csv]

  Displays every invoice with paid and pending revenue totals. With -csv the
  raw invoice table is written to stdout.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "write invoices as CSV to stdout")
}

func (c *invoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.csv {
		if err := findash.ExportCSV(os.Stdout, d.Invoices); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.InvoicesMarkdown(d.Invoices))
	return subcommands.ExitSuccess
}

// addInvoiceCmd holds the flags for the 'add-invoice' subcommand.
type addInvoiceCmd struct {
	client string
	due    string
	status string
	amount string
}

func (*addInvoiceCmd) Name() string     { return "add-invoice" }
func (*addInvoiceCmd) Synopsis() string { return "record a client invoice" }
func (*addInvoiceCmd) Usage() string {
	return `fds add-invoice -client <name> -due <date> -amount <value> [-status paid|pending|overdue]

  Records an invoice owed by a client.
`
}

func (c *addInvoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client the invoice is billed to")
	f.StringVar(&c.due, "due", "", "Due date (YYYY-MM-DD)")
	f.StringVar(&c.status, "status", string(findash.Pending), "Invoice status: paid, pending or overdue")
	f.StringVar(&c.amount, "amount", "", "Billed amount")
}

func (c *addInvoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := findash.ParseDate(c.due)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := findash.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	i := findash.Invoice{
		ID:      findash.NewID(),
		Client:  c.client,
		DueDate: due,
		Status:  findash.InvoiceStatus(strings.ToUpper(c.status)),
		Amount:  amount,
	}
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddInvoice(i)
	})
}
