package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	csv bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions with totals and expense breakdown" }
func (*txCmd) Usage() string {
	return `fds tx [-csv]

  Lists all transactions, most recent first, with income/expense totals and
  the per-category expense breakdown. With -csv the raw transaction table is
  written to stdout instead.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "write transactions as CSV to stdout")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.csv {
		if err := findash.ExportCSV(os.Stdout, d.Transactions); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TransactionsMarkdown(d.Transactions))
	return subcommands.ExitSuccess
}

// addTxCmd holds the flags for the 'add-tx' subcommand.
type addTxCmd struct {
	date        string
	description string
	amount      string
	category    string
	sub         string
	typ         string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addTxCmd) Usage() string {
	return `fds add-tx -desc <text> -amount <value> -cat <category> [-sub <sub-category>] [-type income|expense] [-d <date>]

  Records a transaction. The amount is a positive magnitude; the sign is
  derived from the type (expenses are stored negative).

Usage Examples:
$ fds add-tx -desc "Salary" -amount 5000 -cat Income -type income
$ fds add-tx -desc "Groceries" -amount 150.75 -cat Food -sub Groceries
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", findash.Today().String(), "Date of the transaction (YYYY-MM-DD)")
	f.StringVar(&c.description, "desc", "", "Description of the transaction")
	f.StringVar(&c.amount, "amount", "", "Positive amount of the transaction")
	f.StringVar(&c.category, "cat", "", "Category name")
	f.StringVar(&c.sub, "sub", "", "Sub-category name (optional)")
	f.StringVar(&c.typ, "type", string(findash.Expense), "Transaction type: income or expense")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := findash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := findash.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	typ, err := findash.ParseTransactionType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx := findash.NewTransaction(findash.NewID(), day, c.description, amount, c.category, c.sub, typ)
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.AddTransaction(tx)
	})
}

// delTxCmd holds the flags for the 'del-tx' subcommand.
type delTxCmd struct {
	id string
}

func (*delTxCmd) Name() string     { return "del-tx" }
func (*delTxCmd) Synopsis() string { return "delete a transaction by id" }
func (*delTxCmd) Usage() string {
	return `fds del-tx -id <transaction-id>

  Deletes a transaction. The id is shown in the CSV export.
`
}

func (c *delTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete")
}

func (c *delTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.DeleteTransaction(c.id)
	})
}
