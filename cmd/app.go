// Package cmd implements the CLI application to manage the finance dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// commands lists every subcommand with its group, in registration order.
var commands = []struct {
	cmd   subcommands.Command
	group string
}{
	{&summaryCmd{}, ""},

	{&txCmd{}, "transactions"},
	{&addTxCmd{}, "transactions"},
	{&delTxCmd{}, "transactions"},

	{&categoriesCmd{}, "categories"},
	{&addCategoryCmd{}, "categories"},
	{&renameCategoryCmd{}, "categories"},
	{&delCategoryCmd{}, "categories"},
	{&addSubCmd{}, "categories"},
	{&renameSubCmd{}, "categories"},
	{&delSubCmd{}, "categories"},

	{&portfolioCmd{}, "portfolio"},
	{&syncCmd{}, "portfolio"},

	{&futuresCmd{}, "futures"},
	{&openTradeCmd{}, "futures"},
	{&closeTradeCmd{}, "futures"},
	{&analyzeCmd{}, "futures"},

	{&budgetsCmd{}, "planning"},
	{&setBudgetCmd{}, "planning"},
	{&goalsCmd{}, "planning"},
	{&addGoalCmd{}, "planning"},

	{&invoicesCmd{}, "business"},
	{&addInvoiceCmd{}, "business"},

	{&settingsCmd{}, ""},
}

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Names returns the name of every registered subcommand.
func Names() []string {
	names := make([]string, 0, len(commands))
	for _, e := range commands {
		names = append(names, e.cmd.Name())
	}
	return names
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".findash", "Path to the dashboard data folder")

// loadDashboard opens the store and loads the current snapshot. The snapshot
// carries the stored settings as-is: environment overrides are applied by the
// consumer (Settings.FromEnv), never written back to the store.
func loadDashboard() (*findash.Store, findash.Dashboard, error) {
	store, err := findash.OpenStore(*dataDir)
	if err != nil {
		return nil, findash.Dashboard{}, err
	}
	d, err := store.Load()
	if err != nil {
		return nil, findash.Dashboard{}, err
	}
	return store, d, nil
}

// mutate loads the snapshot, applies one edit and saves the result. The edit
// returning an error leaves the store untouched.
func mutate(edit func(findash.Dashboard) (findash.Dashboard, error)) subcommands.ExitStatus {
	store, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	next, err := edit(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
