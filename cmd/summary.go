package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard front page" }
func (*summaryCmd) Usage() string {
	return `fds summary

  Displays net worth, portfolio value, income and expense totals, and the
  most recent transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	s := d.Summarize()
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
