package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash/agent"
	"github.com/findash/findash/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "review closed trades with the AI analyst" }
func (*analyzeCmd) Usage() string {
	return `fds analyze

  Sends the closed trades of the journal to Gemini and displays the
  structured review. Requires GEMINI_API_KEY in the environment or a .env
  file. Fails without a network call when the journal has no closed trade.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	analyst, err := agent.NewAnalyst(ctx, d.Settings.FromEnv().GeminiAPIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}
	analysis, err := analyst.Analyze(ctx, d.Trades)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AnalysisMarkdown(&analysis))
	return subcommands.ExitSuccess
}
