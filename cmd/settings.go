package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// settingsCmd holds the flags for the 'settings' subcommand.
type settingsCmd struct {
	gemini      string
	marketData  string
	plaidID     string
	plaidSecret string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or update stored credentials" }
func (*settingsCmd) Usage() string {
	return `fds settings [-gemini <key>] [-market <key>] [-plaid-id <id>] [-plaid-secret <secret>]

  Without flags, shows which credentials are configured (values are never
  printed). With flags, stores the given credentials in the data folder.
  Environment variables and a .env file override stored values at load time.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gemini, "gemini", "", "Gemini API key")
	f.StringVar(&c.marketData, "market", "", "Market data API key")
	f.StringVar(&c.plaidID, "plaid-id", "", "Plaid client id")
	f.StringVar(&c.plaidSecret, "plaid-secret", "", "Plaid secret")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.gemini != "" || c.marketData != "" || c.plaidID != "" || c.plaidSecret != "" {
		return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
			if c.gemini != "" {
				d.Settings.GeminiAPIKey = c.gemini
			}
			if c.marketData != "" {
				d.Settings.MarketDataAPIKey = c.marketData
			}
			if c.plaidID != "" {
				d.Settings.PlaidClientID = c.plaidID
			}
			if c.plaidSecret != "" {
				d.Settings.PlaidSecret = c.plaidSecret
			}
			return d, nil
		})
	}

	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	// report the effective credentials, environment overrides included
	effective := d.Settings.FromEnv()
	status := func(v string) string {
		if v == "" {
			return "not set"
		}
		return "configured"
	}
	fmt.Printf("gemini api key:      %s\n", status(effective.GeminiAPIKey))
	fmt.Printf("market data api key: %s\n", status(effective.MarketDataAPIKey))
	fmt.Printf("plaid client id:     %s\n", status(effective.PlaidClientID))
	fmt.Printf("plaid secret:        %s\n", status(effective.PlaidSecret))
	return subcommands.ExitSuccess
}
