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

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	class string
	fetch bool
	csv   bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display crypto and stock holdings" }
func (*portfolioCmd) Usage() string {
	return `fds portfolio [-class crypto|stock] [-fetch] [-csv]

  Displays the asset tables with their total value. With -fetch, crypto
  prices are refreshed from CoinGecko first (responses are cached for the
  day) and the refreshed data is saved. With -csv the raw asset table is
  written to stdout.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "", "Restrict to one asset class: crypto or stock")
	f.BoolVar(&c.fetch, "fetch", false, "refresh crypto market data before displaying")
	f.BoolVar(&c.csv, "csv", false, "write the asset table as CSV to stdout")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.fetch {
		enriched, err := findash.NewMarketClient().Enrich(d.CryptoAssets)
		if err != nil {
			// stored data is still displayable
			fmt.Fprintf(os.Stderr, "Warning: market data refresh failed: %v\n", err)
		} else {
			d.CryptoAssets = enriched
			if err := store.Save(d); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving dashboard: %v\n", err)
				return subcommands.ExitFailure
			}
		}
	}

	if c.csv {
		assets := append(append([]findash.Asset(nil), d.CryptoAssets...), d.StockAssets...)
		switch c.class {
		case "crypto":
			assets = d.CryptoAssets
		case "stock":
			assets = d.StockAssets
		}
		if err := findash.ExportCSV(os.Stdout, assets); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	if c.class != "stock" {
		printMarkdown(renderer.PortfolioMarkdown("Crypto", d.CryptoAssets))
	}
	if c.class != "crypto" {
		printMarkdown(renderer.PortfolioMarkdown("Stocks", d.StockAssets))
	}
	return subcommands.ExitSuccess
}
