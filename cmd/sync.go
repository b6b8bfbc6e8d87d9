package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/findash/findash"
	"github.com/google/subcommands"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct {
	exchange string
	symbol   string
	url      string
	path     string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "refresh crypto holdings from an exchange account" }
func (*syncCmd) Usage() string {
	return `fds sync -exchange <name> -symbol <symbol> -url <balance-url> -path <jsonpath>

  Fetches the balance document from the exchange endpoint, extracts the
  amount at the JSONPath and overwrites the holdings of the matching crypto
  asset.

Usage Examples:
$ fds sync -exchange binance -symbol BTC -url https://api.example.com/balance -path '$.balances[0].free'
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exchange, "exchange", "", "Display name of the exchange")
	f.StringVar(&c.symbol, "symbol", "", "Asset symbol the balance belongs to")
	f.StringVar(&c.url, "url", "", "Endpoint returning the account balance document")
	f.StringVar(&c.path, "path", "", "JSONPath to the balance amount in the document")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}

	connections := []findash.ExchangeConnection{{
		Exchange:    c.exchange,
		Symbol:      c.symbol,
		BalanceURL:  c.url,
		BalancePath: c.path,
	}}
	assets, results := findash.SyncExchanges(http.DefaultClient, connections, d.CryptoAssets)

	failed := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error syncing %s %s: %v\n", r.Exchange, r.Symbol, r.Err)
			failed = true
			continue
		}
		fmt.Printf("Synced %s: %s holds %s\n", r.Exchange, r.Symbol, r.Holdings)
	}
	if failed {
		return subcommands.ExitFailure
	}

	d.CryptoAssets = assets
	if err := store.Save(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
