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

// futuresCmd holds the flags for the 'futures' subcommand.
type futuresCmd struct {
	csv bool
}

func (*futuresCmd) Name() string     { return "futures" }
func (*futuresCmd) Synopsis() string { return "display the futures trade journal" }
func (*futuresCmd) Usage() string {
	return `fds futures [-csv]

  Displays the trade journal with total PnL and win rate over closed trades.
  With -csv the raw journal is written to stdout.
`
}

func (c *futuresCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "write the trade journal as CSV to stdout")
}

func (c *futuresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, d, err := loadDashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.csv {
		if err := findash.ExportCSV(os.Stdout, d.Trades); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.FuturesMarkdown(d.Trades))
	return subcommands.ExitSuccess
}

// openTradeCmd holds the flags for the 'open-trade' subcommand.
type openTradeCmd struct {
	date      string
	pair      string
	direction string
	entry     string
	size      string
}

func (*openTradeCmd) Name() string     { return "open-trade" }
func (*openTradeCmd) Synopsis() string { return "journal a new futures position" }
func (*openTradeCmd) Usage() string {
	return `fds open-trade -pair <pair> -side long|short -entry <price> -size <quantity> [-d <date>]

  Opens a position in the journal. Exit price and PnL stay zero until the
  trade is closed.

Usage Examples:
$ fds open-trade -pair BTC/USDT -side long -entry 64000 -size 0.5
`
}

func (c *openTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", findash.Today().String(), "Date the position was opened (YYYY-MM-DD)")
	f.StringVar(&c.pair, "pair", "", "Traded pair, e.g. BTC/USDT")
	f.StringVar(&c.direction, "side", string(findash.Long), "Position side: long or short")
	f.StringVar(&c.entry, "entry", "", "Entry price")
	f.StringVar(&c.size, "size", "", "Position size")
}

func (c *openTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := findash.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	direction, err := findash.ParseTradeDirection(c.direction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	entry, err := findash.ParseMoney(c.entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing entry price %q: %v\n", c.entry, err)
		return subcommands.ExitUsageError
	}
	size, err := findash.ParseQuantity(c.size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing size %q: %v\n", c.size, err)
		return subcommands.ExitUsageError
	}
	trade := findash.NewFuturesTrade(findash.NewID(), day, c.pair, direction, entry, size)
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.OpenTrade(trade)
	})
}

// closeTradeCmd holds the flags for the 'close-trade' subcommand.
type closeTradeCmd struct {
	id   string
	exit string
}

func (*closeTradeCmd) Name() string     { return "close-trade" }
func (*closeTradeCmd) Synopsis() string { return "close a position and record its PnL" }
func (*closeTradeCmd) Usage() string {
	return `fds close-trade -id <trade-id> -exit <price>

  Closes a position at the exit price. The realized PnL is computed from the
  side: (exit-entry)*size for a long, (entry-exit)*size for a short.
`
}

func (c *closeTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the trade to close")
	f.StringVar(&c.exit, "exit", "", "Exit price")
}

func (c *closeTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	exit, err := findash.ParseMoney(c.exit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing exit price %q: %v\n", c.exit, err)
		return subcommands.ExitUsageError
	}
	return mutate(func(d findash.Dashboard) (findash.Dashboard, error) {
		return d.CloseTrade(c.id, exit)
	})
}
