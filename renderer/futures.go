package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// FuturesMarkdown renders the trade journal and its closed-trade statistics.
func FuturesMarkdown(trades []findash.FuturesTrade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Futures Journal")
	if len(trades) == 0 {
		doc.PlainText("No trades journaled.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		exit, pnl := "-", "-"
		if t.Status == findash.Closed {
			exit = t.ExitPrice.String()
			pnl = t.PnL.SignedString()
		}
		rows = append(rows, []string{
			t.Date.String(),
			t.Pair,
			string(t.Type),
			t.EntryPrice.String(),
			exit,
			t.Size.String(),
			pnl,
			string(t.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Pair", "Side", "Entry", "Exit", "Size", "PnL", "Status"},
		Rows:   rows,
	})

	s := findash.FuturesStats(trades)
	doc.H2("Closed Trades")
	doc.PlainText(fmt.Sprintf("Trades: %d, Total PnL: %s, Win Rate: %s",
		s.TotalTrades, s.TotalPnL.SignedString(), s.WinRate))

	return doc.String()
}
