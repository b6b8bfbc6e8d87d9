package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the dashboard front page.
func SummaryMarkdown(s *findash.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard on %s", s.Date))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Net Worth", s.NetWorth.String()},
			{"Portfolio Value", s.PortfolioValue.String()},
			{"Crypto", s.CryptoValue.String()},
			{"Stocks", s.StockValue.String()},
			{"Income", s.Income.String()},
			{"Expenses", s.Expenses.String()},
		},
	})

	if len(s.Recent) > 0 {
		doc.H2("Recent Transactions")
		doc.Table(transactionTable(s.Recent))
	}

	return doc.String()
}
