package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders one asset table (crypto or stocks) with its total.
func PortfolioMarkdown(title string, assets []findash.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(assets) == 0 {
		doc.PlainText("No holdings.")
		return doc.String()
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.Symbol,
			a.Name,
			a.Holdings.String(),
			a.Price.String(),
			a.Change24h.SignedString(),
			a.Value().String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Name", "Holdings", "Price", "24h", "Value"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total: %s", findash.TotalPortfolioValue(assets)))

	return doc.String()
}
