package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the AI trading review.
func AnalysisMarkdown(a *findash.TradeAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trading Performance Review")
	doc.PlainText(a.OverallSummary)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		doc.H2(title)
		doc.BulletList(items...)
	}
	section("Key Strengths", a.KeyStrengths)
	section("Areas for Improvement", a.AreasForImprovement)
	section("Actionable Suggestions", a.ActionableSuggestions)

	doc.H2("Highlights")
	doc.PlainText(fmt.Sprintf("Best trade: %s (%+.2f). %s",
		a.BestTrade.Pair, a.BestTrade.PnL, a.BestTrade.Reason))
	doc.PlainText(fmt.Sprintf("Worst trade: %s (%+.2f). %s",
		a.WorstTrade.Pair, a.WorstTrade.PnL, a.WorstTrade.Reason))

	return doc.String()
}
