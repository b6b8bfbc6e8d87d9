package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

const barWidth = 20

// BudgetsMarkdown renders spending against allocations, one gauge per budget.
func BudgetsMarkdown(budgets []findash.Budget) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budgets")
	if len(budgets) == 0 {
		doc.PlainText("No budgets set.")
		return doc.String()
	}
	for _, b := range budgets {
		p := b.Progress()
		doc.PlainText(fmt.Sprintf("%-16s %s %s of %s (%s)",
			b.Category, progressBar(float64(p), barWidth), b.Spent, b.Allocated, p))
	}
	return doc.String()
}

// GoalsMarkdown renders savings targets, one gauge per goal.
func GoalsMarkdown(goals []findash.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals set.")
		return doc.String()
	}
	for _, g := range goals {
		p := g.Progress()
		name := g.Name
		if g.Emoji != "" {
			name = g.Emoji + " " + g.Name
		}
		doc.PlainText(fmt.Sprintf("%-16s %s %s of %s (%s)",
			name, progressBar(float64(p), barWidth), g.Saved, g.Target, p))
	}
	return doc.String()
}
