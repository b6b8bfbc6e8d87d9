package renderer

import (
	"bytes"
	"fmt"

	"github.com/findash/findash"
	md "github.com/nao1215/markdown"
)

// transactionTable builds the shared transaction table set.
func transactionTable(txs []findash.Transaction) md.TableSet {
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		category := t.Category
		if t.SubCategory != "" {
			category = fmt.Sprintf("%s / %s", t.Category, t.SubCategory)
		}
		rows = append(rows, []string{
			t.Date.String(),
			t.Description,
			category,
			t.Amount.SignedString(),
		})
	}
	return md.TableSet{
		Header: []string{"Date", "Description", "Category", "Amount"},
		Rows:   rows,
	}
}

// TransactionsMarkdown renders the full transaction list with its expense
// breakdown and net income line.
func TransactionsMarkdown(txs []findash.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}
	doc.Table(transactionTable(findash.RecentTransactions(txs, len(txs))))

	income, expenses := findash.IncomeExpenseTotals(txs)
	doc.PlainText(fmt.Sprintf("Income: %s, Expenses: %s, Net: %s",
		income, expenses, findash.NetIncome(txs).SignedString()))

	groups := findash.SortedExpenseGroups(findash.ExpensesByGroup(txs, findash.GroupCategory))
	if len(groups) > 0 {
		doc.H2("Expenses by Category")
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, []string{g.Name, g.Total.String()})
		}
		doc.Table(md.TableSet{Header: []string{"Category", "Total"}, Rows: rows})
	}

	return doc.String()
}

// CategoriesMarkdown renders the category taxonomy as nested lists.
func CategoriesMarkdown(tree findash.CategoryTree) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	categories := tree.Categories()
	if len(categories) == 0 {
		doc.PlainText("No categories defined.")
		return doc.String()
	}
	for _, c := range categories {
		doc.PlainText(fmt.Sprintf("- %s (%s)", c.Name, c.ID))
		for _, s := range c.SubCategories {
			doc.PlainText(fmt.Sprintf("  - %s (%s)", s.Name, s.ID))
		}
	}
	return doc.String()
}
