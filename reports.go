package findash

import (
	"sort"
	"strings"
)

// This file is the aggregation engine: pure, deterministic derivations over
// the canonical entity collections. Every function recomputes from scratch on
// the snapshot it is given and never mutates its input.

// TotalPortfolioValue returns the sum of holdings × price across assets.
// An empty collection totals zero.
func TotalPortfolioValue(assets []Asset) Money {
	var total Money
	for _, a := range assets {
		total = total.Add(a.Value())
	}
	return total
}

// NetIncome returns the signed sum of all transaction amounts. Under the sign
// convention (income positive, expense negative) this equals total income
// minus total expenses without splitting per type.
func NetIncome(transactions []Transaction) Money {
	var total Money
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// IncomeExpenseTotals returns the per-type totals for display: income as a
// signed sum of income transactions, expenses as the sum of expense
// magnitudes (a positive number).
func IncomeExpenseTotals(transactions []Transaction) (income, expenses Money) {
	for _, t := range transactions {
		switch t.Type {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expenses = expenses.Add(t.Amount.Abs())
		}
	}
	return income, expenses
}

// GroupMode selects the grouping key for expense breakdowns.
type GroupMode int

const (
	// GroupCategory groups expenses by their category name.
	GroupCategory GroupMode = iota
	// GroupSubCategory groups by sub-category name when one is set, falling
	// back to the category name otherwise.
	GroupSubCategory
)

// ExpensesByGroup sums expense magnitudes per group. Groups with no expense
// transactions are absent from the result, never present with a zero total.
// Iteration order of the returned map is not significant; see
// SortedExpenseGroups for a display order.
func ExpensesByGroup(transactions []Transaction, mode GroupMode) map[string]Money {
	groups := make(map[string]Money)
	for _, t := range transactions {
		if t.Type != Expense {
			continue
		}
		key := t.Category
		if mode == GroupSubCategory && t.SubCategory != "" {
			key = t.SubCategory
		}
		groups[key] = groups[key].Add(t.Amount.Abs())
	}
	return groups
}

// GroupTotal is one entry of a sorted expense breakdown.
type GroupTotal struct {
	Name  string
	Total Money
}

// SortedExpenseGroups orders a breakdown by total descending, name ascending
// on ties, for display.
func SortedExpenseGroups(groups map[string]Money) []GroupTotal {
	out := make([]GroupTotal, 0, len(groups))
	for name, total := range groups {
		out = append(out, GroupTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[j].Total.LessThan(out[i].Total)
		}
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out
}

// RecentTransactions returns the n most recent transactions, most recent
// first. The sort is stable: transactions sharing a date keep their original
// relative order. n may exceed the collection size.
func RecentTransactions(transactions []Transaction, n int) []Transaction {
	recent := append([]Transaction(nil), transactions...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[j].Date.Before(recent[i].Date)
	})
	if n < len(recent) {
		recent = recent[:n]
	}
	return recent
}

// FuturesSummary aggregates the closed trades of the futures journal.
type FuturesSummary struct {
	TotalPnL    Money
	WinRate     Percent // share of closed trades with positive pnl
	TotalTrades int     // number of closed trades
}

// FuturesStats computes PnL statistics over the closed trades only. Open
// trades carry placeholder zeros and are excluded. A journal with no closed
// trades yields the zero summary: the win rate is 0, not a division by zero.
// Break-even trades (pnl exactly zero) count in the denominator but are
// neither wins nor losses.
func FuturesStats(trades []FuturesTrade) FuturesSummary {
	var s FuturesSummary
	wins := 0
	for _, t := range trades {
		if t.Status != Closed {
			continue
		}
		s.TotalTrades++
		s.TotalPnL = s.TotalPnL.Add(t.PnL)
		if t.PnL.IsPositive() {
			wins++
		}
	}
	if s.TotalTrades > 0 {
		s.WinRate = Percent(float64(wins) / float64(s.TotalTrades) * 100)
	}
	return s
}

// RevenueSummary aggregates the invoice book.
type RevenueSummary struct {
	Paid    Money // collected revenue
	Pending Money // billed but not yet paid
	Overdue int   // number of overdue invoices
}

// InvoiceStats computes revenue totals per invoice status.
func InvoiceStats(invoices []Invoice) RevenueSummary {
	var s RevenueSummary
	for _, i := range invoices {
		switch i.Status {
		case Paid:
			s.Paid = s.Paid.Add(i.Amount)
		case Pending:
			s.Pending = s.Pending.Add(i.Amount)
		case Overdue:
			s.Overdue++
		}
	}
	return s
}

// Summary is the dashboard front page rollup.
type Summary struct {
	Date           Date
	NetWorth       Money
	PortfolioValue Money
	CryptoValue    Money
	StockValue     Money
	Income         Money
	Expenses       Money // positive magnitude
	Recent         []Transaction
}

// recentCount is how many transactions the dashboard front page shows.
const recentCount = 5

// Summarize computes the dashboard front page from a snapshot.
func (d Dashboard) Summarize() Summary {
	crypto := TotalPortfolioValue(d.CryptoAssets)
	stock := TotalPortfolioValue(d.StockAssets)
	income, expenses := IncomeExpenseTotals(d.Transactions)
	portfolio := crypto.Add(stock)
	return Summary{
		Date:           Today(),
		NetWorth:       portfolio.Add(NetIncome(d.Transactions)),
		PortfolioValue: portfolio,
		CryptoValue:    crypto,
		StockValue:     stock,
		Income:         income,
		Expenses:       expenses,
		Recent:         RecentTransactions(d.Transactions, recentCount),
	}
}
