package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/findash/findash"
)

func TestSummaryMarkdown(t *testing.T) {
	s := &findash.Summary{
		Date:           findash.NewDate(2024, time.July, 20),
		NetWorth:       findash.M(37800),
		PortfolioValue: findash.M(34000),
		CryptoValue:    findash.M(32000),
		StockValue:     findash.M(2000),
		Income:         findash.M(5000),
		Expenses:       findash.M(1200),
	}
	got := SummaryMarkdown(s)
	for _, want := range []string{"# Dashboard on 2024-07-20", "$37,800.00", "$34,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary markdown missing %q:\n%s", want, got)
		}
	}
}

func TestFuturesMarkdown(t *testing.T) {
	open := findash.NewFuturesTrade("f1", findash.NewDate(2024, time.June, 1), "BTC/USDT", findash.Long, findash.M(64000), findash.Q(0.5))
	closed, err := open.Close(findash.M(65000))
	if err != nil {
		t.Fatalf("Close error = %v", err)
	}
	got := FuturesMarkdown([]findash.FuturesTrade{closed, open})
	for _, want := range []string{"BTC/USDT", "Trades: 1", "Win Rate: 100.00%", "+$500.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("futures markdown missing %q:\n%s", want, got)
		}
	}
	// open trades show placeholders, not zeros
	if !strings.Contains(got, "OPEN") {
		t.Errorf("open trade missing:\n%s", got)
	}
}

func TestBudgetsMarkdownGauge(t *testing.T) {
	budgets := []findash.Budget{
		{ID: "b1", Category: "Food", Allocated: findash.M(400), Spent: findash.M(189)},
	}
	got := BudgetsMarkdown(budgets)
	if !strings.Contains(got, "47.25%") {
		t.Errorf("budget markdown missing progress:\n%s", got)
	}
	if !strings.Contains(got, "[#########-----------]") {
		t.Errorf("budget markdown missing gauge:\n%s", got)
	}
}

func TestBudgetsMarkdownOvershoot(t *testing.T) {
	budgets := []findash.Budget{
		{ID: "b1", Category: "Food", Allocated: findash.M(100), Spent: findash.M(150)},
	}
	got := BudgetsMarkdown(budgets)
	// unclamped label, full gauge
	if !strings.Contains(got, "150.00%") {
		t.Errorf("overshoot label missing:\n%s", got)
	}
	if !strings.Contains(got, "[####################]") {
		t.Errorf("full gauge missing:\n%s", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "[----------]"},
		{50, "[#####-----]"},
		{100, "[##########]"},
		{250, "[##########]"},
		{-10, "[----------]"},
	}
	for _, tc := range tests {
		if got := progressBar(tc.percent, 10); got != tc.want {
			t.Errorf("progressBar(%v) = %q, want %q", tc.percent, got, tc.want)
		}
	}
}

func TestTransactionsMarkdownEmpty(t *testing.T) {
	got := TransactionsMarkdown(nil)
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("empty transactions markdown:\n%s", got)
	}
}

func TestAnalysisMarkdown(t *testing.T) {
	a := &findash.TradeAnalysis{
		OverallSummary:        "Solid risk control overall.",
		KeyStrengths:          []string{"cuts losers fast"},
		AreasForImprovement:   []string{"position sizing"},
		ActionableSuggestions: []string{"journal every exit"},
		BestTrade:             findash.TradeReview{Pair: "BTC/USDT", PnL: 300, Reason: "trend entry"},
		WorstTrade:            findash.TradeReview{Pair: "XRP/USDT", PnL: -100, Reason: "no stop"},
	}
	got := AnalysisMarkdown(a)
	for _, want := range []string{"Solid risk control overall.", "cuts losers fast", "BTC/USDT", "XRP/USDT"} {
		if !strings.Contains(got, want) {
			t.Errorf("analysis markdown missing %q:\n%s", want, got)
		}
	}
}
