package findash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore error = %v", err)
	}

	d := Dashboard{Categories: NewCategoryTree([]Category{
		{ID: "c1", Name: "Food", SubCategories: []SubCategory{{ID: "s1", Name: "Groceries"}}},
	})}
	d, err = d.AddTransaction(NewTransaction("t1", NewDate(2024, time.July, 20), "Weekly shop", M(150.75), "Food", "Groceries", Expense))
	if err != nil {
		t.Fatalf("AddTransaction error = %v", err)
	}
	d, err = d.OpenTrade(NewFuturesTrade("f1", NewDate(2024, time.June, 1), "BTC/USDT", Long, M(64000), Q(0.5)))
	if err != nil {
		t.Fatalf("OpenTrade error = %v", err)
	}
	d.CryptoAssets = []Asset{{ID: "a1", Symbol: "BTC", Name: "Bitcoin", Price: M(64000), Holdings: Q(0.5)}}
	d.Budgets = []Budget{{ID: "b1", Category: "Food", Allocated: M(400), Spent: M(189)}}
	d.Goals = []Goal{{ID: "g1", Name: "Vacation", Target: M(3000), Saved: M(1200), Emoji: "✈️"}}
	d.Invoices = []Invoice{{ID: "i1", Client: "Acme", DueDate: NewDate(2024, time.August, 1), Status: Pending, Amount: M(1000)}}
	d.Settings = Settings{GeminiAPIKey: "g"}

	if err := store.Save(d); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	back, err := store.Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(back.Transactions) != 1 || !back.Transactions[0].Amount.Equal(M(-150.75)) {
		t.Errorf("transactions = %+v", back.Transactions)
	}
	if len(back.CryptoAssets) != 1 || !back.CryptoAssets[0].Holdings.Equal(Q(0.5)) {
		t.Errorf("crypto assets = %+v", back.CryptoAssets)
	}
	if len(back.Trades) != 1 || back.Trades[0].Status != Open {
		t.Errorf("trades = %+v", back.Trades)
	}
	if !back.Categories.Resolve("Food", "Groceries") {
		t.Errorf("categories lost: %+v", back.Categories.Categories())
	}
	if len(back.Budgets) != 1 || !back.Budgets[0].Progress().Equal(Percent(47.25)) {
		t.Errorf("budgets = %+v", back.Budgets)
	}
	if len(back.Goals) != 1 || back.Goals[0].Emoji != "✈️" {
		t.Errorf("goals = %+v", back.Goals)
	}
	if len(back.Invoices) != 1 || back.Invoices[0].Status != Pending {
		t.Errorf("invoices = %+v", back.Invoices)
	}
	if back.Settings.GeminiAPIKey != "g" {
		t.Errorf("settings = %+v", back.Settings)
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore error = %v", err)
	}
	d, err := store.Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(d.Transactions) != 0 || d.Categories.Len() != 0 {
		t.Errorf("fresh store is not empty: %+v", d)
	}
}

func TestStoreTablesAreJSONL(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore error = %v", err)
	}
	var d Dashboard
	d, err = d.OpenTrade(NewFuturesTrade("f1", NewDate(2024, time.June, 1), "BTC/USDT", Long, M(64000), Q(0.5)))
	if err != nil {
		t.Fatalf("OpenTrade error = %v", err)
	}
	d, err = d.OpenTrade(NewFuturesTrade("f2", NewDate(2024, time.June, 2), "ETH/USDT", Short, M(3000), Q(2)))
	if err != nil {
		t.Fatalf("OpenTrade error = %v", err)
	}
	if err := store.Save(d); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "futures_trades.jsonl"))
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one trade per line, got %q", content)
	}
	// snake_case storage schema on the wire
	if !strings.Contains(lines[0], `"entry_price":64000`) {
		t.Errorf("line = %s", lines[0])
	}
}

func TestNewID(t *testing.T) {
	if NewID() == NewID() {
		t.Error("NewID returned the same id twice")
	}
}
