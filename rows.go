package findash

import (
	"encoding/json"
	"fmt"
)

// This file is the record normalizer: it maps raw storage rows (snake_case
// field names, e.g. "change_24h", "sub_category") to the canonical entities
// and back. Both directions are pure and total: no I/O, numbers are decoded
// into exact decimals (never through a float round trip), and the inverse
// mapping emits exactly the field set the store persists, in a stable order.

// requireFields fails with an UpstreamError when a row is not a JSON object
// or misses one of the named fields. A missing required field must surface as
// malformed data, not decay into a zero value.
func requireFields(data []byte, kind string, fields ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return &UpstreamError{Source: "store", Err: fmt.Errorf("cannot parse %s row: %w", kind, err)}
	}
	for _, f := range fields {
		if _, ok := obj[f]; !ok {
			return &UpstreamError{Source: "store", Err: fmt.Errorf("%s row is missing field %q", kind, f)}
		}
	}
	return nil
}

func decodeRow[T any](data []byte, kind string, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return &UpstreamError{Source: "store", Err: fmt.Errorf("cannot parse %s row: %w", kind, err)}
	}
	return nil
}

// Transaction rows.

type transactionRow struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	SubCategory string          `json:"sub_category"`
	Type        TransactionType `json:"type"`
}

// TransactionFromRow normalizes a storage row into a Transaction.
func TransactionFromRow(data []byte) (Transaction, error) {
	if err := requireFields(data, "transaction", "id", "date", "description", "amount", "category", "type"); err != nil {
		return Transaction{}, err
	}
	var r transactionRow
	if err := decodeRow(data, "transaction", &r); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          r.ID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Type:        r.Type,
	}, nil
}

// row returns the storage shape of the transaction.
func (t Transaction) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Optional("sub_category", t.SubCategory)
	w.Append("type", t.Type)
	return w.MarshalJSON()
}

// Asset rows.

type assetRow struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol"`
	Price     Money    `json:"price"`
	Change24h Percent  `json:"change_24h"`
	MarketCap Money    `json:"market_cap"`
	Holdings  Quantity `json:"holdings"`
	Logo      string   `json:"logo"`
}

// AssetFromRow normalizes a storage row into an Asset.
func AssetFromRow(data []byte) (Asset, error) {
	if err := requireFields(data, "asset", "id", "symbol", "price", "holdings"); err != nil {
		return Asset{}, err
	}
	var r assetRow
	if err := decodeRow(data, "asset", &r); err != nil {
		return Asset{}, err
	}
	return Asset{
		ID:        r.ID,
		Name:      r.Name,
		Symbol:    r.Symbol,
		Price:     r.Price,
		Change24h: r.Change24h,
		MarketCap: r.MarketCap,
		Holdings:  r.Holdings,
		Logo:      r.Logo,
	}, nil
}

// row returns the storage shape of the asset.
func (a Asset) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("symbol", a.Symbol)
	w.Append("price", a.Price)
	w.Append("change_24h", a.Change24h)
	w.Append("market_cap", a.MarketCap)
	w.Append("holdings", a.Holdings)
	w.Append("logo", a.Logo)
	return w.MarshalJSON()
}

// Futures trade rows.

type futuresTradeRow struct {
	ID         string         `json:"id"`
	Pair       string         `json:"pair"`
	Type       TradeDirection `json:"type"`
	EntryPrice Money          `json:"entry_price"`
	ExitPrice  Money          `json:"exit_price"`
	Size       Quantity       `json:"size"`
	PnL        Money          `json:"pnl"`
	Status     TradeStatus    `json:"status"`
	Date       Date           `json:"date"`
}

// FuturesTradeFromRow normalizes a storage row into a FuturesTrade.
func FuturesTradeFromRow(data []byte) (FuturesTrade, error) {
	if err := requireFields(data, "futures trade", "id", "pair", "type", "entry_price", "size", "status", "date"); err != nil {
		return FuturesTrade{}, err
	}
	var r futuresTradeRow
	if err := decodeRow(data, "futures trade", &r); err != nil {
		return FuturesTrade{}, err
	}
	return FuturesTrade{
		ID:         r.ID,
		Pair:       r.Pair,
		Type:       r.Type,
		EntryPrice: r.EntryPrice,
		ExitPrice:  r.ExitPrice,
		Size:       r.Size,
		PnL:        r.PnL,
		Status:     r.Status,
		Date:       r.Date,
	}, nil
}

// row returns the storage shape of the trade.
func (t FuturesTrade) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("pair", t.Pair)
	w.Append("type", t.Type)
	w.Append("entry_price", t.EntryPrice)
	w.Append("exit_price", t.ExitPrice)
	w.Append("size", t.Size)
	w.Append("pnl", t.PnL)
	w.Append("status", t.Status)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

// Category rows. Sub-categories nest in the parent row, as the store keeps
// them.

type subCategoryRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type categoryRow struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	SubCategories []subCategoryRow `json:"sub_categories"`
}

// CategoryFromRow normalizes a storage row into a Category.
func CategoryFromRow(data []byte) (Category, error) {
	if err := requireFields(data, "category", "id", "name"); err != nil {
		return Category{}, err
	}
	var r categoryRow
	if err := decodeRow(data, "category", &r); err != nil {
		return Category{}, err
	}
	c := Category{ID: r.ID, Name: r.Name}
	for _, s := range r.SubCategories {
		c.SubCategories = append(c.SubCategories, SubCategory{ID: s.ID, Name: s.Name})
	}
	return c, nil
}

// row returns the storage shape of the category with its nested
// sub-categories.
func (c Category) row() ([]byte, error) {
	subs := make([]subCategoryRow, 0, len(c.SubCategories))
	for _, s := range c.SubCategories {
		subs = append(subs, subCategoryRow{ID: s.ID, Name: s.Name})
	}
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("sub_categories", subs)
	return w.MarshalJSON()
}

// Budget rows.

type budgetRow struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Allocated Money  `json:"allocated"`
	Spent     Money  `json:"spent"`
}

// BudgetFromRow normalizes a storage row into a Budget.
func BudgetFromRow(data []byte) (Budget, error) {
	if err := requireFields(data, "budget", "id", "category", "allocated"); err != nil {
		return Budget{}, err
	}
	var r budgetRow
	if err := decodeRow(data, "budget", &r); err != nil {
		return Budget{}, err
	}
	return Budget{ID: r.ID, Category: r.Category, Allocated: r.Allocated, Spent: r.Spent}, nil
}

// row returns the storage shape of the budget.
func (b Budget) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("category", b.Category)
	w.Append("allocated", b.Allocated)
	w.Append("spent", b.Spent)
	return w.MarshalJSON()
}

// Goal rows.

type goalRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Target Money  `json:"target"`
	Saved  Money  `json:"saved"`
	Emoji  string `json:"emoji"`
}

// GoalFromRow normalizes a storage row into a Goal.
func GoalFromRow(data []byte) (Goal, error) {
	if err := requireFields(data, "goal", "id", "name", "target"); err != nil {
		return Goal{}, err
	}
	var r goalRow
	if err := decodeRow(data, "goal", &r); err != nil {
		return Goal{}, err
	}
	return Goal{ID: r.ID, Name: r.Name, Target: r.Target, Saved: r.Saved, Emoji: r.Emoji}, nil
}

// row returns the storage shape of the goal.
func (g Goal) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.Target)
	w.Append("saved", g.Saved)
	w.Optional("emoji", g.Emoji)
	return w.MarshalJSON()
}

// Invoice rows.

type invoiceRow struct {
	ID      string        `json:"id"`
	Client  string        `json:"client"`
	DueDate Date          `json:"due_date"`
	Status  InvoiceStatus `json:"status"`
	Amount  Money         `json:"amount"`
}

// InvoiceFromRow normalizes a storage row into an Invoice.
func InvoiceFromRow(data []byte) (Invoice, error) {
	if err := requireFields(data, "invoice", "id", "client", "due_date", "status", "amount"); err != nil {
		return Invoice{}, err
	}
	var r invoiceRow
	if err := decodeRow(data, "invoice", &r); err != nil {
		return Invoice{}, err
	}
	return Invoice{ID: r.ID, Client: r.Client, DueDate: r.DueDate, Status: r.Status, Amount: r.Amount}, nil
}

// row returns the storage shape of the invoice.
func (i Invoice) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("client", i.Client)
	w.Append("due_date", i.DueDate)
	w.Append("status", i.Status)
	w.Append("amount", i.Amount)
	return w.MarshalJSON()
}

// Settings row (a single object, not a table).

type settingsRow struct {
	GeminiAPIKey     string `json:"gemini_api_key"`
	MarketDataAPIKey string `json:"market_data_api_key"`
	PlaidClientID    string `json:"plaid_client_id"`
	PlaidSecret      string `json:"plaid_secret"`
}

// SettingsFromRow normalizes the settings object.
func SettingsFromRow(data []byte) (Settings, error) {
	var r settingsRow
	if err := decodeRow(data, "settings", &r); err != nil {
		return Settings{}, err
	}
	return Settings{
		GeminiAPIKey:     r.GeminiAPIKey,
		MarketDataAPIKey: r.MarketDataAPIKey,
		PlaidClientID:    r.PlaidClientID,
		PlaidSecret:      r.PlaidSecret,
	}, nil
}

// row returns the storage shape of the settings.
func (s Settings) row() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("gemini_api_key", s.GeminiAPIKey)
	w.Append("market_data_api_key", s.MarketDataAPIKey)
	w.Append("plaid_client_id", s.PlaidClientID)
	w.Append("plaid_secret", s.PlaidSecret)
	return w.MarshalJSON()
}
