package findash

import "strings"

// AssetClass separates the two portfolio tables of the dashboard.
type AssetClass string

const (
	Crypto AssetClass = "crypto"
	Stock  AssetClass = "stock"
)

// Asset is a portfolio holding of a crypto coin or a stock.
//
// Price, Change24h, MarketCap, Logo and Name are market data: a refresh may
// overwrite them wholesale while ID and Holdings are preserved.
type Asset struct {
	ID        string
	Name      string
	Symbol    string
	Price     Money
	Change24h Percent
	MarketCap Money
	Holdings  Quantity
	Logo      string
}

// Value returns holdings × price.
func (a Asset) Value() Money { return a.Price.Mul(a.Holdings) }

// Validate checks the asset's invariants.
func (a Asset) Validate() error {
	if a.ID == "" {
		return validationf("asset id is missing")
	}
	if strings.TrimSpace(a.Symbol) == "" {
		return validationf("asset symbol is empty")
	}
	if a.Price.IsNegative() {
		return validationf("asset %s price %s is negative", a.Symbol, a.Price)
	}
	if a.MarketCap.IsNegative() {
		return validationf("asset %s market cap %s is negative", a.Symbol, a.MarketCap)
	}
	if a.Holdings.IsNegative() {
		return validationf("asset %s holdings %s are negative", a.Symbol, a.Holdings)
	}
	return nil
}

// Header implements Tabular with the canonical field names.
func (a Asset) Header() []string {
	return []string{"id", "name", "symbol", "price", "change24h", "marketCap", "holdings", "logo"}
}

// Row implements Tabular.
func (a Asset) Row() []any {
	return []any{a.ID, a.Name, a.Symbol, a.Price, float64(a.Change24h), a.MarketCap, a.Holdings, a.Logo}
}
