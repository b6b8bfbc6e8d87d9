package findash

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ExchangeConnection describes how to read one asset balance from one
// exchange account. Exchanges disagree wildly on their balance payloads, so
// each connection carries the JSONPath to the amount inside its own response.
type ExchangeConnection struct {
	Exchange    string // display name, e.g. "binance"
	Symbol      string // asset symbol the balance belongs to
	APIKey      string
	BalanceURL  string // endpoint returning the account balance document
	BalancePath string // JSONPath to the balance amount, e.g. "$.balances[0].free"
}

// SyncResult reports the outcome of one connection during a sync.
type SyncResult struct {
	Exchange string
	Symbol   string
	Holdings Quantity
	Err      error
}

// SyncExchanges fetches the balance of every connection and returns a copy of
// the assets with matching symbols' holdings overwritten. A connection that
// fails or yields no extractable amount is reported in its SyncResult and
// skipped; it never aborts the sync of the others.
func SyncExchanges(client *http.Client, connections []ExchangeConnection, assets []Asset) ([]Asset, []SyncResult) {
	out := append([]Asset(nil), assets...)
	results := make([]SyncResult, 0, len(connections))

	for _, conn := range connections {
		r := SyncResult{Exchange: conn.Exchange, Symbol: conn.Symbol}
		amount, err := fetchBalance(client, conn)
		if err != nil {
			r.Err = &UpstreamError{Source: conn.Exchange, Err: err}
			results = append(results, r)
			continue
		}
		r.Holdings = amount

		found := false
		for i := range out {
			if out[i].Symbol == conn.Symbol {
				out[i].Holdings = amount
				found = true
			}
		}
		if !found {
			r.Err = &NotFoundError{Kind: "asset", ID: conn.Symbol}
		}
		results = append(results, r)
	}
	return out, results
}

// fetchBalance gets the balance document and extracts the amount at the
// connection's JSONPath.
func fetchBalance(client *http.Client, conn ExchangeConnection) (Quantity, error) {
	var jobj any
	if err := jwget(client, conn.BalanceURL, &jobj); err != nil {
		return Quantity{}, fmt.Errorf("error in wget %q: %w", conn.Exchange, err)
	}
	jval, err := jsonpath.Get(conn.BalancePath, jobj)
	if err != nil {
		return Quantity{}, fmt.Errorf("error parsing %q: %q %w", conn.Exchange, conn.BalancePath, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return Q(v), nil
	case string:
		// exchanges commonly quote balances as decimal strings
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Quantity{}, fmt.Errorf("balance %q of %q is not a number: %w", v, conn.Exchange, err)
		}
		return Q(d), nil
	default:
		return Quantity{}, fmt.Errorf("balance of %q at %q is not a number: %v", conn.Exchange, conn.BalancePath, jval)
	}
}
