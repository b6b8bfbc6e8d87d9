package findash

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSyncExchanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balances":[{"asset":"BTC","free":"0.75"}]}`)
	}))
	defer srv.Close()

	connections := []ExchangeConnection{{
		Exchange:    "binance",
		Symbol:      "BTC",
		BalanceURL:  srv.URL,
		BalancePath: "$.balances[0].free",
	}}
	assets := []Asset{{ID: "a1", Symbol: "BTC", Price: M(64000), Holdings: Q(0.5)}}

	got, results := SyncExchanges(srv.Client(), connections, assets)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results = %+v", results)
	}
	if !results[0].Holdings.Equal(Q(0.75)) {
		t.Errorf("Holdings = %v, want 0.75", results[0].Holdings)
	}
	if !got[0].Holdings.Equal(Q(0.75)) {
		t.Errorf("asset holdings = %v, want 0.75", got[0].Holdings)
	}
	// input untouched
	if !assets[0].Holdings.Equal(Q(0.5)) {
		t.Error("input assets mutated")
	}
}

func TestSyncExchangesNumericBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total":{"BTC":1.25}}`)
	}))
	defer srv.Close()

	connections := []ExchangeConnection{{
		Exchange:    "kraken",
		Symbol:      "BTC",
		BalanceURL:  srv.URL,
		BalancePath: "$.total.BTC",
	}}
	assets := []Asset{{ID: "a1", Symbol: "BTC", Holdings: Q(0)}}

	got, results := SyncExchanges(srv.Client(), connections, assets)
	if results[0].Err != nil {
		t.Fatalf("sync error = %v", results[0].Err)
	}
	if !got[0].Holdings.Equal(Q(1.25)) {
		t.Errorf("Holdings = %v, want 1.25", got[0].Holdings)
	}
}

func TestSyncExchangesFailureIsIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "nope", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, `{"free":"2"}`)
	}))
	defer srv.Close()

	connections := []ExchangeConnection{
		{Exchange: "bad", Symbol: "BTC", BalanceURL: srv.URL + "/bad", BalancePath: "$.free"},
		{Exchange: "good", Symbol: "ETH", BalanceURL: srv.URL, BalancePath: "$.free"},
	}
	assets := []Asset{
		{ID: "a1", Symbol: "BTC", Holdings: Q(1)},
		{ID: "a2", Symbol: "ETH", Holdings: Q(1)},
	}

	got, results := SyncExchanges(srv.Client(), connections, assets)
	if results[0].Err == nil {
		t.Error("expected the failing connection to report an error")
	}
	// the failing connection never aborts the others
	if results[1].Err != nil {
		t.Errorf("good connection failed: %v", results[1].Err)
	}
	if !got[0].Holdings.Equal(Q(1)) {
		t.Errorf("failed sync changed holdings: %v", got[0].Holdings)
	}
	if !got[1].Holdings.Equal(Q(2)) {
		t.Errorf("Holdings = %v, want 2", got[1].Holdings)
	}
}

func TestSyncExchangesUnknownSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"free":"2"}`)
	}))
	defer srv.Close()

	connections := []ExchangeConnection{{Exchange: "x", Symbol: "DOGE", BalanceURL: srv.URL, BalancePath: "$.free"}}
	_, results := SyncExchanges(srv.Client(), connections, nil)
	var nf *NotFoundError
	if err := results[0].Err; !errors.As(err, &nf) {
		t.Errorf("expected a NotFoundError, got %v", err)
	}
}
