package findash

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// This file contains functions to access the CoinGecko API.

// coingeckoIDs maps asset ticker symbols to CoinGecko coin ids.
// TODO: store the coingecko id alongside the asset instead of this table.
var coingeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"SOL":  "solana",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
	"ADA":  "cardano",
	"USDT": "tether",
	"BNB":  "binancecoin",
}

const coingeckoURL = "https://api.coingecko.com/api/v3"

// MarketClient fetches live market data for crypto assets from CoinGecko.
type MarketClient struct {
	client  *http.Client
	baseURL string
}

// NewMarketClient returns a client whose responses are cached on disk with a
// daily expiry, which also keeps within CoinGecko's free-tier rate limits.
func NewMarketClient() *MarketClient {
	return &MarketClient{client: daily(), baseURL: coingeckoURL}
}

// coinMarket is the payload of the /coins/markets endpoint.
type coinMarket struct {
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     Money    `json:"current_price"`
	MarketCap Money    `json:"market_cap"`
	Change24h *float64 `json:"price_change_percentage_24h"`
}

// Enrich returns a copy of the assets with live market data applied: Price,
// Change24h, MarketCap, Name and Logo are overwritten while ID and Holdings
// are preserved. Assets whose symbol has no CoinGecko mapping, or for which
// the API returned no row, pass through unchanged.
//
// On a transport or decoding failure the original assets are returned
// alongside an UpstreamError, so the caller can still display stored data.
func (c *MarketClient) Enrich(assets []Asset) ([]Asset, error) {
	out := append([]Asset(nil), assets...)
	if len(out) == 0 {
		return out, nil
	}

	var ids []string
	for _, a := range assets {
		if id, ok := coingeckoIDs[strings.ToUpper(a.Symbol)]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return out, nil
	}

	addr := fmt.Sprintf("%s/coins/markets?vs_currency=usd&ids=%s", c.baseURL, url.QueryEscape(strings.Join(ids, ",")))
	var markets []coinMarket
	if err := jwget(c.client, addr, &markets); err != nil {
		return out, &UpstreamError{Source: "coingecko", Err: err}
	}

	bySymbol := make(map[string]coinMarket, len(markets))
	for _, m := range markets {
		bySymbol[strings.ToUpper(m.Symbol)] = m
	}

	for i, a := range out {
		live, ok := bySymbol[strings.ToUpper(a.Symbol)]
		if !ok {
			continue
		}
		out[i].Price = live.Price
		out[i].MarketCap = live.MarketCap
		out[i].Name = live.Name
		out[i].Logo = live.Image
		if live.Change24h != nil {
			out[i].Change24h = Percent(*live.Change24h)
		}
	}
	return out, nil
}
