// Package findash implements the computational core of a personal finance
// dashboard: canonical entities for transactions, portfolio assets, futures
// trades, budgets, goals and invoices; pure aggregation of derived metrics
// (net worth, income/expense rollups, PnL and win-rate statistics, budget and
// goal progress); an immutable category taxonomy editor; a CSV export
// formatter; and collaborators for market data, exchange balances and
// AI-backed trade analysis.
//
// All computation is synchronous and works on immutable snapshots: every
// aggregation takes the current in-memory collections and returns a derived
// value, and every mutation returns a new snapshot instead of modifying its
// input. I/O lives at the edges (Store, MarketClient, agent).
package findash
