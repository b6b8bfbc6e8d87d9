package findash

import "strings"

// TradeDirection is the side of a futures position.
type TradeDirection string

const (
	Long  TradeDirection = "LONG"
	Short TradeDirection = "SHORT"
)

// ParseTradeDirection parses a string into a TradeDirection.
func ParseTradeDirection(s string) (TradeDirection, error) {
	switch TradeDirection(strings.ToUpper(s)) {
	case Long:
		return Long, nil
	case Short:
		return Short, nil
	default:
		return "", validationf("unknown trade direction %q, want %q or %q", s, Long, Short)
	}
}

// TradeStatus is the lifecycle state of a futures trade.
type TradeStatus string

const (
	Open   TradeStatus = "OPEN"
	Closed TradeStatus = "CLOSED"
)

// FuturesTrade is one journaled futures position.
//
// ExitPrice and PnL are meaningful only when Status is Closed; open trades
// carry zero placeholders and are excluded from all statistics.
type FuturesTrade struct {
	ID         string
	Pair       string
	Type       TradeDirection
	EntryPrice Money
	ExitPrice  Money
	Size       Quantity
	PnL        Money
	Status     TradeStatus
	Date       Date
}

// NewFuturesTrade opens a new position.
func NewFuturesTrade(id string, day Date, pair string, direction TradeDirection, entry Money, size Quantity) FuturesTrade {
	return FuturesTrade{
		ID:         id,
		Pair:       pair,
		Type:       direction,
		EntryPrice: entry,
		Size:       size,
		Status:     Open,
		Date:       day,
	}
}

// Validate checks the trade's invariants.
func (t FuturesTrade) Validate() error {
	if t.ID == "" {
		return validationf("trade id is missing")
	}
	if strings.TrimSpace(t.Pair) == "" {
		return validationf("trade pair is empty")
	}
	if t.Type != Long && t.Type != Short {
		return validationf("unknown trade direction %q", t.Type)
	}
	if t.Date.IsZero() {
		return validationf("trade date is missing")
	}
	if !t.Size.IsPositive() {
		return validationf("trade %s size must be positive, got %s", t.Pair, t.Size)
	}
	if !t.EntryPrice.IsPositive() {
		return validationf("trade %s entry price must be positive, got %s", t.Pair, t.EntryPrice)
	}
	switch t.Status {
	case Open:
		if !t.ExitPrice.IsZero() || !t.PnL.IsZero() {
			return validationf("open trade %s must have zero exit price and pnl", t.Pair)
		}
	case Closed:
		if !t.ExitPrice.IsPositive() {
			return validationf("closed trade %s exit price must be positive, got %s", t.Pair, t.ExitPrice)
		}
	default:
		return validationf("unknown trade status %q", t.Status)
	}
	return nil
}

// Close returns a closed copy of the trade with its realized PnL:
// (exit−entry)×size for a long, (entry−exit)×size for a short.
func (t FuturesTrade) Close(exit Money) (FuturesTrade, error) {
	if t.Status == Closed {
		return t, validationf("trade %s is already closed", t.Pair)
	}
	if !exit.IsPositive() {
		return t, validationf("trade %s exit price must be positive, got %s", t.Pair, exit)
	}
	closed := t
	closed.ExitPrice = exit
	closed.Status = Closed
	if t.Type == Long {
		closed.PnL = exit.Sub(t.EntryPrice).Mul(t.Size)
	} else {
		closed.PnL = t.EntryPrice.Sub(exit).Mul(t.Size)
	}
	return closed, nil
}

// Header implements Tabular with the canonical field names.
func (t FuturesTrade) Header() []string {
	return []string{"id", "pair", "type", "entryPrice", "exitPrice", "size", "pnl", "status", "date"}
}

// Row implements Tabular.
func (t FuturesTrade) Row() []any {
	return []any{t.ID, t.Pair, string(t.Type), t.EntryPrice, t.ExitPrice, t.Size, t.PnL, string(t.Status), t.Date}
}
