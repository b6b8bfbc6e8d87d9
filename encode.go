package findash

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the table persistence format.
// Each table is a JSONL stream, one storage row per line: human readable,
// single file, easy to diff and merge.

// decodeLines decodes one entity per non-blank line using the given row
// normalizer.
func decodeLines[T any](r io.Reader, from func([]byte) (T, error)) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		item, err := from(line)
		if err != nil {
			return nil, fmt.Errorf("cannot parse line %q: %w", string(line), err)
		}
		out = append(out, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, &UpstreamError{Source: "store", Err: err}
	}
	return out, nil
}

// encodeLines writes one storage row per line.
func encodeLines[T any](w io.Writer, items []T, row func(T) ([]byte, error)) error {
	for _, item := range items {
		data, err := row(item)
		if err != nil {
			return fmt.Errorf("cannot marshal row: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write row: %w", err)
		}
	}
	return nil
}

// DecodeTransactions reads the transactions table from 'r'.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	return decodeLines(r, TransactionFromRow)
}

// EncodeTransactions writes the transactions table to 'w'.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	return encodeLines(w, txs, Transaction.row)
}

// DecodeAssets reads an asset table from 'r'.
func DecodeAssets(r io.Reader) ([]Asset, error) {
	return decodeLines(r, AssetFromRow)
}

// EncodeAssets writes an asset table to 'w'.
func EncodeAssets(w io.Writer, assets []Asset) error {
	return encodeLines(w, assets, Asset.row)
}

// DecodeFuturesTrades reads the futures journal from 'r'.
func DecodeFuturesTrades(r io.Reader) ([]FuturesTrade, error) {
	return decodeLines(r, FuturesTradeFromRow)
}

// EncodeFuturesTrades writes the futures journal to 'w'.
func EncodeFuturesTrades(w io.Writer, trades []FuturesTrade) error {
	return encodeLines(w, trades, FuturesTrade.row)
}

// DecodeCategories reads the category table (with nested sub-categories)
// from 'r'.
func DecodeCategories(r io.Reader) ([]Category, error) {
	return decodeLines(r, CategoryFromRow)
}

// EncodeCategories writes the category table to 'w'.
func EncodeCategories(w io.Writer, categories []Category) error {
	return encodeLines(w, categories, Category.row)
}

// DecodeBudgets reads the budget table from 'r'.
func DecodeBudgets(r io.Reader) ([]Budget, error) {
	return decodeLines(r, BudgetFromRow)
}

// EncodeBudgets writes the budget table to 'w'.
func EncodeBudgets(w io.Writer, budgets []Budget) error {
	return encodeLines(w, budgets, Budget.row)
}

// DecodeGoals reads the goal table from 'r'.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	return decodeLines(r, GoalFromRow)
}

// EncodeGoals writes the goal table to 'w'.
func EncodeGoals(w io.Writer, goals []Goal) error {
	return encodeLines(w, goals, Goal.row)
}

// DecodeInvoices reads the invoice table from 'r'.
func DecodeInvoices(r io.Reader) ([]Invoice, error) {
	return decodeLines(r, InvoiceFromRow)
}

// EncodeInvoices writes the invoice table to 'w'.
func EncodeInvoices(w io.Writer, invoices []Invoice) error {
	return encodeLines(w, invoices, Invoice.row)
}

// DecodeSettings reads the settings singleton from 'r'.
func DecodeSettings(r io.Reader) (Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, &UpstreamError{Source: "store", Err: err}
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Settings{}, nil
	}
	return SettingsFromRow(data)
}

// EncodeSettings writes the settings singleton to 'w'.
func EncodeSettings(w io.Writer, s Settings) error {
	data, err := s.row()
	if err != nil {
		return fmt.Errorf("cannot marshal settings: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
