package findash

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Table file names inside the store directory.
const (
	transactionsTable = "transactions.jsonl"
	cryptoTable       = "crypto_assets.jsonl"
	stocksTable       = "stock_assets.jsonl"
	futuresTable      = "futures_trades.jsonl"
	categoriesTable   = "categories.jsonl"
	budgetsTable      = "budgets.jsonl"
	goalsTable        = "goals.jsonl"
	invoicesTable     = "invoices.jsonl"
	settingsTable     = "settings.json"
)

// Store persists dashboard snapshots as a directory of table files, one JSONL
// file per collection. A snapshot is loaded and saved wholesale: the store
// never edits a table in place.
type Store struct {
	dir string
}

// OpenStore opens the store rooted at 'dir', creating the directory when it
// does not exist yet.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// NewID returns a fresh unique id for any entity.
func NewID() string { return uuid.NewString() }

// Load reads every table into a fresh snapshot. A table file that does not
// exist yet reads as an empty collection, so a brand new store loads as an
// empty dashboard.
func (s *Store) Load() (Dashboard, error) {
	var d Dashboard
	var err error

	if d.Transactions, err = loadTable(s.dir, transactionsTable, DecodeTransactions); err != nil {
		return Dashboard{}, err
	}
	if d.CryptoAssets, err = loadTable(s.dir, cryptoTable, DecodeAssets); err != nil {
		return Dashboard{}, err
	}
	if d.StockAssets, err = loadTable(s.dir, stocksTable, DecodeAssets); err != nil {
		return Dashboard{}, err
	}
	if d.Trades, err = loadTable(s.dir, futuresTable, DecodeFuturesTrades); err != nil {
		return Dashboard{}, err
	}
	categories, err := loadTable(s.dir, categoriesTable, DecodeCategories)
	if err != nil {
		return Dashboard{}, err
	}
	d.Categories = NewCategoryTree(categories)
	if d.Budgets, err = loadTable(s.dir, budgetsTable, DecodeBudgets); err != nil {
		return Dashboard{}, err
	}
	if d.Goals, err = loadTable(s.dir, goalsTable, DecodeGoals); err != nil {
		return Dashboard{}, err
	}
	if d.Invoices, err = loadTable(s.dir, invoicesTable, DecodeInvoices); err != nil {
		return Dashboard{}, err
	}

	settings, err := loadSingle(s.dir, settingsTable, DecodeSettings)
	if err != nil {
		return Dashboard{}, err
	}
	d.Settings = settings
	return d, nil
}

// Save writes every table of the snapshot back, each through a temp file and
// rename so a crash mid-save never leaves a half written table behind.
func (s *Store) Save(d Dashboard) error {
	if err := saveTable(s.dir, transactionsTable, d.Transactions, EncodeTransactions); err != nil {
		return err
	}
	if err := saveTable(s.dir, cryptoTable, d.CryptoAssets, EncodeAssets); err != nil {
		return err
	}
	if err := saveTable(s.dir, stocksTable, d.StockAssets, EncodeAssets); err != nil {
		return err
	}
	if err := saveTable(s.dir, futuresTable, d.Trades, EncodeFuturesTrades); err != nil {
		return err
	}
	if err := saveTable(s.dir, categoriesTable, d.Categories.Categories(), EncodeCategories); err != nil {
		return err
	}
	if err := saveTable(s.dir, budgetsTable, d.Budgets, EncodeBudgets); err != nil {
		return err
	}
	if err := saveTable(s.dir, goalsTable, d.Goals, EncodeGoals); err != nil {
		return err
	}
	if err := saveTable(s.dir, invoicesTable, d.Invoices, EncodeInvoices); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeSettings(&buf, d.Settings); err != nil {
		return err
	}
	return writeTable(s.dir, settingsTable, buf.Bytes())
}

// loadTable reads one JSONL table, treating a missing file as an empty
// collection.
func loadTable[T any](dir, name string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &UpstreamError{Source: "store", Err: err}
	}
	defer f.Close()

	items, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	return items, nil
}

// loadSingle reads one single-object table, treating a missing file as the
// zero value.
func loadSingle[T any](dir, name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return zero, nil
	}
	if err != nil {
		return zero, &UpstreamError{Source: "store", Err: err}
	}
	defer f.Close()

	item, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("cannot read %s: %w", name, err)
	}
	return item, nil
}

// saveTable encodes one collection and writes it atomically.
func saveTable[T any](dir, name string, items []T, encode func(io.Writer, []T) error) error {
	var buf bytes.Buffer
	if err := encode(&buf, items); err != nil {
		return fmt.Errorf("cannot encode %s: %w", name, err)
	}
	return writeTable(dir, name, buf.Bytes())
}

// writeTable writes content to a temp file then renames it over the table.
func writeTable(dir, name string, content []byte) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %s: %w", name, err)
	}
	return nil
}
