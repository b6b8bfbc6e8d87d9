package findash

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Tabular is a record that can be exported as one CSV line. Header and Row
// must agree in length and order, and every record of a collection must share
// the same header.
type Tabular interface {
	Header() []string
	Row() []any
}

// ExportCSV writes a collection of uniformly-shaped records as CSV: a header
// line of field names, then one line per record, comma separated.
//
// A field value containing the delimiter, a double quote or a newline is
// wrapped in double quotes with internal quotes doubled; other values are
// written bare. Nil renders as an empty string, dates in their long display
// form, numbers in plain decimal notation. There is no trailing newline.
//
// An empty collection is an explicit no-op: nothing is written, not even the
// header, and an EmptyInputError is returned.
func ExportCSV[T Tabular](w io.Writer, records []T) error {
	if len(records) == 0 {
		return &EmptyInputError{Op: "csv export"}
	}

	const separator = ","
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(records[0].Header(), separator))
	for _, r := range records {
		cells := r.Row()
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, csvCell(cell))
		}
		lines = append(lines, strings.Join(row, separator))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// csvCell renders one value and applies the quoting rule.
func csvCell(v any) string {
	var cell string
	switch x := v.(type) {
	case nil:
		cell = ""
	case string:
		cell = x
	case Date:
		cell = x.Long()
	case Money:
		cell = x.Decimal().String()
	case Quantity:
		cell = x.Decimal().String()
	case decimal.Decimal:
		cell = x.String()
	case float64:
		cell = decimal.NewFromFloat(x).String()
	default:
		cell = fmt.Sprint(x)
	}
	if strings.ContainsAny(cell, "\",\n") {
		cell = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}
