package findash

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Quantity represents a non-monetary decimal amount (asset holdings, trade size).
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal string like "0.5" into a Quantity.
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

// Decimal returns the exact decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

func (q Quantity) Equal(r Quantity) bool { return q.value.Equal(r.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsPositive() bool      { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }

func (q Quantity) String() string { return q.value.String() }

// Quantity persists as a plain JSON number, matching the storage schema.

func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.value.String()), nil }

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	q.value = v
	return nil
}

var _ json.Marshaler = (*Quantity)(nil)
var _ json.Unmarshaler = (*Quantity)(nil)
