package staketax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity is a decimal-precise reward amount. Reward entries are numerous
// and tiny, so amounts never go through binary floating point.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient Quantity factory, mostly for tests.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

// ParseQuantity parses a decimal amount from its source text, keeping the
// source's precision.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsNegative() bool        { return q.value.IsNegative() }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) String() string          { return q.value.String() }
