package element

import "github.com/shopspring/decimal"

// Decimal is the Capability for github.com/shopspring/decimal.Decimal.
// Indiscrete, like Float64: arbitrary-precision decimals have no
// well-defined successor.
type Decimal struct{}

func (Decimal) Compare(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

func (Decimal) Successor(decimal.Decimal) (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

func (c Decimal) Consecutive(a, b decimal.Decimal) bool {
	return DeriveConsecutive(c.Successor, c.Compare, a, b)
}
