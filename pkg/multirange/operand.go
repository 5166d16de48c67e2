package multirange

import (
	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// Operand is either operand of a cross-type predicate (Contains, Overlaps,
// Left, Right, NoExtendRight, NoExtendLeft, Adjacent): a multirange, a
// bare range, or a bare element, all lifted to a normalized Multirange so
// the predicates only need one implementation.
type Operand[E any] struct {
	mr Multirange[E]
}

// FromMultirange wraps an existing Multirange as an Operand.
func FromMultirange[E any](mr Multirange[E]) Operand[E] {
	return Operand[E]{mr: mr}
}

// FromRange lifts a bare range to a single-range Operand.
func FromRange[E any](cap element.Capability[E], r rangeval.Range[E]) Operand[E] {
	return Operand[E]{mr: New(cap, r)}
}

// FromElem lifts a bare element to the inclusive singleton range, then to
// a single-range Operand.
func FromElem[E any](cap element.Capability[E], v E) Operand[E] {
	return Operand[E]{mr: New(cap, rangeval.Singleton(cap, v))}
}

// Multirange returns the normalized multirange backing o.
func (o Operand[E]) Multirange() Multirange[E] { return o.mr }
