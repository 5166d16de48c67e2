// Package multirange implements a normalized, disjoint, non-adjacent
// ordered sequence of ranges over an element type E, with the same
// predicate and operation surface as pkg/rangeval, plus cross-type
// predicates that accept a bare range or element on either side.
package multirange

import (
	"sort"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// Multirange is a sorted, disjoint, non-adjacent sequence of non-empty
// ranges. The zero value is the empty multirange.
type Multirange[E any] struct {
	cap    element.Capability[E]
	ranges []rangeval.Range[E]
}

// New builds a normalized Multirange from an arbitrary set of ranges: it
// sorts them under rangeval.Compare, drops empties, and merges any that
// overlap or touch. Every constructor in this package that takes ranges
// funnels through it; Empty returns the zero value directly.
func New[E any](cap element.Capability[E], ranges ...rangeval.Range[E]) Multirange[E] {
	nonEmpty := make([]rangeval.Range[E], 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			nonEmpty = append(nonEmpty, r)
		}
	}
	if len(nonEmpty) == 0 {
		return Multirange[E]{cap: cap}
	}

	sort.Slice(nonEmpty, func(i, j int) bool {
		return rangeval.Compare(nonEmpty[i], nonEmpty[j]) < 0
	})

	out := make([]rangeval.Range[E], 1, len(nonEmpty))
	out[0] = nonEmpty[0]
	for _, next := range nonEmpty[1:] {
		last := &out[len(out)-1]
		if rangeval.Overlaps(*last, next) || rangeval.Adjacent(*last, next) {
			// Always succeeds: overlapping or adjacent ranges are
			// contiguous by construction.
			*last = rangeval.UnionMust(*last, next)
			continue
		}
		out = append(out, next)
	}

	return Multirange[E]{cap: cap, ranges: out}
}

// Empty returns the canonical empty multirange.
func Empty[E any]() Multirange[E] {
	return Multirange[E]{}
}

// Ranges returns the normalized ranges backing m, in increasing order.
// The caller must not mutate the returned slice.
func (m Multirange[E]) Ranges() []rangeval.Range[E] { return m.ranges }

// IsEmpty reports whether m has no ranges.
func (m Multirange[E]) IsEmpty() bool { return len(m.ranges) == 0 }

// Len returns the number of disjoint ranges in m.
func (m Multirange[E]) Len() int { return len(m.ranges) }

func (m Multirange[E]) String() string {
	if m.IsEmpty() {
		return "{}"
	}
	s := "{"
	for i, r := range m.ranges {
		if i > 0 {
			s += ","
		}
		s += r.String()
	}
	return s + "}"
}

// Equal reports whether m and other have the same ranges in the same
// order.
func (m Multirange[E]) Equal(other Multirange[E]) bool {
	if len(m.ranges) != len(other.ranges) {
		return false
	}
	for i := range m.ranges {
		if !m.ranges[i].Equal(other.ranges[i]) {
			return false
		}
	}
	return true
}

func capabilityOf[E any](m Multirange[E], other Multirange[E]) element.Capability[E] {
	if m.cap != nil {
		return m.cap
	}
	return other.cap
}
