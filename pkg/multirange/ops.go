package multirange

import (
	"errors"

	"github.com/henderiw/rangedb/pkg/rangeval"
)

// Union returns the normalized combination of a and b's ranges.
// Normalization does the actual merging work.
func Union[E any](a, b Multirange[E]) Multirange[E] {
	cap := capabilityOf(a, b)
	combined := make([]rangeval.Range[E], 0, len(a.ranges)+len(b.ranges))
	combined = append(combined, a.ranges...)
	combined = append(combined, b.ranges...)
	return New(cap, combined...)
}

// Intersection returns the normalized set of values common to a and b.
func Intersection[E any](a, b Multirange[E]) Multirange[E] {
	cap := capabilityOf(a, b)
	var parts []rangeval.Range[E]
	for _, ar := range a.ranges {
		for _, br := range b.ranges {
			if inter := rangeval.Intersection(ar, br); !inter.IsEmpty() {
				parts = append(parts, inter)
			}
		}
	}
	return New(cap, parts...)
}

// Difference returns a with every value of b removed. Where removing a
// range of b would split a range of a into two fragments,
// rangeval.Difference reports DisjointRangesError and both fragments are
// kept — there is no failure mode at the multirange level, the error is
// purely an artifact of rangeval's range-only vocabulary.
func Difference[E any](a, b Multirange[E]) Multirange[E] {
	cap := capabilityOf(a, b)
	current := append([]rangeval.Range[E]{}, a.ranges...)
	for _, br := range b.ranges {
		next := make([]rangeval.Range[E], 0, len(current))
		for _, x := range current {
			d, err := rangeval.Difference(x, br)
			if err == nil {
				if !d.IsEmpty() {
					next = append(next, d)
				}
				continue
			}
			var disjoint *rangeval.DisjointRangesError[E]
			if !errors.As(err, &disjoint) {
				// Difference never returns any other error kind.
				panic(err)
			}
			next = append(next, disjoint.Lower, disjoint.Upper)
		}
		current = next
	}
	return New(cap, current...)
}

// Merge returns the smallest range covering every range of m, or Empty if
// m has no ranges.
func Merge[E any](m Multirange[E]) rangeval.Range[E] {
	if m.IsEmpty() {
		return rangeval.Empty[E]()
	}
	return rangeval.Merge(m.ranges[0], m.ranges[len(m.ranges)-1])
}

