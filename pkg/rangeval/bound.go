package rangeval

import "github.com/henderiw/rangedb/pkg/element"

// bound is the internal triple form of a range endpoint: a value (ignored
// when unbound), whether that side has no finite limit, whether the bound
// includes its value, and which side of the range it is.
type bound[E any] struct {
	value     E
	unbound   bool
	inclusive bool
	lower     bool
}

// rank encodes, at a fixed value, where a bound sits relative to another
// bound at the same value: an inclusive bound sits exactly at the value; an
// exclusive lower bound sits just after it; an exclusive upper bound sits
// just before it. Comparing ranks at equal values implements every
// same-value case in compareBounds' contract in one place.
func (b bound[E]) rank() int {
	if b.inclusive {
		return 0
	}
	if b.lower {
		return 1
	}
	return -1
}

// compareBounds is the single source of truth for interval geometry at
// boundary points: it orders two bound triples, accounting for value,
// inclusivity, lower/upper role and unboundedness all at once.
func compareBounds[E any](cap element.Capability[E], a, b bound[E]) int {
	if a.unbound || b.unbound {
		return compareUnboundedBounds(a, b)
	}
	if c := cap.Compare(a.value, b.value); c != 0 {
		return c
	}
	return sign(a.rank() - b.rank())
}

func compareUnboundedBounds[E any](a, b bound[E]) int {
	switch {
	case a.unbound && b.unbound:
		switch {
		case a.lower == b.lower:
			return 0
		case a.lower:
			return -1
		default:
			return 1
		}
	case a.unbound:
		if a.lower {
			return -1
		}
		return 1
	default: // b.unbound
		if b.lower {
			return 1
		}
		return -1
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// canonicalizeLower absorbs an exclusive lower bound into an inclusive one
// at its successor, for discrete E. Indiscrete E (no successor) is a no-op.
// Unbound collapses to the conventional (unbound, inclusive, lower) triple.
func canonicalizeLower[E any](cap element.Capability[E], value E, unbound, inclusive bool) bound[E] {
	if unbound {
		return bound[E]{unbound: true, inclusive: true, lower: true}
	}
	if !inclusive {
		if succ, ok := cap.Successor(value); ok {
			return bound[E]{value: succ, inclusive: true, lower: true}
		}
	}
	return bound[E]{value: value, inclusive: inclusive, lower: true}
}

// canonicalizeUpper absorbs an inclusive upper bound into an exclusive one
// at its successor, for discrete E. Indiscrete E is a no-op.
func canonicalizeUpper[E any](cap element.Capability[E], value E, unbound, inclusive bool) bound[E] {
	if unbound {
		return bound[E]{unbound: true, inclusive: false, lower: false}
	}
	if inclusive {
		if succ, ok := cap.Successor(value); ok {
			return bound[E]{value: succ, inclusive: false, lower: false}
		}
	}
	return bound[E]{value: value, inclusive: inclusive, lower: false}
}

func min[E any](cap element.Capability[E], a, b bound[E]) bound[E] {
	if compareBounds(cap, a, b) <= 0 {
		return a
	}
	return b
}

func max[E any](cap element.Capability[E], a, b bound[E]) bound[E] {
	if compareBounds(cap, a, b) >= 0 {
		return a
	}
	return b
}
