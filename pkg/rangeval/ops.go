package rangeval

// Union returns the smallest range covering both f and s. It fails with
// NotContiguousError if f and s neither overlap nor touch — their union
// would not be a single interval.
func Union[E any](f, s Range[E]) (Range[E], error) {
	if f.empty {
		return s, nil
	}
	if s.empty {
		return f, nil
	}
	if !Overlaps(f, s) && !Adjacent(f, s) {
		return Range[E]{}, &NotContiguousError[E]{First: f, Second: s}
	}
	cap := capabilityOf(f, s)
	return Range[E]{
		cap:   cap,
		lower: min(cap, f.lower, s.lower),
		upper: max(cap, f.upper, s.upper),
	}, nil
}

// UnionMust is Union, panicking on error.
func UnionMust[E any](f, s Range[E]) Range[E] {
	r, err := Union(f, s)
	if err != nil {
		panic(err)
	}
	return r
}

// Intersection returns the range of values common to f and s, or Empty if
// either is empty or they don't overlap.
func Intersection[E any](f, s Range[E]) Range[E] {
	if f.empty || s.empty || !Overlaps(f, s) {
		return Empty[E]()
	}
	cap := capabilityOf(f, s)
	return Range[E]{
		cap:   cap,
		lower: max(cap, f.lower, s.lower),
		upper: min(cap, f.upper, s.upper),
	}
}

// Difference returns f with every value of s removed. It fails with
// DisjointRangesError, carrying both fragments, if s sits strictly inside
// f and removing it would split f into two pieces.
func Difference[E any](f, s Range[E]) (Range[E], error) {
	if f.empty {
		return Empty[E](), nil
	}
	if s.empty {
		return f, nil
	}
	cap := capabilityOf(f, s)

	cll := compareBounds(cap, f.lower, s.lower)
	clu := compareBounds(cap, f.lower, s.upper)
	cul := compareBounds(cap, f.upper, s.lower)
	cuu := compareBounds(cap, f.upper, s.upper)

	switch {
	case cll < 0 && cuu > 0:
		// s sits strictly inside f: removing it leaves two fragments.
		lowerFrag := Range[E]{
			cap:   cap,
			lower: f.lower,
			upper: bound[E]{value: s.lower.value, unbound: s.lower.unbound, inclusive: !s.lower.inclusive, lower: false},
		}
		upperFrag := Range[E]{
			cap:   cap,
			lower: bound[E]{value: s.upper.value, unbound: s.upper.unbound, inclusive: !s.upper.inclusive, lower: true},
			upper: f.upper,
		}
		return Range[E]{}, &DisjointRangesError[E]{Lower: lowerFrag, Upper: upperFrag}

	case clu > 0 || cul < 0:
		// f and s don't overlap at all.
		return f, nil

	case cll >= 0 && cuu <= 0:
		// s covers all of f.
		return Empty[E](), nil

	case cll <= 0 && cul >= 0 && cuu <= 0:
		// s clips the right of f.
		return Range[E]{
			cap:   cap,
			lower: f.lower,
			upper: bound[E]{value: s.lower.value, unbound: s.lower.unbound, inclusive: !s.lower.inclusive, lower: false},
		}, nil

	default:
		// s clips the left of f: cll >= 0 && cuu >= 0 && clu <= 0.
		return Range[E]{
			cap:   cap,
			lower: bound[E]{value: s.upper.value, unbound: s.upper.unbound, inclusive: !s.upper.inclusive, lower: true},
			upper: f.upper,
		}, nil
	}
}

// DifferenceMust is Difference, panicking on error.
func DifferenceMust[E any](f, s Range[E]) Range[E] {
	r, err := Difference(f, s)
	if err != nil {
		panic(err)
	}
	return r
}

// Merge returns the smallest range covering both f and s, even if they are
// disjoint. Unlike Union, Merge never fails.
func Merge[E any](f, s Range[E]) Range[E] {
	if f.empty {
		return s
	}
	if s.empty {
		return f
	}
	cap := capabilityOf(f, s)
	return Range[E]{
		cap:   cap,
		lower: min(cap, f.lower, s.lower),
		upper: max(cap, f.upper, s.upper),
	}
}

// Compare gives ranges a total order: empty compares greater than every
// specified range and equal to other empties; otherwise lower bounds are
// compared first, then upper bounds as a tiebreaker.
func Compare[E any](f, s Range[E]) int {
	switch {
	case f.empty && s.empty:
		return 0
	case f.empty:
		return 1
	case s.empty:
		return -1
	}
	cap := capabilityOf(f, s)
	if c := compareBounds(cap, f.lower, s.lower); c != 0 {
		return c
	}
	return compareBounds(cap, f.upper, s.upper)
}
