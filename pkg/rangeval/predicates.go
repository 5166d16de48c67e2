package rangeval

import "github.com/henderiw/rangedb/pkg/element"

// Contains reports whether every value in s is also in f.
func Contains[E any](f, s Range[E]) bool {
	if f.empty {
		return false
	}
	if s.empty {
		return true
	}
	cap := capabilityOf(f, s)
	return compareBounds(cap, f.lower, s.lower) <= 0 && compareBounds(cap, f.upper, s.upper) >= 0
}

// ContainsElem reports whether v lies within f, by promoting v to the
// inclusive singleton range [v, v].
func ContainsElem[E any](f Range[E], v E) bool {
	if f.empty {
		return false
	}
	return Contains(f, Singleton(f.cap, v))
}

// Overlaps reports whether f and s share any value.
func Overlaps[E any](f, s Range[E]) bool {
	if f.empty || s.empty {
		return false
	}
	cap := capabilityOf(f, s)
	return compareBounds(cap, f.lower, s.upper) <= 0 && compareBounds(cap, f.upper, s.lower) >= 0
}

// Left reports whether f lies entirely to the left of s.
func Left[E any](f, s Range[E]) bool {
	if f.empty || s.empty {
		return false
	}
	cap := capabilityOf(f, s)
	return compareBounds(cap, f.upper, s.lower) < 0
}

// Right reports whether f lies entirely to the right of s.
func Right[E any](f, s Range[E]) bool { return Left(s, f) }

// NoExtendRight reports whether f does not extend to the right of s.
func NoExtendRight[E any](f, s Range[E]) bool {
	if f.empty || s.empty {
		return false
	}
	cap := capabilityOf(f, s)
	return compareBounds(cap, f.upper, s.upper) <= 0
}

// NoExtendLeft reports whether f does not extend to the left of s.
func NoExtendLeft[E any](f, s Range[E]) bool {
	if f.empty || s.empty {
		return false
	}
	cap := capabilityOf(f, s)
	return compareBounds(cap, f.lower, s.lower) >= 0
}

// Adjacent reports whether f and s touch at exactly one boundary point
// without overlapping: one range's upper bound and the other's lower
// bound sit at the same value with exactly-opposite inclusivity.
func Adjacent[E any](f, s Range[E]) bool {
	if f.empty || s.empty {
		return false
	}
	cap := capabilityOf(f, s)
	return boundsAdjacent(cap, f.upper, s.lower) || boundsAdjacent(cap, s.upper, f.lower)
}

func boundsAdjacent[E any](cap element.Capability[E], upper, lower bound[E]) bool {
	if upper.unbound || lower.unbound {
		return false
	}
	if cap.Compare(upper.value, lower.value) != 0 {
		return false
	}
	return upper.inclusive != lower.inclusive
}
