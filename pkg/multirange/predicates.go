package multirange

import "github.com/henderiw/rangedb/pkg/rangeval"

// Contains reports whether every range in b is contained in at least one
// range of a. Empty b is vacuously contained; empty a contains nothing
// unless b is also empty — both fall out of the same double loop, no
// special-casing needed.
func Contains[E any](a, b Operand[E]) bool {
	for _, br := range b.mr.ranges {
		found := false
		for _, ar := range a.mr.ranges {
			if rangeval.Contains(ar, br) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsElem reports whether v lies in any range of a.
func ContainsElem[E any](a Multirange[E], v E) bool {
	for _, ar := range a.ranges {
		if rangeval.ContainsElem(ar, v) {
			return true
		}
	}
	return false
}

// Overlaps reports whether some range of a overlaps some range of b.
func Overlaps[E any](a, b Operand[E]) bool {
	for _, ar := range a.mr.ranges {
		for _, br := range b.mr.ranges {
			if rangeval.Overlaps(ar, br) {
				return true
			}
		}
	}
	return false
}

// Left reports whether the last range of a lies strictly to the left of
// the first range of b.
func Left[E any](a, b Operand[E]) bool {
	if a.mr.IsEmpty() || b.mr.IsEmpty() {
		return false
	}
	return rangeval.Left(a.mr.ranges[len(a.mr.ranges)-1], b.mr.ranges[0])
}

// Right reports whether the first range of a lies strictly to the right
// of the last range of b.
func Right[E any](a, b Operand[E]) bool { return Left(b, a) }

// NoExtendRight reports whether a's last range does not extend to the
// right of b's last range.
func NoExtendRight[E any](a, b Operand[E]) bool {
	if a.mr.IsEmpty() || b.mr.IsEmpty() {
		return false
	}
	return rangeval.NoExtendRight(a.mr.ranges[len(a.mr.ranges)-1], b.mr.ranges[len(b.mr.ranges)-1])
}

// NoExtendLeft reports whether a's first range does not extend to the
// left of b's first range.
func NoExtendLeft[E any](a, b Operand[E]) bool {
	if a.mr.IsEmpty() || b.mr.IsEmpty() {
		return false
	}
	return rangeval.NoExtendLeft(a.mr.ranges[0], b.mr.ranges[0])
}

// Adjacent reports whether a and b touch at a boundary: either a's first
// range is adjacent to b's last range, or a's last range is adjacent to
// b's first range. Interior adjacency is impossible between normalized
// multiranges (I-6), so only the outer endpoints need checking.
func Adjacent[E any](a, b Operand[E]) bool {
	if a.mr.IsEmpty() || b.mr.IsEmpty() {
		return false
	}
	firstA, lastA := a.mr.ranges[0], a.mr.ranges[len(a.mr.ranges)-1]
	firstB, lastB := b.mr.ranges[0], b.mr.ranges[len(b.mr.ranges)-1]
	return rangeval.Adjacent(firstA, lastB) || rangeval.Adjacent(lastA, firstB)
}
