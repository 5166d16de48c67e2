package rangeval

import "fmt"

// BoundOrderError reports that a range's lower bound exceeds its upper
// bound.
type BoundOrderError[E any] struct {
	Lower, Upper E
}

func (e *BoundOrderError[E]) Error() string {
	return fmt.Sprintf("rangeval: lower bound %v exceeds upper bound %v", e.Lower, e.Upper)
}

// NotContiguousError reports that union(F, S) was asked for but F and S
// neither overlap nor touch.
type NotContiguousError[E any] struct {
	First, Second Range[E]
}

func (e *NotContiguousError[E]) Error() string {
	return fmt.Sprintf("rangeval: %s and %s are not contiguous, union would cross a gap", e.First, e.Second)
}

// DisjointRangesError reports that difference(F, S) would leave two
// disjoint fragments of F, carrying both so the caller doesn't have to
// recompute them.
type DisjointRangesError[E any] struct {
	Lower, Upper Range[E]
}

func (e *DisjointRangesError[E]) Error() string {
	return fmt.Sprintf("rangeval: difference leaves disjoint fragments %s and %s", e.Lower, e.Upper)
}
