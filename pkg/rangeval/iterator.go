package rangeval

import "errors"

// ErrNotIterable is returned by NewIterator for ranges that cannot be
// walked value by value: indiscrete element types (no successor), and
// ranges with no finite lower bound.
var ErrNotIterable = errors.New("rangeval: range is not iterable (indiscrete element type or unbounded lower bound)")

// Iterator walks a discrete, lower-bounded range value by value, starting
// from its (inclusive, post-canonicalization) lower bound and stopping
// just before the first value the range no longer contains. It is not
// restartable; get a fresh one from NewIterator to iterate again.
type Iterator[E any] struct {
	r       Range[E]
	current E
	started bool
	done    bool
}

// NewIterator returns an Iterator over r, or ErrNotIterable if r can't be
// walked this way.
func NewIterator[E any](r Range[E]) (*Iterator[E], error) {
	if r.empty {
		return &Iterator[E]{r: r, done: true}, nil
	}
	if r.lower.unbound {
		return nil, ErrNotIterable
	}
	if _, ok := r.cap.Successor(r.lower.value); !ok {
		// Successor must exist for *some* value to confirm discreteness;
		// probing the lower bound itself is always safe since it is a
		// real value whenever the range is non-empty and lower-bounded.
		return nil, ErrNotIterable
	}
	return &Iterator[E]{r: r, current: r.lower.value}, nil
}

// Next advances the iterator and reports whether a value is available.
// Call Value after a true return.
func (it *Iterator[E]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if !ContainsElem(it.r, it.current) {
			it.done = true
			return false
		}
		return true
	}
	succ, ok := it.r.cap.Successor(it.current)
	if !ok || !ContainsElem(it.r, succ) {
		it.done = true
		return false
	}
	it.current = succ
	return true
}

// Value returns the current value. Only valid after Next returns true.
func (it *Iterator[E]) Value() E { return it.current }
