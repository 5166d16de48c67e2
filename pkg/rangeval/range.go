// Package rangeval implements a single possibly-empty interval over a
// totally-ordered element type E, with PostgreSQL range semantics:
// canonicalization for discrete domains, the seven topological predicates,
// union/intersection/difference, merge, and a total order.
package rangeval

import (
	"fmt"

	"github.com/henderiw/rangedb/pkg/element"
)

// Range is a single interval over E, or the empty range. Values are
// immutable once constructed and safe for concurrent use.
type Range[E any] struct {
	cap   element.Capability[E]
	empty bool
	lower bound[E]
	upper bound[E]
}

// config collects the constructor options.
type config struct {
	lowerInclusive, upperInclusive bool
	lowerUnbound, upperUnbound     bool
}

// Option customizes Range construction. The default is
// LowerInclusive(true), UpperInclusive(false), both bounded.
type Option func(*config)

func LowerInclusive(v bool) Option { return func(c *config) { c.lowerInclusive = v } }
func UpperInclusive(v bool) Option { return func(c *config) { c.upperInclusive = v } }
func LowerUnbound() Option { return func(c *config) { c.lowerUnbound = true } }
func UpperUnbound() Option { return func(c *config) { c.upperUnbound = true } }

// New builds a range over [lower, upper) by default; see Option for the
// knobs to change inclusivity or make a side unbound. It returns
// BoundOrderError if lower exceeds upper, and the canonical Empty range if
// the bounds describe no values.
func New[E any](cap element.Capability[E], lower, upper E, opts ...Option) (Range[E], error) {
	cfg := config{lowerInclusive: true, upperInclusive: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	lb := canonicalizeLower(cap, lower, cfg.lowerUnbound, cfg.lowerInclusive)
	ub := canonicalizeUpper(cap, upper, cfg.upperUnbound, cfg.upperInclusive)

	if compareBounds(cap, lb, ub) > 0 {
		// Canonicalization can push lb past ub even when the raw bounds
		// were in order, whenever they describe no values at all (e.g.
		// (5,5) or [5,5)). Discriminate on the raw lower/upper, not the
		// canonicalized triple: only a genuinely reversed pair is an error.
		if cap.Compare(lower, upper) <= 0 {
			return Empty[E](), nil
		}
		return Range[E]{}, &BoundOrderError[E]{Lower: lower, Upper: upper}
	}

	return Range[E]{cap: cap, lower: lb, upper: ub}, nil
}

// Must is New, panicking on error. It is the Go rendition of the source
// library's `new!`.
func Must[E any](cap element.Capability[E], lower, upper E, opts ...Option) Range[E] {
	r, err := New(cap, lower, upper, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Empty returns the canonical empty range.
func Empty[E any]() Range[E] {
	return Range[E]{empty: true}
}

// Unbounded returns the range (-inf, +inf) over E.
func Unbounded[E any](cap element.Capability[E]) Range[E] {
	var zero E
	return Must(cap, zero, zero, LowerUnbound(), UpperUnbound())
}

// Singleton returns the canonicalized range containing exactly v.
func Singleton[E any](cap element.Capability[E], v E) Range[E] {
	return Must(cap, v, v, LowerInclusive(true), UpperInclusive(true))
}

// IsEmpty reports whether r is the empty range.
func (r Range[E]) IsEmpty() bool { return r.empty }

// Lower returns r's lower value and whether that side is bounded at all
// (false for an unbound lower side or an empty range).
func (r Range[E]) Lower() (E, bool) {
	if r.empty || r.lower.unbound {
		var zero E
		return zero, false
	}
	return r.lower.value, true
}

// Upper returns r's upper value and whether that side is bounded.
func (r Range[E]) Upper() (E, bool) {
	if r.empty || r.upper.unbound {
		var zero E
		return zero, false
	}
	return r.upper.value, true
}

// LowerInclusive reports whether r's lower bound includes its value. False
// for an empty or lower-unbound range.
func (r Range[E]) LowerInclusive() bool {
	return !r.empty && !r.lower.unbound && r.lower.inclusive
}

// UpperInclusive reports whether r's upper bound includes its value. False
// for an empty or upper-unbound range.
func (r Range[E]) UpperInclusive() bool {
	return !r.empty && !r.upper.unbound && r.upper.inclusive
}

// LowerUnbound reports whether r has no finite lower limit.
func (r Range[E]) LowerUnbound() bool { return !r.empty && r.lower.unbound }

// UpperUnbound reports whether r has no finite upper limit.
func (r Range[E]) UpperUnbound() bool { return !r.empty && r.upper.unbound }

func (r Range[E]) String() string {
	if r.empty {
		return "empty"
	}
	var lo, hi string
	if r.lower.unbound {
		lo = "(-inf"
	} else if r.lower.inclusive {
		lo = fmt.Sprintf("[%v", r.lower.value)
	} else {
		lo = fmt.Sprintf("(%v", r.lower.value)
	}
	if r.upper.unbound {
		hi = "+inf)"
	} else if r.upper.inclusive {
		hi = fmt.Sprintf("%v]", r.upper.value)
	} else {
		hi = fmt.Sprintf("%v)", r.upper.value)
	}
	return lo + "," + hi
}

// Equal reports whether r and other have the same shape: both empty, or
// the same bounds with the same inclusivity/unboundedness.
func (r Range[E]) Equal(other Range[E]) bool {
	if r.empty || other.empty {
		return r.empty == other.empty
	}
	cap := capabilityOf(r, other)
	return compareBounds(cap, r.lower, other.lower) == 0 && compareBounds(cap, r.upper, other.upper) == 0
}

// capabilityOf returns the capability to use for an operation between r and
// other, preferring whichever operand is non-empty (an empty range carries
// no capability of its own).
func capabilityOf[E any](r, other Range[E]) element.Capability[E] {
	if r.cap != nil {
		return r.cap
	}
	return other.cap
}
