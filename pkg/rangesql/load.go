package rangesql

import (
	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// Load converts a WireRange into a rangeval.Range[E], passing
// params.InnerType through to loadInner verbatim for every bound it has
// to decode. This is the same normalization New performs — a loaded range
// always comes out canonicalized, even if the wire bytes weren't.
func Load[E any](cap element.Capability[E], loadInner func(innerType string, v any) (E, error), w WireRange, params Params) (rangeval.Range[E], error) {
	if w.IsEmpty() {
		return rangeval.Empty[E](), nil
	}

	var opts []rangeval.Option
	var lower, upper E

	if w.LowerType == Unbounded {
		opts = append(opts, rangeval.LowerUnbound())
	} else {
		v, err := loadInner(params.InnerType, w.Lower)
		if err != nil {
			return rangeval.Range[E]{}, err
		}
		lower = v
		opts = append(opts, rangeval.LowerInclusive(w.LowerType == Inclusive))
	}

	if w.UpperType == Unbounded {
		opts = append(opts, rangeval.UpperUnbound())
	} else {
		v, err := loadInner(params.InnerType, w.Upper)
		if err != nil {
			return rangeval.Range[E]{}, err
		}
		upper = v
		opts = append(opts, rangeval.UpperInclusive(w.UpperType == Inclusive))
	}

	return rangeval.New(cap, lower, upper, opts...)
}
