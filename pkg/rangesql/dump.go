package rangesql

import "github.com/henderiw/rangedb/pkg/rangeval"

// Dump converts r into its wire representation, passing params.InnerType
// through to dumpInner verbatim for every bound it has to encode.
func Dump[E any](r rangeval.Range[E], dumpInner func(innerType string, v E) (any, error), params Params) (WireRange, error) {
	if r.IsEmpty() {
		return WireRange{LowerType: Empty, UpperType: Empty}, nil
	}

	w := WireRange{}

	if r.LowerUnbound() {
		w.LowerType = Unbounded
	} else {
		lo, _ := r.Lower()
		v, err := dumpInner(params.InnerType, lo)
		if err != nil {
			return WireRange{}, err
		}
		w.Lower = v
		w.LowerType = boundType(r.LowerInclusive())
	}

	if r.UpperUnbound() {
		w.UpperType = Unbounded
	} else {
		hi, _ := r.Upper()
		v, err := dumpInner(params.InnerType, hi)
		if err != nil {
			return WireRange{}, err
		}
		w.Upper = v
		w.UpperType = boundType(r.UpperInclusive())
	}

	return w, nil
}

func boundType(inclusive bool) BoundType {
	if inclusive {
		return Inclusive
	}
	return Exclusive
}
