package rangesql

import (
	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// Cast accepts an already-internal Range[E], a WireRange, or a
// DateRangeConvenience, and produces a rangeval.Range[E]. Anything else
// reports ErrUnsupportedCastInput. parse decodes a DateRangeConvenience's
// From/To fields using params.InnerType.
func Cast[E any](cap element.Capability[E], parse func(innerType string, v any) (E, error), v any, params Params) (rangeval.Range[E], error) {
	switch val := v.(type) {
	case rangeval.Range[E]:
		return val, nil
	case WireRange:
		return Load(cap, parse, val, params)
	case DateRangeConvenience:
		from, err := parse(params.InnerType, val.From)
		if err != nil {
			return rangeval.Range[E]{}, err
		}
		to, err := parse(params.InnerType, val.To)
		if err != nil {
			return rangeval.Range[E]{}, err
		}
		return rangeval.New(cap, from, to)
	default:
		return rangeval.Range[E]{}, ErrUnsupportedCastInput
	}
}
