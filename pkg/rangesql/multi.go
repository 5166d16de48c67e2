package rangesql

import (
	"errors"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/multirange"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

// CastMulti casts either an already-internal Multirange[E] or a
// WireMultirange. Every element that fails to cast contributes its error
// to an aggregate returned via errors.Join.
func CastMulti[E any](cap element.Capability[E], parse func(innerType string, v any) (E, error), v any, params Params) (multirange.Multirange[E], error) {
	switch val := v.(type) {
	case multirange.Multirange[E]:
		return val, nil
	case WireMultirange:
		var ranges []rangeval.Range[E]
		var errs error
		for _, w := range val {
			r, err := Cast(cap, parse, w, params)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			ranges = append(ranges, r)
		}
		if errs != nil {
			return multirange.Multirange[E]{}, errs
		}
		return multirange.New(cap, ranges...), nil
	default:
		return multirange.Multirange[E]{}, ErrUnsupportedCastInput
	}
}

// DumpMulti dumps every range of m to its wire form.
func DumpMulti[E any](m multirange.Multirange[E], dumpInner func(innerType string, v E) (any, error), params Params) (WireMultirange, error) {
	ranges := m.Ranges()
	out := make(WireMultirange, 0, len(ranges))
	var errs error
	for _, r := range ranges {
		w, err := Dump(r, dumpInner, params)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		out = append(out, w)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// LoadMulti loads a WireMultirange, normalizing the result the same way
// multirange.New always does.
func LoadMulti[E any](cap element.Capability[E], loadInner func(innerType string, v any) (E, error), w WireMultirange, params Params) (multirange.Multirange[E], error) {
	var ranges []rangeval.Range[E]
	var errs error
	for _, wr := range w {
		r, err := Load(cap, loadInner, wr, params)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		ranges = append(ranges, r)
	}
	if errs != nil {
		return multirange.Multirange[E]{}, errs
	}
	return multirange.New(cap, ranges...), nil
}
