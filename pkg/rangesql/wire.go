// Package rangesql is the external-collaborator boundary: conversion
// to/from a wire range representation modelled on PostgreSQL's range
// format, and pure string builders for the PostgreSQL range/multirange
// operators and functions. Neither pkg/rangeval nor pkg/multirange import
// this package — the dependency runs one way, outward.
package rangesql

import "errors"

// BoundType tags one side of a WireRange, following the vocabulary
// PostgreSQL's binary range wire format uses.
type BoundType uint8

const (
	Inclusive BoundType = iota
	Exclusive
	Unbounded
	Empty
)

// WireRange is the external representation of a range: a record with
// lower/upper values and their bound types, or the Empty sentinel on
// either side to mark the whole range as empty (both sides agree when the
// range is empty).
type WireRange struct {
	Lower, Upper         any
	LowerType, UpperType BoundType
}

// IsEmpty reports whether w represents the empty range.
func (w WireRange) IsEmpty() bool {
	return w.LowerType == Empty || w.UpperType == Empty
}

// WireMultirange is the external representation of a multirange: a list
// of WireRange values, already expected to be normalized.
type WireMultirange []WireRange

// Params carries the parameters an adapter needs to pick the right wire
// shape and elemental codec.
type Params struct {
	// DBType names the underlying wire type, e.g. "int8range", "numrange",
	// "daterange".
	DBType string
	// InnerType names the elemental codec to use for bound values, e.g.
	// "int8", "numeric", "date". Always threaded through verbatim to the
	// caller-supplied dump/load/parse functions — never hard-coded.
	InnerType string
}

// DateRangeConvenience is a convenience input Cast accepts in place of a
// WireRange: a pair of dates understood as a half-open daterange.
type DateRangeConvenience struct {
	From, To any
}

// ErrUnsupportedCastInput is returned by Cast/CastMulti for any input that
// is neither an internal value, a wire value, nor a DateRangeConvenience.
var ErrUnsupportedCastInput = errors.New("rangesql: unsupported cast input")
