package element

import "time"

// DateTime is the Capability for zoned timestamps (time.Time compared with
// its instant, regardless of zone). Indiscrete: there is no well-defined
// successor instant.
type DateTime struct{}

func (DateTime) Compare(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func (DateTime) Successor(time.Time) (time.Time, bool) {
	return time.Time{}, false
}

func (c DateTime) Consecutive(a, b time.Time) bool {
	return DeriveConsecutive(c.Successor, c.Compare, a, b)
}

// NaiveDateTime wraps a wall-clock timestamp with no associated zone, kept
// as a distinct type from DateTime so callers can't silently mix naive and
// zoned values in the same range.
type NaiveDateTime struct {
	Year, Month, Day int
	Hour, Min, Sec, Nsec int
}

func (n NaiveDateTime) toTime() time.Time {
	return time.Date(n.Year, time.Month(n.Month), n.Day, n.Hour, n.Min, n.Sec, n.Nsec, time.UTC)
}

// NaiveDateTimeCap is the Capability for NaiveDateTime. Indiscrete, for the
// same reason as DateTime.
type NaiveDateTimeCap struct{}

func (NaiveDateTimeCap) Compare(a, b NaiveDateTime) int {
	at, bt := a.toTime(), b.toTime()
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}

func (NaiveDateTimeCap) Successor(NaiveDateTime) (NaiveDateTime, bool) {
	return NaiveDateTime{}, false
}

func (c NaiveDateTimeCap) Consecutive(a, b NaiveDateTime) bool {
	return DeriveConsecutive(c.Successor, c.Compare, a, b)
}
