package element

import "time"

// TimeOfDay is a clock time with no date component, measured as an offset
// from midnight.
type TimeOfDay time.Duration

// Time is the Capability for TimeOfDay. Indiscrete: clock time is treated
// as continuous, like Float64.
type Time struct{}

func (Time) Compare(a, b TimeOfDay) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (Time) Successor(TimeOfDay) (TimeOfDay, bool) {
	return 0, false
}

func (c Time) Consecutive(a, b TimeOfDay) bool {
	return DeriveConsecutive(c.Successor, c.Compare, a, b)
}
