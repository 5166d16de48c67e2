package rangeval

import (
	"testing"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/tj/assert"
)

func r(lo, hi int64, opts ...Option) Range[int64] {
	return Must[int64](element.Int{}, lo, hi, opts...)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(r(1, 101), r(11, 33)))
	assert.False(t, Contains(r(11, 33), r(1, 101)))
	assert.True(t, ContainsElem(r(1, 101), int64(33)))
	assert.False(t, ContainsElem(r(11, 33), int64(101)))
	assert.False(t, Contains(Empty[int64](), r(1, 10)))
	assert.True(t, Contains(r(1, 10), Empty[int64]()))
}

func TestOverlapsAndSides(t *testing.T) {
	assert.True(t, Overlaps(r(0, 10), r(5, 15)))
	assert.False(t, Overlaps(r(0, 10), r(10, 20)))

	assert.True(t, Left(r(0, 10), r(10, 20)))
	assert.False(t, Left(r(0, 11), r(10, 20)))
	assert.True(t, Right(r(10, 20), r(0, 10)))

	assert.True(t, NoExtendRight(r(0, 10), r(0, 20)))
	assert.False(t, NoExtendRight(r(0, 20), r(0, 10)))

	assert.True(t, NoExtendLeft(r(10, 20), r(0, 20)))
	assert.False(t, NoExtendLeft(r(0, 20), r(10, 20)))
}

func TestAdjacent(t *testing.T) {
	assert.True(t, Adjacent(r(0, 10), r(10, 20)))
	assert.True(t, Adjacent(r(10, 20), r(0, 10)))
	assert.False(t, Adjacent(r(0, 10), r(11, 20)))
	assert.False(t, Adjacent(Empty[int64](), r(0, 10)))

	unboundedUpper := Must[int64](element.Int{}, 0, 0, UpperUnbound())
	assert.False(t, Adjacent(unboundedUpper, r(10, 20)))
}
