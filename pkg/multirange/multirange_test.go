package multirange

import (
	"testing"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
	"github.com/stretchr/testify/assert"
)

func r(lo, hi int64, opts ...rangeval.Option) rangeval.Range[int64] {
	return rangeval.Must[int64](element.Int{}, lo, hi, opts...)
}

func TestNewNormalizes(t *testing.T) {
	m := New[int64](element.Int{}, r(1, 10), r(5, 15), r(20, 30))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Ranges()[0].Equal(r(1, 15)))
	assert.True(t, m.Ranges()[1].Equal(r(20, 30)))
}

func TestNewDropsEmptyAndUnsorted(t *testing.T) {
	m := New[int64](element.Int{}, r(20, 30), rangeval.Empty[int64](), r(1, 10))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Ranges()[0].Equal(r(1, 10)))
	assert.True(t, m.Ranges()[1].Equal(r(20, 30)))
}

func TestAdjacentAcrossMultirange(t *testing.T) {
	a := New[int64](element.Int{}, r(1, 10))
	assert.True(t, Adjacent(FromMultirange(a), FromRange(element.Int{}, r(10, 20))))
}

func TestContains(t *testing.T) {
	a := New[int64](element.Int{}, r(1, 10), r(20, 30))
	assert.True(t, Contains(FromMultirange(a), FromRange(element.Int{}, r(2, 5))))
	assert.False(t, Contains(FromMultirange(a), FromRange(element.Int{}, r(9, 21))))
	assert.True(t, ContainsElem(a, int64(25)))
	assert.False(t, ContainsElem(a, int64(15)))
}

func TestOverlapsLeftRight(t *testing.T) {
	a := New[int64](element.Int{}, r(1, 10))
	b := New[int64](element.Int{}, r(20, 30))
	assert.False(t, Overlaps(FromMultirange(a), FromMultirange(b)))
	assert.True(t, Left(FromMultirange(a), FromMultirange(b)))
	assert.True(t, Right(FromMultirange(b), FromMultirange(a)))
}

func TestDifference(t *testing.T) {
	a := New[int64](element.Int{}, r(5, 20))
	b := New[int64](element.Int{}, r(10, 15))
	got := Difference(a, b)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Ranges()[0].Equal(r(5, 10)))
	assert.True(t, got.Ranges()[1].Equal(r(15, 20)))
}

func TestUnionIntersectionMerge(t *testing.T) {
	a := New[int64](element.Int{}, r(1, 10))
	b := New[int64](element.Int{}, r(5, 20))

	u := Union(a, b)
	assert.Equal(t, 1, u.Len())
	assert.True(t, u.Ranges()[0].Equal(r(1, 20)))

	i := Intersection(a, b)
	assert.Equal(t, 1, i.Len())
	assert.True(t, i.Ranges()[0].Equal(r(5, 10)))

	assert.True(t, Merge(u).Equal(r(1, 20)))
	assert.True(t, Merge(Empty[int64]()).IsEmpty())
}
