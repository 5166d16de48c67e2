package rangeval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangedb/pkg/element"
	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	got, err := Union(r(0, 10), r(10, 20))
	assert.NoError(t, err)
	assert.True(t, got.Equal(r(0, 20)))

	_, err = Union(r(0, 10), r(12, 20))
	var notContig *NotContiguousError[int64]
	assert.True(t, errors.As(err, &notContig))

	assert.True(t, UnionMust(Empty[int64](), r(0, 10)).Equal(r(0, 10)))
}

func TestIntersection(t *testing.T) {
	got := Intersection(r(0, 10), r(5, 20))
	assert.True(t, got.Equal(r(5, 10)))

	assert.True(t, Intersection(r(0, 10), r(10, 20)).IsEmpty())
	assert.True(t, Intersection(r(0, 10), r(0, 10)).Equal(r(0, 10)))
}

func TestDifference(t *testing.T) {
	_, err := Difference(r(1, 10), r(2, 8))
	var disjoint *DisjointRangesError[int64]
	if !errors.As(err, &disjoint) {
		t.Fatalf("expected DisjointRangesError, got %v", err)
	}
	if diff := cmp.Diff(disjoint.Lower.String(), r(1, 2).String()); diff != "" {
		t.Errorf("lower fragment mismatch: %s", diff)
	}
	if diff := cmp.Diff(disjoint.Upper.String(), r(8, 10).String()); diff != "" {
		t.Errorf("upper fragment mismatch: %s", diff)
	}

	got, err := Difference(r(1, 10), r(5, 15))
	assert.NoError(t, err)
	assert.True(t, got.Equal(r(1, 5)))

	got, err = Difference(r(1, 10), r(1, 10))
	assert.NoError(t, err)
	assert.True(t, got.IsEmpty())

	got, err = Difference(r(5, 10), r(20, 30))
	assert.NoError(t, err)
	assert.True(t, got.Equal(r(5, 10)))
}

func TestMerge(t *testing.T) {
	got := Merge(r(0, 10), r(20, 30))
	assert.True(t, got.Equal(r(0, 30)))
	assert.True(t, Merge(Empty[int64](), r(0, 10)).Equal(r(0, 10)))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(r(0, 10), r(1, 10)))
	assert.Equal(t, 1, Compare(r(1, 10), r(0, 10)))
	assert.Equal(t, 0, Compare(r(0, 10), r(0, 10)))
	assert.Equal(t, -1, Compare(r(0, 10), Empty[int64]()))
	assert.Equal(t, 0, Compare(Empty[int64](), Empty[int64]()))
}

func TestIterator(t *testing.T) {
	it, err := NewIterator(r(1, 5))
	assert.NoError(t, err)
	var got []int64
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, got)

	_, err = NewIterator(Must[int64](element.Int{}, 0, 0, LowerUnbound()))
	assert.ErrorIs(t, err, ErrNotIterable)
}
