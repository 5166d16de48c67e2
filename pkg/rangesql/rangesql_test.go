package rangesql

import (
	"strconv"
	"testing"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/rangeval"
	"github.com/stretchr/testify/assert"
)

func parseInt(_ string, v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, ErrUnsupportedCastInput
	}
}

func dumpInt(_ string, v int64) (any, error) { return v, nil }

func TestDumpLoadRoundTrip(t *testing.T) {
	params := Params{DBType: "int8range", InnerType: "int8"}
	r := rangeval.Must[int64](element.Int{}, 1, 10)

	w, err := Dump(r, dumpInt, params)
	assert.NoError(t, err)
	assert.Equal(t, Inclusive, w.LowerType)
	assert.Equal(t, Exclusive, w.UpperType)

	back, err := Load(element.Int{}, parseInt, w, params)
	assert.NoError(t, err)
	assert.True(t, r.Equal(back))
}

func TestDumpLoadEmpty(t *testing.T) {
	params := Params{DBType: "int8range", InnerType: "int8"}
	w, err := Dump(rangeval.Empty[int64](), dumpInt, params)
	assert.NoError(t, err)
	assert.True(t, w.IsEmpty())

	back, err := Load(element.Int{}, parseInt, w, params)
	assert.NoError(t, err)
	assert.True(t, back.IsEmpty())
}

func TestDumpLoadUnbounded(t *testing.T) {
	params := Params{DBType: "int8range", InnerType: "int8"}
	r := rangeval.Unbounded[int64](element.Int{})
	w, err := Dump(r, dumpInt, params)
	assert.NoError(t, err)
	assert.Equal(t, Unbounded, w.LowerType)
	assert.Equal(t, Unbounded, w.UpperType)

	back, err := Load(element.Int{}, parseInt, w, params)
	assert.NoError(t, err)
	assert.True(t, r.Equal(back))
}

func TestCastPassthroughAndConvenience(t *testing.T) {
	params := Params{DBType: "daterange", InnerType: "int8"}
	r := rangeval.Must[int64](element.Int{}, 1, 10)

	got, err := Cast[int64](element.Int{}, parseInt, r, params)
	assert.NoError(t, err)
	assert.True(t, r.Equal(got))

	conv := DateRangeConvenience{From: int64(1), To: int64(10)}
	got, err = Cast[int64](element.Int{}, parseInt, conv, params)
	assert.NoError(t, err)
	assert.True(t, r.Equal(got))

	_, err = Cast[int64](element.Int{}, parseInt, "nonsense", params)
	assert.ErrorIs(t, err, ErrUnsupportedCastInput)
}

func TestExprHelpers(t *testing.T) {
	assert.Equal(t, "(a @> b)", Contains("a", "b"))
	assert.Equal(t, "(a -|- b)", AdjacentExpr("a", "b"))
	assert.Equal(t, "LOWER_INF(a)", LowerInf("a"))
	assert.Equal(t, "RANGE_MERGE(a, b)", RangeMerge("a", "b"))
	assert.Equal(t, "MULTIRANGE(a, b, c)", MultirangeExpr("a", "b", "c"))
	assert.Equal(t, "UNNEST(m)", Unnest("m"))
}
