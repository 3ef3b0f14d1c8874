package ljvalue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/ljson/ljvalue"
)

func buildObject(pairs ...struct {
	key string
	num float64
}) ljvalue.Value {
	var v ljvalue.Value
	v.SetObject(0)
	for _, p := range pairs {
		v.SetValue([]byte(p.key)).SetNum(p.num)
	}
	return v
}

func TestIsEqualPrimitives(t *testing.T) {
	var a, b ljvalue.Value
	require.True(t, ljvalue.IsEqual(&a, &b), "two Null values are equal")

	a.SetBool(true)
	b.SetBool(true)
	require.True(t, ljvalue.IsEqual(&a, &b))

	b.SetBool(false)
	require.False(t, ljvalue.IsEqual(&a, &b))
}

func TestIsEqualNumberNaNAndZero(t *testing.T) {
	var a, b ljvalue.Value
	a.SetNum(math.NaN())
	b.SetNum(math.NaN())
	require.False(t, ljvalue.IsEqual(&a, &b), "NaN never compares equal")

	a.SetNum(0)
	b.SetNum(math.Copysign(0, -1))
	require.True(t, ljvalue.IsEqual(&a, &b), "+0 and -0 compare equal")
}

func TestIsEqualObjectIsOrderInsensitive(t *testing.T) {
	a := buildObject(struct {
		key string
		num float64
	}{"a", 1}, struct {
		key string
		num float64
	}{"b", 2})
	b := buildObject(struct {
		key string
		num float64
	}{"b", 2}, struct {
		key string
		num float64
	}{"a", 1})
	require.True(t, ljvalue.IsEqual(&a, &b))
}

func TestCopyIsIndependentOfSource(t *testing.T) {
	var src, dst ljvalue.Value
	src.SetArray(0)
	src.PushBack().SetStr([]byte("x"))

	ljvalue.Copy(&dst, &src)
	require.True(t, ljvalue.IsEqual(&dst, &src))

	src.Free()
	require.Equal(t, ljvalue.Array, dst.Type(), "freeing src must not affect dst")
	require.Equal(t, "x", string(dst.Index(0).Str()))
}

func TestMoveLeavesSourceNullAndDestEqualToPreMoveSource(t *testing.T) {
	var src, dst ljvalue.Value
	src.SetObject(0)
	src.SetValue([]byte("k")).SetNum(7)

	var preMove ljvalue.Value
	ljvalue.Copy(&preMove, &src)

	ljvalue.Move(&dst, &src)
	require.Equal(t, ljvalue.Null, src.Type())
	require.True(t, ljvalue.IsEqual(&dst, &preMove))
}

func TestSwapExchangesContents(t *testing.T) {
	var lhs, rhs ljvalue.Value
	lhs.SetNum(1)
	rhs.SetStr([]byte("s"))

	ljvalue.Swap(&lhs, &rhs)
	require.Equal(t, ljvalue.String, lhs.Type())
	require.Equal(t, ljvalue.Number, rhs.Type())
}

func TestSwapSamePointerIsNoop(t *testing.T) {
	var v ljvalue.Value
	v.SetNum(3)
	ljvalue.Swap(&v, &v)
	require.Equal(t, float64(3), v.Num())
}
