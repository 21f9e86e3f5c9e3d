// SPDX-License-Identifier: MIT

package kernels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/kernels"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

func TestLogical(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)

	tests := []struct {
		op   string
		args []value.Value
		want bool
	}{
		{"and", []value.Value{value.Number(2), value.Number(0)}, false},
		{"and", []value.Value{value.Number(2), value.Number(math.NaN())}, false},
		{"or", []value.Value{value.Number(0), big_("0.5")}, true},
		{"xor", []value.Value{value.Boolean(true), value.Boolean(false)}, true},
		{"xor", []value.Value{value.NewComplex(0, 1), value.Number(1)}, false},
		{"and", []value.Value{frac(t, 1, 2), frac(t, 0, 1)}, false},
		{"or", []value.Value{plainUnit(t, "cm"), unit(t, 0, "m")}, false},
		{"not", []value.Value{value.Null{}}, true},
		{"not", []value.Value{unit(t, 2, "s")}, false},
	}
	for _, tc := range tests {
		require.Equal(t, value.Boolean(tc.want), call(t, d, tc.op, tc.args...), "%s%v", tc.op, tc.args)
	}
}

func TestLogical_AndPrunesSparse(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)
	a := sparse2(t, at(0, 0, value.Number(2)), at(1, 1, value.Number(3)))
	b := sparse2(t, at(0, 0, value.Number(4)), at(0, 1, value.Number(5)))

	and := call(t, d, "and", a, b).(*matrix.SparseMatrix)
	require.Equal(t, []matrix.Entry{at(0, 0, value.Boolean(true))}, and.Entries())

	or := call(t, d, "or", a, b).(*matrix.SparseMatrix)
	require.Equal(t, 3, or.NNZ())

	// not(0) is true: densified.
	require.Equal(t, "[[false, true], [true, false]]", call(t, d, "not", a).String())
}

func TestBitwise_Number(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)

	tests := []struct {
		op   string
		x, y float64
		want float64
	}{
		{"bitAnd", 12, 10, 8},
		{"bitOr", 12, 10, 14},
		{"bitXor", 12, 10, 6},
		{"leftShift", 1, 3, 8},
		{"rightArithShift", -8, 1, -4},
		{"rightLogShift", -1, 60, 15},
		{"rightArithShift", -1, 70, -1},
	}
	for _, tc := range tests {
		got := call(t, d, tc.op, value.Number(tc.x), value.Number(tc.y))
		require.Equal(t, value.Number(tc.want), got, "%s(%v, %v)", tc.op, tc.x, tc.y)
	}
	require.Equal(t, value.Number(-6), call(t, d, "bitNot", value.Number(5)))

	_, err := d.Call("bitAnd", value.Number(1.5), value.Number(1))
	require.ErrorIs(t, err, kernels.ErrNotInteger)
	_, err = d.Call("leftShift", value.Number(1), value.Number(-1))
	require.ErrorIs(t, err, kernels.ErrRange)
	_, err = d.Call("bitOr", value.Number(1e30), value.Number(1))
	require.ErrorIs(t, err, kernels.ErrRange)
}

func TestBitwise_LeftShiftOverflow(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)

	require.Equal(t, value.Number(48), call(t, d, "leftShift", value.Number(3), value.Number(4)))
	require.Equal(t, value.Number(0), call(t, d, "leftShift", value.Number(0), value.Number(200)))
	require.Equal(t, value.Number(math.MinInt64), call(t, d, "leftShift", value.Number(-1), value.Number(63)))

	for _, tc := range []struct{ x, n float64 }{
		{1 << 62, 2},
		{1, 63},
		{1, 64},
		{-3, 62},
	} {
		_, err := d.Call("leftShift", value.Number(tc.x), value.Number(tc.n))
		require.ErrorIs(t, err, kernels.ErrRange, "leftShift(%v, %v)", tc.x, tc.n)
	}

	// The shift count is checked before any big.Int work happens.
	_, err := d.Call("leftShift", big_("1"), big_("4000000000"))
	require.ErrorIs(t, err, kernels.ErrRange)
	_, err = d.Call("leftShift", big_("3"), big_("63"))
	require.ErrorIs(t, err, kernels.ErrRange)
	require.Equal(t, "0", call(t, d, "leftShift", big_("0"), big_("4000000000")).String())
	require.Equal(t, "-9223372036854775808", call(t, d, "leftShift", big_("-1"), big_("63")).String())
}

func TestBitwise_BigNumber(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)

	require.Equal(t, "8", call(t, d, "bitAnd", big_("12"), big_("10")).String())
	require.Equal(t, "-4", call(t, d, "rightArithShift", big_("-8"), big_("1")).String())
	require.Equal(t, "1024", call(t, d, "leftShift", big_("1"), big_("10")).String())
	require.Equal(t, "-6", call(t, d, "bitNot", big_("5")).String())

	_, err := d.Call("leftShift", big_("1"), big_("70"))
	require.ErrorIs(t, err, kernels.ErrRange)
	_, err = d.Call("bitXor", big_("1.5"), big_("1"))
	require.ErrorIs(t, err, kernels.ErrNotInteger)

	// Number operands promote to BigNumber when mixed.
	require.Equal(t, value.KindBigNumber, call(t, d, "bitOr", value.Number(1), big_("2")).Kind())
}

func TestBitwise_SparseShiftKeepsPattern(t *testing.T) {
	t.Parallel()
	d := newDispatcher(t)
	s := sparse2(t, at(0, 0, value.Number(1)), at(1, 1, value.Number(3)))

	got := call(t, d, "leftShift", s, value.Number(2)).(*matrix.SparseMatrix)
	require.Equal(t, []matrix.Entry{at(0, 0, value.Number(4)), at(1, 1, value.Number(12))}, got.Entries())

	masked := call(t, d, "bitAnd", s, value.Number(2)).(*matrix.SparseMatrix)
	require.Equal(t, []matrix.Entry{at(1, 1, value.Number(2))}, masked.Entries())
}
