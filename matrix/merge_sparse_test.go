// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

func TestMergeSparse_AddKeepsUnion(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 2, 2, e(0, 0, 2), e(1, 1, 3))
	b := MustSparse(t, 2, 2, e(0, 0, 4), e(0, 1, 5))

	got, err := matrix.MergeSparse(a, b, addNum, false, isZeroNum)
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.Equal(t, map[[2]int]value.Value{
		{0, 0}: value.Number(6),
		{1, 1}: value.Number(3),
		{0, 1}: value.Number(5),
	}, entrySet(got))
}

func TestMergeSparse_MultiplyKeepsIntersection(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 2, 2, e(0, 0, 2), e(1, 1, 3))
	b := MustSparse(t, 2, 2, e(0, 0, 4), e(0, 1, 5))

	got, err := matrix.MergeSparse(a, b, mulNum, true, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{{0, 0}: value.Number(8)}, entrySet(got))
}

func TestMergeSparse_SubtractOneSided(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 3, 1, e(0, 0, 2))
	b := MustSparse(t, 3, 1, e(2, 0, 7))

	got, err := matrix.MergeSparse(a, b, subNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, got.RowIndex(), "rows must be ascending")
	require.Equal(t, []value.Value{value.Number(2), value.Number(-7)}, got.Values())
}

func TestMergeSparse_PrunesComputedZeros(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 2, 2, e(0, 0, 2), e(1, 0, 1))
	b := MustSparse(t, 2, 2, e(0, 0, -2), e(1, 0, 1))

	got, err := matrix.MergeSparse(a, b, addNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{{1, 0}: value.Number(2)}, entrySet(got))
}

func TestMergeSparse_ZeroOperandRoundTrip(t *testing.T) {
	t.Parallel()
	// A carries one explicitly stored zero, which the merge must drop.
	a := MustSparse(t, 3, 3, e(0, 0, 1), e(2, 1, 4), e(1, 2, 0), e(2, 2, -3))
	zero, err := matrix.NewSparse(3, 3)
	require.NoError(t, err)

	got, err := matrix.MergeSparse(a, zero, addNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{
		{0, 0}: value.Number(1),
		{2, 1}: value.Number(4),
		{2, 2}: value.Number(-3),
	}, entrySet(got))
}

func TestMergeSparse_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 2, 2)
	b := MustSparse(t, 2, 3)
	_, err := matrix.MergeSparse(a, b, addNum, false, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MergeSparse(nil, b, addNum, false, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMergeSparse_CallbackErrorPropagates(t *testing.T) {
	t.Parallel()
	a := MustSparse(t, 1, 1, e(0, 0, 1))
	_, err := matrix.MergeSparse(a, a, func(x, y value.Value) (value.Value, error) { return nil, errBoom }, true, nil)
	require.ErrorIs(t, err, errBoom)
}

// TestMergeSparse_MatchesDense cross-checks the scatter merge against the
// dense elementwise mapper on random patterns.
func TestMergeSparse_MatchesDense(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	random := func(rows, cols int) *matrix.SparseMatrix {
		var es []matrix.Entry
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				if rng.Intn(3) == 0 {
					es = append(es, e(i, j, float64(rng.Intn(5)-2)))
				}
			}
		}
		return MustSparse(t, rows, cols, es...)
	}
	for trial := 0; trial < 25; trial++ {
		a, b := random(6, 5), random(6, 5)
		for _, tc := range []struct {
			f     matrix.Binary
			prune bool
		}{{addNum, false}, {subNum, false}, {mulNum, true}} {
			got, err := matrix.MergeSparse(a, b, tc.f, tc.prune, isZeroNum)
			require.NoError(t, err)
			require.NoError(t, got.Validate())
			want, err := matrix.DeepMap2(a, b, tc.f)
			require.NoError(t, err)
			require.Equal(t, want.(*matrix.DenseMatrix).ToArray(), got.ToDense().ToArray())
			for _, v := range got.Values() {
				require.NotEqual(t, value.Number(0), v)
			}
		}
	}
}

func TestSparseWithDense_KeepsPattern(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, 2, 2, e(0, 0, 2), e(1, 1, 3))
	got, err := matrix.SparseWithDense(s, grid([]float64{5, 6}, []float64{7, 0}), mulNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{{0, 0}: value.Number(10)}, entrySet(got))

	got, err = matrix.SparseWithDense(s, grid([]float64{5, 6}, []float64{7, 1}), subNum, true, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{{0, 0}: value.Number(3), {1, 1}: value.Number(-2)}, entrySet(got))

	_, err = matrix.SparseWithDense(s, nums(1, 2), mulNum, false, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSparseWithScalar_AndMapSparse(t *testing.T) {
	t.Parallel()
	s := MustSparse(t, 2, 2, e(0, 0, 2), e(1, 1, 3))
	got, err := matrix.SparseWithScalar(s, value.Number(0), mulNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, 0, got.NNZ())

	got, err = matrix.MapSparse(s, double, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, map[[2]int]value.Value{{0, 0}: value.Number(4), {1, 1}: value.Number(6)}, entrySet(got))
	require.Equal(t, value.KindNumber, got.Datatype())
}

func andBool(x, y value.Value) (value.Value, error) {
	return x.(value.Boolean) && y.(value.Boolean), nil
}

func isFalse(x value.Value) (bool, error) {
	b, ok := x.(value.Boolean)
	return ok && !bool(b), nil
}

func TestMergeSparse_PrunedResultKeepsItsKind(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewSparseFromEntries(2, 2, []matrix.Entry{{Row: 0, Col: 0, Value: value.Boolean(true)}})
	require.NoError(t, err)
	b, err := matrix.NewSparseFromEntries(2, 2, []matrix.Entry{{Row: 0, Col: 0, Value: value.Boolean(false)}})
	require.NoError(t, err)

	got, err := matrix.MergeSparse(a, b, andBool, true, isFalse)
	require.NoError(t, err)
	require.Zero(t, got.NNZ())
	require.Equal(t, value.KindBoolean, got.Datatype())

	v, err := got.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, value.Boolean(false), v)
	require.Equal(t, "[[false, false], [false, false]]", got.ToDense().String())

	// A sweep whose every result is pruned keeps the kind as well.
	s := MustSparse(t, 2, 2, e(0, 0, 2))
	zeroed, err := matrix.SparseWithScalar(s, value.Number(0), mulNum, false, isZeroNum)
	require.NoError(t, err)
	require.Equal(t, value.KindNumber, zeroed.Datatype())
}
