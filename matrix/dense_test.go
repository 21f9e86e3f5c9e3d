// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

func TestNewDense_CopiesInput(t *testing.T) {
	t.Parallel()
	data := []value.Value{value.Number(1), value.Number(2), value.Number(3), value.Number(4)}
	m, err := matrix.NewDense(data, []int{2, 2})
	require.NoError(t, err)

	data[0] = value.Number(99)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, value.Number(1), v, "matrix must own its storage")

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, value.Number(3), v)
	require.Equal(t, value.KindDenseMatrix, value.TypeOf(m))
}

func TestNewDense_BadShape(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(nil, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(nil, []int{-1})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense([]value.Value{value.Number(1)}, []int{2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtOutOfRange(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromArray(grid([]float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_ArrayRoundTrip(t *testing.T) {
	t.Parallel()
	a := grid([]float64{1, 2, 3}, []float64{4, 5, 6})
	m, err := matrix.NewDenseFromArray(a)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, m.Size())
	require.Equal(t, a, m.ToArray())
	require.Equal(t, "[[1, 2, 3], [4, 5, 6]]", m.String())

	c := m.Clone()
	require.Equal(t, m.Data(), c.Data())

	_, err = matrix.NewDenseFromArray(value.Array{nums(1, 2), nums(3)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFilled(t *testing.T) {
	t.Parallel()
	m, err := matrix.Filled(value.Number(7), 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
	require.Equal(t, value.Array{value.Array{}, value.Array{}}, m.ToArray())
}
