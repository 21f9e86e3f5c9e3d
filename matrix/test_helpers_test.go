// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (number arrays, sparse matrices)
//     and Number-only callbacks standing in for the dispatcher.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

var errBoom = errors.New("boom")

// nums builds a flat Array of Numbers.
func nums(xs ...float64) value.Array {
	out := make(value.Array, len(xs))
	for i, x := range xs {
		out[i] = value.Number(x)
	}
	return out
}

// grid builds a nested 2-d Array of Numbers.
func grid(rows ...[]float64) value.Array {
	out := make(value.Array, len(rows))
	for i, r := range rows {
		out[i] = nums(r...)
	}
	return out
}

func addNum(x, y value.Value) (value.Value, error) {
	return x.(value.Number) + y.(value.Number), nil
}

func subNum(x, y value.Value) (value.Value, error) {
	return x.(value.Number) - y.(value.Number), nil
}

func mulNum(x, y value.Value) (value.Value, error) {
	return x.(value.Number) * y.(value.Number), nil
}

func isZeroNum(x value.Value) (bool, error) {
	n, ok := x.(value.Number)
	return ok && n == 0, nil
}

// MustSparse builds a sparse matrix from entries or fails the test.
func MustSparse(t *testing.T, rows, cols int, entries ...matrix.Entry) *matrix.SparseMatrix {
	t.Helper()
	m, err := matrix.NewSparseFromEntries(rows, cols, entries)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

// e is a short Entry constructor for Number values.
func e(i, j int, v float64) matrix.Entry {
	return matrix.Entry{Row: i, Col: j, Value: value.Number(v)}
}

// entrySet flattens a sparse matrix into a position→value map.
func entrySet(m *matrix.SparseMatrix) map[[2]int]value.Value {
	out := map[[2]int]value.Value{}
	m.Each(func(i, j int, v value.Value) { out[[2]int{i, j}] = v })
	return out
}
