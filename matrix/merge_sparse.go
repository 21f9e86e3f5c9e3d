// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Sparse pattern merge: combine two CSC operands column by column in one
//     scatter pass, O(nnz(a[:,j]) + nnz(b[:,j])) per column.
//   - Stored-entry sweeps that keep one sparse operand sparse when the partner
//     is dense or scalar and the operator allows it.
//
// Determinism & Performance:
//   - Workspaces (marks, values) are allocated per call and reused across
//     columns; marks are invalidated lazily by stamping the column number, so
//     no O(rows) clearing happens per column.
//   - Row indices of each result column are emitted in ascending order.

package matrix

import (
	"slices"

	"github.com/katalvlaran/lvnum/value"
)

// MergeSparse computes the elementwise f(a, b) of two equally shaped sparse matrices.
// Implementation:
//   - Stage 1: validate shapes (ErrDimensionMismatch) and non-nil operands.
//   - Stage 2: per column j, scatter a's entries into the workspace (mark wa),
//     then scatter b's entries: rows already marked by a get f(a, b) and the
//     both-mark wb; rows only in b get f(0, b) unless pruneZero.
//   - Stage 3: walk the touched rows in ascending order; rows only in a get
//     f(a, 0) unless pruneZero, in which case they are dropped. Any result the
//     zero test accepts is dropped before it is committed.
//
// Behavior highlights:
//   - pruneZero=true models absorbing operators (multiply, and): only rows where
//     both operands store a value can survive.
//   - pruneZero=false models union-like operators (add, or): one-sided entries
//     are combined with the zero of their own kind.
//
// Complexity: O(nnz(a) + nnz(b) + cols + Σ k_j log k_j) where k_j is the number
// of touched rows in column j; O(rows) workspace.
func MergeSparse(a, b *SparseMatrix, f Binary, pruneZero bool, isZero ZeroTest) (*SparseMatrix, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("MergeSparse", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, matrixErrorf("MergeSparse", value.NewDimensionError(a.Size(), b.Size()))
	}
	rows, cols := a.rows, a.cols

	wa := make([]int, rows)         // wa[i] == j+1: a stores row i in column j
	wb := make([]int, rows)         // wb[i] == j+1: b stores row i in column j
	x := make([]value.Value, rows)  // per-row value workspace
	touched := make([]int, 0, rows) // rows to emit for the current column

	capHint := len(a.values) + len(b.values)
	if pruneZero {
		capHint = min(len(a.values), len(b.values))
	}
	out := newBuilder(rows, cols, capHint)

	for j := 0; j < cols; j++ {
		mark := j + 1
		touched = touched[:0]

		// scatter a
		for k := a.ptr[j]; k < a.ptr[j+1]; k++ {
			i := a.index[k]
			wa[i] = mark
			x[i] = a.values[k]
			touched = append(touched, i)
		}

		// scatter b
		for k := b.ptr[j]; k < b.ptr[j+1]; k++ {
			i := b.index[k]
			bv := b.values[k]
			switch {
			case wa[i] == mark:
				r, err := f(x[i], bv)
				if err != nil {
					return nil, err
				}
				x[i] = r
				wb[i] = mark
			case !pruneZero:
				r, err := f(zeroLike(bv), bv)
				if err != nil {
					return nil, err
				}
				x[i] = r
				wb[i] = mark
				touched = append(touched, i)
			}
		}

		slices.Sort(touched)

		// gather
		for _, i := range touched {
			v := x[i]
			if wa[i] == mark && wb[i] != mark {
				if pruneZero {
					continue
				}
				r, err := f(v, zeroLike(v))
				if err != nil {
					return nil, err
				}
				v = r
			}
			z, err := isZero.zero(v)
			if err != nil {
				return nil, err
			}
			out.keep(i, v, z)
		}
		out.closeColumn(j)
	}
	return out.done(), nil
}

// SparseWithDense computes f over the stored entries of s paired with the
// element of d at the same position, producing a sparse result. It is exact
// only for absorbing operators, where an implicit zero of s yields zero.
// When inverse is true the callback receives (d, s) instead of (s, d).
//
// Errors: ErrDimensionMismatch when d's shape differs from s's.
// Complexity: O(nnz(s)) callbacks.
func SparseWithDense(s *SparseMatrix, d value.Value, f Binary, inverse bool, isZero ZeroTest) (*SparseMatrix, error) {
	if s == nil {
		return nil, matrixErrorf("SparseWithDense", ErrNilMatrix)
	}
	dm, err := toDense(d)
	if err != nil {
		return nil, matrixErrorf("SparseWithDense", err)
	}
	if err := ValidateSameShape(s.Size(), dm.size); err != nil {
		return nil, matrixErrorf("SparseWithDense", err)
	}
	return sweep(s, isZero, func(i, j int, v value.Value) (value.Value, error) {
		y := dm.data[i*s.cols+j]
		if inverse {
			return f(y, v)
		}
		return f(v, y)
	})
}

// SparseWithScalar computes f(v, y) (or f(y, v) when inverse) for every stored
// entry v of s, producing a sparse result. Exact for operators with f(0, y) == 0.
// Complexity: O(nnz(s)) callbacks.
func SparseWithScalar(s *SparseMatrix, y value.Value, f Binary, inverse bool, isZero ZeroTest) (*SparseMatrix, error) {
	if s == nil {
		return nil, matrixErrorf("SparseWithScalar", ErrNilMatrix)
	}
	return sweep(s, isZero, func(_, _ int, v value.Value) (value.Value, error) {
		if inverse {
			return f(y, v)
		}
		return f(v, y)
	})
}

// MapSparse applies a zero-preserving unary f to the stored entries of s.
// Complexity: O(nnz(s)) callbacks.
func MapSparse(s *SparseMatrix, f Unary, isZero ZeroTest) (*SparseMatrix, error) {
	if s == nil {
		return nil, matrixErrorf("MapSparse", ErrNilMatrix)
	}
	return sweep(s, isZero, func(_, _ int, v value.Value) (value.Value, error) { return f(v) })
}

// sweep rebuilds s from fn applied to each stored entry, dropping zero results.
func sweep(s *SparseMatrix, isZero ZeroTest, fn func(i, j int, v value.Value) (value.Value, error)) (*SparseMatrix, error) {
	out := newBuilder(s.rows, s.cols, len(s.values))
	for j := 0; j < s.cols; j++ {
		for k := s.ptr[j]; k < s.ptr[j+1]; k++ {
			i := s.index[k]
			r, err := fn(i, j, s.values[k])
			if err != nil {
				return nil, err
			}
			z, err := isZero.zero(r)
			if err != nil {
				return nil, err
			}
			out.keep(i, r, z)
		}
		out.closeColumn(j)
	}
	return out.done(), nil
}
