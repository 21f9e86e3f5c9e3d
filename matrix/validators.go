// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape checks and container
//     normalisation shared by the mapper, the sparse sweeps and the product.
//   - Return plain sentinels or *value.DimensionError so call sites can wrap uniformly.

package matrix

import (
	"github.com/katalvlaran/lvnum/value"
)

// ValidateSameShape ensures two shape vectors are identical.
// Errors: *value.DimensionError (matches ErrDimensionMismatch).
// Complexity: O(dims).
func ValidateSameShape(a, b []int) error {
	if !value.EqualShape(a, b) {
		return value.NewDimensionError(a, b)
	}
	return nil
}

// SizeOf returns the shape of any collection value.
// Errors: ErrNotCollection for scalars, ErrDimensionMismatch for jagged arrays,
// ErrNilMatrix for a nil matrix.
func SizeOf(v value.Value) ([]int, error) {
	switch c := v.(type) {
	case value.Array:
		return value.Size(c)
	case *DenseMatrix:
		if c == nil {
			return nil, ErrNilMatrix
		}
		return c.Size(), nil
	case *SparseMatrix:
		if c == nil {
			return nil, ErrNilMatrix
		}
		return c.Size(), nil
	}
	return nil, ErrNotCollection
}

// toDense normalises a collection into a DenseMatrix. A DenseMatrix is returned
// as is (callers never write into it); Arrays and SparseMatrix are converted.
func toDense(v value.Value) (*DenseMatrix, error) {
	switch c := v.(type) {
	case *DenseMatrix:
		if c == nil {
			return nil, ErrNilMatrix
		}
		return c, nil
	case value.Array:
		return NewDenseFromArray(c)
	case *SparseMatrix:
		if c == nil {
			return nil, ErrNilMatrix
		}
		return c.ToDense(), nil
	}
	return nil, ErrNotCollection
}

// ToDense is the exported form of the normalisation used by the dispatcher.
func ToDense(v value.Value) (*DenseMatrix, error) {
	d, err := toDense(v)
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	return d, nil
}

// dims2 interprets a 1-d or 2-d shape as rows×cols (1-d is a column).
func dims2(size []int) (int, int, error) {
	switch len(size) {
	case 1:
		return size[0], 1, nil
	case 2:
		return size[0], size[1], nil
	}
	return 0, 0, ErrBadShape
}
