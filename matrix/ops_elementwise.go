// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise mapper: apply a scalar callback at every leaf of a nested
//     Array or DenseMatrix and rebuild a container of identical shape.
//   - Two-operand form validates shape compatibility or broadcasts a scalar.
//
// Design:
//   - DenseMatrix fast-path works on the flat row-major buffer.
//   - Arrays recurse level by level so the result keeps the Array form.
//   - Inputs are never mutated; on the first callback error nothing is returned.

package matrix

import (
	"github.com/katalvlaran/lvnum/value"
)

// DeepMap applies f to every leaf of c.
// Implementation:
//   - Array → Array of identical nesting (recursive).
//   - DenseMatrix → DenseMatrix over the flat buffer.
//   - SparseMatrix → DenseMatrix; implicit zeros are visited too. Use
//     MapSparse to visit stored entries only.
//   - Any scalar → f(c).
//
// Errors: ErrNilMatrix for a nil *DenseMatrix or *SparseMatrix.
// Complexity: O(n) callbacks for n leaves; one result allocation.
func DeepMap(c value.Value, f Unary) (value.Value, error) {
	var (
		out value.Value
		err error
	)
	switch x := c.(type) {
	case value.Array:
		out, err = mapArray(x, f)
	case *DenseMatrix, *SparseMatrix:
		d, derr := toDense(x)
		if derr != nil {
			return nil, matrixErrorf("DeepMap", derr)
		}
		out, err = mapDense(d, f)
	default:
		return f(c)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mapArray(a value.Array, f Unary) (value.Array, error) {
	out := make(value.Array, len(a))
	for i, v := range a {
		var (
			r   value.Value
			err error
		)
		if sub, ok := v.(value.Array); ok {
			r, err = mapArray(sub, f)
		} else {
			r, err = f(v)
		}
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func mapDense(m *DenseMatrix, f Unary) (*DenseMatrix, error) {
	out := make([]value.Value, len(m.data))
	for i, v := range m.data {
		r, err := f(v)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return &DenseMatrix{data: out, size: m.Size()}, nil
}

// DeepMap2 applies f to paired leaves of a and b.
// Implementation:
//   - Stage 1: neither side a collection → f(a, b).
//   - Stage 2: exactly one side a collection → its shape is validated, then
//     the scalar side is broadcast unchanged to every leaf (argument order
//     preserved).
//   - Stage 3: both collections → shapes must be identical, else
//     *value.DimensionError. Two Arrays give an Array; any matrix on either
//     side gives a DenseMatrix (SparseMatrix operands are expanded).
//
// Behavior highlights:
//   - Never truncates: length 3 against length 4 is always a DimensionError.
//
// Complexity: O(n) callbacks; O(n) result memory.
func DeepMap2(a, b value.Value, f Binary) (value.Value, error) {
	ka, kb := value.TypeOf(a), value.TypeOf(b)
	switch {
	case !ka.IsCollection() && !kb.IsCollection():
		return f(a, b)
	case !kb.IsCollection():
		if _, err := SizeOf(a); err != nil {
			return nil, matrixErrorf("DeepMap2", err)
		}
		return DeepMap(a, func(x value.Value) (value.Value, error) { return f(x, b) })
	case !ka.IsCollection():
		if _, err := SizeOf(b); err != nil {
			return nil, matrixErrorf("DeepMap2", err)
		}
		return DeepMap(b, func(y value.Value) (value.Value, error) { return f(a, y) })
	}

	sa, err := SizeOf(a)
	if err != nil {
		return nil, matrixErrorf("DeepMap2", err)
	}
	sb, err := SizeOf(b)
	if err != nil {
		return nil, matrixErrorf("DeepMap2", err)
	}
	if err := ValidateSameShape(sa, sb); err != nil {
		return nil, matrixErrorf("DeepMap2", err)
	}

	if ka == value.KindArray && kb == value.KindArray {
		out, err := zipArrays(a.(value.Array), b.(value.Array), f)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf("DeepMap2", err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf("DeepMap2", err)
	}
	out := make([]value.Value, len(da.data))
	for i := range da.data {
		r, err := f(da.data[i], db.data[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return &DenseMatrix{data: out, size: sa}, nil
}

// zipArrays walks two arrays already known to share a shape.
func zipArrays(a, b value.Array, f Binary) (value.Array, error) {
	out := make(value.Array, len(a))
	for i := range a {
		var (
			r   value.Value
			err error
		)
		if sa, ok := a[i].(value.Array); ok {
			r, err = zipArrays(sa, b[i].(value.Array), f)
		} else {
			r, err = f(a[i], b[i])
		}
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
