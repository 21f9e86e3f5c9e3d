// SPDX-License-Identifier: MIT

// Package matrix: DenseMatrix is a concrete N-dimensional container storing
// elements in one flat row-major slice, for cache-friendly elementwise loops.
package matrix

import (
	"github.com/katalvlaran/lvnum/value"
)

// DenseMatrix is a row-major matrix of values.
// size holds the extent of every dimension; data holds prod(size) elements.
// The matrix owns data exclusively: constructors copy their input.
type DenseMatrix struct {
	data []value.Value // flat backing storage, len == prod(size)
	size []int         // shape vector, len >= 1
}

// NewDense creates a DenseMatrix of the given shape over a copy of data.
// Stage 1 (Validate): non-empty shape with non-negative extents, len(data) == prod(size).
// Stage 2 (Prepare): copy data and size.
// Complexity: O(len(data)) time and memory.
func NewDense(data []value.Value, size []int) (*DenseMatrix, error) {
	n, err := shapeLen(size)
	if err != nil {
		return nil, matrixErrorf("NewDense", err)
	}
	if n != len(data) {
		return nil, matrixErrorf("NewDense", value.NewDimensionError(size, []int{len(data)}))
	}
	return &DenseMatrix{
		data: append([]value.Value(nil), data...),
		size: append([]int(nil), size...),
	}, nil
}

// NewDenseFromArray converts a nested Array into a DenseMatrix.
// Errors: ErrDimensionMismatch for jagged input.
// Complexity: O(total elements).
func NewDenseFromArray(a value.Array) (*DenseMatrix, error) {
	size, err := value.Size(a)
	if err != nil {
		return nil, matrixErrorf("NewDenseFromArray", err)
	}
	return &DenseMatrix{data: value.Flatten(a), size: size}, nil
}

// Filled creates a matrix of the given shape with every element set to v.
func Filled(v value.Value, size ...int) (*DenseMatrix, error) {
	n, err := shapeLen(size)
	if err != nil {
		return nil, matrixErrorf("Filled", err)
	}
	data := make([]value.Value, n)
	for i := range data {
		data[i] = v
	}
	return &DenseMatrix{data: data, size: append([]int(nil), size...)}, nil
}

// Kind implements value.Value.
func (m *DenseMatrix) Kind() value.Kind { return value.KindDenseMatrix }

// Size returns a copy of the shape vector.
// Complexity: O(dims).
func (m *DenseMatrix) Size() []int { return append([]int(nil), m.size...) }

// Len returns the number of stored elements.
func (m *DenseMatrix) Len() int { return len(m.data) }

// At retrieves the element at the given multi-index.
// Returns ErrOutOfRange for a wrong index count or any index outside its extent.
// Complexity: O(dims).
func (m *DenseMatrix) At(index ...int) (value.Value, error) {
	off, err := m.offset(index)
	if err != nil {
		return nil, err
	}
	return m.data[off], nil
}

// Data returns a copy of the flat row-major backing data.
func (m *DenseMatrix) Data() []value.Value { return append([]value.Value(nil), m.data...) }

// ToArray converts the matrix into a nested Array of identical shape.
func (m *DenseMatrix) ToArray() value.Array {
	a, _ := value.Reshape(m.data, m.size) // shape invariant holds by construction
	return a
}

// Clone returns an independent copy. Leaves are immutable and shared.
// Complexity: O(len(data)).
func (m *DenseMatrix) Clone() *DenseMatrix {
	return &DenseMatrix{data: m.Data(), size: m.Size()}
}

// String renders the matrix as its nested array form.
func (m *DenseMatrix) String() string { return m.ToArray().String() }

// offset computes the flat row-major offset of index.
func (m *DenseMatrix) offset(index []int) (int, error) {
	if len(index) != len(m.size) {
		return 0, matrixErrorf("DenseMatrix.At", ErrOutOfRange)
	}
	off := 0
	for d, i := range index {
		if i < 0 || i >= m.size[d] {
			return 0, matrixErrorf("DenseMatrix.At", ErrOutOfRange)
		}
		off = off*m.size[d] + i
	}
	return off, nil
}

// shapeLen validates a shape and returns the element count it implies.
func shapeLen(size []int) (int, error) {
	if len(size) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range size {
		if d < 0 {
			return 0, ErrBadShape
		}
		n *= d
	}
	return n, nil
}
