// SPDX-License-Identifier: MIT

package value

import (
	"strings"
)

// Array is a nested, rectangular list of values. Sibling sub-arrays at the same
// depth must have equal length; Size enforces this.
type Array []Value

// Kind implements Value.
func (Array) Kind() Kind { return KindArray }

// String renders "[[1, 2], [3, 4]]".
func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v == nil {
			sb.WriteString("null")
			continue
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Size measures the dimensions of a nested array.
// Implementation:
//   - Stage 1: the outer length is the first dimension.
//   - Stage 2: if the first element is an Array, every sibling must be an
//     Array of identical size; otherwise no sibling may be an Array.
//
// Errors: *DimensionError (matches ErrDimensionMismatch) for jagged input.
// Complexity: O(total elements).
func Size(a Array) ([]int, error) {
	size := []int{len(a)}
	if len(a) == 0 {
		return size, nil
	}
	first, nested := a[0].(Array)
	if !nested {
		for _, v := range a[1:] {
			if sub, ok := v.(Array); ok {
				return nil, NewDimensionError(nil, []int{len(sub)})
			}
		}
		return size, nil
	}
	sub, err := Size(first)
	if err != nil {
		return nil, err
	}
	for _, v := range a[1:] {
		child, ok := v.(Array)
		if !ok {
			return nil, NewDimensionError(sub, nil)
		}
		cs, err := Size(child)
		if err != nil {
			return nil, err
		}
		if !EqualShape(sub, cs) {
			return nil, NewDimensionError(sub, cs)
		}
	}
	return append(size, sub...), nil
}

// EqualShape reports whether two shape vectors are identical.
func EqualShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Flatten returns the leaves of a in row-major order.
func Flatten(a Array) []Value {
	out := make([]Value, 0, len(a))
	var walk func(Array)
	walk = func(x Array) {
		for _, v := range x {
			if sub, ok := v.(Array); ok {
				walk(sub)
				continue
			}
			out = append(out, v)
		}
	}
	walk(a)
	return out
}

// Reshape rebuilds a nested Array of the given shape from row-major leaves.
// Errors: *DimensionError when len(flat) differs from the product of shape.
func Reshape(flat []Value, shape []int) (Array, error) {
	n := 1
	for _, d := range shape {
		n *= d
	}
	if len(shape) == 0 || n != len(flat) {
		return nil, NewDimensionError(shape, []int{len(flat)})
	}
	var build func(off, depth int) Array
	build = func(off, depth int) Array {
		out := make(Array, shape[depth])
		if depth == len(shape)-1 {
			copy(out, flat[off:off+shape[depth]])
			return out
		}
		stride := 1
		for _, d := range shape[depth+1:] {
			stride *= d
		}
		for i := range out {
			out[i] = build(off+i*stride, depth+1)
		}
		return out
	}
	return build(0, 0), nil
}

// Clone returns a deep copy of the nesting; leaves are immutable and shared.
func (a Array) Clone() Array {
	out := make(Array, len(a))
	for i, v := range a {
		if sub, ok := v.(Array); ok {
			out[i] = sub.Clone()
			continue
		}
		out[i] = v
	}
	return out
}
