// SPDX-License-Identifier: MIT

// Package matrix holds the collection half of the value model and the
// elementwise machinery that every public operation is funnelled through.
//
// The matrix package provides:
//
//   - DenseMatrix: N-dimensional, flat row-major storage plus a shape vector.
//   - SparseMatrix: two-dimensional compressed-sparse-column storage
//     (values, rowIndex, colPtr) with an optional homogeneous datatype.
//   - DeepMap / DeepMap2: shape-preserving recursive application of a scalar
//     callback over nested arrays and matrices, with scalar broadcasting.
//   - MergeSparse: the single-pass scatter merge of two sparse operands,
//     parameterised by whether the operator absorbs zero.
//   - SparseWithDense / SparseWithScalar / MapSparse: stored-entry sweeps that
//     keep a sparse operand sparse.
//   - Multiply: matrix product over 1-d and 2-d operands.
//
// Callbacks are plain functions; the dispatcher supplies them. Nothing in this
// package mutates an operand: every result is a freshly allocated container.
package matrix
