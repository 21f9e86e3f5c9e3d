// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with matrixErrorf)
// and tests check them via errors.Is. Nothing here panics on user input.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/value"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// extents, or a dimensionality the operation does not support).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSparseInvariant signals a violated CSC invariant: bad colPtr, unsorted
	// or duplicated row indices.
	ErrSparseInvariant = errors.New("matrix: sparse invariant violated")

	// ErrNotCollection is returned when a collection routine receives a scalar.
	ErrNotCollection = errors.New("matrix: not an array or matrix")
)

// ErrDimensionMismatch is the value-model sentinel, re-exported so callers of
// this package need only one import to match shape errors.
var ErrDimensionMismatch = value.ErrDimensionMismatch

// matrixErrorf tags err with the failing operation, keeping errors.Is intact.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
