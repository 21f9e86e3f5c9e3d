// SPDX-License-Identifier: MIT
// Package value: sentinel errors and the structured DimensionError.
//
// Every message is prefixed with "value: ..." so it can be grepped in logs.
// Callers match with errors.Is; the structured DimensionError matches
// ErrDimensionMismatch so both styles of check work.

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible shapes between two collections,
	// or a jagged nested array whose sibling sub-arrays differ in length.
	ErrDimensionMismatch = errors.New("value: dimension mismatch")

	// ErrZeroDenominator is returned when a Fraction is built with a zero denominator.
	ErrZeroDenominator = errors.New("value: zero denominator")

	// ErrNotNumeric is returned when a numeric accessor is used on a non-numeric value.
	ErrNotNumeric = errors.New("value: not a numeric value")

	// ErrUnknownUnit indicates a unit name missing from the built-in unit table.
	ErrUnknownUnit = errors.New("value: unknown unit")
)

// DimensionError reports two incompatible shapes.
// A is the shape of the left operand (or the expected shape), B the right one.
type DimensionError struct {
	A []int
	B []int
}

// NewDimensionError copies both shapes so later mutation by the caller does
// not leak into the error.
func NewDimensionError(a, b []int) *DimensionError {
	return &DimensionError{A: append([]int(nil), a...), B: append([]int(nil), b...)}
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s (%v != %v)", ErrDimensionMismatch.Error(), e.A, e.B)
}

// Is lets errors.Is(err, ErrDimensionMismatch) match a *DimensionError.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// valueErrorf wraps err with an operation tag.
func valueErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
