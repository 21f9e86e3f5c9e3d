// SPDX-License-Identifier: MIT
// Package kernels: sentinel errors for scalar domain failures.

package kernels

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is returned for operands outside an operation's domain, such as
	// a plain unit without magnitude or an integer too large for a bitwise op,
	// and for BigNumber results that overflow the 19-digit decimal backend.
	ErrRange = errors.New("kernels: value out of range")

	// ErrDivideByZero is returned when an exact kind (BigNumber, Fraction) is
	// divided by zero. Number and Complex follow IEEE-754 instead.
	ErrDivideByZero = errors.New("kernels: division by zero")

	// ErrUnitMismatch is returned when two units do not share a base dimension.
	ErrUnitMismatch = errors.New("kernels: units do not have the same base")

	// ErrNotInteger is returned by integer-only operations on fractional input.
	ErrNotInteger = errors.New("kernels: integer expected")
)

// kernelErrorf tags err with the operation name.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// decimalErrorf tags a decimal backend failure with the operation name and
// ErrRange; with division by zero ruled out, the backend only fails on
// overflow.
func decimalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrRange, err)
}
