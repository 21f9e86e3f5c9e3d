// SPDX-License-Identifier: MIT

// Package kernels holds the per-kind bodies of every public operation and
// registers them, with their static flags, into a dispatch.Dispatcher.
//
// Kernels are pure: they receive operands already converted to their
// signature, never mutate them, and return a fresh value. Domain failures
// (division by zero for exact kinds, unit mismatch, non-integer operands of
// bitwise operations) are reported with the sentinels in errors.go; decimal
// overflow errors from the BigNumber backend are passed through wrapped.
//
// Number and Complex comparisons are relative, using the Context epsilon.
// BigNumber and Fraction comparisons are exact.
package kernels
