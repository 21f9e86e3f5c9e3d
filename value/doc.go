// SPDX-License-Identifier: MIT

// Package value defines the closed set of runtime values the engine computes on.
//
// What & Why:
//
//	Every operand handed to the dispatcher is a Value: a scalar (Number,
//	BigNumber, Complex, Fraction, Boolean, Null, String, Unit) or a collection
//	(nested Array here; DenseMatrix and SparseMatrix in package matrix). Each
//	value reports its Kind, and TypeOf maps any Go value onto a Kind without
//	failing: values outside the model are reported as KindUnknown and left to
//	the dispatcher to reject.
//
// Lifecycle:
//
//	Scalars are immutable. Operations construct new values and never mutate
//	operands. Array is a plain slice; callers must treat it as read-only once
//	it has been handed to the engine.
//
// Complexity:
//
//	TypeOf is O(1). Size is O(total elements) because it verifies that the
//	nested array is rectangular.
package value
