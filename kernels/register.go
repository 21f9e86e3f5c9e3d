// SPDX-License-Identifier: MIT

package kernels

import "github.com/katalvlaran/lvnum/dispatch"

// Register defines every operation on d and registers its kernels.
// Within an operation, kernels are registered Number, BigNumber, Complex,
// Fraction, then the remaining kinds; that order is the priority order of the
// dispatcher's conversion search.
// Panics if d already defines one of the operations.
func Register(d *dispatch.Dispatcher) {
	registerArithmetic(d)
	registerRelational(d)
	registerLogical(d)
	registerBitwise(d)
}

// Names lists the operations Register defines, in definition order.
func Names() []string {
	return []string{
		opAdd, opSubtract, opMultiply, opDotMultiply, opDivide, opDotDivide, opMod,
		opUnaryMinus, opUnaryPlus, opAbs, opSign, opSqrt, opSquare, opCube, opMax, opMin,
		opEqual, opUnequal, opSmaller, opSmallerEq, opLarger, opLargerEq, opEqualScalar, opCompare,
		opIsZero, opIsNegative, opIsPositive, opIsNaN,
		opAnd, opOr, opXor, opNot,
		opBitAnd, opBitOr, opBitXor, opBitNot, opLeftShift, opRightArithShift, opRightLogShift,
	}
}
