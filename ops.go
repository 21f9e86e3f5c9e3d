// SPDX-License-Identifier: MIT
// Package lvnum: named entry points, one per registered operation.
//
// Each method is Call with a fixed operation name; collections are handled
// elementwise (or by the operation's own collection handler) exactly as in Call.

package lvnum

import "github.com/katalvlaran/lvnum/value"

// Add returns x + y.
func (e *Engine) Add(x, y value.Value) (value.Value, error) { return e.disp.Call("add", x, y) }

// Subtract returns x - y.
func (e *Engine) Subtract(x, y value.Value) (value.Value, error) { return e.disp.Call("subtract", x, y) }

// Multiply returns the product of x and y; two collections give the matrix product.
func (e *Engine) Multiply(x, y value.Value) (value.Value, error) { return e.disp.Call("multiply", x, y) }

// DotMultiply returns the elementwise product.
func (e *Engine) DotMultiply(x, y value.Value) (value.Value, error) { return e.disp.Call("dotMultiply", x, y) }

// Divide returns x / y; a collection may only be divided by a scalar.
func (e *Engine) Divide(x, y value.Value) (value.Value, error) { return e.disp.Call("divide", x, y) }

// DotDivide returns the elementwise quotient.
func (e *Engine) DotDivide(x, y value.Value) (value.Value, error) { return e.disp.Call("dotDivide", x, y) }

// Mod returns the floored modulo x - y·floor(x/y).
func (e *Engine) Mod(x, y value.Value) (value.Value, error) { return e.disp.Call("mod", x, y) }

// Max returns the larger of x and y.
func (e *Engine) Max(x, y value.Value) (value.Value, error) { return e.disp.Call("max", x, y) }

// Min returns the smaller of x and y.
func (e *Engine) Min(x, y value.Value) (value.Value, error) { return e.disp.Call("min", x, y) }

// Equal returns whether x equals y.
func (e *Engine) Equal(x, y value.Value) (value.Value, error) { return e.disp.Call("equal", x, y) }

// Unequal returns whether x differs from y.
func (e *Engine) Unequal(x, y value.Value) (value.Value, error) { return e.disp.Call("unequal", x, y) }

// Smaller returns whether x < y.
func (e *Engine) Smaller(x, y value.Value) (value.Value, error) { return e.disp.Call("smaller", x, y) }

// SmallerEq returns whether x <= y.
func (e *Engine) SmallerEq(x, y value.Value) (value.Value, error) { return e.disp.Call("smallerEq", x, y) }

// Larger returns whether x > y.
func (e *Engine) Larger(x, y value.Value) (value.Value, error) { return e.disp.Call("larger", x, y) }

// LargerEq returns whether x >= y.
func (e *Engine) LargerEq(x, y value.Value) (value.Value, error) { return e.disp.Call("largerEq", x, y) }

// Compare returns -1, 0 or 1.
func (e *Engine) Compare(x, y value.Value) (value.Value, error) { return e.disp.Call("compare", x, y) }

// EqualScalar returns scalar equality.
func (e *Engine) EqualScalar(x, y value.Value) (value.Value, error) { return e.disp.Call("equalScalar", x, y) }

// And returns logical and.
func (e *Engine) And(x, y value.Value) (value.Value, error) { return e.disp.Call("and", x, y) }

// Or returns logical or.
func (e *Engine) Or(x, y value.Value) (value.Value, error) { return e.disp.Call("or", x, y) }

// Xor returns logical exclusive or.
func (e *Engine) Xor(x, y value.Value) (value.Value, error) { return e.disp.Call("xor", x, y) }

// BitAnd returns bitwise and.
func (e *Engine) BitAnd(x, y value.Value) (value.Value, error) { return e.disp.Call("bitAnd", x, y) }

// BitOr returns bitwise or.
func (e *Engine) BitOr(x, y value.Value) (value.Value, error) { return e.disp.Call("bitOr", x, y) }

// BitXor returns bitwise exclusive or.
func (e *Engine) BitXor(x, y value.Value) (value.Value, error) { return e.disp.Call("bitXor", x, y) }

// LeftShift returns x shifted left by y bits.
func (e *Engine) LeftShift(x, y value.Value) (value.Value, error) { return e.disp.Call("leftShift", x, y) }

// RightArithShift returns x shifted right by y bits, sign-extending.
func (e *Engine) RightArithShift(x, y value.Value) (value.Value, error) { return e.disp.Call("rightArithShift", x, y) }

// RightLogShift returns x shifted right by y bits, zero-filling.
func (e *Engine) RightLogShift(x, y value.Value) (value.Value, error) { return e.disp.Call("rightLogShift", x, y) }

// UnaryMinus returns -x.
func (e *Engine) UnaryMinus(x value.Value) (value.Value, error) { return e.disp.Call("unaryMinus", x) }

// UnaryPlus returns x converted to a numeric kind.
func (e *Engine) UnaryPlus(x value.Value) (value.Value, error) { return e.disp.Call("unaryPlus", x) }

// Abs returns |x|.
func (e *Engine) Abs(x value.Value) (value.Value, error) { return e.disp.Call("abs", x) }

// Sign returns the sign of x.
func (e *Engine) Sign(x value.Value) (value.Value, error) { return e.disp.Call("sign", x) }

// Sqrt returns the square root.
func (e *Engine) Sqrt(x value.Value) (value.Value, error) { return e.disp.Call("sqrt", x) }

// Square returns x².
func (e *Engine) Square(x value.Value) (value.Value, error) { return e.disp.Call("square", x) }

// Cube returns x³.
func (e *Engine) Cube(x value.Value) (value.Value, error) { return e.disp.Call("cube", x) }

// IsZero returns whether x is zero.
func (e *Engine) IsZero(x value.Value) (value.Value, error) { return e.disp.Call("isZero", x) }

// IsNegative returns whether x < 0.
func (e *Engine) IsNegative(x value.Value) (value.Value, error) { return e.disp.Call("isNegative", x) }

// IsPositive returns whether x > 0.
func (e *Engine) IsPositive(x value.Value) (value.Value, error) { return e.disp.Call("isPositive", x) }

// IsNaN returns whether x is NaN.
func (e *Engine) IsNaN(x value.Value) (value.Value, error) { return e.disp.Call("isNaN", x) }

// Not returns logical negation.
func (e *Engine) Not(x value.Value) (value.Value, error) { return e.disp.Call("not", x) }

// BitNot returns bitwise complement.
func (e *Engine) BitNot(x value.Value) (value.Value, error) { return e.disp.Call("bitNot", x) }
