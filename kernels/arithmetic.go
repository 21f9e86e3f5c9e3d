// SPDX-License-Identifier: MIT
// Package kernels: arithmetic operations.
//
// Kinds per operation:
//   - add, subtract:          Number, BigNumber, Complex, Fraction, Unit+Unit
//   - multiply, dotMultiply:  Number, BigNumber, Complex, Fraction, Unit×Number, Number×Unit
//   - divide, dotDivide:      as multiply, plus Unit÷Unit of equal base (→ Number)
//   - mod:                    Number, BigNumber, Fraction
//   - unaryMinus, unaryPlus, abs, sign: Number, BigNumber, Complex, Fraction, Unit
//   - sqrt:                   Number, BigNumber, Complex, Fraction
//   - square, cube:           Number, BigNumber, Complex, Fraction
//   - max, min:               Number, BigNumber, Fraction

package kernels

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

const (
	opAdd         = "add"
	opSubtract    = "subtract"
	opMultiply    = "multiply"
	opDotMultiply = "dotMultiply"
	opDivide      = "divide"
	opDotDivide   = "dotDivide"
	opMod         = "mod"
	opUnaryMinus  = "unaryMinus"
	opUnaryPlus   = "unaryPlus"
	opAbs         = "abs"
	opSign        = "sign"
	opSqrt        = "sqrt"
	opSquare      = "square"
	opCube        = "cube"
	opMax         = "max"
	opMin         = "min"
)

func registerArithmetic(d *dispatch.Dispatcher) {
	d.Define(dispatch.OpSpec{Name: opAdd, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Register(opAdd, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) { return x + y, nil }), value.KindNumber, value.KindNumber)
	d.Register(opAdd, binary(func(env dispatch.Env, x, y value.BigNumber) (value.Value, error) {
		s, err := x.Decimal().Add(y.Decimal())
		return bigResult(env, opAdd, s, err)
	}), value.KindBigNumber, value.KindBigNumber)
	d.Register(opAdd, binary(func(_ dispatch.Env, x, y value.Complex) (value.Value, error) { return x + y, nil }), value.KindComplex, value.KindComplex)
	d.Register(opAdd, binary(func(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
		return fraction(new(big.Rat).Add(x.Rat(), y.Rat())), nil
	}), value.KindFraction, value.KindFraction)
	d.Register(opAdd, binary(func(_ dispatch.Env, x, y value.Unit) (value.Value, error) {
		xm, ym, err := unitMagnitudes(opAdd, x, y)
		if err != nil {
			return nil, err
		}
		return x.WithValue(xm + ym), nil
	}), value.KindUnit, value.KindUnit)

	d.Define(dispatch.OpSpec{Name: opSubtract, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Register(opSubtract, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) { return x - y, nil }), value.KindNumber, value.KindNumber)
	d.Register(opSubtract, binary(func(env dispatch.Env, x, y value.BigNumber) (value.Value, error) {
		s, err := x.Decimal().Sub(y.Decimal())
		return bigResult(env, opSubtract, s, err)
	}), value.KindBigNumber, value.KindBigNumber)
	d.Register(opSubtract, binary(func(_ dispatch.Env, x, y value.Complex) (value.Value, error) { return x - y, nil }), value.KindComplex, value.KindComplex)
	d.Register(opSubtract, binary(func(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
		return fraction(new(big.Rat).Sub(x.Rat(), y.Rat())), nil
	}), value.KindFraction, value.KindFraction)
	d.Register(opSubtract, binary(func(_ dispatch.Env, x, y value.Unit) (value.Value, error) {
		xm, ym, err := unitMagnitudes(opSubtract, x, y)
		if err != nil {
			return nil, err
		}
		return x.WithValue(xm - ym), nil
	}), value.KindUnit, value.KindUnit)

	// multiply on two collections is the matrix product; everything else is
	// elementwise, where zero absorbs.
	d.Define(dispatch.OpSpec{
		Name: opMultiply, MinArgs: 2, MaxArgs: 2,
		Elementwise: true, Absorbing: true, ZeroPreserving: true, ZeroLeft: true,
		Collection: multiplyCollections,
	})
	registerProducts(d, opMultiply)
	d.Define(dispatch.OpSpec{Name: opDotMultiply, MinArgs: 2, MaxArgs: 2, Elementwise: true, Absorbing: true, ZeroPreserving: true, ZeroLeft: true})
	registerProducts(d, opDotMultiply)

	// divide maps a collection over a scalar divisor; dividing by a
	// collection would need a matrix inverse.
	d.Define(dispatch.OpSpec{Name: opDivide, MinArgs: 2, MaxArgs: 2, ZeroLeft: true, Collection: divideCollections})
	registerQuotients(d, opDivide)
	d.Define(dispatch.OpSpec{Name: opDotDivide, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroLeft: true})
	registerQuotients(d, opDotDivide)

	d.Define(dispatch.OpSpec{Name: opMod, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true, ZeroLeft: true})
	d.Register(opMod, binary(modNumber), value.KindNumber, value.KindNumber)
	d.Register(opMod, binary(modBigNumber), value.KindBigNumber, value.KindBigNumber)
	d.Register(opMod, binary(modFraction), value.KindFraction, value.KindFraction)

	registerSignOps(d)
	registerPowers(d)
	registerExtrema(d)
}

func registerProducts(d *dispatch.Dispatcher, op string) {
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) { return x * y, nil }), value.KindNumber, value.KindNumber)
	d.Register(op, binary(func(env dispatch.Env, x, y value.BigNumber) (value.Value, error) {
		p, err := x.Decimal().Mul(y.Decimal())
		return bigResult(env, op, p, err)
	}), value.KindBigNumber, value.KindBigNumber)
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Complex) (value.Value, error) { return x * y, nil }), value.KindComplex, value.KindComplex)
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
		return fraction(new(big.Rat).Mul(x.Rat(), y.Rat())), nil
	}), value.KindFraction, value.KindFraction)
	d.Register(op, binary(func(_ dispatch.Env, x value.Unit, y value.Number) (value.Value, error) {
		return scaleUnit(x, float64(y)), nil
	}), value.KindUnit, value.KindNumber)
	d.Register(op, binary(func(_ dispatch.Env, x value.Number, y value.Unit) (value.Value, error) {
		return scaleUnit(y, float64(x)), nil
	}), value.KindNumber, value.KindUnit)
}

// scaleUnit multiplies u by f. A plain unit takes f as its magnitude, so
// 5 × cm is 5 cm.
func scaleUnit(u value.Unit, f float64) value.Unit {
	m, ok := u.Value()
	if !ok {
		return value.NewUnit(f, u.Def(), u.Prefix())
	}
	return u.WithValue(m * f)
}

func registerQuotients(d *dispatch.Dispatcher, op string) {
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) { return x / y, nil }), value.KindNumber, value.KindNumber)
	d.Register(op, binary(func(env dispatch.Env, x, y value.BigNumber) (value.Value, error) {
		if y.Decimal().IsZero() {
			return nil, kernelErrorf(op, ErrDivideByZero)
		}
		q, err := x.Decimal().Quo(y.Decimal())
		return bigResult(env, op, q, err)
	}), value.KindBigNumber, value.KindBigNumber)
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Complex) (value.Value, error) { return x / y, nil }), value.KindComplex, value.KindComplex)
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
		if y.Sign() == 0 {
			return nil, kernelErrorf(op, ErrDivideByZero)
		}
		return fraction(new(big.Rat).Quo(x.Rat(), y.Rat())), nil
	}), value.KindFraction, value.KindFraction)
	d.Register(op, binary(func(_ dispatch.Env, x value.Unit, y value.Number) (value.Value, error) {
		m, err := unitMagnitude(op, x)
		if err != nil {
			return nil, err
		}
		return x.WithValue(m / float64(y)), nil
	}), value.KindUnit, value.KindNumber)
	d.Register(op, binary(func(_ dispatch.Env, x, y value.Unit) (value.Value, error) {
		xm, ym, err := unitMagnitudes(op, x, y)
		if err != nil {
			return nil, err
		}
		return value.Number(xm / ym), nil
	}), value.KindUnit, value.KindUnit)
}

// multiplyCollections is the matrix product when both operands are
// collections, and the elementwise product otherwise. Two sparse operands
// give a sparse product.
func multiplyCollections(env dispatch.Env, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	if !value.TypeOf(a).IsCollection() || !value.TypeOf(b).IsCollection() {
		return env.Elementwise(opMultiply, a, b)
	}
	add := func(x, y value.Value) (value.Value, error) { return env.Call(opAdd, x, y) }
	mul := func(x, y value.Value) (value.Value, error) { return env.Call(opMultiply, x, y) }
	p, err := matrix.Multiply(a, b, add, mul)
	if err != nil {
		return nil, kernelErrorf(opMultiply, err)
	}
	_, aSparse := a.(*matrix.SparseMatrix)
	_, bSparse := b.(*matrix.SparseMatrix)
	if aSparse && bSparse && value.TypeOf(p).IsMatrix() {
		s, err := matrix.SparseFromDense(p, env.IsZero)
		if err != nil {
			return nil, kernelErrorf(opMultiply, err)
		}
		return s, nil
	}
	return p, nil
}

func divideCollections(env dispatch.Env, args []value.Value) (value.Value, error) {
	if value.TypeOf(args[1]).IsCollection() {
		return nil, &dispatch.UnsupportedTypeError{Op: opDivide, Kinds: value.Kinds(args)}
	}
	return env.Elementwise(opDivide, args...)
}

// modNumber is the floored modulo x - y·floor(x/y); mod(x, 0) is x.
func modNumber(_ dispatch.Env, x, y value.Number) (value.Value, error) {
	if y == 0 {
		return x, nil
	}
	fx, fy := float64(x), float64(y)
	return value.Number(fx - fy*math.Floor(fx/fy)), nil
}

func modBigNumber(env dispatch.Env, x, y value.BigNumber) (value.Value, error) {
	if y.Decimal().IsZero() {
		return x, nil
	}
	_, r, err := x.Decimal().QuoRem(y.Decimal())
	if err != nil {
		return nil, decimalErrorf(opMod, err)
	}
	if !r.IsZero() && r.Sign() != y.Decimal().Sign() {
		r, err = r.Add(y.Decimal())
	}
	return bigResult(env, opMod, r, err)
}

func modFraction(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
	if y.Sign() == 0 {
		return x, nil
	}
	xr, yr := x.Rat(), y.Rat()
	q := new(big.Rat).Quo(xr, yr)
	floor := new(big.Int).Div(q.Num(), q.Denom())
	r := new(big.Rat).Mul(yr, new(big.Rat).SetInt(floor))
	return fraction(r.Sub(xr, r)), nil
}

func registerSignOps(d *dispatch.Dispatcher) {
	for _, op := range []string{opUnaryMinus, opUnaryPlus, opAbs, opSign} {
		d.Define(dispatch.OpSpec{Name: op, MinArgs: 1, MaxArgs: 1, Elementwise: true, ZeroPreserving: true})
	}

	d.Register(opUnaryMinus, unary(func(_ dispatch.Env, x value.Number) (value.Value, error) { return -x, nil }), value.KindNumber)
	d.Register(opUnaryMinus, unary(func(_ dispatch.Env, x value.BigNumber) (value.Value, error) {
		return value.NewBigNumber(x.Decimal().Neg()), nil
	}), value.KindBigNumber)
	d.Register(opUnaryMinus, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) { return -x, nil }), value.KindComplex)
	d.Register(opUnaryMinus, unary(func(_ dispatch.Env, x value.Fraction) (value.Value, error) {
		return fraction(new(big.Rat).Neg(x.Rat())), nil
	}), value.KindFraction)
	d.Register(opUnaryMinus, unary(func(_ dispatch.Env, x value.Unit) (value.Value, error) {
		m, err := unitMagnitude(opUnaryMinus, x)
		if err != nil {
			return nil, err
		}
		return x.WithValue(-m), nil
	}), value.KindUnit)

	identity := func(_ dispatch.Env, args []value.Value) (value.Value, error) { return args[0], nil }
	for _, k := range []value.Kind{value.KindNumber, value.KindBigNumber, value.KindComplex, value.KindFraction, value.KindUnit} {
		d.Register(opUnaryPlus, identity, k)
	}

	d.Register(opAbs, unary(func(_ dispatch.Env, x value.Number) (value.Value, error) {
		return value.Number(math.Abs(float64(x))), nil
	}), value.KindNumber)
	d.Register(opAbs, unary(func(_ dispatch.Env, x value.BigNumber) (value.Value, error) {
		return value.NewBigNumber(x.Decimal().Abs()), nil
	}), value.KindBigNumber)
	d.Register(opAbs, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
		return value.Number(cmplx.Abs(complex128(x))), nil
	}), value.KindComplex)
	d.Register(opAbs, unary(func(_ dispatch.Env, x value.Fraction) (value.Value, error) {
		return fraction(new(big.Rat).Abs(x.Rat())), nil
	}), value.KindFraction)
	d.Register(opAbs, unary(func(_ dispatch.Env, x value.Unit) (value.Value, error) {
		m, err := unitMagnitude(opAbs, x)
		if err != nil {
			return nil, err
		}
		return x.WithValue(math.Abs(m)), nil
	}), value.KindUnit)

	d.Register(opSign, unary(func(_ dispatch.Env, x value.Number) (value.Value, error) {
		return value.Number(signFloat(float64(x))), nil
	}), value.KindNumber)
	d.Register(opSign, unary(func(_ dispatch.Env, x value.BigNumber) (value.Value, error) {
		return bigInt(int64(x.Decimal().Sign())), nil
	}), value.KindBigNumber)
	d.Register(opSign, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
		r := cmplx.Abs(complex128(x))
		if r == 0 {
			return value.Complex(0), nil
		}
		return value.NewComplex(x.Re()/r, x.Im()/r), nil
	}), value.KindComplex)
	d.Register(opSign, unary(func(_ dispatch.Env, x value.Fraction) (value.Value, error) {
		return fracInt(int64(x.Sign())), nil
	}), value.KindFraction)
	d.Register(opSign, unary(func(_ dispatch.Env, x value.Unit) (value.Value, error) {
		m, err := unitMagnitude(opSign, x)
		if err != nil {
			return nil, err
		}
		return value.Number(signFloat(m)), nil
	}), value.KindUnit)
}

func signFloat(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return f
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

func registerPowers(d *dispatch.Dispatcher) {
	for _, op := range []string{opSqrt, opSquare, opCube} {
		d.Define(dispatch.OpSpec{Name: op, MinArgs: 1, MaxArgs: 1, Elementwise: true, ZeroPreserving: true})
	}

	d.Register(opSqrt, unary(sqrtNumber), value.KindNumber)
	d.Register(opSqrt, unary(sqrtBigNumber), value.KindBigNumber)
	d.Register(opSqrt, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
		return value.Complex(cmplx.Sqrt(complex128(x))), nil
	}), value.KindComplex)
	d.Register(opSqrt, unary(func(env dispatch.Env, x value.Fraction) (value.Value, error) {
		return sqrtNumber(env, value.Number(x.Float64()))
	}), value.KindFraction)

	for _, p := range []struct {
		op string
		n  int
	}{{opSquare, 2}, {opCube, 3}} {
		d.Register(p.op, unary(func(_ dispatch.Env, x value.Number) (value.Value, error) {
			return value.Number(math.Pow(float64(x), float64(p.n))), nil
		}), value.KindNumber)
		d.Register(p.op, unary(func(env dispatch.Env, x value.BigNumber) (value.Value, error) {
			r := x.Decimal()
			for i := 1; i < p.n; i++ {
				var err error
				if r, err = r.Mul(x.Decimal()); err != nil {
					return nil, decimalErrorf(p.op, err)
				}
			}
			return bigResult(env, p.op, r, nil)
		}), value.KindBigNumber)
		d.Register(p.op, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
			r := complex128(x)
			for i := 1; i < p.n; i++ {
				r *= complex128(x)
			}
			return value.Complex(r), nil
		}), value.KindComplex)
		d.Register(p.op, unary(func(_ dispatch.Env, x value.Fraction) (value.Value, error) {
			r := x.Rat()
			for i := 1; i < p.n; i++ {
				r.Mul(r, x.Rat())
			}
			return fraction(r), nil
		}), value.KindFraction)
	}
}

// sqrtNumber returns a Complex root for negative input, or NaN when the
// context is predictable (result kind fixed by operand kind).
func sqrtNumber(env dispatch.Env, x value.Number) (value.Value, error) {
	f := float64(x)
	if f >= 0 || math.IsNaN(f) {
		return value.Number(math.Sqrt(f)), nil
	}
	if env.Context().Predictable() {
		return value.Number(math.NaN()), nil
	}
	return value.NewComplex(0, math.Sqrt(-f)), nil
}

func sqrtBigNumber(env dispatch.Env, x value.BigNumber) (value.Value, error) {
	dx := x.Decimal()
	if !dx.IsNeg() {
		r, err := decimalSqrt(dx)
		return bigResult(env, opSqrt, r, err)
	}
	if env.Context().Predictable() {
		return nil, kernelErrorf(opSqrt, ErrRange)
	}
	f, _ := dx.Neg().Float64()
	return value.NewComplex(0, math.Sqrt(f)), nil
}

func registerExtrema(d *dispatch.Dispatcher) {
	for _, p := range []struct {
		op   string
		pick int // sign of Cmp(x, y) for which x is kept
	}{{opMax, 1}, {opMin, -1}} {
		d.Define(dispatch.OpSpec{Name: p.op, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
		d.Register(p.op, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) {
			fx, fy := float64(x), float64(y)
			switch {
			case math.IsNaN(fx) || math.IsNaN(fy):
				return value.Number(math.NaN()), nil
			case p.pick > 0:
				return value.Number(math.Max(fx, fy)), nil
			}
			return value.Number(math.Min(fx, fy)), nil
		}), value.KindNumber, value.KindNumber)
		d.Register(p.op, binary(func(_ dispatch.Env, x, y value.BigNumber) (value.Value, error) {
			if x.Decimal().Cmp(y.Decimal()) == p.pick {
				return x, nil
			}
			return y, nil
		}), value.KindBigNumber, value.KindBigNumber)
		d.Register(p.op, binary(func(_ dispatch.Env, x, y value.Fraction) (value.Value, error) {
			if x.Rat().Cmp(y.Rat()) == p.pick {
				return x, nil
			}
			return y, nil
		}), value.KindFraction, value.KindFraction)
	}
}
