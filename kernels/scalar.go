// SPDX-License-Identifier: MIT
// Package kernels: typed adapters and shared numeric helpers.

package kernels

import (
	"math"
	"math/big"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/value"
)

// unary adapts a typed one-operand body to a dispatch.Kernel.
func unary[T value.Value](f func(env dispatch.Env, x T) (value.Value, error)) dispatch.Kernel {
	return func(env dispatch.Env, args []value.Value) (value.Value, error) {
		return f(env, args[0].(T))
	}
}

// binary adapts a typed two-operand body to a dispatch.Kernel.
func binary[T, U value.Value](f func(env dispatch.Env, x T, y U) (value.Value, error)) dispatch.Kernel {
	return func(env dispatch.Env, args []value.Value) (value.Value, error) {
		return f(env, args[0].(T), args[1].(U))
	}
}

// dblEpsilon is the spacing of doubles around 1.
const dblEpsilon = 2.220446049250313e-16

// nearlyEqual compares two doubles relatively: equal when the difference is
// within eps times the larger magnitude, or within dblEpsilon absolutely.
// NaN is never nearly equal to anything; infinities only to themselves.
// eps == 0 compares exactly.
func nearlyEqual(x, y, eps float64) bool {
	if x == y {
		return true
	}
	if eps == 0 || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= dblEpsilon {
		return true
	}
	return diff <= math.Max(math.Abs(x), math.Abs(y))*eps
}

// complexNearlyEqual compares real and imaginary parts independently.
func complexNearlyEqual(x, y complex128, eps float64) bool {
	return nearlyEqual(real(x), real(y), eps) && nearlyEqual(imag(x), imag(y), eps)
}

// compareFloat returns -1, 0 or 1 with nearlyEqual deciding ties, and NaN
// when either side is NaN.
func compareFloat(x, y, eps float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case nearlyEqual(x, y, eps):
		return 0
	case x > y:
		return 1
	}
	return -1
}

// roundPrec rounds d to prec significant digits, never past the decimal point,
// and trims trailing fractional zeros.
func roundPrec(d decimal.Decimal, prec int) decimal.Decimal {
	if excess := d.Prec() - prec; excess > 0 {
		scale := d.Scale() - excess
		if scale < 0 {
			scale = 0
		}
		d = d.Round(scale)
	}
	return d.Trim(0)
}

// bigResult finishes a BigNumber computation: reports backend overflow as
// ErrRange and rounds to the configured precision.
func bigResult(env dispatch.Env, op string, d decimal.Decimal, err error) (value.Value, error) {
	if err != nil {
		return nil, decimalErrorf(op, err)
	}
	return value.NewBigNumber(roundPrec(d, env.Context().Precision())), nil
}

func bigInt(n int64) value.BigNumber {
	return value.NewBigNumber(decimal.MustNew(n, 0))
}

func fraction(r *big.Rat) value.Fraction { return value.FractionFromRat(r) }

func fracInt(n int64) value.Fraction { return value.FractionFromInt(n) }

// unitMagnitudes returns the base magnitudes of two units sharing a dimension.
func unitMagnitudes(op string, x, y value.Unit) (float64, float64, error) {
	xm, ym, err := baseMagnitudes(x, y)
	if err != nil {
		return 0, 0, kernelErrorf(op, err)
	}
	return xm, ym, nil
}

func baseMagnitudes(x, y value.Unit) (float64, float64, error) {
	xm, xok := x.Value()
	ym, yok := y.Value()
	if !xok || !yok {
		return 0, 0, ErrRange
	}
	if !value.EqualBase(x, y) {
		return 0, 0, ErrUnitMismatch
	}
	return xm, ym, nil
}

func unitMagnitude(op string, x value.Unit) (float64, error) {
	m, ok := x.Value()
	if !ok {
		return 0, kernelErrorf(op, ErrRange)
	}
	return m, nil
}

// decimalSqrt computes the square root of a non-negative decimal by Newton
// iteration from the double estimate. Iteration stops at a fixed point or
// after a bounded number of steps when the last digit oscillates.
func decimalSqrt(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsZero() {
		return d, nil
	}
	f, _ := d.Float64()
	x, err := decimal.NewFromFloat64(math.Sqrt(f))
	if err != nil {
		return decimal.Decimal{}, err
	}
	two := decimal.MustNew(2, 0)
	for i := 0; i < 32; i++ {
		q, err := d.Quo(x)
		if err != nil {
			return decimal.Decimal{}, err
		}
		s, err := x.Add(q)
		if err != nil {
			return decimal.Decimal{}, err
		}
		next, err := s.Quo(two)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if next.Cmp(x) == 0 {
			return next, nil
		}
		x = next
	}
	return x, nil
}
