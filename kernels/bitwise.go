// SPDX-License-Identifier: MIT
// Package kernels: bitwise operations on integer-valued Number and BigNumber.
//
// Number operands are read as int64 two's complement and a left shift that
// would wrap fails with ErrRange. BigNumber operands go through big.Int; a left
// shift is bounded before it runs, and results that no longer fit the decimal
// backend fail with ErrRange too. rightLogShift is defined on Number only,
// shifting the 64-bit pattern as unsigned.

package kernels

import (
	"math/big"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/value"
)

const (
	opBitAnd          = "bitAnd"
	opBitOr           = "bitOr"
	opBitXor          = "bitXor"
	opBitNot          = "bitNot"
	opLeftShift       = "leftShift"
	opRightArithShift = "rightArithShift"
	opRightLogShift   = "rightLogShift"
)

// twoTo63 is the first magnitude outside int64.
const twoTo63 = 9223372036854775808.0

// maxShiftBits bounds the bit length of a BigNumber left-shift result. A
// 19-digit decimal never needs more than 64 bits.
const maxShiftBits = 64

func numberInt(op string, x value.Number) (int64, error) {
	f := float64(x)
	if !x.IsInteger() {
		return 0, kernelErrorf(op, ErrNotInteger)
	}
	if f >= twoTo63 || f < -twoTo63 {
		return 0, kernelErrorf(op, ErrRange)
	}
	return int64(f), nil
}

func bigNumberInt(op string, x value.BigNumber) (*big.Int, error) {
	d := x.Decimal()
	if !d.IsInt() {
		return nil, kernelErrorf(op, ErrNotInteger)
	}
	w, _, ok := d.Int64(0)
	if !ok {
		return nil, kernelErrorf(op, ErrRange)
	}
	return big.NewInt(w), nil
}

func bigNumberFromInt(op string, i *big.Int) (value.Value, error) {
	d, err := decimal.Parse(i.String())
	if err != nil {
		return nil, decimalErrorf(op, err)
	}
	return value.NewBigNumber(d), nil
}

// shiftCount validates a shift amount: a non-negative integer.
func shiftCount(op string, y int64) (uint, error) {
	if y < 0 {
		return 0, kernelErrorf(op, ErrRange)
	}
	return uint(y), nil
}

func numberBits(op string, f func(x, y int64) (int64, error)) dispatch.Kernel {
	return binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) {
		a, err := numberInt(op, x)
		if err != nil {
			return nil, err
		}
		b, err := numberInt(op, y)
		if err != nil {
			return nil, err
		}
		r, err := f(a, b)
		if err != nil {
			return nil, err
		}
		return value.Number(float64(r)), nil
	})
}

func bigNumberBits(op string, f func(z, x, y *big.Int) (*big.Int, error)) dispatch.Kernel {
	return binary(func(_ dispatch.Env, x, y value.BigNumber) (value.Value, error) {
		a, err := bigNumberInt(op, x)
		if err != nil {
			return nil, err
		}
		b, err := bigNumberInt(op, y)
		if err != nil {
			return nil, err
		}
		r, err := f(new(big.Int), a, b)
		if err != nil {
			return nil, err
		}
		return bigNumberFromInt(op, r)
	})
}

func registerBitwise(d *dispatch.Dispatcher) {
	d.Define(dispatch.OpSpec{Name: opBitAnd, MinArgs: 2, MaxArgs: 2, Elementwise: true, Absorbing: true, ZeroPreserving: true, ZeroLeft: true})
	d.Define(dispatch.OpSpec{Name: opBitOr, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Define(dispatch.OpSpec{Name: opBitXor, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Define(dispatch.OpSpec{Name: opBitNot, MinArgs: 1, MaxArgs: 1, Elementwise: true})
	for _, op := range []string{opLeftShift, opRightArithShift, opRightLogShift} {
		d.Define(dispatch.OpSpec{Name: op, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true, ZeroLeft: true})
	}

	d.Register(opBitAnd, numberBits(opBitAnd, func(x, y int64) (int64, error) { return x & y, nil }), value.KindNumber, value.KindNumber)
	d.Register(opBitAnd, bigNumberBits(opBitAnd, func(z, x, y *big.Int) (*big.Int, error) { return z.And(x, y), nil }), value.KindBigNumber, value.KindBigNumber)
	d.Register(opBitOr, numberBits(opBitOr, func(x, y int64) (int64, error) { return x | y, nil }), value.KindNumber, value.KindNumber)
	d.Register(opBitOr, bigNumberBits(opBitOr, func(z, x, y *big.Int) (*big.Int, error) { return z.Or(x, y), nil }), value.KindBigNumber, value.KindBigNumber)
	d.Register(opBitXor, numberBits(opBitXor, func(x, y int64) (int64, error) { return x ^ y, nil }), value.KindNumber, value.KindNumber)
	d.Register(opBitXor, bigNumberBits(opBitXor, func(z, x, y *big.Int) (*big.Int, error) { return z.Xor(x, y), nil }), value.KindBigNumber, value.KindBigNumber)

	d.Register(opBitNot, unary(func(_ dispatch.Env, x value.Number) (value.Value, error) {
		a, err := numberInt(opBitNot, x)
		if err != nil {
			return nil, err
		}
		return value.Number(float64(^a)), nil
	}), value.KindNumber)
	d.Register(opBitNot, unary(func(_ dispatch.Env, x value.BigNumber) (value.Value, error) {
		a, err := bigNumberInt(opBitNot, x)
		if err != nil {
			return nil, err
		}
		return bigNumberFromInt(opBitNot, a.Not(a))
	}), value.KindBigNumber)

	d.Register(opLeftShift, numberBits(opLeftShift, func(x, y int64) (int64, error) {
		n, err := shiftCount(opLeftShift, y)
		if err != nil {
			return 0, err
		}
		if (x<<n)>>n != x {
			return 0, kernelErrorf(opLeftShift, ErrRange)
		}
		return x << n, nil
	}), value.KindNumber, value.KindNumber)
	d.Register(opLeftShift, bigNumberBits(opLeftShift, func(z, x, y *big.Int) (*big.Int, error) {
		n, err := shiftCount(opLeftShift, y.Int64())
		if err != nil {
			return nil, err
		}
		if x.Sign() == 0 {
			return z, nil
		}
		if n > maxShiftBits || uint(x.BitLen())+n > maxShiftBits {
			return nil, kernelErrorf(opLeftShift, ErrRange)
		}
		return z.Lsh(x, n), nil
	}), value.KindBigNumber, value.KindBigNumber)

	d.Register(opRightArithShift, numberBits(opRightArithShift, func(x, y int64) (int64, error) {
		n, err := shiftCount(opRightArithShift, y)
		if err != nil {
			return 0, err
		}
		return x >> n, nil
	}), value.KindNumber, value.KindNumber)
	d.Register(opRightArithShift, bigNumberBits(opRightArithShift, func(z, x, y *big.Int) (*big.Int, error) {
		n, err := shiftCount(opRightArithShift, y.Int64())
		if err != nil {
			return nil, err
		}
		return z.Rsh(x, n), nil
	}), value.KindBigNumber, value.KindBigNumber)

	d.Register(opRightLogShift, binary(func(_ dispatch.Env, x, y value.Number) (value.Value, error) {
		a, err := numberInt(opRightLogShift, x)
		if err != nil {
			return nil, err
		}
		b, err := numberInt(opRightLogShift, y)
		if err != nil {
			return nil, err
		}
		n, err := shiftCount(opRightLogShift, b)
		if err != nil {
			return nil, err
		}
		return value.Number(float64(uint64(a) >> n)), nil
	}), value.KindNumber, value.KindNumber)
}
