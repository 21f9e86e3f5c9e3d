// SPDX-License-Identifier: MIT
// Package kernels: relational operations and numeric predicates.
//
// Every relation is derived from one three-way ordering per kind, so equal,
// smaller and compare can never disagree about the same pair:
//   - Number, Unit: relative comparison with the Context epsilon; NaN is unordered.
//   - BigNumber, Fraction, Boolean (false < true): exact.
//   - Complex, Null: equality only.
//   - String: lexical; equal, unequal and compare only.

package kernels

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/value"
)

const (
	opEqual       = "equal"
	opUnequal     = "unequal"
	opSmaller     = "smaller"
	opSmallerEq   = "smallerEq"
	opLarger      = "larger"
	opLargerEq    = "largerEq"
	opCompare     = "compare"
	opEqualScalar = "equalScalar"
	opIsZero      = "isZero"
	opIsNegative  = "isNegative"
	opIsPositive  = "isPositive"
	opIsNaN       = "isNaN"
)

// order is a three-way comparison outcome.
type order int8

const (
	orderLess    order = -1
	orderEqual   order = 0
	orderGreater order = 1
	orderNone    order = 2 // unordered: NaN involved, or a kind without ordering
)

func orderOf(c int) order {
	switch {
	case c < 0:
		return orderLess
	case c > 0:
		return orderGreater
	}
	return orderEqual
}

func orderFloat(x, y, eps float64) order {
	c := compareFloat(x, y, eps)
	if math.IsNaN(c) {
		return orderNone
	}
	return order(c)
}

type orderFunc func(env dispatch.Env, x, y value.Value) (order, error)

func ordering[T value.Value](f func(env dispatch.Env, x, y T) (order, error)) orderFunc {
	return func(env dispatch.Env, x, y value.Value) (order, error) { return f(env, x.(T), y.(T)) }
}

// orderings lists the per-kind comparisons in registration order.
// total marks kinds that support smaller/larger.
var orderings = []struct {
	kind  value.Kind
	cmp   orderFunc
	total bool
}{
	{value.KindNumber, ordering(func(env dispatch.Env, x, y value.Number) (order, error) {
		return orderFloat(float64(x), float64(y), env.Context().Epsilon()), nil
	}), true},
	{value.KindBigNumber, ordering(func(_ dispatch.Env, x, y value.BigNumber) (order, error) {
		return orderOf(x.Decimal().Cmp(y.Decimal())), nil
	}), true},
	{value.KindComplex, ordering(func(env dispatch.Env, x, y value.Complex) (order, error) {
		if complexNearlyEqual(complex128(x), complex128(y), env.Context().Epsilon()) {
			return orderEqual, nil
		}
		return orderNone, nil
	}), false},
	{value.KindFraction, ordering(func(_ dispatch.Env, x, y value.Fraction) (order, error) {
		return orderOf(x.Rat().Cmp(y.Rat())), nil
	}), true},
	{value.KindBoolean, ordering(func(_ dispatch.Env, x, y value.Boolean) (order, error) {
		return orderOf(boolInt(x) - boolInt(y)), nil
	}), true},
	{value.KindString, ordering(func(_ dispatch.Env, x, y value.String) (order, error) {
		return orderOf(strings.Compare(string(x), string(y))), nil
	}), false},
	{value.KindUnit, ordering(func(env dispatch.Env, x, y value.Unit) (order, error) {
		xm, ym, err := baseMagnitudes(x, y)
		if err != nil {
			return orderNone, err
		}
		return orderFloat(xm, ym, env.Context().Epsilon()), nil
	}), true},
	{value.KindNull, ordering(func(dispatch.Env, value.Null, value.Null) (order, error) {
		return orderEqual, nil
	}), false},
}

func boolInt(b value.Boolean) int {
	if b {
		return 1
	}
	return 0
}

// relation turns an ordering into a Boolean-valued kernel.
func relation(op string, cmp orderFunc, holds func(order) bool) dispatch.Kernel {
	return func(env dispatch.Env, args []value.Value) (value.Value, error) {
		o, err := cmp(env, args[0], args[1])
		if err != nil {
			return nil, kernelErrorf(op, err)
		}
		return value.Boolean(holds(o)), nil
	}
}

func registerRelational(d *dispatch.Dispatcher) {
	relations := []struct {
		op       string
		zeroPres bool
		ordered  bool
		holds    func(order) bool
	}{
		{opEqual, false, false, func(o order) bool { return o == orderEqual }},
		{opUnequal, true, false, func(o order) bool { return o != orderEqual }},
		{opSmaller, true, true, func(o order) bool { return o == orderLess }},
		{opSmallerEq, false, true, func(o order) bool { return o == orderLess || o == orderEqual }},
		{opLarger, true, true, func(o order) bool { return o == orderGreater }},
		{opLargerEq, false, true, func(o order) bool { return o == orderGreater || o == orderEqual }},
	}
	for _, r := range relations {
		d.Define(dispatch.OpSpec{Name: r.op, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: r.zeroPres})
		for _, o := range orderings {
			if r.ordered && !o.total {
				continue
			}
			d.Register(r.op, relation(r.op, o.cmp, r.holds), o.kind, o.kind)
		}
	}

	// equalScalar is equal restricted to scalars; the dispatcher uses it to
	// prune zeros from sparse results.
	d.Define(dispatch.OpSpec{Name: opEqualScalar, MinArgs: 2, MaxArgs: 2})
	for _, o := range orderings {
		d.Register(opEqualScalar, relation(opEqualScalar, o.cmp, func(o order) bool { return o == orderEqual }), o.kind, o.kind)
	}

	d.Define(dispatch.OpSpec{Name: opCompare, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	for _, o := range orderings {
		if !o.total && o.kind != value.KindString {
			continue
		}
		d.Register(opCompare, compareKernel(o.kind, o.cmp), o.kind, o.kind)
	}

	registerPredicates(d)
}

// compareKernel returns -1, 0 or 1 in the operands' own kind for BigNumber
// and Fraction, and as a Number otherwise (NaN when unordered).
func compareKernel(k value.Kind, cmp orderFunc) dispatch.Kernel {
	return func(env dispatch.Env, args []value.Value) (value.Value, error) {
		o, err := cmp(env, args[0], args[1])
		if err != nil {
			return nil, kernelErrorf(opCompare, err)
		}
		switch {
		case o == orderNone:
			return value.Number(math.NaN()), nil
		case k == value.KindBigNumber:
			return bigInt(int64(o)), nil
		case k == value.KindFraction:
			return fracInt(int64(o)), nil
		}
		return value.Number(o), nil
	}
}

func registerPredicates(d *dispatch.Dispatcher) {
	d.Define(dispatch.OpSpec{Name: opIsZero, MinArgs: 1, MaxArgs: 1, Elementwise: true})
	for _, op := range []string{opIsNegative, opIsPositive, opIsNaN} {
		d.Define(dispatch.OpSpec{Name: op, MinArgs: 1, MaxArgs: 1, Elementwise: true, ZeroPreserving: true})
	}

	// signs maps each kind to (sign, isNaN) of its value.
	type signFn func(op string, v value.Value) (sign int, nan bool, err error)
	floatSign := func(f float64) (int, bool, error) {
		if math.IsNaN(f) {
			return 0, true, nil
		}
		return int(signFloat(f)), false, nil
	}
	signs := []struct {
		kind value.Kind
		sign signFn
	}{
		{value.KindNumber, func(_ string, v value.Value) (int, bool, error) { return floatSign(float64(v.(value.Number))) }},
		{value.KindBigNumber, func(_ string, v value.Value) (int, bool, error) { return v.(value.BigNumber).Decimal().Sign(), false, nil }},
		{value.KindFraction, func(_ string, v value.Value) (int, bool, error) { return v.(value.Fraction).Sign(), false, nil }},
		{value.KindUnit, func(op string, v value.Value) (int, bool, error) {
			m, err := unitMagnitude(op, v.(value.Unit))
			if err != nil {
				return 0, false, err
			}
			return floatSign(m)
		}},
	}
	predicates := []struct {
		op   string
		test func(sign int, nan bool) bool
	}{
		{opIsZero, func(s int, nan bool) bool { return !nan && s == 0 }},
		{opIsNegative, func(s int, nan bool) bool { return !nan && s < 0 }},
		{opIsPositive, func(s int, nan bool) bool { return !nan && s > 0 }},
		{opIsNaN, func(_ int, nan bool) bool { return nan }},
	}
	for _, p := range predicates {
		for _, s := range signs {
			d.Register(p.op, func(_ dispatch.Env, args []value.Value) (value.Value, error) {
				sign, nan, err := s.sign(p.op, args[0])
				if err != nil {
					return nil, err
				}
				return value.Boolean(p.test(sign, nan)), nil
			}, s.kind)
		}
	}

	// Complex has no sign; only zero and NaN tests apply.
	d.Register(opIsZero, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
		return value.Boolean(x == 0), nil
	}), value.KindComplex)
	d.Register(opIsNaN, unary(func(_ dispatch.Env, x value.Complex) (value.Value, error) {
		return value.Boolean(math.IsNaN(x.Re()) || math.IsNaN(x.Im())), nil
	}), value.KindComplex)
}
