// SPDX-License-Identifier: MIT

package kernels

import (
	"math"

	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/value"
)

const (
	opAnd = "and"
	opOr  = "or"
	opXor = "xor"
	opNot = "not"
)

// truthiness lists, in registration order, how each kind reads as a Boolean.
// NaN and plain units are false.
var truthiness = []struct {
	kind  value.Kind
	truth func(v value.Value) bool
}{
	{value.KindNumber, func(v value.Value) bool {
		f := float64(v.(value.Number))
		return f != 0 && !math.IsNaN(f)
	}},
	{value.KindBigNumber, func(v value.Value) bool { return !v.(value.BigNumber).Decimal().IsZero() }},
	{value.KindComplex, func(v value.Value) bool { return v.(value.Complex) != 0 }},
	{value.KindFraction, func(v value.Value) bool { return v.(value.Fraction).Sign() != 0 }},
	{value.KindBoolean, func(v value.Value) bool { return bool(v.(value.Boolean)) }},
	{value.KindUnit, func(v value.Value) bool {
		m, ok := v.(value.Unit).Value()
		return ok && m != 0 && !math.IsNaN(m)
	}},
}

func registerLogical(d *dispatch.Dispatcher) {
	d.Define(dispatch.OpSpec{Name: opAnd, MinArgs: 2, MaxArgs: 2, Elementwise: true, Absorbing: true, ZeroPreserving: true, ZeroLeft: true})
	d.Define(dispatch.OpSpec{Name: opOr, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Define(dispatch.OpSpec{Name: opXor, MinArgs: 2, MaxArgs: 2, Elementwise: true, ZeroPreserving: true})
	d.Define(dispatch.OpSpec{Name: opNot, MinArgs: 1, MaxArgs: 1, Elementwise: true})

	connectives := []struct {
		op string
		f  func(x, y bool) bool
	}{
		{opAnd, func(x, y bool) bool { return x && y }},
		{opOr, func(x, y bool) bool { return x || y }},
		{opXor, func(x, y bool) bool { return x != y }},
	}
	for _, c := range connectives {
		for _, t := range truthiness {
			d.Register(c.op, func(_ dispatch.Env, args []value.Value) (value.Value, error) {
				return value.Boolean(c.f(t.truth(args[0]), t.truth(args[1]))), nil
			}, t.kind, t.kind)
		}
	}
	for _, t := range truthiness {
		d.Register(opNot, func(_ dispatch.Env, args []value.Value) (value.Value, error) {
			return value.Boolean(!t.truth(args[0])), nil
		}, t.kind)
	}
}
