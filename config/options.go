// SPDX-License-Identifier: MIT

// Package config: functional configuration of one engine instance.
// This file defines:
//   - Option / Context (functional options over an immutable snapshot),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - New, which applies setters on top of the defaults.
//
// Design goals:
//   - No global state: every dispatcher, conversion table and kernel receives
//     its Context explicitly, so differently configured engines coexist.
//   - No dead switches: each field is read by at least one kernel or conversion.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package config

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance of Number and Complex comparisons.
	DefaultEpsilon = 1e-14

	// DefaultBigNumberDigits is the largest significant-digit count a Number may
	// have to be promoted to BigNumber. Doubles with more digits were never
	// exact to begin with, so promoting them would fake precision.
	DefaultBigNumberDigits = 15

	// DefaultPrecision is the number of significant digits kept by BigNumber
	// results that cannot be exact (division, square root).
	DefaultPrecision = 19

	// MaxPrecision is the widest coefficient the decimal backend carries.
	MaxPrecision = 19

	// DefaultPredictable keeps results in the domain of the inputs when false,
	// e.g. sqrt(-4) yields Complex 2i; when true it yields NaN instead.
	DefaultPredictable = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "config: WithEpsilon: eps must be finite, non-negative"
	panicDigitsInvalid    = "config: WithBigNumberDigits: digits must be in [1, 17]"
	panicPrecisionInvalid = "config: WithPrecision: precision must be in [1, 19]"
)

// Option mutates a Context under construction. Safe to apply repeatedly.
type Option func(*Context)

// Context is the effective configuration. Fields are unexported so a Context
// handed to a dispatcher cannot be changed underneath it; copy it freely.
type Context struct {
	eps             float64
	bigNumberDigits int
	precision       int
	predictable     bool
}

// WithEpsilon sets the relative tolerance used by comparison kernels.
// Panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(c *Context) { c.eps = eps }
}

// WithBigNumberDigits sets the significant-digit threshold of the
// Number→BigNumber conversion. A double never carries more than 17
// significant digits, so larger thresholds are meaningless.
func WithBigNumberDigits(digits int) Option {
	if digits < 1 || digits > 17 {
		panic(panicDigitsInvalid)
	}
	return func(c *Context) { c.bigNumberDigits = digits }
}

// WithPrecision sets the significant digits kept by inexact BigNumber results.
func WithPrecision(digits int) Option {
	if digits < 1 || digits > MaxPrecision {
		panic(panicPrecisionInvalid)
	}
	return func(c *Context) { c.precision = digits }
}

// WithPredictable selects predictable output kinds (no Number→Complex escape).
func WithPredictable(on bool) Option {
	return func(c *Context) { c.predictable = on }
}

// New applies opts on top of the defaults, last writer wins.
// Complexity: O(len(opts)).
func New(opts ...Option) Context {
	c := Default()
	for _, set := range opts {
		set(&c)
	}
	return c
}

// Default returns the documented defaults.
func Default() Context {
	return Context{
		eps:             DefaultEpsilon,
		bigNumberDigits: DefaultBigNumberDigits,
		precision:       DefaultPrecision,
		predictable:     DefaultPredictable,
	}
}

// Epsilon returns the relative comparison tolerance.
func (c Context) Epsilon() float64 { return c.eps }

// BigNumberDigits returns the Number→BigNumber significant-digit threshold.
func (c Context) BigNumberDigits() int { return c.bigNumberDigits }

// Precision returns the significant digits kept by inexact BigNumber results.
func (c Context) Precision() int { return c.precision }

// Predictable reports whether kernels must keep the input domain.
func (c Context) Predictable() bool { return c.predictable }

// PanicMessages exposes the constructor panic texts for tests.
var PanicMessages = struct{ Epsilon, Digits, Precision string }{
	panicEpsilonInvalid, panicDigitsInvalid, panicPrecisionInvalid,
}
