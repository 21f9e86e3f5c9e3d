// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"

	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/value"
)

// Strategy tells how a Resolution runs.
type Strategy uint8

const (
	// StrategyExact calls a kernel registered for the kinds verbatim.
	StrategyExact Strategy = iota + 1
	// StrategyCollection delegates to the elementwise mapper or sparse merge
	// (or the operation's own collection handler).
	StrategyCollection
	// StrategyConverted converts operands, trying candidates in order.
	StrategyConverted
)

// String names the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyCollection:
		return "collection"
	case StrategyConverted:
		return "converted"
	}
	return "unknown"
}

// Candidate is one way to run an operation: a kernel plus, per operand, the
// conversion path (nil when the operand already has the parameter kind).
type Candidate struct {
	Signature Signature
	Paths     [][]convert.Conversion
	kernel    Kernel
}

// Resolution is the cached outcome of resolving (op, kinds). It is immutable.
type Resolution struct {
	Op         string
	Kinds      []value.Kind
	Strategy   Strategy
	Candidates []Candidate // exact: one candidate; converted: in try order
	op         *Operation
}

// Resolve determines how op runs for operand kinds.
// Implementation:
//   - Stage 0: unknown operation, then arity (*ArgumentsError).
//   - Stage 1: cache lookup under the read lock.
//   - Stage 2: exact kernel for the kinds verbatim.
//   - Stage 3: any collection kind → collection strategy; no scalar conversion
//     is attempted at this level.
//   - Stage 4: conversion search (see conversionCandidates).
//   - Stage 5: nothing applies → *UnsupportedTypeError.
//
// Complexity: O(1) when warm; O(S·A) cold for S signatures of arity A.
func (d *Dispatcher) Resolve(op string, kinds []value.Kind) (*Resolution, error) {
	d.mu.RLock()
	o, ok := d.ops[op]
	if !ok {
		d.mu.RUnlock()
		return nil, dispatchErrorf(op, ErrUnknownOperation)
	}
	if !o.arityOK(len(kinds)) {
		d.mu.RUnlock()
		return nil, &ArgumentsError{Op: op, Got: len(kinds), Min: o.spec.MinArgs, Max: o.spec.MaxArgs}
	}
	key := cacheKey{op: op, kinds: kindsKey(kinds)}
	if r, hit := d.cache[key]; hit {
		d.mu.RUnlock()
		return r, nil
	}
	r := d.resolve(o, kinds)
	d.mu.RUnlock()

	if r == nil {
		return nil, &UnsupportedTypeError{Op: op, Kinds: append([]value.Kind(nil), kinds...)}
	}

	d.mu.Lock()
	if prev, hit := d.cache[key]; hit {
		r = prev
	} else {
		d.cache[key] = r
	}
	d.mu.Unlock()

	if d.onResolve != nil {
		d.onResolve(op, kinds, r)
	}
	return r, nil
}

// resolve computes a resolution without touching the cache; nil means unsupported.
// Callers hold the read lock.
func (d *Dispatcher) resolve(o *Operation, kinds []value.Kind) *Resolution {
	r := &Resolution{Op: o.spec.Name, Kinds: append([]value.Kind(nil), kinds...), op: o}

	if i, ok := o.exact[kindsKey(kinds)]; ok {
		r.Strategy = StrategyExact
		r.Candidates = []Candidate{{Signature: o.impls[i].sig, Paths: make([][]convert.Conversion, len(kinds)), kernel: o.impls[i].fn}}
		return r
	}

	for _, k := range kinds {
		if k.IsCollection() {
			if !o.spec.Elementwise && o.spec.Collection == nil {
				return nil
			}
			r.Strategy = StrategyCollection
			return r
		}
	}

	if cands := d.conversionCandidates(o, kinds); len(cands) > 0 {
		r.Strategy = StrategyConverted
		r.Candidates = cands
		return r
	}
	return nil
}

// conversionCandidates lists kernels reachable by converting operands, in the
// order they are tried. Operands are only ever converted toward the kind of
// another operand, never jointly into a third kind:
//  1. binary: operand 0 converted to operand 1's kind, kernel (k1, k1);
//  2. binary: operand 1 converted to operand 0's kind, kernel (k0, k0);
//  3. the same two attempts again, now allowing an explicit two-hop chain
//     such as Boolean→Number→BigNumber.
//
// A unary operand may be converted to the parameter kind of any unary kernel,
// one-hop paths first, in registration order. Wider operations generalise the
// binary rule: every operand's kind is a target, last operand first.
//
// Only when no operand's own kind has a kernel (true + true, true + null) may
// all operands move to a common kind, taken from the homogeneous kernels in
// registration order.
func (d *Dispatcher) conversionCandidates(o *Operation, kinds []value.Kind) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	add := func(idx int, paths [][]convert.Conversion) {
		k := o.impls[idx].sig.key()
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, Candidate{Signature: o.impls[idx].sig, Paths: paths, kernel: o.impls[idx].fn})
	}

	own := false
	for _, k := range kinds {
		if _, ok := o.exact[kindsKey(homogeneous(k, len(kinds)))]; ok {
			own = true
			break
		}
	}

	for _, maxHops := range []int{1, 2} {
		if len(kinds) == 1 {
			for idx, im := range o.impls {
				if len(im.sig) != 1 {
					continue
				}
				if paths, ok := d.paths(kinds, im.sig, maxHops); ok {
					add(idx, paths)
				}
			}
			continue
		}
		if !own {
			for idx, im := range o.impls {
				if len(im.sig) != len(kinds) || !im.sig.uniform() {
					continue
				}
				if paths, ok := d.paths(kinds, im.sig, maxHops); ok {
					add(idx, paths)
				}
			}
			continue
		}
		for t := len(kinds) - 1; t >= 0; t-- {
			sig := homogeneous(kinds[t], len(kinds))
			idx, ok := o.exact[kindsKey(sig)]
			if !ok {
				continue
			}
			if paths, ok := d.paths(kinds, sig, maxHops); ok {
				add(idx, paths)
			}
		}
	}
	return out
}

// homogeneous is the signature taking n operands of kind k.
func homogeneous(k value.Kind, n int) Signature {
	sig := make(Signature, n)
	for i := range sig {
		sig[i] = k
	}
	return sig
}

// paths finds a conversion path for every operand, each at most maxHops long.
func (d *Dispatcher) paths(kinds []value.Kind, sig Signature, maxHops int) ([][]convert.Conversion, bool) {
	out := make([][]convert.Conversion, len(kinds))
	for i, k := range kinds {
		if k == sig[i] {
			continue
		}
		if k == value.KindUnknown {
			return nil, false
		}
		p, ok := d.table.Path(k, sig[i])
		if !ok || len(p) > maxHops {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}

// invoke runs the resolution on concrete operands.
// Converted resolutions try candidates in order: a *convert.ConversionError
// moves on to the next candidate, any other error is returned as is. When
// every candidate fails to convert, the first conversion error is returned.
func (r *Resolution) invoke(d *Dispatcher, args []value.Value) (value.Value, error) {
	switch r.Strategy {
	case StrategyExact:
		return r.Candidates[0].kernel(d, args)
	case StrategyCollection:
		if r.op.spec.Collection != nil {
			return r.op.spec.Collection(d, args)
		}
		return d.elementwise(r.op, args)
	}

	var first error
	for _, c := range r.Candidates {
		conv, err := c.convert(d, args)
		if err != nil {
			if !errors.Is(err, convert.ErrConversion) {
				return nil, err
			}
			if first == nil {
				first = err
			}
			continue
		}
		return c.kernel(d, conv)
	}
	return nil, dispatchErrorf(r.Op, first)
}

func (c Candidate) convert(d *Dispatcher, args []value.Value) ([]value.Value, error) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		if len(c.Paths[i]) == 0 {
			out[i] = a
			continue
		}
		v, err := d.table.Apply(a, c.Paths[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
