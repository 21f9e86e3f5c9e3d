// SPDX-License-Identifier: MIT

// Package dispatch selects and runs the implementation of a named operation
// for a tuple of runtime operand kinds.
//
// What & Why:
//
//	Every public function funnels through Dispatcher.Call. Resolution runs in a
//	fixed order: exact kernel match, collection widening (elementwise mapper
//	or sparse merge), then a bounded conversion search driven by the
//	conversion table. The outcome is cached per (operation, kinds), so a warm
//	call costs one map lookup under a read lock.
//
// Concurrency:
//
//	A Dispatcher is safe for concurrent Call/Resolve once kernels are
//	registered. Cache entries are idempotent: two goroutines resolving the same
//	key compute equal resolutions, and the first stored one wins.
package dispatch

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/value"
)

// Panic messages for registration misuse (programmer error).
const (
	panicEmptyName     = "dispatch: Define: empty operation name"
	panicBadArity      = "dispatch: Define: invalid arity range"
	panicDuplicateOp   = "dispatch: Define: operation already defined"
	panicUndefinedOp   = "dispatch: Register: operation not defined"
	panicSigArity      = "dispatch: Register: signature arity outside operation range"
	panicDuplicateSig  = "dispatch: Register: signature already registered"
	panicNilKernel     = "dispatch: Register: nil kernel"
	panicNilConversion = "dispatch: New: nil conversion table"
)

// ResolveHook observes every cache miss that produced a resolution.
type ResolveHook func(op string, kinds []value.Kind, r *Resolution)

// CallHook observes every completed call, including nested leaf calls.
type CallHook func(op string, args []value.Value, out value.Value, err error)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithResolveHook installs a hook fired after each fresh resolution.
func WithResolveHook(h ResolveHook) Option {
	return func(d *Dispatcher) { d.onResolve = h }
}

// WithCallHook installs a hook fired after each call.
func WithCallHook(h CallHook) Option {
	return func(d *Dispatcher) { d.onCall = h }
}

type cacheKey struct {
	op    string
	kinds string
}

// Dispatcher owns the operation registry and the resolution cache.
type Dispatcher struct {
	ctx   config.Context
	table *convert.Table

	mu    sync.RWMutex
	ops   map[string]*Operation
	cache map[cacheKey]*Resolution

	onResolve ResolveHook
	onCall    CallHook
}

// New creates an empty dispatcher bound to a configuration and a conversion table.
// Panics if table is nil.
func New(ctx config.Context, table *convert.Table, opts ...Option) *Dispatcher {
	if table == nil {
		panic(panicNilConversion)
	}
	d := &Dispatcher{
		ctx:   ctx,
		table: table,
		ops:   make(map[string]*Operation),
		cache: make(map[cacheKey]*Resolution),
	}
	for _, set := range opts {
		set(d)
	}
	return d
}

// Context implements Env.
func (d *Dispatcher) Context() config.Context { return d.ctx }

// Table returns the conversion table used by the conversion search.
func (d *Dispatcher) Table() *convert.Table { return d.table }

// Define declares an operation. Panics on an empty name, an invalid arity
// range or a duplicate definition.
func (d *Dispatcher) Define(spec OpSpec) *Operation {
	switch {
	case spec.Name == "":
		panic(panicEmptyName)
	case spec.MinArgs < 0 || spec.MaxArgs < spec.MinArgs:
		panic(panicBadArity)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.ops[spec.Name]; ok {
		panic(panicDuplicateOp + ": " + spec.Name)
	}
	op := &Operation{spec: spec, exact: make(map[string]int)}
	d.ops[spec.Name] = op
	return op
}

// Register adds a kernel for op with the given parameter kinds. Registration
// order is the priority order of the conversion search. Registering resets
// the resolution cache.
func (d *Dispatcher) Register(op string, fn Kernel, kinds ...value.Kind) {
	if fn == nil {
		panic(panicNilKernel)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	o, ok := d.ops[op]
	if !ok {
		panic(panicUndefinedOp + ": " + op)
	}
	if !o.arityOK(len(kinds)) {
		panic(fmt.Sprintf("%s: %s(%s)", panicSigArity, op, kindList(kinds)))
	}
	sig := append(Signature(nil), kinds...)
	if _, dup := o.exact[sig.key()]; dup {
		panic(fmt.Sprintf("%s: %s(%s)", panicDuplicateSig, op, sig))
	}
	o.exact[sig.key()] = len(o.impls)
	o.impls = append(o.impls, impl{sig: sig, fn: fn})
	clear(d.cache)
}

// Operation returns the named operation.
func (d *Dispatcher) Operation(name string) (*Operation, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	o, ok := d.ops[name]
	return o, ok
}

// Operations lists the defined operation names in sorted order.
func (d *Dispatcher) Operations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.ops))
	for name := range d.ops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Call resolves op for the kinds of args and runs it.
// Errors: ErrUnknownOperation, *ArgumentsError, *UnsupportedTypeError,
// *convert.ConversionError (every candidate conversion failed), and kernel
// errors unchanged.
func (d *Dispatcher) Call(op string, args ...value.Value) (value.Value, error) {
	args = nullArgs(args)
	r, err := d.Resolve(op, value.Kinds(args))
	if err != nil {
		d.observe(op, args, nil, err)
		return nil, err
	}
	out, err := r.invoke(d, args)
	d.observe(op, args, out, err)
	return out, err
}

// Elementwise implements Env.
func (d *Dispatcher) Elementwise(op string, args ...value.Value) (value.Value, error) {
	o, ok := d.Operation(op)
	if !ok {
		return nil, dispatchErrorf(op, ErrUnknownOperation)
	}
	if !o.arityOK(len(args)) {
		return nil, &ArgumentsError{Op: op, Got: len(args), Min: o.spec.MinArgs, Max: o.spec.MaxArgs}
	}
	return d.elementwise(o, nullArgs(args))
}

// nullArgs replaces nil operands with value.Null{}, matching TypeOf(nil).
// args is copied only when it holds a nil.
func nullArgs(args []value.Value) []value.Value {
	for i, a := range args {
		if a != nil {
			continue
		}
		out := append([]value.Value(nil), args...)
		for j := i; j < len(out); j++ {
			if out[j] == nil {
				out[j] = value.Null{}
			}
		}
		return out
	}
	return args
}

func (d *Dispatcher) observe(op string, args []value.Value, out value.Value, err error) {
	if d.onCall != nil {
		d.onCall(op, args, out, err)
	}
}
