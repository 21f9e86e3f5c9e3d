// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/value"
)

// Env is what kernels see of the engine: recursive dispatch by name, the
// standard elementwise strategy, and the configuration.
type Env interface {
	// Call dispatches op on args exactly like a public call.
	Call(op string, args ...value.Value) (value.Value, error)
	// Elementwise applies op leaf by leaf across collection operands, using the
	// sparse/dense strategy selected by op's static flags.
	Elementwise(op string, args ...value.Value) (value.Value, error)
	// Context returns the engine configuration.
	Context() config.Context
	// IsZero reports whether v is the zero of its kind (sparse pruning test).
	IsZero(v value.Value) (bool, error)
}

// Kernel is one concrete implementation, called with operands already
// converted to its signature.
type Kernel func(env Env, args []value.Value) (value.Value, error)

// Signature is the list of parameter kinds a kernel accepts.
type Signature []value.Kind

// String renders "number, Complex".
func (s Signature) String() string { return kindList(s) }

func (s Signature) key() string { return kindsKey(s) }

// uniform reports whether every parameter has the same kind.
func (s Signature) uniform() bool {
	for _, k := range s {
		if k != s[0] {
			return false
		}
	}
	return true
}

// kindsKey packs a kind tuple into a map key, one byte per kind.
func kindsKey(ks []value.Kind) string {
	b := make([]byte, len(ks))
	for i, k := range ks {
		b[i] = byte(k)
	}
	return string(b)
}

// OpSpec holds the static properties of an operation.
type OpSpec struct {
	Name             string
	MinArgs, MaxArgs int

	// Elementwise operations map over collection operands leaf by leaf.
	Elementwise bool

	// Absorbing marks op(x, 0) == op(0, x) == 0: a sparse merge keeps only
	// positions stored in both operands (pruneZero).
	Absorbing bool

	// ZeroPreserving marks op(0, 0) == 0 (unary: op(0) == 0), so sparse
	// operands may produce a sparse result at all.
	ZeroPreserving bool

	// ZeroLeft marks op(0, y) == 0 for every y: a sparse left operand stays
	// sparse against a scalar or dense right operand.
	ZeroLeft bool

	// Collection, when set, replaces the elementwise strategy for calls with a
	// collection operand (e.g. matrix product for multiply).
	Collection Kernel
}

// Operation is a defined operation and its registered kernels.
type Operation struct {
	spec  OpSpec
	impls []impl
	exact map[string]int
}

type impl struct {
	sig Signature
	fn  Kernel
}

// Spec returns the static properties.
func (o *Operation) Spec() OpSpec { return o.spec }

// Signatures returns the registered signatures in registration order.
func (o *Operation) Signatures() []Signature {
	out := make([]Signature, len(o.impls))
	for i, im := range o.impls {
		out[i] = append(Signature(nil), im.sig...)
	}
	return out
}

func (o *Operation) arityOK(n int) bool {
	return n >= o.spec.MinArgs && n <= o.spec.MaxArgs
}
