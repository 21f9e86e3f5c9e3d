// SPDX-License-Identifier: MIT

package lvnum

import (
	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/kernels"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

// Engine is one configured instance: Context, conversion table, dispatcher
// and the full kernel set.
type Engine struct {
	ctx   config.Context
	table *convert.Table
	disp  *dispatch.Dispatcher
}

// New builds an engine from configuration options.
func New(opts ...config.Option) *Engine {
	return NewWithContext(config.New(opts...))
}

// NewWithContext builds an engine from an existing Context; dispatcher
// options install tracing hooks.
func NewWithContext(ctx config.Context, opts ...dispatch.Option) *Engine {
	table := convert.NewTable(ctx)
	d := dispatch.New(ctx, table, opts...)
	kernels.Register(d)
	return &Engine{ctx: ctx, table: table, disp: d}
}

// Context returns the engine configuration.
func (e *Engine) Context() config.Context { return e.ctx }

// Table returns the conversion table.
func (e *Engine) Table() *convert.Table { return e.table }

// Dispatcher returns the underlying dispatcher, for registering extra
// operations or kernels.
func (e *Engine) Dispatcher() *dispatch.Dispatcher { return e.disp }

// Operations lists every defined operation name.
func (e *Engine) Operations() []string { return e.disp.Operations() }

// Call runs op on args. This is the entry point for evaluators that look
// operations up by name.
func (e *Engine) Call(op string, args ...value.Value) (value.Value, error) {
	return e.disp.Call(op, args...)
}

// Elementwise applies op leaf by leaf, bypassing an operation's own
// collection handler (e.g. elementwise rather than matrix multiply).
func (e *Engine) Elementwise(op string, args ...value.Value) (value.Value, error) {
	return e.disp.Elementwise(op, args...)
}

// Resolve reports how op would run for the given operand kinds.
func (e *Engine) Resolve(op string, kinds ...value.Kind) (*dispatch.Resolution, error) {
	return e.disp.Resolve(op, kinds)
}

// TypeOf returns the kind of any Go value; unrecognised values are KindUnknown.
func (e *Engine) TypeOf(v any) value.Kind { return value.TypeOf(v) }

// CanConvert reports whether a direct conversion from → to is registered.
func (e *Engine) CanConvert(from, to value.Kind) bool { return e.table.CanConvert(from, to) }

// Convert converts v to kind `to` by one registered conversion.
// Errors: *convert.ConversionError.
func (e *Engine) Convert(v value.Value, to value.Kind) (value.Value, error) {
	return e.table.Convert(v, to)
}

// IsZeroValue reports whether v is the zero of its kind under equalScalar.
func (e *Engine) IsZeroValue(v value.Value) (bool, error) { return e.disp.IsZero(v) }

// Sparse compresses an Array or DenseMatrix into a SparseMatrix, dropping
// entries that are zero of their kind.
func (e *Engine) Sparse(v value.Value) (*matrix.SparseMatrix, error) {
	return matrix.SparseFromDense(v, e.disp.IsZero)
}

// MergeSparse combines two sparse matrices with op applied at every stored
// position, pruning one-sided entries when pruneZero is set.
func (e *Engine) MergeSparse(a, b *matrix.SparseMatrix, op string, pruneZero bool) (*matrix.SparseMatrix, error) {
	f := func(x, y value.Value) (value.Value, error) { return e.disp.Call(op, x, y) }
	return matrix.MergeSparse(a, b, f, pruneZero, e.disp.IsZero)
}

// DeepMap applies the unary op at every leaf of c.
func (e *Engine) DeepMap(c value.Value, op string) (value.Value, error) {
	return matrix.DeepMap(c, func(x value.Value) (value.Value, error) { return e.disp.Call(op, x) })
}

// DeepMap2 applies the binary op to paired leaves of a and b, broadcasting a
// scalar side.
func (e *Engine) DeepMap2(a, b value.Value, op string) (value.Value, error) {
	return matrix.DeepMap2(a, b, func(x, y value.Value) (value.Value, error) { return e.disp.Call(op, x, y) })
}
