// SPDX-License-Identifier: MIT

// Package convert is the directed table of one-argument conversions between
// value kinds. The dispatcher consults it when no kernel matches the operand
// kinds exactly. Conversions are single hops; Path additionally finds a
// two-hop chain for the dispatcher's second conversion pass.
package convert

import (
	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/value"
)

// Func converts v (of the conversion's From kind) to the To kind.
// It fails with *ConversionError when this value cannot be converted.
type Func func(ctx config.Context, v value.Value) (value.Value, error)

// Conversion is one directed edge of the table.
type Conversion struct {
	From, To value.Kind
	Convert  Func
}

type edge struct{ from, to value.Kind }

// Table holds conversions in registration order, which is also their priority.
// A Table is immutable once handed to a dispatcher; build it with NewTable and
// Register before sharing.
type Table struct {
	ctx   config.Context
	convs []Conversion
	index map[edge]int
}

// NewTable returns a table loaded with the default conversions, bound to ctx.
func NewTable(ctx config.Context) *Table {
	t := NewEmptyTable(ctx)
	for _, c := range defaultConversions() {
		t.Register(c)
	}
	return t
}

// NewEmptyTable returns a table with no conversions.
func NewEmptyTable(ctx config.Context) *Table {
	return &Table{ctx: ctx, index: make(map[edge]int)}
}

// Register adds c, or replaces the conversion for the same (From, To) pair in place.
func (t *Table) Register(c Conversion) {
	k := edge{c.From, c.To}
	if i, ok := t.index[k]; ok {
		t.convs[i] = c
		return
	}
	t.index[k] = len(t.convs)
	t.convs = append(t.convs, c)
}

// Context returns the configuration the table converts under.
func (t *Table) Context() config.Context { return t.ctx }

// CanConvert reports whether a direct conversion from→to is registered.
// Identity is always convertible.
func (t *Table) CanConvert(from, to value.Kind) bool {
	if from == to {
		return true
	}
	_, ok := t.index[edge{from, to}]
	return ok
}

// Lookup returns the direct conversion from→to.
func (t *Table) Lookup(from, to value.Kind) (Conversion, bool) {
	i, ok := t.index[edge{from, to}]
	if !ok {
		return Conversion{}, false
	}
	return t.convs[i], true
}

// From lists the conversions leaving kind k, in priority order.
func (t *Table) From(k value.Kind) []Conversion {
	var out []Conversion
	for _, c := range t.convs {
		if c.From == k {
			out = append(out, c)
		}
	}
	return out
}

// Convert converts v to kind to through one registered hop.
// Errors: *ConversionError (no path, or the value is not convertible).
func (t *Table) Convert(v value.Value, to value.Kind) (value.Value, error) {
	from := value.TypeOf(v)
	if from == to {
		return v, nil
	}
	c, ok := t.Lookup(from, to)
	if !ok {
		return nil, conversionError(from, to, "no conversion registered", nil)
	}
	return c.Convert(t.ctx, v)
}

// Path returns the conversions leading from→to: nil for identity, one hop when
// registered directly, otherwise the first two-hop chain in priority order.
func (t *Table) Path(from, to value.Kind) ([]Conversion, bool) {
	if from == to {
		return nil, true
	}
	if c, ok := t.Lookup(from, to); ok {
		return []Conversion{c}, true
	}
	for _, first := range t.From(from) {
		if second, ok := t.Lookup(first.To, to); ok {
			return []Conversion{first, second}, true
		}
	}
	return nil, false
}

// Apply runs a path produced by Path.
func (t *Table) Apply(v value.Value, path []Conversion) (value.Value, error) {
	var err error
	for _, c := range path {
		if v, err = c.Convert(t.ctx, v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
