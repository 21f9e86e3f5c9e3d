// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

// equalScalarOp is the operation used to decide whether a computed value is
// the zero of its kind and must be pruned from sparse results.
const equalScalarOp = "equalScalar"

// elementwise picks the collection strategy for op from its static flags and
// the storage of each operand. Leaves are dispatched again through Call, so
// mixed-kind collections resolve per leaf.
//
// Binary strategy table (S sparse, D dense or Array, x scalar):
//
//	S ∘ S   ZeroPreserving → MergeSparse(pruneZero = Absorbing); else dense map
//	S ∘ D   Absorbing or ZeroLeft → SparseWithDense;            else dense map
//	D ∘ S   Absorbing → SparseWithDense (inverse);               else dense map
//	S ∘ x   Absorbing or ZeroLeft → SparseWithScalar;            else dense map
//	x ∘ S   Absorbing → SparseWithScalar (inverse);              else dense map
//	other   DeepMap2 (Array ∘ Array stays Array)
//
// Unary: S → MapSparse when ZeroPreserving, else DeepMap (dense result).
func (d *Dispatcher) elementwise(o *Operation, args []value.Value) (value.Value, error) {
	name := o.spec.Name
	switch len(args) {
	case 1:
		f := func(x value.Value) (value.Value, error) { return d.Call(name, x) }
		if s, ok := args[0].(*matrix.SparseMatrix); ok && o.spec.ZeroPreserving {
			return sparseResult(matrix.MapSparse(s, f, d.IsZero))
		}
		return matrix.DeepMap(args[0], f)
	case 2:
		return d.elementwise2(o, args[0], args[1])
	}
	return nil, &UnsupportedTypeError{Op: name, Kinds: value.Kinds(args)}
}

func (d *Dispatcher) elementwise2(o *Operation, a, b value.Value) (value.Value, error) {
	name, spec := o.spec.Name, o.spec
	f := func(x, y value.Value) (value.Value, error) { return d.Call(name, x, y) }

	sa, aSparse := a.(*matrix.SparseMatrix)
	sb, bSparse := b.(*matrix.SparseMatrix)
	aColl, bColl := value.TypeOf(a).IsCollection(), value.TypeOf(b).IsCollection()

	switch {
	case aSparse && bSparse:
		if spec.ZeroPreserving {
			return sparseResult(matrix.MergeSparse(sa, sb, f, spec.Absorbing, d.IsZero))
		}
	case aSparse && bColl:
		if spec.Absorbing || spec.ZeroLeft {
			return sparseResult(matrix.SparseWithDense(sa, b, f, false, d.IsZero))
		}
	case bSparse && aColl:
		if spec.Absorbing {
			return sparseResult(matrix.SparseWithDense(sb, a, f, true, d.IsZero))
		}
	case aSparse:
		if spec.Absorbing || spec.ZeroLeft {
			return sparseResult(matrix.SparseWithScalar(sa, b, f, false, d.IsZero))
		}
	case bSparse:
		if spec.Absorbing {
			return sparseResult(matrix.SparseWithScalar(sb, a, f, true, d.IsZero))
		}
	}
	return matrix.DeepMap2(a, b, f)
}

// sparseResult keeps a failed sparse computation from leaking a typed nil.
func sparseResult(m *matrix.SparseMatrix, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

// IsZero reports whether v equals the zero of its own kind under equalScalar.
// Kinds without a zero, or without an equalScalar kernel, count as nonzero.
// It implements Env and is the zero test of every sparse result.
func (d *Dispatcher) IsZero(v value.Value) (bool, error) {
	z, ok := value.ZeroLike(v)
	if !ok {
		return false, nil
	}
	if _, defined := d.Operation(equalScalarOp); !defined {
		return false, nil
	}
	r, err := d.Call(equalScalarOp, v, z)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			return false, nil
		}
		return false, err
	}
	b, ok := r.(value.Boolean)
	return ok && bool(b), nil
}
