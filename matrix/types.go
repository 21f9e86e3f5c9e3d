// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvnum/value"

// Unary is a scalar callback applied at the leaves of a collection.
type Unary func(x value.Value) (value.Value, error)

// Binary is a scalar callback applied to paired leaves.
type Binary func(x, y value.Value) (value.Value, error)

// ZeroTest reports whether a computed value is the zero of its kind and must
// therefore not be stored in a sparse result. A nil ZeroTest stores everything.
type ZeroTest func(x value.Value) (bool, error)

// Entry is one stored element of a sparse matrix.
type Entry struct {
	Row, Col int
	Value    value.Value
}

func (z ZeroTest) zero(v value.Value) (bool, error) {
	if z == nil {
		return false, nil
	}
	return z(v)
}

// homogeneousKind returns the kind shared by all of vs, or KindUnknown.
func homogeneousKind(vs []value.Value) value.Kind {
	if len(vs) == 0 {
		return value.KindUnknown
	}
	k := value.TypeOf(vs[0])
	for _, v := range vs[1:] {
		if value.TypeOf(v) != k {
			return value.KindUnknown
		}
	}
	return k
}

// zeroFor returns the implicit element of a sparse matrix with datatype k.
// Untyped matrices default to the number zero.
func zeroFor(k value.Kind) value.Value {
	if z, ok := value.Zero(k); ok {
		return z
	}
	return value.Number(0)
}

// zeroLike is the zero an absent sparse entry stands for, next to v.
func zeroLike(v value.Value) value.Value {
	if z, ok := value.ZeroLike(v); ok {
		return z
	}
	return value.Number(0)
}
