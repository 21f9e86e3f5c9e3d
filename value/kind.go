// SPDX-License-Identifier: MIT

package value

// Kind tags one variant of the value model.
// The zero Kind is KindUnknown, so an uninitialised tag never passes for a real kind.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNumber
	KindBigNumber
	KindComplex
	KindFraction
	KindBoolean
	KindNull
	KindString
	KindUnit
	KindArray
	KindDenseMatrix
	KindSparseMatrix
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindNumber:       "number",
	KindBigNumber:    "BigNumber",
	KindComplex:      "Complex",
	KindFraction:     "Fraction",
	KindBoolean:      "boolean",
	KindNull:         "null",
	KindString:       "string",
	KindUnit:         "Unit",
	KindArray:        "Array",
	KindDenseMatrix:  "DenseMatrix",
	KindSparseMatrix: "SparseMatrix",
}

// String returns the kind name used in signatures and error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// ParseKind is the inverse of Kind.String. Unrecognised names yield KindUnknown.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if n == name {
			return Kind(k)
		}
	}
	return KindUnknown
}

// IsCollection reports whether k is Array, DenseMatrix or SparseMatrix.
func (k Kind) IsCollection() bool {
	return k == KindArray || k == KindDenseMatrix || k == KindSparseMatrix
}

// IsMatrix reports whether k is one of the matrix kinds.
func (k Kind) IsMatrix() bool {
	return k == KindDenseMatrix || k == KindSparseMatrix
}

// IsScalar reports whether k is a known non-collection kind.
func (k Kind) IsScalar() bool {
	return k != KindUnknown && !k.IsCollection()
}

// Value is implemented by every member of the value model.
type Value interface {
	// Kind returns the variant tag.
	Kind() Kind
	// String renders the value for diagnostics.
	String() string
}

// TypeOf maps any Go value to its Kind. It never fails:
// nil is Null, a Value reports its own kind, anything else is KindUnknown.
// Complexity: O(1).
func TypeOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case Value:
		return x.Kind()
	default:
		return KindUnknown
	}
}

// Kinds returns the kinds of vs in order.
func Kinds(vs []Value) []Kind {
	out := make([]Kind, len(vs))
	for i, v := range vs {
		out[i] = TypeOf(v)
	}
	return out
}
