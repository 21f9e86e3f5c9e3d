// SPDX-License-Identifier: MIT

package value

import (
	"github.com/govalues/decimal"
)

// Zero returns the additive identity of a numeric kind, and false for kinds
// without one (String, Null, Unit, collections).
func Zero(k Kind) (Value, bool) {
	switch k {
	case KindNumber:
		return Number(0), true
	case KindBigNumber:
		return BigNumber{d: decimal.Zero}, true
	case KindComplex:
		return Complex(0), true
	case KindFraction:
		return FractionFromInt(0), true
	case KindBoolean:
		return Boolean(false), true
	}
	return nil, false
}

// ZeroLike is Zero for v's kind; for a Unit it returns the same unit with a
// zero magnitude.
func ZeroLike(v Value) (Value, bool) {
	if u, ok := v.(Unit); ok {
		return u.WithValue(0), true
	}
	return Zero(TypeOf(v))
}
