// SPDX-License-Identifier: MIT

package value

import (
	"github.com/govalues/decimal"
)

// BigNumber is a decimal floating-point number backed by govalues/decimal.
// The decimal is immutable, so BigNumber is safe to copy and share.
type BigNumber struct {
	d decimal.Decimal
}

// NewBigNumber wraps d.
func NewBigNumber(d decimal.Decimal) BigNumber { return BigNumber{d: d} }

// ParseBigNumber parses a decimal literal such as "1.25" or "-3e5".
func ParseBigNumber(s string) (BigNumber, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return BigNumber{}, valueErrorf("ParseBigNumber", err)
	}
	return BigNumber{d: d}, nil
}

// MustBigNumber is ParseBigNumber for literals known to be valid; it panics otherwise.
func MustBigNumber(s string) BigNumber {
	return BigNumber{d: decimal.MustParse(s)}
}

// Kind implements Value.
func (BigNumber) Kind() Kind { return KindBigNumber }

// Decimal returns the underlying decimal.
func (b BigNumber) Decimal() decimal.Decimal { return b.d }

// Float64 returns the nearest double and whether the conversion was exact enough
// to be representable.
func (b BigNumber) Float64() (float64, bool) { return b.d.Float64() }

// String renders the decimal without exponent, e.g. "1.25".
func (b BigNumber) String() string { return b.d.String() }
