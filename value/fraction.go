// SPDX-License-Identifier: MIT

package value

import (
	"math/big"
)

// Fraction is an exact rational number held in lowest terms with a positive
// denominator (math/big normalises on every operation).
// The zero Fraction is 0/1.
type Fraction struct {
	r *big.Rat
}

// NewFraction builds num/den. A zero denominator is rejected.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, valueErrorf("NewFraction", ErrZeroDenominator)
	}
	return Fraction{r: big.NewRat(num, den)}, nil
}

// FractionFromRat copies r into a new Fraction; r may be reused by the caller.
func FractionFromRat(r *big.Rat) Fraction {
	return Fraction{r: new(big.Rat).Set(r)}
}

// FractionFromInt builds n/1.
func FractionFromInt(n int64) Fraction {
	return Fraction{r: new(big.Rat).SetInt64(n)}
}

// Kind implements Value.
func (Fraction) Kind() Kind { return KindFraction }

// Rat returns a copy of the rational value; mutating it does not affect f.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).Set(f.rat())
}

// Num returns a copy of the numerator (sign carrier).
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.rat().Num()) }

// Denom returns a copy of the denominator, always > 0.
func (f Fraction) Denom() *big.Int { return new(big.Int).Set(f.rat().Denom()) }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int { return f.rat().Sign() }

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool { return f.rat().IsInt() }

// Float64 returns the nearest double.
func (f Fraction) Float64() float64 {
	v, _ := f.rat().Float64()
	return v
}

// String renders "n/d", or "n" for integers.
func (f Fraction) String() string { return f.rat().RatString() }

var ratZero = new(big.Rat)

func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return ratZero
	}
	return f.r
}
