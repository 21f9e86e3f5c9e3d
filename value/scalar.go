// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is an IEEE-754 double.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// String formats with the shortest representation that round-trips.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// IsInteger reports whether n is finite and has no fractional part.
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// Complex holds real and imaginary parts as doubles.
type Complex complex128

// NewComplex builds re + im·i.
func NewComplex(re, im float64) Complex { return Complex(complex(re, im)) }

// Kind implements Value.
func (Complex) Kind() Kind { return KindComplex }

// Re returns the real part.
func (c Complex) Re() float64 { return real(complex128(c)) }

// Im returns the imaginary part.
func (c Complex) Im() float64 { return imag(complex128(c)) }

// String renders "re + im i" and drops zero parts, e.g. "3 + 4i", "-2i", "5".
func (c Complex) String() string {
	re, im := c.Re(), c.Im()
	fmtF := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	switch {
	case im == 0:
		return fmtF(re)
	case re == 0:
		return imagString(im, fmtF)
	}
	var sb strings.Builder
	sb.WriteString(fmtF(re))
	if im < 0 {
		sb.WriteString(" - ")
		sb.WriteString(imagString(-im, fmtF))
	} else {
		sb.WriteString(" + ")
		sb.WriteString(imagString(im, fmtF))
	}
	return sb.String()
}

func imagString(im float64, f func(float64) string) string {
	switch im {
	case 1:
		return "i"
	case -1:
		return "-i"
	}
	return f(im) + "i"
}

// Boolean is true or false.
type Boolean bool

// Kind implements Value.
func (Boolean) Kind() Kind { return KindBoolean }

// String returns "true" or "false".
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Null is the absent value.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// String returns "null".
func (Null) String() string { return "null" }

// String is a text value.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// String returns the text unquoted.
func (s String) String() string { return string(s) }
