// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

// defaultConversions lists the built-in conversions in priority order.
// Boolean reaches BigNumber and Fraction only through the two-hop chain via Number.
func defaultConversions() []Conversion {
	return []Conversion{
		{From: value.KindNumber, To: value.KindBigNumber, Convert: numberToBigNumber},
		{From: value.KindNumber, To: value.KindComplex, Convert: numberToComplex},
		{From: value.KindBigNumber, To: value.KindComplex, Convert: bigNumberToComplex},
		{From: value.KindFraction, To: value.KindComplex, Convert: fractionToComplex},
		{From: value.KindNumber, To: value.KindFraction, Convert: numberToFraction},
		{From: value.KindBoolean, To: value.KindNumber, Convert: booleanToNumber},
		{From: value.KindNull, To: value.KindNumber, Convert: nullToNumber},
		{From: value.KindBoolean, To: value.KindString, Convert: booleanToString},
		{From: value.KindArray, To: value.KindDenseMatrix, Convert: arrayToDense},
	}
}

// SignificantDigits counts the digits of f's shortest exact decimal form,
// ignoring sign, decimal point and leading zeros: 1e20 has 21, 0.00123 has 3.
func SignificantDigits(f float64) int {
	s := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	s = strings.Replace(s, ".", "", 1)
	return len(strings.TrimLeft(s, "0"))
}

// checkDigits rejects doubles carrying more significant digits than ctx allows
// for an implicit promotion to an exact kind.
func checkDigits(ctx config.Context, f float64, to value.Kind) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return conversionError(value.KindNumber, to, "value is not finite", nil)
	}
	if d := SignificantDigits(f); d > ctx.BigNumberDigits() {
		return conversionError(value.KindNumber, to,
			fmt.Sprintf("%s has %d significant digits, more than the %d that convert implicitly",
				strconv.FormatFloat(f, 'g', -1, 64), d, ctx.BigNumberDigits()), nil)
	}
	return nil
}

func numberToBigNumber(ctx config.Context, v value.Value) (value.Value, error) {
	f := float64(v.(value.Number))
	if err := checkDigits(ctx, f, value.KindBigNumber); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return nil, conversionError(value.KindNumber, value.KindBigNumber, "", err)
	}
	return value.NewBigNumber(d), nil
}

func numberToComplex(_ config.Context, v value.Value) (value.Value, error) {
	return value.NewComplex(float64(v.(value.Number)), 0), nil
}

func bigNumberToComplex(_ config.Context, v value.Value) (value.Value, error) {
	f, ok := v.(value.BigNumber).Float64()
	if !ok {
		return nil, conversionError(value.KindBigNumber, value.KindComplex, "out of double range", nil)
	}
	return value.NewComplex(f, 0), nil
}

func fractionToComplex(_ config.Context, v value.Value) (value.Value, error) {
	return value.NewComplex(v.(value.Fraction).Float64(), 0), nil
}

// numberToFraction reads the shortest decimal form, so 0.1 becomes 1/10 rather
// than the binary expansion of the double.
func numberToFraction(ctx config.Context, v value.Value) (value.Value, error) {
	f := float64(v.(value.Number))
	if err := checkDigits(ctx, f, value.KindFraction); err != nil {
		return nil, err
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		return nil, conversionError(value.KindNumber, value.KindFraction, "unparsable", nil)
	}
	return value.FractionFromRat(r), nil
}

func booleanToNumber(_ config.Context, v value.Value) (value.Value, error) {
	if v.(value.Boolean) {
		return value.Number(1), nil
	}
	return value.Number(0), nil
}

func nullToNumber(_ config.Context, _ value.Value) (value.Value, error) {
	return value.Number(0), nil
}

func booleanToString(_ config.Context, v value.Value) (value.Value, error) {
	return value.String(v.String()), nil
}

func arrayToDense(_ config.Context, v value.Value) (value.Value, error) {
	m, err := matrix.NewDenseFromArray(v.(value.Array))
	if err != nil {
		return nil, conversionError(value.KindArray, value.KindDenseMatrix, "", err)
	}
	return m, nil
}
