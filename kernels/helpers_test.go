// SPDX-License-Identifier: MIT

package kernels_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/kernels"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

// newDispatcher returns a dispatcher with every kernel registered.
func newDispatcher(t *testing.T, opts ...config.Option) *dispatch.Dispatcher {
	t.Helper()
	ctx := config.New(opts...)
	d := dispatch.New(ctx, convert.NewTable(ctx))
	kernels.Register(d)
	return d
}

// call runs op and fails the test on error.
func call(t *testing.T, d *dispatch.Dispatcher, op string, args ...value.Value) value.Value {
	t.Helper()
	out, err := d.Call(op, args...)
	require.NoError(t, err, "%s%v", op, args)
	return out
}

func big_(s string) value.BigNumber { return value.MustBigNumber(s) }

func frac(t *testing.T, num, den int64) value.Fraction {
	t.Helper()
	f, err := value.NewFraction(num, den)
	require.NoError(t, err)
	return f
}

func unit(t *testing.T, v float64, name string) value.Unit {
	t.Helper()
	u, err := value.ParseUnit(v, name)
	require.NoError(t, err)
	return u
}

func plainUnit(t *testing.T, name string) value.Unit {
	t.Helper()
	def, p, err := value.LookupUnit(name)
	require.NoError(t, err)
	return value.PlainUnit(def, p)
}

func ratOf(v value.Value) *big.Rat { return v.(value.Fraction).Rat() }

func sparse2(t *testing.T, entries ...matrix.Entry) *matrix.SparseMatrix {
	t.Helper()
	m, err := matrix.NewSparseFromEntries(2, 2, entries)
	require.NoError(t, err)
	return m
}

func at(i, j int, v value.Value) matrix.Entry { return matrix.Entry{Row: i, Col: j, Value: v} }

func nums(fs ...float64) value.Array {
	out := make(value.Array, len(fs))
	for i, f := range fs {
		out[i] = value.Number(f)
	}
	return out
}
