// SPDX-License-Identifier: MIT

package lvnum_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum"
	"github.com/katalvlaran/lvnum/config"
	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/dispatch"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

func nums(fs ...float64) value.Array {
	out := make(value.Array, len(fs))
	for i, f := range fs {
		out[i] = value.Number(f)
	}
	return out
}

func at(i, j int, v float64) matrix.Entry { return matrix.Entry{Row: i, Col: j, Value: value.Number(v)} }

func sparse(t *testing.T, rows, cols int, entries ...matrix.Entry) *matrix.SparseMatrix {
	t.Helper()
	m, err := matrix.NewSparseFromEntries(rows, cols, entries)
	require.NoError(t, err)
	return m
}

func TestScenario_AddNumbers(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	r, err := e.Resolve("add", value.KindNumber, value.KindNumber)
	require.NoError(t, err)
	require.Equal(t, dispatch.StrategyExact, r.Strategy)

	got, err := e.Add(value.Number(2), value.Number(3))
	require.NoError(t, err)
	require.Equal(t, value.Number(5), got)
}

func TestScenario_AddNumberComplex(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	r, err := e.Resolve("add", value.KindNumber, value.KindComplex)
	require.NoError(t, err)
	require.Equal(t, dispatch.StrategyConverted, r.Strategy)
	require.Equal(t, value.KindNumber, r.Candidates[0].Paths[0][0].From)
	require.Equal(t, value.KindComplex, r.Candidates[0].Paths[0][0].To)

	got, err := e.Add(value.Number(2), value.NewComplex(1, 4))
	require.NoError(t, err)
	require.Equal(t, value.NewComplex(3, 4), got)
}

func TestScenario_ConvertRejectsExcessDigits(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	require.True(t, e.CanConvert(value.KindNumber, value.KindBigNumber))

	_, err := e.Convert(value.Number(1e20), value.KindBigNumber)
	require.ErrorIs(t, err, convert.ErrConversion)
	var ce *convert.ConversionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, value.KindNumber, ce.From)
	require.Equal(t, value.KindBigNumber, ce.To)

	// A looser threshold admits the same number.
	loose := lvnum.New(config.WithBigNumberDigits(17))
	_, err = loose.Convert(value.Number(1e16), value.KindBigNumber)
	require.NoError(t, err)
}

func TestScenario_MixedKindsNeverMeetInAThirdKind(t *testing.T) {
	t.Parallel()
	e := lvnum.New()

	_, err := e.Add(value.Number(1e20+1), value.MustBigNumber("1"))
	require.ErrorIs(t, err, convert.ErrConversion)
	var ce *convert.ConversionError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, value.KindBigNumber, ce.To)

	third, err := value.NewFraction(1, 3)
	require.NoError(t, err)
	_, err = e.Add(third, value.MustBigNumber("1"))
	require.ErrorIs(t, err, dispatch.ErrUnsupportedType)

	got, err := e.Add(value.Boolean(true), value.MustBigNumber("1"))
	require.NoError(t, err)
	require.Equal(t, "2", got.String())
	require.Equal(t, value.KindBigNumber, got.Kind())
}

func TestEngine_NilOperandsAreNull(t *testing.T) {
	t.Parallel()
	e := lvnum.New()

	got, err := e.Equal(nil, nil)
	require.NoError(t, err)
	require.Equal(t, value.Boolean(true), got)

	got, err = e.Equal(nil, value.Null{})
	require.NoError(t, err)
	require.Equal(t, value.Boolean(true), got)

	got, err = e.Equal(value.Array{nil, value.Number(1)}, value.Array{value.Null{}, value.Number(1)})
	require.NoError(t, err)
	require.Equal(t, value.Array{value.Boolean(true), value.Boolean(true)}, got)

	got, err = e.Add(nil, value.Number(2))
	require.NoError(t, err)
	require.Equal(t, value.Number(2), got)
}

func TestScenario_DeepMap2Arrays(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	a := value.Array{nums(1, 2), nums(3, 4)}
	b := value.Array{nums(5, 6), nums(7, 8)}

	got, err := e.DeepMap2(a, b, "add")
	require.NoError(t, err)
	require.Equal(t, value.Array{nums(6, 8), nums(10, 12)}, got)

	viaCall, err := e.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, got, viaCall)
}

func TestScenario_SparseMerge(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	a := sparse(t, 2, 2, at(0, 0, 2), at(1, 1, 3))
	b := sparse(t, 2, 2, at(0, 0, 4), at(0, 1, 5))

	sum, err := e.MergeSparse(a, b, "add", false)
	require.NoError(t, err)
	require.ElementsMatch(t, []matrix.Entry{at(0, 0, 6), at(1, 1, 3), at(0, 1, 5)}, sum.Entries())
	require.NoError(t, sum.Validate())

	prod, err := e.MergeSparse(a, b, "multiply", true)
	require.NoError(t, err)
	require.Equal(t, []matrix.Entry{at(0, 0, 8)}, prod.Entries())

	_, err = e.MergeSparse(a, sparse(t, 3, 2), "add", false)
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
}

func TestProperty_ResolveDeterministic(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	scalars := []value.Kind{
		value.KindNumber, value.KindBigNumber, value.KindComplex, value.KindFraction,
		value.KindBoolean, value.KindNull, value.KindString, value.KindUnit,
	}
	for _, op := range []string{"add", "equal", "and", "bitAnd"} {
		for _, k1 := range scalars {
			for _, k2 := range scalars {
				r1, err1 := e.Resolve(op, k1, k2)
				r2, err2 := e.Resolve(op, k1, k2)
				if err1 != nil {
					require.ErrorIs(t, err1, dispatch.ErrUnsupportedType)
					require.Equal(t, err1.Error(), err2.Error())
					continue
				}
				require.Same(t, r1, r2, "%s(%s, %s)", op, k1, k2)
			}
		}
	}
}

func TestProperty_DeepMapComposes(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	a := value.Array{nums(1, -2, 3), nums(-4, 5, -6)}

	step, err := e.DeepMap(a, "unaryMinus")
	require.NoError(t, err)
	twice, err := e.DeepMap(step, "square")
	require.NoError(t, err)

	once, err := matrix.DeepMap(a, func(x value.Value) (value.Value, error) {
		y, err := e.UnaryMinus(x)
		if err != nil {
			return nil, err
		}
		return e.Square(y)
	})
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestProperty_DeepMap2NeverTruncates(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	_, err := e.DeepMap2(nums(1, 2, 3), nums(1, 2, 3, 4), "add")
	require.ErrorIs(t, err, value.ErrDimensionMismatch)
	var de *value.DimensionError
	require.ErrorAs(t, err, &de)
	require.Equal(t, []int{3}, de.A)
	require.Equal(t, []int{4}, de.B)
}

func TestProperty_MergeWithZeroMatrixRoundTrips(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	// (2,1) holds an explicit zero, which the merge must drop.
	a := sparse(t, 3, 2, at(0, 0, 1.5), at(2, 1, 0), at(1, 1, -2))
	zero := sparse(t, 3, 2)

	got, err := e.MergeSparse(a, zero, "add", false)
	require.NoError(t, err)
	require.Equal(t, []matrix.Entry{at(0, 0, 1.5), at(1, 1, -2)}, got.Entries())
}

func TestProperty_PruningKeepsOnlyNonzeroIntersections(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	rng := rand.New(rand.NewSource(7))
	const rows, cols = 6, 5

	random := func() *matrix.SparseMatrix {
		var es []matrix.Entry
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				if rng.Intn(2) == 0 {
					es = append(es, at(i, j, float64(1+rng.Intn(3))))
				}
			}
		}
		return sparse(t, rows, cols, es...)
	}

	for round := 0; round < 20; round++ {
		a, b := random(), random()
		got, err := e.MergeSparse(a, b, "bitAnd", true)
		require.NoError(t, err)
		require.NoError(t, got.Validate())

		stored := make(map[[2]int]bool)
		got.Each(func(i, j int, _ value.Value) { stored[[2]int{i, j}] = true })
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				x, _ := a.At(i, j)
				y, _ := b.At(i, j)
				want := int(x.(value.Number))&int(y.(value.Number)) != 0
				require.Equal(t, want, stored[[2]int{i, j}], "round %d (%d,%d)", round, i, j)
			}
		}
	}
}

func TestEngines_AreIndependent(t *testing.T) {
	t.Parallel()
	loose := lvnum.New()
	exact := lvnum.New(config.WithEpsilon(0))
	a, b := 0.1, 0.2
	x, y := value.Number(a+b), value.Number(0.3)

	eq, err := loose.Equal(x, y)
	require.NoError(t, err)
	require.Equal(t, value.Boolean(true), eq)

	eq, err = exact.Equal(x, y)
	require.NoError(t, err)
	require.Equal(t, value.Boolean(false), eq)
}

func TestEngine_HooksAndConcurrency(t *testing.T) {
	t.Parallel()
	var (
		mu     sync.Mutex
		misses []string
	)
	e := lvnum.NewWithContext(config.Default(), dispatch.WithResolveHook(func(op string, kinds []value.Kind, _ *dispatch.Resolution) {
		mu.Lock()
		defer mu.Unlock()
		misses = append(misses, op)
	}))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := e.Multiply(value.Number(float64(i)), value.MustBigNumber("2")); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, misses)
	require.LessOrEqual(t, len(misses), 8)
}

func TestEngine_ErrorsSurface(t *testing.T) {
	t.Parallel()
	e := lvnum.New()

	_, err := e.Call("add", value.Number(1))
	require.ErrorIs(t, err, dispatch.ErrArguments)

	_, err = e.Call("frobnicate", value.Number(1))
	require.ErrorIs(t, err, dispatch.ErrUnknownOperation)

	_, err = e.Add(value.String("a"), value.Number(1))
	require.ErrorIs(t, err, dispatch.ErrUnsupportedType)

	require.Equal(t, value.KindUnknown, e.TypeOf(struct{}{}))
	require.Equal(t, value.KindNull, e.TypeOf(nil))
}

func TestEngine_SparseAndElementwise(t *testing.T) {
	t.Parallel()
	e := lvnum.New()
	s, err := e.Sparse(value.Array{nums(1, 0), nums(0, 2)})
	require.NoError(t, err)
	require.Equal(t, 2, s.NNZ())

	zero, err := e.IsZeroValue(value.MustBigNumber("0.00"))
	require.NoError(t, err)
	require.True(t, zero)

	// multiply on two collections is the matrix product; Elementwise is not.
	m := value.Array{nums(1, 2), nums(3, 4)}
	p, err := e.Multiply(m, m)
	require.NoError(t, err)
	require.Equal(t, "[[7, 10], [15, 22]]", p.String())
	h, err := e.Elementwise("multiply", m, m)
	require.NoError(t, err)
	require.Equal(t, "[[1, 4], [9, 16]]", h.String())
}
