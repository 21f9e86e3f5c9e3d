package lvnum_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum"
	"github.com/katalvlaran/lvnum/convert"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/value"
)

////////////////////////////////////////////////////////////////////////////////
// Scalar dispatch
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Add shows a Number promoted to Complex before addition.
func ExampleEngine_Add() {
	e := lvnum.New()
	z, _ := e.Add(value.Number(2), value.NewComplex(1, 4))
	fmt.Println(z, z.Kind())
	// Output:
	// 3 + 4i Complex
}

// ExampleEngine_Convert shows the digit threshold guarding BigNumber promotion.
func ExampleEngine_Convert() {
	e := lvnum.New()
	_, err := e.Convert(value.Number(1e20), value.KindBigNumber)
	fmt.Println(errors.Is(err, convert.ErrConversion))
	b, _ := e.Convert(value.Number(0.1), value.KindBigNumber)
	fmt.Println(b, b.Kind())
	// Output:
	// true
	// 0.1 BigNumber
}

////////////////////////////////////////////////////////////////////////////////
// Collections
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_DeepMap2 adds two nested arrays leaf by leaf.
func ExampleEngine_DeepMap2() {
	e := lvnum.New()
	a := value.Array{value.Array{value.Number(1), value.Number(2)}, value.Array{value.Number(3), value.Number(4)}}
	b := value.Array{value.Array{value.Number(5), value.Number(6)}, value.Array{value.Number(7), value.Number(8)}}
	sum, _ := e.DeepMap2(a, b, "add")
	fmt.Println(sum)
	// Output:
	// [[6, 8], [10, 12]]
}

// ExampleEngine_MergeSparse contrasts union-like add with absorbing multiply.
func ExampleEngine_MergeSparse() {
	e := lvnum.New()
	a, _ := matrix.NewSparseFromEntries(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Value: value.Number(2)},
		{Row: 1, Col: 1, Value: value.Number(3)},
	})
	b, _ := matrix.NewSparseFromEntries(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Value: value.Number(4)},
		{Row: 0, Col: 1, Value: value.Number(5)},
	})
	sum, _ := e.MergeSparse(a, b, "add", false)
	prod, _ := e.MergeSparse(a, b, "multiply", true)
	fmt.Println(sum)
	fmt.Println(prod)
	// Output:
	// Sparse 2x2 {(0,0): 6, (0,1): 5, (1,1): 3}
	// Sparse 2x2 {(0,0): 8}
}
