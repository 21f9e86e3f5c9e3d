// Package lvnum is a typed numeric engine: one configured instance that
// resolves an operation name and runtime-typed operands to a concrete
// kernel, converting operands and mapping over collections as needed.
//
// What is lvnum?
//
//	A small, dependency-light library that brings together:
//		• Value model: Number, BigNumber, Complex, Fraction, Boolean, Null,
//		  String, Unit, nested Array, DenseMatrix, SparseMatrix
//		• Conversion table: directed, fallible, ordered promotions
//		• Dispatcher: exact match → collection widening → conversion search,
//		  cached per (operation, kinds)
//		• Elementwise mapper and single-pass sparse pattern merge
//		• ~40 operations: arithmetic, relational, logical, bitwise
//
// Under the hood the work is split across subpackages:
//
//	value/     kinds, scalar types, arrays, units, zero elements
//	config/    immutable Context built from functional options
//	convert/   conversion table and ConversionError
//	matrix/    dense/sparse storage, DeepMap/DeepMap2, MergeSparse, product
//	dispatch/  operation registry, resolution, cache, collection strategy
//	kernels/   per-kind operation bodies
//	cmd/lvnum  command line and REPL front end
//
// Quick example:
//
//	e := lvnum.New()
//	z, _ := e.Add(value.Number(2), value.NewComplex(1, 4)) // 3 + 4i
//
// Engines are independent: each owns its Context, conversion table and
// resolution cache, so differently configured engines coexist. An Engine is
// safe for concurrent use.
package lvnum
