// SPDX-License-Identifier: MIT

package matrix

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/value"
)

// SparseMatrix is a two-dimensional compressed-sparse-column matrix.
//
// Invariants (checked by Validate, maintained by every constructor here):
//   - len(ptr) == cols+1, ptr[0] == 0, ptr[cols] == len(values), ptr non-decreasing;
//   - within a column, index entries are strictly increasing;
//   - len(index) == len(values).
//
// Stored values are expected to be structurally nonzero. Construction does not
// prune (callers may store explicit zeros); the merge and sweep routines do.
// datatype is the kind shared by all stored values, or KindUnknown.
type SparseMatrix struct {
	values   []value.Value
	index    []int
	ptr      []int
	rows     int
	cols     int
	datatype value.Kind
}

// NewSparse creates an empty rows×cols sparse matrix.
// Complexity: O(cols).
func NewSparse(rows, cols int) (*SparseMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewSparse", ErrBadShape)
	}
	return &SparseMatrix{ptr: make([]int, cols+1), rows: rows, cols: cols}, nil
}

// NewSparseFromEntries builds a sparse matrix from (row, col, value) triplets
// in any order.
// Implementation:
//   - Stage 1: bounds-check every entry.
//   - Stage 2: sort a copy by (col, row); reject duplicates.
//   - Stage 3: count per column into ptr, copy values and row indices.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrSparseInvariant (duplicate position).
// Complexity: O(nnz log nnz + cols).
func NewSparseFromEntries(rows, cols int, entries []Entry) (*SparseMatrix, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	es := append([]Entry(nil), entries...)
	for _, e := range es {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, matrixErrorf("NewSparseFromEntries", ErrOutOfRange)
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].Col != es[j].Col {
			return es[i].Col < es[j].Col
		}
		return es[i].Row < es[j].Row
	})
	m.values = make([]value.Value, len(es))
	m.index = make([]int, len(es))
	for k, e := range es {
		if k > 0 && es[k-1].Col == e.Col && es[k-1].Row == e.Row {
			return nil, matrixErrorf("NewSparseFromEntries", ErrSparseInvariant)
		}
		m.values[k] = e.Value
		m.index[k] = e.Row
		m.ptr[e.Col+1]++
	}
	for j := 0; j < cols; j++ {
		m.ptr[j+1] += m.ptr[j]
	}
	m.datatype = homogeneousKind(m.values)
	return m, nil
}

// SparseFromDense compresses a 1-d or 2-d Array or DenseMatrix, skipping
// elements for which isZero reports true. A 1-d input becomes an n×1 column.
// Complexity: O(rows·cols).
func SparseFromDense(v value.Value, isZero ZeroTest) (*SparseMatrix, error) {
	d, err := toDense(v)
	if err != nil {
		return nil, matrixErrorf("SparseFromDense", err)
	}
	rows, cols, err := dims2(d.size)
	if err != nil {
		return nil, matrixErrorf("SparseFromDense", err)
	}
	m, _ := NewSparse(rows, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			x := d.data[i*cols+j]
			z, err := isZero.zero(x)
			if err != nil {
				return nil, matrixErrorf("SparseFromDense", err)
			}
			if z {
				continue
			}
			m.values = append(m.values, x)
			m.index = append(m.index, i)
		}
		m.ptr[j+1] = len(m.values)
	}
	m.datatype = homogeneousKind(d.data)
	return m, nil
}

// Kind implements value.Value.
func (m *SparseMatrix) Kind() value.Kind { return value.KindSparseMatrix }

// Rows returns the row count.
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *SparseMatrix) Cols() int { return m.cols }

// Size returns [rows, cols].
func (m *SparseMatrix) Size() []int { return []int{m.rows, m.cols} }

// NNZ returns the number of stored entries.
func (m *SparseMatrix) NNZ() int { return len(m.values) }

// Datatype returns the kind shared by all stored values, or KindUnknown.
func (m *SparseMatrix) Datatype() value.Kind { return m.datatype }

// Values returns a copy of the stored values in column order.
func (m *SparseMatrix) Values() []value.Value { return append([]value.Value(nil), m.values...) }

// RowIndex returns a copy of the row index of every stored value.
func (m *SparseMatrix) RowIndex() []int { return append([]int(nil), m.index...) }

// ColPtr returns a copy of the column pointer array (len cols+1).
func (m *SparseMatrix) ColPtr() []int { return append([]int(nil), m.ptr...) }

// At returns the element at (i, j): the stored value, or the implicit zero of
// the matrix datatype. Complexity: O(log nnz(col j)).
func (m *SparseMatrix) At(i, j int) (value.Value, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, matrixErrorf("SparseMatrix.At", ErrOutOfRange)
	}
	lo, hi := m.ptr[j], m.ptr[j+1]
	k := lo + sort.SearchInts(m.index[lo:hi], i)
	if k < hi && m.index[k] == i {
		return m.values[k], nil
	}
	return zeroFor(m.datatype), nil
}

// Each calls fn for every stored entry in column-major order.
func (m *SparseMatrix) Each(fn func(i, j int, v value.Value)) {
	for j := 0; j < m.cols; j++ {
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			fn(m.index[k], j, m.values[k])
		}
	}
}

// Entries returns the stored entries in column-major order.
func (m *SparseMatrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.values))
	m.Each(func(i, j int, v value.Value) { out = append(out, Entry{Row: i, Col: j, Value: v}) })
	return out
}

// ToDense expands the matrix, filling implicit entries with the datatype zero.
// A nil matrix expands to nil; the package-level ToDense reports ErrNilMatrix.
// Complexity: O(rows·cols).
func (m *SparseMatrix) ToDense() *DenseMatrix {
	if m == nil {
		return nil
	}
	z := zeroFor(m.datatype)
	data := make([]value.Value, m.rows*m.cols)
	for i := range data {
		data[i] = z
	}
	m.Each(func(i, j int, v value.Value) { data[i*m.cols+j] = v })
	return &DenseMatrix{data: data, size: []int{m.rows, m.cols}}
}

// Validate checks the CSC invariants.
// Errors: ErrSparseInvariant.
// Complexity: O(nnz + cols).
func (m *SparseMatrix) Validate() error {
	if m == nil {
		return matrixErrorf("SparseMatrix.Validate", ErrNilMatrix)
	}
	if len(m.ptr) != m.cols+1 || m.ptr[0] != 0 || m.ptr[m.cols] != len(m.values) || len(m.index) != len(m.values) {
		return matrixErrorf("SparseMatrix.Validate", ErrSparseInvariant)
	}
	for j := 0; j < m.cols; j++ {
		if m.ptr[j] > m.ptr[j+1] {
			return matrixErrorf("SparseMatrix.Validate", ErrSparseInvariant)
		}
		for k := m.ptr[j]; k < m.ptr[j+1]; k++ {
			if m.index[k] < 0 || m.index[k] >= m.rows || (k > m.ptr[j] && m.index[k] <= m.index[k-1]) {
				return matrixErrorf("SparseMatrix.Validate", ErrSparseInvariant)
			}
		}
	}
	return nil
}

// String renders "Sparse 2x2 {(0,0): 6, (1,1): 3}".
func (m *SparseMatrix) String() string {
	var sb strings.Builder
	sb.WriteString("Sparse ")
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteString(" {")
	first := true
	m.Each(func(i, j int, v value.Value) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString("(" + strconv.Itoa(i) + "," + strconv.Itoa(j) + "): " + v.String())
	})
	sb.WriteByte('}')
	return sb.String()
}

// builder accumulates a sparse result column by column. It tracks the kind of
// every computed value, stored or pruned, so a result whose values were all
// pruned still knows which zero its implicit entries stand for.
type builder struct {
	m    *SparseMatrix
	kind value.Kind
	seen bool
}

func newBuilder(rows, cols, capHint int) *builder {
	return &builder{m: &SparseMatrix{
		values: make([]value.Value, 0, capHint),
		index:  make([]int, 0, capHint),
		ptr:    make([]int, cols+1),
		rows:   rows,
		cols:   cols,
	}}
}

// keep records v's kind and stores v at row i unless zero is set.
func (b *builder) keep(i int, v value.Value, zero bool) {
	k := value.TypeOf(v)
	switch {
	case !b.seen:
		b.kind, b.seen = k, true
	case b.kind != k:
		b.kind = value.KindUnknown
	}
	if zero {
		return
	}
	b.m.values = append(b.m.values, v)
	b.m.index = append(b.m.index, i)
}

func (b *builder) closeColumn(j int) { b.m.ptr[j+1] = len(b.m.values) }

func (b *builder) done() *SparseMatrix {
	b.m.datatype = b.kind
	return b.m
}
