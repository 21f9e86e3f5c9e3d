// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvnum/value"
)

// Multiply computes the matrix product of two 1-d or 2-d collections using the
// supplied scalar add and mul callbacks.
// Implementation:
//   - vector·vector (n)·(n)         → scalar dot product;
//   - matrix×vector (r×n)·(n)       → vector (r);
//   - vector×matrix (n)·(n×c)       → vector (c);
//   - matrix×matrix (r×n)·(n×c)     → matrix (r×c).
//
// Two Arrays give an Array; otherwise the result is a DenseMatrix.
// Errors: ErrDimensionMismatch on inner size mismatch, ErrBadShape for other
// dimensionalities or an empty inner dimension.
// Complexity: O(r·n·c) callbacks.
func Multiply(a, b value.Value, add, mul Binary) (value.Value, error) {
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf("Multiply", err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf("Multiply", err)
	}
	sa, sb := da.size, db.size
	if len(sa) > 2 || len(sb) > 2 {
		return nil, matrixErrorf("Multiply", ErrBadShape)
	}

	// Lift vectors to 1×n / n×1 and remember which dimensions to drop.
	r, n := 1, sa[0]
	if len(sa) == 2 {
		r, n = sa[0], sa[1]
	}
	n2, c := sb[0], 1
	if len(sb) == 2 {
		c = sb[1]
	}
	if n != n2 {
		return nil, matrixErrorf("Multiply", value.NewDimensionError(sa, sb))
	}
	if n == 0 {
		return nil, matrixErrorf("Multiply", ErrBadShape)
	}

	out := make([]value.Value, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var acc value.Value
			for k := 0; k < n; k++ {
				p, err := mul(da.data[i*n+k], db.data[k*c+j])
				if err != nil {
					return nil, err
				}
				if k == 0 {
					acc = p
					continue
				}
				if acc, err = add(acc, p); err != nil {
					return nil, err
				}
			}
			out[i*c+j] = acc
		}
	}

	var size []int
	switch {
	case len(sa) == 1 && len(sb) == 1:
		return out[0], nil
	case len(sa) == 1:
		size = []int{c}
	case len(sb) == 1:
		size = []int{r}
	default:
		size = []int{r, c}
	}
	res := &DenseMatrix{data: out, size: size}
	if value.TypeOf(a) == value.KindArray && value.TypeOf(b) == value.KindArray {
		return res.ToArray(), nil
	}
	return res, nil
}
