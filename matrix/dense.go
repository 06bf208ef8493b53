// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a read-only row-major table of float64 values. Pairwise is the
// only writer; r is rows, c is columns, data holds r*c elements.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape when rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// offset computes the flat index for (row, col) or reports false.
func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, ok := m.offset(row, col)
	if !ok {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// Pairwise builds a symmetric n×n distance table with a zero diagonal.
// fn is evaluated once for every i<j; the result is mirrored to (j,i).
//
// Contract:
//   - n must be positive (ErrBadShape).
//   - fn must be non-nil (ErrNilFunc).
//   - every fn(i,j) must be finite (ErrNaNInf) and non-negative (ErrNegativeWeight).
//
// Complexity: O(n²) time and memory.
func Pairwise(n int, fn DistanceFunc) (*Dense, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = fn(i, j)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("Pairwise(%d,%d): %w", i, j, ErrNaNInf)
			}
			if w < 0 {
				return nil, fmt.Errorf("Pairwise(%d,%d): %w", i, j, ErrNegativeWeight)
			}
			m.data[i*n+j] = w
			m.data[j*n+i] = w
		}
	}

	return m, nil
}
