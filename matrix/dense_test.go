// Package matrix_test contains unit tests for Dense and Pairwise.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/beehive/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtOutOfBounds ensures At reports ErrOutOfRange on invalid access.
func TestAtOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v, "fresh tables are zeroed")
}

// TestPairwiseSymmetric checks the mirror, the zero diagonal and the call count.
func TestPairwiseSymmetric(t *testing.T) {
	xs := []float64{0, 3, 7, 12}
	calls := 0
	m, err := matrix.Pairwise(len(xs), func(i, j int) float64 {
		calls++
		return math.Abs(xs[i] - xs[j])
	})
	require.NoError(t, err)
	require.Equal(t, 6, calls, "one call per unordered pair")

	for i := range xs {
		for j := range xs {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, math.Abs(xs[i]-xs[j]), v)
		}
	}
}

// TestPairwiseErrors covers every rejected input.
func TestPairwiseErrors(t *testing.T) {
	_, err := matrix.Pairwise(3, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)

	_, err = matrix.Pairwise(0, func(int, int) float64 { return 1 })
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.Pairwise(3, func(int, int) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Pairwise(3, func(int, int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Pairwise(3, func(i, j int) float64 { return float64(i - j) })
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}
