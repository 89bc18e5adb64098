// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for sums and normalisations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// TestSumsSparseEqualDense checks Sum, RowSums, ColSums on both storages.
func TestSumsSparseEqualDense(t *testing.T) {
	d := termDoc()
	s := mustCSR(t, d)

	for _, m := range []mat.Matrix{d, s, mat.Transpose{Matrix: d.T()}} {
		assert.InDelta(t, 24.0, matrix.Sum(m), tol)
		assert.Equal(t, []float64{6, 6, 6, 6}, matrix.RowSums(m))
		assert.Equal(t, []float64{5, 5, 5, 5, 2, 2}, matrix.ColSums(m))
	}
}

// TestMaskedRowSums covers a seed mask, an empty mask and a bad length.
func TestMaskedRowSums(t *testing.T) {
	d := termDoc()
	s := mustCSR(t, d)
	mask := matrix.IndexMask([]int{0, 1}, 6)

	for _, m := range []mat.Matrix{d, s} {
		got, err := matrix.MaskedRowSums(m, mask)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 5, 0, 0}, got)

		got, err = matrix.MaskedRowSums(m, make([]bool, 6))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0}, got)

		_, err = matrix.MaskedRowSums(m, mask[:5])
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

// TestNormalizeSum verifies sum-to-one, immutability of the input, the zero
// matrix policy and idempotence.
func TestNormalizeSum(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	n, err := matrix.NormalizeSum(d)
	require.NoError(t, err)
	require.InDelta(t, 1.0, mat.Sum(n), tol)
	require.InDelta(t, 0.4, n.At(1, 1), tol)
	require.Equal(t, 4.0, d.At(1, 1)) // input untouched

	again, err := matrix.NormalizeSum(n)
	require.NoError(t, err)
	requireClose(t, n, again)

	zero := mat.NewDense(2, 3, nil)
	z, err := matrix.NormalizeSum(zero)
	require.NoError(t, err)
	require.Equal(t, 0.0, mat.Sum(z))

	var typedNil *mat.Dense
	_, err = matrix.NormalizeSum(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNormalizeRowsL2 verifies unit rows and the zero-row policy.
func TestNormalizeRowsL2(t *testing.T) {
	d := mat.NewDense(3, 2, []float64{3, 4, 0, 0, 1, 1})

	y, norms, err := matrix.NormalizeRowsL2(d)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5, 0, math.Sqrt2}, norms, tol)
	assert.InDelta(t, 0.6, y.At(0, 0), tol)
	assert.InDelta(t, 0.8, y.At(0, 1), tol)
	assert.Equal(t, 0.0, y.At(1, 0))
	assert.InDelta(t, 1/math.Sqrt2, y.At(2, 1), tol)
}
