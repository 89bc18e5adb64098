// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the product kernels.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// TestMulDispatchMatchesDense compares every sparse path to gonum's dense Mul.
func TestMulDispatchMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := termDoc()
	s := mustCSR(t, v)
	h := randPositive(rng, 3, 6) // topics × terms
	w := randPositive(rng, 4, 3) // docs × topics

	var want mat.Dense

	// CSR × Hᵀ.
	want.Mul(v, h.T())
	got, err := matrix.Mul(s, h.T())
	require.NoError(t, err)
	requireClose(t, &want, got)

	// Wᵀ × CSR.
	want.Reset()
	want.Mul(w.T(), v)
	got, err = matrix.Mul(w.T(), s)
	require.NoError(t, err)
	requireClose(t, &want, got)

	// CSR × CSRᵀ densifies the right operand.
	want.Reset()
	want.Mul(v, v.T())
	got, err = matrix.Mul(s, mustCSR(t, v.T()))
	require.NoError(t, err)
	requireClose(t, &want, got)

	// Dense × dense.
	want.Reset()
	want.Mul(w, h)
	got, err = matrix.Mul(w, h)
	require.NoError(t, err)
	requireClose(t, &want, got)
}

// TestMulErrors checks nil and shape validation.
func TestMulErrors(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 3, nil)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *mat.Dense
	_, err = matrix.Mul(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulSupportSparseKeepsPattern checks that only stored positions are evaluated.
func TestMulSupportSparseKeepsPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	v := termDoc()
	s := mustCSR(t, v)
	w := randPositive(rng, 4, 2)
	h := randPositive(rng, 2, 6)

	var full mat.Dense
	full.Mul(w, h)

	got, err := matrix.MulSupport(w, h, s)
	require.NoError(t, err)
	sp, ok := got.(*matrix.CSR)
	require.True(t, ok)
	require.Equal(t, s.NNZ(), sp.NNZ())
	raw := sp.RawMatrix()
	for i := 0; i < raw.I; i++ {
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			j := raw.Ind[p]
			require.NotZero(t, v.At(i, j))
			require.InDelta(t, full.At(i, j), raw.Data[p], tol)
		}
	}

	dense, err := matrix.MulSupport(w, h, v)
	require.NoError(t, err)
	requireClose(t, &full, dense)
}

// TestMulSupportShapeMismatch rejects factors that do not match V.
func TestMulSupportShapeMismatch(t *testing.T) {
	w := mat.NewDense(3, 2, nil) // 3 docs, V has 4
	h := mat.NewDense(2, 6, nil)

	_, err := matrix.MulSupport(w, h, termDoc())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MulSupport(mat.NewDense(4, 3, nil), h, termDoc())
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRatioOnSupportSparseEqualsDense checks both representations agree and
// that zero cells of V stay zero.
func TestRatioOnSupportSparseEqualsDense(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := termDoc()
	w := randPositive(rng, 4, 2)
	h := randPositive(rng, 2, 6)

	dense, err := matrix.RatioOnSupport(v, w, h)
	require.NoError(t, err)
	sp, err := matrix.RatioOnSupport(mustCSR(t, v), w, h)
	require.NoError(t, err)
	requireClose(t, dense, sp)

	var wh mat.Dense
	wh.Mul(w, h)
	r, c := v.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := v.At(i, j) / wh.At(i, j)
			require.InDelta(t, want, dense.At(i, j), tol+rtol*want)
		}
	}
}

// TestRatioOnSupportClampsDenominator ensures a zero reconstruction never divides by zero.
func TestRatioOnSupportClampsDenominator(t *testing.T) {
	v := mat.NewDense(1, 1, []float64{1})
	w := mat.NewDense(1, 1, []float64{0})
	h := mat.NewDense(1, 1, []float64{0})

	got, err := matrix.RatioOnSupport(v, w, h)
	require.NoError(t, err)
	require.InDelta(t, 1/matrix.Epsilon, got.At(0, 0), 1e-3)
}

// TestKernelsAcceptForeignCSR feeds a CSR assembled directly with the sparse
// package (COO → CSR, no canonicalisation by NewCSR) through the fast paths.
func TestKernelsAcceptForeignCSR(t *testing.T) {
	d := termDoc()
	var rows, cols []int
	var data []float64
	r, c := d.Dims()
	for j := c - 1; j >= 0; j-- { // column-major, reversed: unsorted within rows
		for i := 0; i < r; i++ {
			if v := d.At(i, j); v != 0 {
				rows, cols, data = append(rows, i), append(cols, j), append(data, v)
			}
		}
	}
	s := sparse.NewCOO(r, c, rows, cols, data).ToCSR()

	rng := rand.New(rand.NewSource(5))
	w := randPositive(rng, 4, 2)
	h := randPositive(rng, 2, 6)

	want, err := matrix.RatioOnSupport(d, w, h)
	require.NoError(t, err)
	got, err := matrix.RatioOnSupport(s, w, h)
	require.NoError(t, err)
	_, ok := got.(*matrix.CSR)
	require.True(t, ok)
	requireClose(t, want, got)

	require.Equal(t, matrix.RowSums(d), matrix.RowSums(s))
	mask := matrix.IndexMask([]int{0, 1}, 6)
	wantMasked, err := matrix.MaskedRowSums(d, mask)
	require.NoError(t, err)
	gotMasked, err := matrix.MaskedRowSums(s, mask)
	require.NoError(t, err)
	require.Equal(t, wantMasked, gotMasked)
	require.NoError(t, matrix.ValidateNonNegative(s))
}
