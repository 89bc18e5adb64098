// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Sums (total, per row, per column, per row over a column subset) with a
//     CSR fast-path that iterates stored entries only.
//   - Normalisations: whole-matrix sum-to-one and per-row L2.
//
// Determinism:
//   - Fixed i→j passes; CSR entries in (row, col) order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opNormalizeSum    = "NormalizeSum"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

// Sum returns the total of all entries of m.
// Time: O(nnz) for CSR, O(r*c) otherwise.
func Sum(m mat.Matrix) float64 {
	if s, ok := m.(*CSR); ok {
		return floats.Sum(Values(s))
	}

	return mat.Sum(m)
}

// RowSums returns r where r[i] = Σ_j m[i,j].
func RowSums(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, rows)
	switch v := m.(type) {
	case *CSR:
		raw := v.RawMatrix()
		for i := 0; i < raw.I; i++ {
			out[i] = floats.Sum(raw.Data[raw.Indptr[i]:raw.Indptr[i+1]])
		}
	case *mat.Dense:
		for i := 0; i < rows; i++ {
			out[i] = floats.Sum(v.RawRowView(i))
		}
	default:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out[i] += m.At(i, j)
			}
		}
	}

	return out
}

// ColSums returns c where c[j] = Σ_i m[i,j].
func ColSums(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	switch v := m.(type) {
	case *CSR:
		raw := v.RawMatrix()
		for p, j := range raw.Ind {
			out[j] += raw.Data[p]
		}
	case *mat.Dense:
		for i := 0; i < rows; i++ {
			floats.Add(out, v.RawRowView(i))
		}
	default:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out[j] += m.At(i, j)
			}
		}
	}

	return out
}

// MaskedRowSums returns r where r[i] = Σ_{j: mask[j]} m[i,j].
// len(mask) must equal the column count; an all-false mask yields zeros.
// Errors: ErrDimensionMismatch.
func MaskedRowSums(m mat.Matrix, mask []bool) ([]float64, error) {
	rows, cols := m.Dims()
	if len(mask) != cols {
		return nil, matrixErrorf("MaskedRowSums", ErrDimensionMismatch)
	}
	out := make([]float64, rows)
	if s, ok := m.(*CSR); ok {
		raw := s.RawMatrix()
		for i := 0; i < raw.I; i++ {
			for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
				if mask[raw.Ind[p]] {
					out[i] += raw.Data[p]
				}
			}
		}
		return out, nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mask[j] {
				out[i] += m.At(i, j)
			}
		}
	}

	return out, nil
}

// NormalizeSum returns a copy of m divided by the sum of all its entries, so
// the result sums to 1. A matrix whose sum is 0 is returned as an unchanged copy.
// Normalising an already-normalised matrix is the identity up to rounding.
// Errors: ErrNilMatrix.
func NormalizeSum(m *mat.Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNormalizeSum, err)
	}
	out := mat.DenseCopyOf(m)
	total := mat.Sum(out)
	if total == 0 {
		return out, nil
	}
	out.Scale(1/total, out)

	return out, nil
}

// NormalizeRowsL2 scales each row to unit L2 norm; zero rows remain zero.
// Also returns the original row norms.
// Errors: ErrNilMatrix.
func NormalizeRowsL2(m *mat.Dense) (*mat.Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	out := mat.DenseCopyOf(m)
	r, _ := out.Dims()
	norms := make([]float64, r)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		norms[i] = floats.Norm(row, 2)
		if norms[i] > 0 && !math.IsInf(norms[i], 0) {
			floats.Scale(1/norms[i], row)
		}
	}

	return out, norms, nil
}
