// SPDX-License-Identifier: MIT

// Package matrix - products with sparse/dense dispatch.
//
// Purpose:
//   - Mul(a, b) picks the kernel from the operand types: CSR×dense and
//     dense×CSR iterate stored entries only; everything else goes to gonum.
//   - MulSupport and RatioOnSupport evaluate the reconstruction W·H only on
//     the support of V when V is a CSR, which is what the divergence and the
//     multiplicative updates need.
//
// Determinism:
//   - Stored entries are visited in (row, col) order; accumulation order is fixed.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// asDense returns m itself when it already is a *mat.Dense, otherwise a dense copy.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}

	return mat.DenseCopyOf(m)
}

// Mul returns a new dense matrix holding a×b.
//
// Dispatch:
//   - *CSR × anything     → row-wise scatter of the dense rows of b.
//   - anything × *CSR     → column scatter driven by the stored entries of b.
//   - otherwise           → (*mat.Dense).Mul.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz·c) for the sparse paths, O(r·n·c) dense.
func Mul(a, b mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}

	sa, aSparse := a.(*CSR)
	sb, bSparse := b.(*CSR)
	switch {
	case aSparse:
		return mulCSRDense(sa, asDense(b)), nil
	case bSparse:
		return mulDenseCSR(asDense(a), sb), nil
	}

	ar, _ := a.Dims()
	_, bc := b.Dims()
	out := mat.NewDense(ar, bc, nil)
	out.Mul(a, b)

	return out, nil
}

// mulCSRDense computes s×b; out row i accumulates v·b[k,:] per stored (i,k,v).
func mulCSRDense(s *CSR, b *mat.Dense) *mat.Dense {
	_, bc := b.Dims()
	raw := s.RawMatrix()
	out := mat.NewDense(raw.I, bc, nil)
	for i := 0; i < raw.I; i++ {
		dst := out.RawRowView(i)
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			floats.AddScaled(dst, raw.Data[p], b.RawRowView(raw.Ind[p]))
		}
	}

	return out
}

// mulDenseCSR computes a×s; out[r, j] accumulates a[r,i]·v per stored (i,j,v).
func mulDenseCSR(a *mat.Dense, s *CSR) *mat.Dense {
	ar, _ := a.Dims()
	raw := s.RawMatrix()
	out := mat.NewDense(ar, raw.J, nil)
	for r := 0; r < ar; r++ {
		src := a.RawRowView(r)
		dst := out.RawRowView(r)
		for i := 0; i < raw.I; i++ {
			air := src[i]
			if air == 0 {
				continue
			}
			for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
				dst[raw.Ind[p]] += air * raw.Data[p]
			}
		}
	}

	return out
}

// validateFactors checks that W (m×k) and H (k×n) factor an m×n matrix v.
func validateFactors(tag string, v mat.Matrix, w, h *mat.Dense) error {
	for _, m := range []mat.Matrix{v, w, h} {
		if err := ValidateNotNil(m); err != nil {
			return matrixErrorf(tag, err)
		}
	}
	if err := ValidateMulShape(w, h); err != nil {
		return matrixErrorf(tag, err)
	}
	vr, vc := v.Dims()
	wr, _ := w.Dims()
	_, hc := h.Dims()
	if vr != wr || vc != hc {
		return matrixErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// MulSupport returns W·H evaluated where it is needed to compare against v.
//
// When v is a *CSR the result is a *CSR with exactly v's sparsity pattern,
// holding (W·H)[i,j] at every stored (i,j) of v; the full product is never
// formed. For any other v the full dense product is returned.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz·k) sparse, O(m·k·n) dense.
func MulSupport(w, h *mat.Dense, v mat.Matrix) (mat.Matrix, error) {
	if err := validateFactors("MulSupport", v, w, h); err != nil {
		return nil, err
	}

	s, ok := v.(*CSR)
	if !ok {
		wr, _ := w.Dims()
		_, hc := h.Dims()
		out := mat.NewDense(wr, hc, nil)
		out.Mul(w, h)
		return out, nil
	}

	// Columns of H as contiguous rows so each dot product is a flat scan.
	ht := mat.DenseCopyOf(h.T())
	raw := s.RawMatrix()
	data := make([]float64, len(raw.Data))
	for i := 0; i < raw.I; i++ {
		wrow := w.RawRowView(i)
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			data[p] = floats.Dot(wrow, ht.RawRowView(raw.Ind[p]))
		}
	}

	return withData(raw, data), nil
}

// RatioOnSupport returns V ⊘ (W·H) with every denominator passed through SafeDiv.
//
// A *CSR v gives a *CSR with v's pattern; any other v gives a dense matrix in
// which zero entries of v map to 0. Positions outside the support contribute
// nothing to the products the ratio feeds, so both forms are interchangeable
// as left or right operand of Mul.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func RatioOnSupport(v mat.Matrix, w, h *mat.Dense) (mat.Matrix, error) {
	wh, err := MulSupport(w, h, v)
	if err != nil {
		return nil, matrixErrorf("RatioOnSupport", err)
	}

	if s, ok := v.(*CSR); ok {
		raw, rec := s.RawMatrix(), Values(wh.(*CSR))
		data := make([]float64, len(raw.Data))
		for p, val := range raw.Data {
			data[p] = SafeDiv(val, rec[p])
		}
		return withData(raw, data), nil
	}

	out := wh.(*mat.Dense)
	r, c := out.Dims()
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		for j := 0; j < c; j++ {
			row[j] = SafeDiv(v.At(i, j), row[j])
		}
	}

	return out, nil
}
