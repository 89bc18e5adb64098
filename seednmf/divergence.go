// SPDX-License-Identifier: MIT

package seednmf

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// Divergence returns the generalized KL divergence of W·H from V, divided by
// the number of cells of V:
//
//	D = ( Σ_{v_ij > ε} v_ij·log(v_ij / max(wh_ij, ε))  +  colsum(W)·rowsum(H)  −  Σ_{v_ij > ε} v_ij ) / (m·n)
//
// The log term only visits entries of V above matrix.Epsilon; for a *matrix.CSR
// only stored entries are visited and the full product W·H is never formed.
// The closed-form Σ W·H term accounts for every cell.
//
// None of the arguments are modified.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Divergence(v mat.Matrix, w, h *mat.Dense) (float64, error) {
	wh, err := matrix.MulSupport(w, h, v)
	if err != nil {
		return 0, seedErrorf("Divergence", err)
	}

	var res, kept float64
	add := func(x, rec float64) {
		if x <= matrix.Epsilon {
			return
		}
		res += x * matrix.SafeLogRatio(x, rec)
		kept += x
	}

	if s, ok := v.(*matrix.CSR); ok {
		rec := matrix.Values(wh.(*matrix.CSR))
		for p, x := range matrix.Values(s) {
			add(x, rec[p])
		}
	} else {
		r, c := v.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				add(v.At(i, j), wh.At(i, j))
			}
		}
	}

	// Σ_ij (W·H)_ij = Σ_k colsum(W)_k · rowsum(H)_k.
	res += floats.Dot(matrix.ColSums(w), matrix.RowSums(h)) - kept

	docs, terms := v.Dims()
	return res / float64(docs*terms), nil
}
