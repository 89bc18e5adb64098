// SPDX-License-Identifier: MIT

package seednmf

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// GradientNorms returns the Frobenius norms of the divergence gradients
//
//	∇_W D = (1·Hᵀ − R·Hᵀ) / (m·n),   ∇_H D = (Wᵀ·1 − Wᵀ·R) / (m·n),   R = V ⊘ W·H
//
// evaluated at (W, H). Constraint penalties are not included; the norms are a
// diagnostic of the unconstrained objective only.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func GradientNorms(v mat.Matrix, w, h *mat.Dense) (normW, normH float64, err error) {
	r, err := matrix.RatioOnSupport(v, w, h)
	if err != nil {
		return 0, 0, seedErrorf("GradientNorms", err)
	}
	rht, err := matrix.Mul(r, h.T())
	if err != nil {
		return 0, 0, seedErrorf("GradientNorms", err)
	}
	wtr, err := matrix.Mul(w.T(), r)
	if err != nil {
		return 0, 0, seedErrorf("GradientNorms", err)
	}

	docs, terms := v.Dims()
	cells := float64(docs * terms)

	rowH := matrix.RowSums(h)
	rht.Apply(func(_, k int, x float64) float64 { return (rowH[k] - x) / cells }, rht)
	colW := matrix.ColSums(w)
	wtr.Apply(func(k, _ int, x float64) float64 { return (colW[k] - x) / cells }, wtr)

	return mat.Norm(rht, 2), mat.Norm(wtr, 2), nil
}
