// SPDX-License-Identifier: MIT

// Package seednmf - multiplicative update engine.
//
// Both rules have the form factor ⊙ positive ⊘ (negative + penalty):
//
//	W ← W ⊙ (R·Hᵀ) ⊘ (1·Hᵀ + P_λ),   P_λ[i,k] = λ[i,k] on zero-seed doc i × guided topic k
//	H ← H ⊙ (Wᵀ·R) ⊘ (Wᵀ·1 + P_μ),   P_μ[k,j] = μ[k,j]·(−(den_k − num_k)/den_k²) on guided k × seed j
//
// with R = V ⊘ (W·H) recomputed from the factors current at the start of each
// rule. 1·Hᵀ and Wᵀ·1 are rank-one (row sums of H, column sums of W) and are
// never materialised. Denominators go through matrix.SafeDiv; results are
// raised to matrix.Floor so no entry reaches zero.
package seednmf

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// updateW returns the next W from the pre-update W and H.
func updateW(v mat.Matrix, w, h, lambda *mat.Dense, docMask, topicMask []bool) (*mat.Dense, error) {
	r, err := matrix.RatioOnSupport(v, w, h)
	if err != nil {
		return nil, seedErrorf("updateW", err)
	}
	pos, err := matrix.Mul(r, h.T())
	if err != nil {
		return nil, seedErrorf("updateW", err)
	}
	if err = matrix.ValidateSameShape(pos, w); err != nil {
		return nil, seedErrorf("updateW", err)
	}
	neg := matrix.RowSums(h) // (1·Hᵀ)[i,k] = Σ_j H[k,j] for every i

	docs, topics := w.Dims()
	out := mat.NewDense(docs, topics, nil)
	for i := 0; i < docs; i++ {
		src, num, dst := w.RawRowView(i), pos.RawRowView(i), out.RawRowView(i)
		for k := 0; k < topics; k++ {
			den := neg[k]
			if docMask[i] && topicMask[k] {
				den += lambda.At(i, k)
			}
			dst[k] = src[k] * matrix.SafeDiv(num[k], den)
		}
	}
	matrix.ClampMin(out, matrix.Floor)

	return out, nil
}

// updateH returns the next H from the already-updated W and the pre-update H.
func updateH(v mat.Matrix, w, h, mu *mat.Dense, seedMask, topicMask []bool) (*mat.Dense, error) {
	r, err := matrix.RatioOnSupport(v, w, h)
	if err != nil {
		return nil, seedErrorf("updateH", err)
	}
	pos, err := matrix.Mul(w.T(), r)
	if err != nil {
		return nil, seedErrorf("updateH", err)
	}
	if err = matrix.ValidateSameShape(pos, h); err != nil {
		return nil, seedErrorf("updateH", err)
	}
	neg := matrix.ColSums(w) // (Wᵀ·1)[k,j] = Σ_i W[i,k] for every j
	num, den := seedMass(h, seedMask)

	topics, terms := h.Dims()
	out := mat.NewDense(topics, terms, nil)
	for k := 0; k < topics; k++ {
		src, top, dst := h.RawRowView(k), pos.RawRowView(k), out.RawRowView(k)
		// Negative partial derivative of the seed fraction num/den w.r.t. a seed entry.
		grad := -(den[k] - num[k]) / (den[k] * den[k])
		for j := 0; j < terms; j++ {
			d := neg[k]
			if topicMask[k] && seedMask[j] {
				d += mu.At(k, j) * grad
			}
			dst[j] = src[j] * matrix.SafeDiv(top[j], d)
		}
	}
	matrix.ClampMin(out, matrix.Floor)

	return out, nil
}
