// SPDX-License-Identifier: MIT

// Package seednmf - dual variable updater.
//
// Projected gradient ascent with a shared step η:
//
//	λ ← max(0, λ + η·s),  s[i,k] = W[i,k] − ceiling   on zero-seed doc i × guided topic k
//	μ ← max(0, μ + η·g2)  broadcast over the seed columns of each guided topic
//
// A multiplier whose signal is negative (constraint satisfied) is reset to
// exactly zero; cells outside the constrained block are always zero.
package seednmf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// updateLambda returns the next λ and the g1-clamped W, both as new matrices.
// w is the post-update W; the signal is read before clamping.
func updateLambda(lambda, w *mat.Dense, docMask, topicMask []bool, ceiling, step float64) (next, clamped *mat.Dense) {
	docs, topics := w.Dims()
	next = mat.NewDense(docs, topics, nil)

	for i := 0; i < docs; i++ {
		if !docMask[i] {
			continue
		}
		wrow, dst := w.RawRowView(i), next.RawRowView(i)
		for k := 0; k < topics; k++ {
			if !topicMask[k] {
				continue
			}
			if s := wrow[k] - ceiling; s >= 0 {
				dst[k] = math.Max(0, lambda.At(i, k)+step*s)
			}
		}
	}

	return next, clampExcluded(w, docMask, topicMask, ceiling)
}

// updateMu returns the next μ from the post-update H.
func updateMu(mu, h *mat.Dense, seedMask, topicMask []bool, hasSeeds bool, floor, step float64) *mat.Dense {
	topics, terms := h.Dims()
	next := mat.NewDense(topics, terms, nil)
	if !hasSeeds {
		return next
	}
	g := seedDeficit(h, seedMask, hasSeeds, floor)

	for k := 0; k < topics; k++ {
		if !topicMask[k] || g[k] < 0 {
			continue
		}
		dst := next.RawRowView(k)
		for j := 0; j < terms; j++ {
			if seedMask[j] {
				dst[j] = math.Max(0, mu.At(k, j)+step*g[k])
			}
		}
	}

	return next
}
