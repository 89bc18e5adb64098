// SPDX-License-Identifier: MIT

// Package seednmf - constraint evaluators.
//
//   - g1 (document side): a document with zero seed mass in V should load each
//     guided topic with at most SeedExclusionCeiling.
//   - g2 (topic side): a guided topic should place at least SeedMassFloor of its
//     mass on seed terms; the evaluator returns the deficit per topic.
//
// An empty seed set yields a zero signal everywhere: there is no seed mass to check.
package seednmf

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// ZeroSeedDocuments returns, in increasing order, the rows of V whose seed
// columns sum to exactly zero. An empty seed set returns nil.
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange.
func ZeroSeedDocuments(v mat.Matrix, seeds []int) ([]int, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return nil, seedErrorf("ZeroSeedDocuments", err)
	}
	_, terms := v.Dims()
	if err := matrix.ValidateIndices(seeds, terms); err != nil {
		return nil, seedErrorf("ZeroSeedDocuments", err)
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	mass, err := matrix.MaskedRowSums(v, matrix.IndexMask(seeds, terms))
	if err != nil {
		return nil, seedErrorf("ZeroSeedDocuments", err)
	}
	var docs []int
	for i, s := range mass {
		if s == 0 {
			docs = append(docs, i)
		}
	}

	return docs, nil
}

// ClampUnseeded is the g1 evaluator. It returns a copy of W in which every
// document with zero seed mass in V has its guided-topic entries clamped to
// at most max(ceiling, matrix.Floor). W itself is not modified; callers adopt the returned matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrOutOfRange.
func ClampUnseeded(v mat.Matrix, w *mat.Dense, guided, seeds []int, ceiling float64) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, seedErrorf("ClampUnseeded", err)
	}
	docs, err := ZeroSeedDocuments(v, seeds)
	if err != nil {
		return nil, err
	}
	vr, _ := v.Dims()
	wr, k := w.Dims()
	if vr != wr {
		return nil, seedErrorf("ClampUnseeded", matrix.ErrDimensionMismatch)
	}
	if err = matrix.ValidateIndices(guided, k); err != nil {
		return nil, seedErrorf("ClampUnseeded", err)
	}

	return clampExcluded(w, matrix.IndexMask(docs, wr), matrix.IndexMask(guided, k), ceiling), nil
}

// clampExcluded returns a copy of W with every (docMask × topicMask) cell
// capped at max(ceiling, matrix.Floor). Masks must match the shape of W.
func clampExcluded(w *mat.Dense, docMask, topicMask []bool, ceiling float64) *mat.Dense {
	out := mat.DenseCopyOf(w)
	bound := math.Max(ceiling, matrix.Floor)
	_, topics := out.Dims()
	for i, excluded := range docMask {
		if !excluded {
			continue
		}
		row := out.RawRowView(i)
		for k := 0; k < topics; k++ {
			if topicMask[k] && row[k] > bound {
				row[k] = bound
			}
		}
	}

	return out
}

// SeedMassDeficit is the g2 evaluator: for every topic row k of H it returns
//
//	floor − Σ_{j ∈ seeds} H[k,j] / Σ_j H[k,j]
//
// Positive values mean the topic under-allocates to seed terms. All topics are
// reported; callers restrict to guided topics. An empty seed set returns zeros.
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange.
func SeedMassDeficit(h *mat.Dense, seeds []int, floor float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return nil, seedErrorf("SeedMassDeficit", err)
	}
	_, terms := h.Dims()
	if err := matrix.ValidateIndices(seeds, terms); err != nil {
		return nil, seedErrorf("SeedMassDeficit", err)
	}

	return seedDeficit(h, matrix.IndexMask(seeds, terms), len(seeds) > 0, floor), nil
}

// seedMass returns the per-topic seed mass (numerator) and total mass
// (denominator) of H under a validated term mask.
func seedMass(h *mat.Dense, seedMask []bool) (num, den []float64) {
	num, _ = matrix.MaskedRowSums(h, seedMask) // mask length is checked by the caller
	den = matrix.RowSums(h)

	return num, den
}

// seedDeficit computes g2 for every topic; all zeros when hasSeeds is false.
func seedDeficit(h *mat.Dense, seedMask []bool, hasSeeds bool, floor float64) []float64 {
	k, _ := h.Dims()
	g := make([]float64, k)
	if !hasSeeds {
		return g
	}
	num, den := seedMass(h, seedMask)
	for t := range g {
		g[t] = floor - matrix.SafeDiv(num[t], den[t])
	}

	return g
}
