// SPDX-License-Identifier: MIT

package seednmf

// Test bridge: exposes the dual-ascent kernels to seednmf_test.
// Compiled only with the test binary; the production API is unchanged.

import "gonum.org/v1/gonum/mat"

// UpdateLambdaForTest wraps updateLambda.
func UpdateLambdaForTest(lambda, w *mat.Dense, docMask, topicMask []bool, ceiling, step float64) (*mat.Dense, *mat.Dense) {
	return updateLambda(lambda, w, docMask, topicMask, ceiling, step)
}

// UpdateMuForTest wraps updateMu.
func UpdateMuForTest(mu, h *mat.Dense, seedMask, topicMask []bool, hasSeeds bool, floor, step float64) *mat.Dense {
	return updateMu(mu, h, seedMask, topicMask, hasSeeds, floor, step)
}

// UpdateHForTest wraps updateH.
func UpdateHForTest(v mat.Matrix, w, h, mu *mat.Dense, seedMask, topicMask []bool) (*mat.Dense, error) {
	return updateH(v, w, h, mu, seedMask, topicMask)
}
