// SPDX-License-Identifier: MIT
// Package seednmf_test - shared fixtures.
package seednmf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
	"github.com/katalvlaran/seednmf/seednmf"
)

const ceiling = 1e-9

// blockCorpus returns a 4×6 corpus: documents 0-1 share terms {0,1},
// documents 2-3 share terms {2,3}, and terms 4 and 5 cross the blocks.
func blockCorpus() *mat.Dense {
	return mat.NewDense(4, 6, []float64{
		3, 2, 0, 0, 1, 0,
		2, 3, 0, 0, 0, 1,
		0, 0, 3, 2, 1, 0,
		0, 0, 2, 3, 0, 1,
	})
}

// guidedOpts returns a two-topic configuration guiding topic 0 toward terms {0,1}.
func guidedOpts() seednmf.Options {
	opts := seednmf.DefaultOptions()
	opts.Topics = 2
	opts.GuidedTopics = []int{0}
	opts.SeedTerms = []int{0, 1}
	opts.SeedExclusionCeiling = ceiling
	opts.SeedMassFloor = 0.4
	opts.MaxIter = 40
	opts.Tolerance = 1e-4
	opts.Seed = 42

	return opts
}

// randPositive returns an r×c dense matrix with entries in (0.5, 1.5).
func randPositive(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 0.5 + rng.Float64()
	}

	return mat.NewDense(r, c, data)
}

// requirePositiveFinite asserts that every entry is finite and >= matrix.Floor.
func requirePositiveFinite(t testing.TB, m mat.Matrix) {
	t.Helper()
	require.NoError(t, matrix.ValidateNonNegative(m))
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.GreaterOrEqualf(t, m.At(i, j), matrix.Floor, "entry (%d,%d)", i, j)
		}
	}
}
