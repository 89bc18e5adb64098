// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the CSR and product tests.
//   • Keep all data finite and non-negative so validators never interfere.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// tol and rtol are the absolute and relative tolerances used for
// floating-point comparisons; kernels may sum in a different order than gonum.
const (
	tol  = 1e-12
	rtol = 1e-10
)

// termDoc returns a 4×6 term-document matrix with two blocks of shared terms
// and a few zero cells, as a dense matrix.
func termDoc() *mat.Dense {
	return mat.NewDense(4, 6, []float64{
		3, 2, 0, 0, 1, 0,
		2, 3, 0, 0, 0, 1,
		0, 0, 3, 2, 1, 0,
		0, 0, 2, 3, 0, 1,
	})
}

// mustCSR converts a dense fixture to CSR or fails the test.
func mustCSR(t testing.TB, d mat.Matrix) *matrix.CSR {
	t.Helper()
	s, err := matrix.CSRFromDense(d)
	require.NoError(t, err)

	return s
}

// randPositive returns an r×c dense matrix with entries in (0.01, 1.01).
func randPositive(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 0.01 + rng.Float64()
	}

	return mat.NewDense(r, c, data)
}

// requireClose asserts that two matrices agree within tol and rtol.
func requireClose(t testing.TB, want, got mat.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(got))
}
