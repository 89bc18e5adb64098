// SPDX-License-Identifier: MIT

// Package seednmf - deterministic initialisation of the factors.
//
// Goals:
//   - Determinism: same seed ⇒ identical W and H across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each Model owns its own stream.
package seednmf

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// initFactor draws an r×c matrix of |N(0,1)|·scale noise, raised to matrix.Floor.
// Entries are drawn in row-major order from rng.
func initFactor(rng *rand.Rand, r, c int, scale float64) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = math.Abs(rng.NormFloat64() * scale)
	}
	out := mat.NewDense(r, c, data)
	matrix.ClampMin(out, matrix.Floor)

	return out
}
