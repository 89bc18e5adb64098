// SPDX-License-Identifier: MIT

// Package seednmf - validation of options and inputs.
//
// Contract:
//   - Options are checked before V is touched; V must be non-nil, non-empty,
//     non-negative and finite; every index set must lie inside its axis.
//   - Only sentinel errors are returned, wrapped with the failing field.
package seednmf

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// validateOptions checks the scalar hyperparameters.
func validateOptions(opts Options) error {
	switch {
	case opts.Topics <= 0:
		return ErrInvalidTopics
	case opts.MaxIter <= 0:
		return ErrInvalidMaxIter
	case !finite(opts.Tolerance) || opts.Tolerance < 0:
		return ErrInvalidTolerance
	case !finite(opts.Step) || opts.Step < 0:
		return ErrInvalidStep
	case !finite(opts.SeedExclusionCeiling) || opts.SeedExclusionCeiling <= 0:
		return ErrInvalidCeiling
	case !finite(opts.SeedMassFloor) || opts.SeedMassFloor <= 0 || opts.SeedMassFloor > 1:
		return ErrInvalidSeedMassFloor
	case !finite(opts.InitScale) || opts.InitScale <= 0:
		return ErrInvalidInitScale
	case opts.LogEvery < 0:
		return ErrInvalidLogEvery
	}

	return nil
}

// validateInput checks V and the index sets against the shape of V.
// Returns the document and term counts.
func validateInput(v mat.Matrix, opts Options) (docs, terms int, err error) {
	if err = matrix.ValidateNonNegative(v); err != nil {
		return 0, 0, seedErrorf("V", err)
	}
	if docs, terms = v.Dims(); docs == 0 || terms == 0 {
		return 0, 0, seedErrorf("V", matrix.ErrInvalidDimensions)
	}
	if err = matrix.ValidateIndices(opts.GuidedTopics, opts.Topics); err != nil {
		return 0, 0, seedErrorf("GuidedTopics", err)
	}
	if err = matrix.ValidateIndices(opts.SeedTerms, terms); err != nil {
		return 0, 0, seedErrorf("SeedTerms", err)
	}
	if err = matrix.ValidateIndices(opts.ZeroSeedDocs, docs); err != nil {
		return 0, 0, seedErrorf("ZeroSeedDocs", err)
	}

	return docs, terms, nil
}
