// SPDX-License-Identifier: MIT

package seednmf

import (
	"errors"
	"fmt"
)

// Sentinel errors for option validation. Shape and index violations of the
// inputs are reported with the matrix package sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrOutOfRange, matrix.ErrNegative, ...).
var (
	// ErrInvalidTopics indicates Options.Topics <= 0.
	ErrInvalidTopics = errors.New("seednmf: topic count must be > 0")

	// ErrInvalidMaxIter indicates Options.MaxIter <= 0.
	ErrInvalidMaxIter = errors.New("seednmf: max iterations must be > 0")

	// ErrInvalidTolerance indicates a negative or non-finite Options.Tolerance.
	ErrInvalidTolerance = errors.New("seednmf: tolerance must be finite and >= 0")

	// ErrInvalidStep indicates a negative or non-finite dual ascent step.
	ErrInvalidStep = errors.New("seednmf: dual step must be finite and >= 0")

	// ErrInvalidCeiling indicates a non-positive or non-finite SeedExclusionCeiling.
	ErrInvalidCeiling = errors.New("seednmf: seed exclusion ceiling must be finite and > 0")

	// ErrInvalidSeedMassFloor indicates a SeedMassFloor outside (0, 1].
	ErrInvalidSeedMassFloor = errors.New("seednmf: seed mass floor must be in (0, 1]")

	// ErrInvalidInitScale indicates a non-positive or non-finite InitScale.
	ErrInvalidInitScale = errors.New("seednmf: init scale must be finite and > 0")

	// ErrInvalidLogEvery indicates a negative LogEvery.
	ErrInvalidLogEvery = errors.New("seednmf: log interval must be >= 0")
)

// seedErrorf wraps err with an operation tag.
func seedErrorf(tag string, err error) error {
	return fmt.Errorf("seednmf.%s: %w", tag, err)
}
