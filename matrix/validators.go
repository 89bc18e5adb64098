// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/index/sign checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap again with their own context.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → values).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers of the concrete types this package works with.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *mat.Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *CSR:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a×b is defined (a.Cols == b.Rows).
// Assumes a and b are not nil. Complexity: O(1).
func ValidateMulShape(a, b mat.Matrix) error {
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative ensures every entry of m is finite and ≥ 0.
// CSR and other mat.NonZeroDoer inputs are checked over their stored entries only.
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegative. Complexity: O(r*c) or O(nnz).
func ValidateNonNegative(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var bad error
	check := func(_, _ int, v float64) {
		if bad != nil {
			return
		}
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			bad = ErrNaNInf
		case v < 0:
			bad = ErrNegative
		}
	}
	if s, ok := m.(*CSR); ok {
		for _, v := range Values(s) {
			check(0, 0, v)
		}
	} else if nz, ok := m.(mat.NonZeroDoer); ok {
		nz.DoNonZero(check)
	} else {
		r, c := m.Dims()
		for i := 0; i < r && bad == nil; i++ {
			for j := 0; j < c; j++ {
				check(i, j, m.At(i, j))
			}
		}
	}
	if bad != nil {
		return validatorErrorf("ValidateNonNegative", bad)
	}

	return nil
}

// ValidateIndices ensures every entry of idx lies in [0, n).
// An empty or nil set is valid. Duplicates are allowed.
// Errors: ErrOutOfRange. Complexity: O(len(idx)).
func ValidateIndices(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return validatorErrorf(fmt.Sprintf("ValidateIndices(%d of %d)", i, n), ErrOutOfRange)
		}
	}

	return nil
}

// IndexMask converts an index set into a boolean mask of length n.
// Entries must already be validated with ValidateIndices.
// Complexity: O(n + len(idx)).
func IndexMask(idx []int, n int) []bool {
	mask := make([]bool, n)
	for _, i := range idx {
		mask[i] = true
	}

	return mask
}
