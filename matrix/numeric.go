// SPDX-License-Identifier: MIT

// Package matrix - numeric policy & clamped arithmetic.
//
// Purpose:
//   - Keep the two floors used by the factorisation in one place.
//   - Provide the division and clamping primitives every update goes through,
//     so no ratio or logarithm ever sees a zero.
//
// Determinism:
//   - Flat 0..n-1 loops over the row-major buffer of *mat.Dense.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// Epsilon is float32 machine epsilon. Values below it are raised to it
	// before being used as a denominator or inside a logarithm.
	Epsilon = 1.1920928955078125e-07

	// Floor is the smallest value a factor entry may hold after an update.
	Floor = 1e-12
)

// SafeDiv returns num/den with den raised to Epsilon when den < Epsilon.
// Negative denominators are raised as well, so the sign of the result follows num.
func SafeDiv(num, den float64) float64 {
	if den < Epsilon {
		den = Epsilon
	}

	return num / den
}

// SafeLogRatio returns log(v/wh) with both operands raised to Epsilon first.
func SafeLogRatio(v, wh float64) float64 {
	if v < Epsilon {
		v = Epsilon
	}
	if wh < Epsilon {
		wh = Epsilon
	}

	return math.Log(v / wh)
}

// ClampMin raises every entry of m below lo to lo, in place.
// NaN entries are replaced by lo as well.
// Complexity: O(r*c).
func ClampMin(m *mat.Dense, lo float64) {
	raw := m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if !(v >= lo) {
				row[j] = lo
			}
		}
	}
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// NaN equals nothing; +Inf equals +Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: O(r*c) time, O(1) space.
func AllClose(a, b mat.Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, bv := a.At(i, j), b.At(i, j)
			if av == bv {
				continue // covers equal infinities
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
