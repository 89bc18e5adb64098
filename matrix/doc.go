// SPDX-License-Identifier: MIT

// Package matrix provides the numeric safety layer used by the seed-guided
// factorisation: sparse storage, product dispatch and clamped arithmetic on
// top of gonum's mat package.
//
// The matrix package provides:
//
//   - CSR, github.com/james-bowman/sparse's compressed-sparse-row matrix
//     (a mat.Matrix), built from (row, col, value) triplets by NewCSR.
//   - Mul, a product that dispatches CSR×dense, dense×CSR or dense×dense
//     without densifying the sparse operand.
//   - MulSupport and RatioOnSupport, which evaluate W·H (and V ⊘ W·H) only
//     where V is stored, so sparse corpora never materialise the full product.
//   - SafeDiv, ClampMin, NormalizeSum, NormalizeRowsL2 and the sum helpers.
//   - Centralised validators returning package sentinels (errors.go).
//
// Numeric policy:
//
//	Epsilon (float32 machine epsilon) is the floor applied to any value that
//	is about to be used as a denominator or inside a logarithm. Floor (1e-12)
//	is the floor applied to factor entries after a multiplicative update.
//
// Determinism:
//
//	Every kernel iterates in fixed row-major order; CSR entries are kept sorted
//	by (row, col). Identical inputs give bit-identical outputs.
package matrix
