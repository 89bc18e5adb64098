// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage.
//
// Purpose:
//   - Hold a term-document matrix whose density is typically well below 1%.
//   - Storage is github.com/james-bowman/sparse's CSR, which satisfies
//     mat.Matrix, so V can be passed wherever gonum expects a matrix.
//   - NewCSR adds the validation and canonical form the kernels rely on.
//
// Canonical form (guaranteed by NewCSR and CSRFromDense):
//   - Indptr has length r+1; row i owns entries Indptr[i]..Indptr[i+1]-1.
//   - Ind holds the column of each entry, strictly increasing within a row.
//   - Data holds no explicit zeros.
//
// Complexity quicksheet:
//   - NewCSR: O(nnz log nnz) (sort) ; fast-path kernels: O(nnz).

package matrix

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// CSR is the sparse storage used for term-document matrices.
type CSR = sparse.CSR

// Entry is a single (row, col, value) triplet used to build a CSR.
type Entry struct {
	Row, Col int
	Value    float64
}

// NewCSR builds an rows×cols CSR from triplets.
//
// Implementation:
//   - Stage 1: validate shape, coordinates and finiteness of every entry.
//   - Stage 2: sort a copy of the entries by (row, col).
//   - Stage 3: merge duplicates by summation and drop entries that sum to 0.
//
// Errors:
//   - ErrInvalidDimensions for rows<=0 or cols<=0.
//   - ErrOutOfRange for a coordinate outside the shape.
//   - ErrNaNInf for a non-finite value.
//
// The entries slice is not retained or modified.
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewCSR", ErrInvalidDimensions)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, matrixErrorf("NewCSR", ErrOutOfRange)
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, matrixErrorf("NewCSR", ErrNaNInf)
		}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	indptr := make([]int, rows+1)
	ind := make([]int, 0, len(sorted))
	data := make([]float64, 0, len(sorted))
	for k := 0; k < len(sorted); {
		// Merge the run of identical coordinates starting at k.
		e := sorted[k]
		sum := 0.0
		for k < len(sorted) && sorted[k].Row == e.Row && sorted[k].Col == e.Col {
			sum += sorted[k].Value
			k++
		}
		if sum == 0 {
			continue
		}
		ind = append(ind, e.Col)
		data = append(data, sum)
		indptr[e.Row+1]++
	}
	// Prefix-sum the per-row counts into row pointers.
	for i := 0; i < rows; i++ {
		indptr[i+1] += indptr[i]
	}

	return sparse.NewCSR(rows, cols, indptr, ind, data), nil
}

// CSRFromDense converts any mat.Matrix into CSR, keeping its non-zero entries.
// Returns ErrNilMatrix, ErrInvalidDimensions or ErrNaNInf.
func CSRFromDense(a mat.Matrix) (*CSR, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("CSRFromDense", err)
	}
	r, c := a.Dims()
	entries := make([]Entry, 0, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: v})
			}
		}
	}

	return NewCSR(r, c, entries)
}

// Values returns the stored values of s in (row, col) order without copying.
// The slice aliases the matrix storage and must not be modified; two CSRs
// with the same pattern (e.g. V and MulSupport's result) align index by index.
func Values(s *CSR) []float64 { return s.RawMatrix().Data }

// withData returns a CSR sharing the sparsity pattern of raw with the given
// values. len(data) must equal len(raw.Data); zeros are kept as stored values
// so the pattern stays aligned.
func withData(raw *blas.SparseMatrix, data []float64) *CSR {
	return sparse.NewCSR(raw.I, raw.J, raw.Indptr, raw.Ind, data)
}
