// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the CSR sparse matrix.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// TestNewCSRInvalid covers shape, coordinate and value rejection.
func TestNewCSRInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		entries    []matrix.Entry
		wantErr    error
	}{
		{"zero rows", 0, 3, nil, matrix.ErrInvalidDimensions},
		{"negative cols", 2, -1, nil, matrix.ErrInvalidDimensions},
		{"row out of range", 2, 2, []matrix.Entry{{Row: 2, Col: 0, Value: 1}}, matrix.ErrOutOfRange},
		{"col out of range", 2, 2, []matrix.Entry{{Row: 0, Col: -1, Value: 1}}, matrix.ErrOutOfRange},
		{"nan", 2, 2, []matrix.Entry{{Row: 0, Col: 0, Value: math.NaN()}}, matrix.ErrNaNInf},
		{"inf", 2, 2, []matrix.Entry{{Row: 1, Col: 1, Value: math.Inf(1)}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewCSR(tc.rows, tc.cols, tc.entries)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestNewCSRMergesAndSorts checks duplicate summation, zero dropping and ordering.
func TestNewCSRMergesAndSorts(t *testing.T) {
	entries := []matrix.Entry{
		{Row: 1, Col: 2, Value: 4},
		{Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 2},
		{Row: 0, Col: 1, Value: 0.5}, // duplicate of (0,1)
		{Row: 1, Col: 1, Value: 3},
		{Row: 1, Col: 1, Value: -3}, // cancels (1,1)
	}
	s, err := matrix.NewCSR(2, 3, entries)
	require.NoError(t, err)

	r, c := s.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 3, s.NNZ())

	assert.Equal(t, 1.5, s.At(0, 1))
	assert.Equal(t, 0.0, s.At(1, 1))
	assert.Equal(t, 2.0, s.At(1, 0))
	assert.Equal(t, 4.0, s.At(1, 2))
	assert.Equal(t, 0.0, s.At(0, 0))

	raw := s.RawMatrix()
	require.Equal(t, []int{0, 1, 3}, raw.Indptr)
	require.Equal(t, []int{1, 0, 2}, raw.Ind)
	require.Equal(t, []float64{1.5, 2, 4}, raw.Data)
	require.Equal(t, raw.Data, matrix.Values(s))

	// The caller's slice is untouched.
	require.Equal(t, 1, entries[1].Col)
	require.Equal(t, 4.0, entries[0].Value)
}

// TestCSRFromDenseRoundTrip ensures CSR and the dense source agree everywhere.
func TestCSRFromDenseRoundTrip(t *testing.T) {
	d := termDoc()
	s := mustCSR(t, d)

	requireClose(t, d, s)
	requireClose(t, d.T(), s.T())
	require.Equal(t, 12, s.NNZ())
	require.InDelta(t, mat.Sum(d), matrix.Sum(s), tol)
}

// TestCSRRowsSortedWithinRow checks the canonical layout the kernels rely on.
func TestCSRRowsSortedWithinRow(t *testing.T) {
	s := mustCSR(t, termDoc())
	raw := s.RawMatrix()

	require.Len(t, raw.Indptr, 5)
	require.Equal(t, []int{2, 3, 4}, raw.Ind[raw.Indptr[2]:raw.Indptr[3]])
	for i := 0; i < raw.I; i++ {
		for p := raw.Indptr[i] + 1; p < raw.Indptr[i+1]; p++ {
			require.Less(t, raw.Ind[p-1], raw.Ind[p])
		}
	}
	for _, v := range raw.Data {
		require.NotZero(t, v)
	}
}
