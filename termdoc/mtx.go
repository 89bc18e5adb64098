// SPDX-License-Identifier: MIT

package termdoc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/seednmf/matrix"
)

// mtxBanner is the only prefix accepted on the first line.
const mtxBanner = "%%matrixmarket"

// ReadMatrixMarket parses a coordinate Matrix Market stream into a CSR.
//
// Accepted headers are "matrix coordinate real general" and
// "matrix coordinate integer general". Lines starting with '%' after the
// banner are comments. Duplicate coordinates are summed and explicit zeros
// dropped, as in matrix.NewCSR.
//
// Errors: ErrBadHeader, ErrBadSize, ErrBadEntry, ErrEntryCount (wrapped with
// the line number), read errors from r, and matrix sentinels from NewCSR.
func ReadMatrixMarket(r io.Reader) (*matrix.CSR, error) {
	sc := bufio.NewScanner(r)
	line := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, lineErrorf(1, ErrBadHeader)
	}
	line++
	if err := checkBanner(sc.Text()); err != nil {
		return nil, lineErrorf(line, err)
	}

	var (
		rows, cols, nnz int
		sized           bool
		entries         []matrix.Entry
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		f := strings.Fields(text)

		if !sized {
			if len(f) != 3 {
				return nil, lineErrorf(line, ErrBadSize)
			}
			var err error
			if rows, cols, nnz, err = atoi3(f); err != nil || rows <= 0 || cols <= 0 || nnz < 0 {
				return nil, lineErrorf(line, ErrBadSize)
			}
			entries = make([]matrix.Entry, 0, nnz)
			sized = true
			continue
		}

		if len(f) != 3 {
			return nil, lineErrorf(line, ErrBadEntry)
		}
		i, err := strconv.Atoi(f[0])
		if err != nil || i < 1 || i > rows {
			return nil, lineErrorf(line, ErrBadEntry)
		}
		j, err := strconv.Atoi(f[1])
		if err != nil || j < 1 || j > cols {
			return nil, lineErrorf(line, ErrBadEntry)
		}
		v, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return nil, lineErrorf(line, ErrBadEntry)
		}
		if len(entries) == nnz {
			return nil, lineErrorf(line, ErrEntryCount)
		}
		entries = append(entries, matrix.Entry{Row: i - 1, Col: j - 1, Value: v})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sized {
		return nil, lineErrorf(line, ErrBadSize)
	}
	if len(entries) != nnz {
		return nil, fmt.Errorf("termdoc: %d of %d entries: %w", len(entries), nnz, ErrEntryCount)
	}

	return matrix.NewCSR(rows, cols, entries)
}

// checkBanner validates the "%%MatrixMarket matrix coordinate <field> general" line.
func checkBanner(s string) error {
	f := strings.Fields(strings.ToLower(s))
	if len(f) != 5 || f[0] != mtxBanner || f[1] != "matrix" || f[2] != "coordinate" || f[4] != "general" {
		return ErrBadHeader
	}
	if f[3] != "real" && f[3] != "integer" {
		return ErrBadHeader
	}

	return nil
}

// atoi3 parses three decimal integers.
func atoi3(f []string) (a, b, c int, err error) {
	if a, err = strconv.Atoi(f[0]); err != nil {
		return
	}
	if b, err = strconv.Atoi(f[1]); err != nil {
		return
	}
	c, err = strconv.Atoi(f[2])

	return
}
