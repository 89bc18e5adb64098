// SPDX-License-Identifier: MIT

package termdoc

import (
	"bufio"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/seednmf/matrix"
)

// WriteTSV writes m as tab-separated values, one matrix row per line, using
// the shortest representation that round-trips each float64.
func WriteTSV(w io.Writer, m mat.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	r, c := m.Dims()
	buf := make([]byte, 0, 32)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				bw.WriteByte('\t')
			}
			buf = strconv.AppendFloat(buf[:0], m.At(i, j), 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
