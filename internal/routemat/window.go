// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routemat

import "github.com/c-h-david/rapidgo/internal/rerr"

// DenseWindow extracts the dense sub-matrix of m restricted to the given
// row and column positions (grounding wdw_mat.py). This is a diagnostic:
// it is never called from the sub-step solver and exists only for
// external inspection of a basin's assembled matrices (exercised by the
// "inspect" CLI subcommand).
func DenseWindow(m *CSC, rows, cols []int) ([][]float64, error) {
	for _, r := range rows {
		if r < 0 || r >= m.N {
			return nil, rerr.Invalid("rows", "row position %d is out of range [0,%d)", r, m.N)
		}
	}
	for _, c := range cols {
		if c < 0 || c >= m.N {
			return nil, rerr.Invalid("cols", "column position %d is out of range [0,%d)", c, m.N)
		}
	}

	rowPos := make(map[int]int, len(rows))
	for k, r := range rows {
		rowPos[r] = k
	}

	out := make([][]float64, len(rows))
	for i := range out {
		out[i] = make([]float64, len(cols))
	}

	for k, c := range cols {
		for p := m.ColPtr[c]; p < m.ColPtr[c+1]; p++ {
			if k2, ok := rowPos[m.RowIdx[p]]; ok {
				out[k2][k] = m.Val[p]
			}
		}
	}
	return out, nil
}
