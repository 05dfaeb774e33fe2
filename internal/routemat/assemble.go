// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routemat

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/c-h-david/rapidgo/internal/muskingum"
)

// Routing holds the three assembled operators (C6): the unit-lower
// triangular L = I - C1*N, the diagonal E = C1 + C2 (stored as a plain
// vector, since E never has off-diagonal entries), and O = C3 + C2*N.
//
// C1*N and C2*N scale N's entries by the row (downstream) index, so
// (C1*N)[d,u] = C1[d]*N[d,u]: every off-diagonal entry of L and O takes
// the downstream reach's own coefficient, never the upstream reach's.
type Routing struct {
	L *CSC
	E []float64
	O *CSC
}

// Assemble builds L, E, O from the network edges and the diagonal
// Muskingum coefficients. Edges need not be arranged in any particular
// order; the result's CSC columns are built with the diagonal entry
// first, as solve.go's forward substitution requires.
func Assemble(net *Network, c *muskingum.Coeffs) *Routing {
	n := net.N
	if len(c.C1) != n || len(c.C2) != n || len(c.C3) != n {
		chk.Panic("coefficient vectors must have one entry per sub-basin reach: got %d, %d, %d for n=%d", len(c.C1), len(c.C2), len(c.C3), n)
	}
	diagL := make([]float64, n)
	for i := range diagL {
		diagL[i] = 1.0
	}
	return &Routing{
		L: buildCSC(n, net.Edges, diagL, c.C1, -1.0),
		E: addVec(c.C1, c.C2),
		O: buildCSC(n, net.Edges, c.C3, c.C2, +1.0),
	}
}

// buildCSC lays out a matrix of the form diag(diagVal) + sign·coef(row)·N
// in compressed-sparse-column form, with the diagonal entry first in
// every column.
func buildCSC(n int, edges []Edge, diagVal, offCoef []float64, sign float64) *CSC {
	byCol := make([][]int, n) // byCol[up] = list of down positions
	for _, e := range edges {
		byCol[e.Up] = append(byCol[e.Up], e.Down)
	}

	m := &CSC{N: n, ColPtr: make([]int, n+1)}
	for j := 0; j < n; j++ {
		m.ColPtr[j] = len(m.Val)
		m.RowIdx = append(m.RowIdx, j)
		m.Val = append(m.Val, diagVal[j])

		downs := byCol[j]
		sort.Ints(downs)
		for _, d := range downs {
			m.RowIdx = append(m.RowIdx, d)
			m.Val = append(m.Val, sign*offCoef[d])
		}
	}
	m.ColPtr[n] = len(m.Val)
	return m
}

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
