// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package routemat builds the sub-basin network matrix (C4), assembles the
// routing matrices L, E, O (C6), and solves the per-sub-step linear system
// (C7). Matrices are small and sparse (at most O(n) non-zeros) so they are
// stored in compressed-sparse-column form, matching the Design Notes'
// guidance ("Compressed sparse column form supports the forward
// substitution pattern...").
package routemat

// Edge is one non-zero of the network matrix N: reach at column Up flows
// into the reach at column Down. Both are sub-basin positions.
type Edge struct {
	Down int // row position (downstream reach)
	Up   int // column position (upstream reach)
}

// CSC is a compressed-sparse-column matrix with at most a handful of
// non-zeros per column. Within each column, entries are ordered with the
// diagonal entry (if any) first, which is what the forward-substitution
// solver in solve.go relies on for L.
type CSC struct {
	N      int       // matrix is N x N
	ColPtr []int     // length N+1
	RowIdx []int     // length ColPtr[N]
	Val    []float64 // length ColPtr[N]
}

// MulVec computes y = A*x, where A is this CSC matrix. y must be
// preallocated to length N and is zeroed before accumulation.
func (a *CSC) MulVec(y, x []float64) {
	for i := range y {
		y[i] = 0
	}
	for j := 0; j < a.N; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			y[a.RowIdx[p]] += a.Val[p] * xj
		}
	}
}
