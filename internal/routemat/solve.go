// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routemat

import (
	"math"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// Solver runs the per-forcing-interval sub-step loop (C7) against a fixed
// Routing. All scratch buffers are preallocated at construction time, so
// Interval performs no allocation.
type Solver struct {
	route *Routing
	n     int

	r1  []float64 // E·qe, constant across the S sub-steps of one interval
	rhs []float64 // r1 + O·q, solved in place into the post-sub-step q
	acc []float64 // running sum of pre-solve q, for the interval mean
}

// NewSolver allocates a Solver bound to route. route's dimension fixes the
// width of every vector Interval will later accept.
func NewSolver(route *Routing) *Solver {
	n := len(route.E)
	return &Solver{
		route: route,
		n:     n,
		r1:    make([]float64, n),
		rhs:   make([]float64, n),
		acc:   make([]float64, n),
	}
}

// Interval runs S routing sub-steps for one forcing interval. qState holds
// q_init on entry and is overwritten with q_fin on return. qbar receives
// the per-interval time-mean discharge and must be preallocated to the
// solver's dimension (its previous contents are overwritten).
func (s *Solver) Interval(qState, qe, qbar []float64, sSteps int) error {
	if sSteps < 1 {
		return rerr.Solver("S", "sub-step count %d must be at least 1", sSteps)
	}

	for i := 0; i < s.n; i++ {
		s.r1[i] = s.route.E[i] * qe[i]
		s.acc[i] = 0
	}

	for step := 0; step < sSteps; step++ {
		for i := 0; i < s.n; i++ {
			s.acc[i] += qState[i]
		}

		s.route.O.MulVec(s.rhs, qState)
		for i := 0; i < s.n; i++ {
			s.rhs[i] += s.r1[i]
		}

		if err := forwardSolveUnit(s.route.L, s.rhs); err != nil {
			return err
		}
		copy(qState, s.rhs)

		for i := 0; i < s.n; i++ {
			if math.IsNaN(qState[i]) || math.IsInf(qState[i], 0) {
				return rerr.Solver("q", "reach index %d produced a non-finite discharge at sub-step %d", i, step)
			}
		}
	}

	for i := 0; i < s.n; i++ {
		qbar[i] = s.acc[i] / float64(sSteps)
	}
	return nil
}

// forwardSolveUnit solves L·x = x (rhs supplied in x, overwritten with the
// solution) for a unit-lower-triangular L whose columns carry the diagonal
// entry first, using cs_lsolve-style column access: visiting column j
// scales x[j] by the (unit) diagonal, then subtracts its contribution from
// every row below it that L has a non-zero for.
func forwardSolveUnit(l *CSC, x []float64) error {
	for j := 0; j < l.N; j++ {
		p0 := l.ColPtr[j]
		diag := l.Val[p0]
		if diag == 0 {
			return rerr.Solver("L", "zero diagonal entry at column %d", j)
		}
		x[j] /= diag
		for p := p0 + 1; p < l.ColPtr[j+1]; p++ {
			x[l.RowIdx[p]] -= l.Val[p] * x[j]
		}
	}
	return nil
}
