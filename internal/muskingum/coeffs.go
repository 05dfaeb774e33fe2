// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package muskingum

import (
	"math"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// coeffEps bounds the roundoff tolerated in the C1+C2+C3=1 invariant.
const coeffEps = 1e-12

// Coeffs holds the three diagonal Muskingum coefficient matrices (C5),
// stored as plain diagonal vectors since C1, C2 and C3 never have
// off-diagonal entries.
type Coeffs struct {
	C1 []float64
	C2 []float64
	C3 []float64
}

// NewCoeffs computes C1, C2, C3 from per-reach K, X and the routing
// sub-step dt (ccc_mat.py). Fails if any reach's denominator
// dt/2 + K(1-X) is not strictly positive.
func NewCoeffs(k, x []float64, dt int) (*Coeffs, error) {
	n := len(k)
	c1 := make([]float64, n)
	c2 := make([]float64, n)
	c3 := make([]float64, n)
	dtF := float64(dt)

	for i := 0; i < n; i++ {
		denom := dtF/2 + k[i]*(1-x[i])
		if denom <= 0 {
			return nil, rerr.Invalid("kpr_csv/xpr_csv", "reach index %d: dt/2 + K(1-X) = %g is not strictly positive", i, denom)
		}
		c1[i] = (dtF/2 - k[i]*x[i]) / denom
		c2[i] = (dtF/2 + k[i]*x[i]) / denom
		c3[i] = (-dtF/2 + k[i]*(1-x[i])) / denom

		if sum := c1[i] + c2[i] + c3[i]; math.Abs(sum-1) > coeffEps {
			return nil, rerr.Solver("coeffs", "reach index %d: C1+C2+C3 = %.17g, expected 1 within %g", i, sum, coeffEps)
		}
	}
	return &Coeffs{C1: c1, C2: c2, C3: c3}, nil
}
