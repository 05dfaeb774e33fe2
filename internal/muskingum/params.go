// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package muskingum implements the per-reach Muskingum parameter loader (C2)
// and the diagonal coefficient matrices (C5), grounded on k_x_vec.py and
// ccc_mat.py.
package muskingum

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// Params holds the per-reach K (seconds) and X (dimensionless) parameters,
// gathered into sub-basin order.
type Params struct {
	K []float64 // K_bas
	X []float64 // X_bas
}

func readFloatColumn(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rerr.Invalid(path, "cannot open: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, rerr.Invalid(path, "cannot read CSV: %v", err)
	}

	out := make([]float64, len(rows))
	for i, row := range rows {
		v, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, rerr.Invalid(path, "non-numeric value %q at row %d", row[0], i)
		}
		out[i] = v
	}
	return out, nil
}

// LoadParams reads K and X single-column sources (length |R_dom|) and
// gathers them into sub-basin order via basinToDomain (B).
func LoadParams(kprCsv, xprCsv string, domainReachCount int, basinToDomain []int) (*Params, error) {
	kTot, err := readFloatColumn(kprCsv)
	if err != nil {
		return nil, err
	}
	if len(kTot) != domainReachCount {
		return nil, rerr.Invalid(kprCsv, "length %d does not match domain reach count %d", len(kTot), domainReachCount)
	}

	xTot, err := readFloatColumn(xprCsv)
	if err != nil {
		return nil, err
	}
	if len(xTot) != domainReachCount {
		return nil, rerr.Invalid(xprCsv, "length %d does not match domain reach count %d", len(xTot), domainReachCount)
	}

	kBas := make([]float64, len(basinToDomain))
	xBas := make([]float64, len(basinToDomain))
	for j, i := range basinToDomain {
		kBas[j] = kTot[i]
		xBas[j] = xTot[i]
	}
	return &Params{K: kBas, X: xBas}, nil
}
