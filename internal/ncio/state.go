// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncio

import (
	"github.com/fhs/go-netcdf/netcdf"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// ReadInitialState reads the domain-indexed initial discharge snapshot
// (Q00_ncf), gathering it into sub-basin order via basinToDomain (B).
// The snapshot's main variable follows the same rud_new.py convention as
// the forcing dataset and is resolved the same way.
func ReadInitialState(path, varOverride string, basinToDomain []int) ([]float64, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, rerr.IO(path, "cannot open initial-state dataset: %v", err)
	}
	defer ds.Close()

	n, err := dimLen(ds, path, "rivid")
	if err != nil {
		return nil, err
	}

	mainVar, err := resolveMainVar(ds, path, varOverride)
	if err != nil {
		return nil, err
	}
	v, err := ds.Var(mainVar)
	if err != nil {
		return nil, rerr.Invalid(path, "variable %q disappeared after resolution", mainVar)
	}

	full := make([]float64, n)
	if err := v.ReadFloat64s(full); err != nil {
		return nil, rerr.IO(path, "cannot read variable %q: %v", mainVar, err)
	}

	out := make([]float64, len(basinToDomain))
	for j, i := range basinToDomain {
		if i >= len(full) {
			return nil, rerr.Invalid(path, "domain position %d out of range for snapshot of length %d", i, len(full))
		}
		out[j] = full[i]
	}
	return out, nil
}
