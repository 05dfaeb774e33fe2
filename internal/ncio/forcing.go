// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncio reads and writes the netCDF datasets the driver consumes
// and produces: the external-inflow forcing time series, the initial
// discharge snapshot, the per-interval mean-discharge output, and the
// final-state snapshot.
package ncio

import (
	"github.com/fhs/go-netcdf/netcdf"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// candidateMainVars lists the main-variable names original_source uses
// across its drafts (rud_new.py uses Qext; Qex_new.py/Qou_new.py use
// Qout; m3_riv appears in the volume-forcing convention). They are only
// searched when no Qex_var namelist override is given.
var candidateMainVars = []string{"Qext", "Qout", "m3_riv"}

// Forcing is the opened external-inflow dataset, restricted to the
// fields the driver needs: reach identifiers, the time-bounds axis, and
// the resolved main variable.
type Forcing struct {
	mainVar  string
	n        int
	nSteps   int
	RivID    []int32
	Lon, Lat []float64 // length n, domain order
	TimeBnds []int32   // length nSteps*2
	Main     []float32 // length nSteps*n, row-major [step][reach]
}

// OpenForcing opens path and resolves its dimensions and variables.
// varOverride, if non-empty, names the main variable and must be present
// (an absent override is an InvalidInput error, with no fallback);
// otherwise the main variable is the first of candidateMainVars present.
func OpenForcing(path, varOverride string) (*Forcing, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, rerr.IO(path, "cannot open forcing dataset: %v", err)
	}
	defer ds.Close()

	n, err := dimLen(ds, path, "rivid")
	if err != nil {
		return nil, err
	}
	m, err := dimLen(ds, path, "time")
	if err != nil {
		return nil, err
	}

	rivid := make([]int32, n)
	if err := readInt32Var(ds, path, "rivid", rivid); err != nil {
		return nil, err
	}
	lon := make([]float64, n)
	if err := readFloat64Var(ds, path, "lon", lon); err != nil {
		return nil, err
	}
	lat := make([]float64, n)
	if err := readFloat64Var(ds, path, "lat", lat); err != nil {
		return nil, err
	}

	bnds := make([]int32, m*2)
	if err := readInt32Var(ds, path, "time_bnds", bnds); err != nil {
		return nil, err
	}

	mainVar, err := resolveMainVar(ds, path, varOverride)
	if err != nil {
		return nil, err
	}
	mv, err := ds.Var(mainVar)
	if err != nil {
		return nil, rerr.Invalid(path, "variable %q disappeared after resolution", mainVar)
	}
	main := make([]float32, m*n)
	if err := mv.ReadFloat32s(main); err != nil {
		return nil, rerr.IO(path, "cannot read main variable %q: %v", mainVar, err)
	}

	return &Forcing{mainVar: mainVar, n: n, nSteps: m, RivID: rivid, Lon: lon, Lat: lat, TimeBnds: bnds, Main: main}, nil
}

func resolveMainVar(ds netcdf.Dataset, path, override string) (string, error) {
	if override != "" {
		if _, err := ds.Var(override); err == nil {
			return override, nil
		}
		return "", rerr.Invalid(path, "configured forcing variable %q is not present", override)
	}
	for _, name := range candidateMainVars {
		if _, err := ds.Var(name); err == nil {
			return name, nil
		}
	}
	return "", rerr.Invalid(path, "none of %v is present as the main forcing variable", candidateMainVars)
}

// NSteps returns M, the number of forcing intervals.
func (f *Forcing) NSteps() int { return f.nSteps }

// StepSeconds returns T = t_{k+1} − t_k for forcing interval k, read from
// time_bnds (epoch seconds, int32).
func (f *Forcing) StepSeconds(k int) int {
	return int(f.TimeBnds[2*k+1] - f.TimeBnds[2*k])
}

// Row returns the main variable's row k (length n_dom), a view into Main.
func (f *Forcing) Row(k int) []float32 {
	return f.Main[k*f.n : (k+1)*f.n]
}

func dimLen(ds netcdf.Dataset, path, name string) (int, error) {
	d, err := ds.Dim(name)
	if err != nil {
		return 0, rerr.Invalid(path, "missing dimension %q", name)
	}
	n, err := d.Len()
	if err != nil {
		return 0, rerr.Invalid(path, "cannot read length of dimension %q: %v", name, err)
	}
	return int(n), nil
}

func readInt32Var(ds netcdf.Dataset, path, name string, out []int32) error {
	v, err := ds.Var(name)
	if err != nil {
		return rerr.Invalid(path, "missing variable %q", name)
	}
	if err := v.ReadInt32s(out); err != nil {
		return rerr.IO(path, "cannot read variable %q: %v", name, err)
	}
	return nil
}

func readFloat64Var(ds netcdf.Dataset, path, name string, out []float64) error {
	v, err := ds.Var(name)
	if err != nil {
		return rerr.Invalid(path, "missing variable %q", name)
	}
	if err := v.ReadFloat64s(out); err != nil {
		return rerr.IO(path, "cannot read variable %q: %v", name, err)
	}
	return nil
}
