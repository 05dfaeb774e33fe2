// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncio

import (
	"github.com/fhs/go-netcdf/netcdf"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// MeanWriter accumulates the per-interval mean discharge (Qou_ncf) and
// writes it as a single CF-conventions dataset once the simulation
// completes. Per-interval values are appended in strictly increasing
// forcing-index order.
type MeanWriter struct {
	path     string
	rivBasin []int32
	lon, lat []float64
	timeBnds []int32
	rows     [][]float32 // rows[k] has length n
}

// NewMeanWriter prepares a writer for the sub-basin reaches rivBasin,
// their coordinates, and the forcing dataset's time_bnds axis (reused
// verbatim on the output, so both datasets share the same time axis).
func NewMeanWriter(path string, rivBasin []int32, lon, lat []float64, timeBnds []int32) *MeanWriter {
	return &MeanWriter{path: path, rivBasin: rivBasin, lon: lon, lat: lat, timeBnds: timeBnds}
}

// Append records the mean discharge for one forcing interval.
func (w *MeanWriter) Append(qbar []float64) {
	row := make([]float32, len(qbar))
	for i, v := range qbar {
		row[i] = float32(v)
	}
	w.rows = append(w.rows, row)
}

// Close writes the accumulated rows to disk as Qou_ncf.
func (w *MeanWriter) Close() error {
	n := len(w.rivBasin)
	m := len(w.rows)

	ds, err := netcdf.CreateFile(w.path, netcdf.CLOBBER)
	if err != nil {
		return rerr.IO(w.path, "cannot create output dataset: %v", err)
	}
	defer ds.Close()

	dimRivid, err := ds.AddDim("rivid", n)
	if err != nil {
		return rerr.IO(w.path, "cannot add rivid dimension: %v", err)
	}
	dimTime, err := ds.AddDim("time", m)
	if err != nil {
		return rerr.IO(w.path, "cannot add time dimension: %v", err)
	}
	dimBnds, err := ds.AddDim("nv", 2)
	if err != nil {
		return rerr.IO(w.path, "cannot add bounds dimension: %v", err)
	}

	vRivid, err := ds.AddVar("rivid", netcdf.INT, []netcdf.Dim{dimRivid})
	if err != nil {
		return rerr.IO(w.path, "cannot add rivid variable: %v", err)
	}
	vLon, err := ds.AddVar("lon", netcdf.DOUBLE, []netcdf.Dim{dimRivid})
	if err != nil {
		return rerr.IO(w.path, "cannot add lon variable: %v", err)
	}
	vLat, err := ds.AddVar("lat", netcdf.DOUBLE, []netcdf.Dim{dimRivid})
	if err != nil {
		return rerr.IO(w.path, "cannot add lat variable: %v", err)
	}
	vTime, err := ds.AddVar("time", netcdf.INT, []netcdf.Dim{dimTime})
	if err != nil {
		return rerr.IO(w.path, "cannot add time variable: %v", err)
	}
	vBnds, err := ds.AddVar("time_bnds", netcdf.INT, []netcdf.Dim{dimTime, dimBnds})
	if err != nil {
		return rerr.IO(w.path, "cannot add time_bnds variable: %v", err)
	}
	vMain, err := ds.AddVar("Qout", netcdf.FLOAT, []netcdf.Dim{dimTime, dimRivid})
	if err != nil {
		return rerr.IO(w.path, "cannot add Qout variable: %v", err)
	}

	if err := writeGlobalAttrs(ds); err != nil {
		return rerr.IO(w.path, "cannot write global attributes: %v", err)
	}

	if err := ds.EndDef(); err != nil {
		return rerr.IO(w.path, "cannot end definition phase: %v", err)
	}

	if err := vRivid.WriteInt32s(w.rivBasin); err != nil {
		return rerr.IO(w.path, "cannot write rivid: %v", err)
	}
	if err := vLon.WriteFloat64s(w.lon); err != nil {
		return rerr.IO(w.path, "cannot write lon: %v", err)
	}
	if err := vLat.WriteFloat64s(w.lat); err != nil {
		return rerr.IO(w.path, "cannot write lat: %v", err)
	}

	timeVals := make([]int32, m)
	for k := 0; k < m; k++ {
		timeVals[k] = w.timeBnds[2*k+1]
	}
	if err := vTime.WriteInt32s(timeVals); err != nil {
		return rerr.IO(w.path, "cannot write time: %v", err)
	}
	if err := vBnds.WriteInt32s(w.timeBnds[:2*m]); err != nil {
		return rerr.IO(w.path, "cannot write time_bnds: %v", err)
	}

	flat := make([]float32, m*n)
	for k, row := range w.rows {
		copy(flat[k*n:(k+1)*n], row)
	}
	if err := vMain.WriteFloat32s(flat); err != nil {
		return rerr.IO(w.path, "cannot write Qout: %v", err)
	}
	return nil
}

// WriteFinalState writes Qfi_ncf: a single-step dataset over the domain
// reaches holding the final instantaneous discharge. qFinDomain must be
// in domain order (length n_dom); the driver is responsible for
// scattering the sub-basin state before the call (only sub-basin reaches
// have defined values; the rest are 0).
func WriteFinalState(path string, rivDomain []int32, finalTimeSec int32, qFinDomain []float64) error {
	n := len(rivDomain)

	ds, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		return rerr.IO(path, "cannot create final-state dataset: %v", err)
	}
	defer ds.Close()

	dimRivid, err := ds.AddDim("rivid", n)
	if err != nil {
		return rerr.IO(path, "cannot add rivid dimension: %v", err)
	}
	dimTime, err := ds.AddDim("time", 1)
	if err != nil {
		return rerr.IO(path, "cannot add time dimension: %v", err)
	}

	vRivid, err := ds.AddVar("rivid", netcdf.INT, []netcdf.Dim{dimRivid})
	if err != nil {
		return rerr.IO(path, "cannot add rivid variable: %v", err)
	}
	vTime, err := ds.AddVar("time", netcdf.INT, []netcdf.Dim{dimTime})
	if err != nil {
		return rerr.IO(path, "cannot add time variable: %v", err)
	}
	vMain, err := ds.AddVar("Qout", netcdf.DOUBLE, []netcdf.Dim{dimTime, dimRivid})
	if err != nil {
		return rerr.IO(path, "cannot add Qout variable: %v", err)
	}

	if err := writeGlobalAttrs(ds); err != nil {
		return rerr.IO(path, "cannot write global attributes: %v", err)
	}
	if err := ds.EndDef(); err != nil {
		return rerr.IO(path, "cannot end definition phase: %v", err)
	}

	if err := vRivid.WriteInt32s(rivDomain); err != nil {
		return rerr.IO(path, "cannot write rivid: %v", err)
	}
	if err := vTime.WriteInt32s([]int32{finalTimeSec}); err != nil {
		return rerr.IO(path, "cannot write time: %v", err)
	}
	if err := vMain.WriteFloat64s(qFinDomain); err != nil {
		return rerr.IO(path, "cannot write Qout: %v", err)
	}
	return nil
}

func writeGlobalAttrs(ds netcdf.Dataset) error {
	if err := ds.Attr("Conventions").WriteText("CF-1.6"); err != nil {
		return err
	}
	if err := ds.Attr("featureType").WriteText("timeSeries"); err != nil {
		return err
	}
	return nil
}
