// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver wires the loaders, matrix assembly, and sub-step solver
// into the outer simulation loop (C8) and performs the forcing/routing
// step-count correspondence (C9), mirroring fem.Run's staged loop: a load
// phase, a per-interval step phase, and a final write phase.
package driver

import (
	"context"
	"time"

	"github.com/c-h-david/rapidgo/internal/config"
	"github.com/c-h-david/rapidgo/internal/muskingum"
	"github.com/c-h-david/rapidgo/internal/ncio"
	"github.com/c-h-david/rapidgo/internal/rlog"
	"github.com/c-h-david/rapidgo/internal/routemat"
	"github.com/c-h-david/rapidgo/internal/telemetry"
	"github.com/c-h-david/rapidgo/internal/topology"
)

// Run performs the complete simulation described by nl: load topology,
// parameters and forcing; assemble the routing matrices; iterate forcing
// intervals (C8); and write the per-interval mean-discharge and
// final-state outputs. ctx is checked for cancellation between forcing
// intervals, producing a clean shutdown after writing the completed
// output.
func Run(ctx context.Context, nl *config.Namelist, log *rlog.Logger) error {
	dom, err := topology.Load(nl.ConCsv, nl.BasCsv)
	if err != nil {
		return err
	}
	if err := dom.Check(log); err != nil {
		return err
	}

	params, err := muskingum.LoadParams(nl.KprCsv, nl.XprCsv, len(dom.ReachDomain), dom.BasinToDomain)
	if err != nil {
		return err
	}

	units, err := ParseForcingUnits(nl.QexUnits)
	if err != nil {
		return err
	}

	forcing, err := ncio.OpenForcing(nl.QexNcf, nl.QexVar)
	if err != nil {
		return err
	}
	if err := dom.CheckForcingIDs(forcing.RivID); err != nil {
		return err
	}

	qState, err := ncio.ReadInitialState(nl.Q00Ncf, nl.QexVar, dom.BasinToDomain)
	if err != nil {
		return err
	}

	net := routemat.BuildNetwork(dom.ReachBasin, dom.HashDomain, dom.HashBasin, dom.DownDomain)
	telemetry.SetSubBasinSize(net.N)

	forcingStep := forcing.StepSeconds(0)
	subSteps, err := StepCorrespondence(forcingStep, nl.IsDtR)
	if err != nil {
		return err
	}
	coeffs, err := muskingum.NewCoeffs(params.K, params.X, nl.IsDtR)
	if err != nil {
		return err
	}
	routing := routemat.Assemble(net, coeffs)
	solver := routemat.NewSolver(routing)

	lon, lat := make([]float64, net.N), make([]float64, net.N)
	for j, i := range dom.BasinToDomain {
		lon[j] = forcing.Lon[i]
		lat[j] = forcing.Lat[i]
	}
	out := ncio.NewMeanWriter(nl.QouNcf, dom.ReachBasin, lon, lat, forcing.TimeBnds)

	qbar := make([]float64, net.N)
	forcingRow := make([]float64, net.N)

	for k := 0; k < forcing.NSteps(); k++ {
		select {
		case <-ctx.Done():
			log.Warnf("cancellation requested after %d of %d intervals; writing completed output", k, forcing.NSteps())
			return out.Close()
		default:
		}

		start := time.Now()
		gather(forcingRow, forcing.Row(k), dom.BasinToDomain)
		units.Convert(forcingRow, forcing.StepSeconds(k))

		if err := solver.Interval(qState, forcingRow, qbar, subSteps); err != nil {
			return err
		}
		out.Append(qbar)
		telemetry.ObserveInterval(time.Since(start), subSteps)
	}

	if err := out.Close(); err != nil {
		return err
	}

	if nl.WriteQfi == nil || *nl.WriteQfi {
		qFinDomain := make([]float64, len(dom.ReachDomain))
		for j, i := range dom.BasinToDomain {
			qFinDomain[i] = qState[j]
		}
		finalTime := forcing.TimeBnds[2*(forcing.NSteps()-1)+1]
		if err := ncio.WriteFinalState(nl.QfiNcf, dom.ReachDomain, finalTime, qFinDomain); err != nil {
			return err
		}
	}

	return nil
}

// gather copies the domain-ordered forcing row into sub-basin order. The
// forcing dataset is laid out in R_dom order (the same order
// CheckForcingIDs validated against), so basinToDomain (B) indexes it
// directly.
func gather(dst []float64, srcDomain []float32, basinToDomain []int) {
	for j, i := range basinToDomain {
		dst[j] = float64(srcDomain[i])
	}
}
