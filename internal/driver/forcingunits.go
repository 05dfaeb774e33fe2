// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/c-h-david/rapidgo/internal/rerr"

// ForcingUnits records whether the forcing dataset's main variable is a
// rate or a volume accumulated over the forcing step, resolved from the
// namelist's optional Qex_units key (grounding fak_m3r.py).
type ForcingUnits int

const (
	RatePerSecond ForcingUnits = iota
	VolumePerStep
)

// ParseForcingUnits maps the namelist's Qex_units string to a ForcingUnits
// value. An empty string defaults to RatePerSecond.
func ParseForcingUnits(s string) (ForcingUnits, error) {
	switch s {
	case "", "rate":
		return RatePerSecond, nil
	case "volume":
		return VolumePerStep, nil
	default:
		return RatePerSecond, rerr.Config("Qex_units", "unrecognized forcing-units value %q, expected %q or %q", s, "rate", "volume")
	}
}

// Convert divides row by stepSeconds in place when units are
// VolumePerStep, turning a volume-per-step value into a rate.
func (u ForcingUnits) Convert(row []float64, stepSeconds int) {
	if u != VolumePerStep {
		return
	}
	t := float64(stepSeconds)
	for i := range row {
		row[i] /= t
	}
}
