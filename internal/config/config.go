// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the routing namelist: a YAML mapping naming the
// input/output datasets, the tabular topology and parameter sources, and the
// routing sub-step. It mirrors inp/sim.go's shape for a .sim JSON file:
// required-key validation, default values, and a small post-processing
// pass before the rest of the program ever sees the data.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c-h-david/rapidgo/internal/rerr"
)

// Namelist holds all configuration read from the YAML namelist file.
type Namelist struct {
	Q00Ncf string `yaml:"Q00_ncf"`
	QexNcf string `yaml:"Qex_ncf"`
	ConCsv string `yaml:"con_csv"`
	KprCsv string `yaml:"kpr_csv"`
	XprCsv string `yaml:"xpr_csv"`
	BasCsv string `yaml:"bas_csv"`
	IsDtR  int    `yaml:"IS_dtR"`
	QouNcf string `yaml:"Qou_ncf"`
	QfiNcf string `yaml:"Qfi_ncf"`

	// optional keys, tolerated if absent and given sane defaults
	QexUnits    string `yaml:"Qex_units"`
	QexVar      string `yaml:"Qex_var"`
	WriteQfi    *bool  `yaml:"write_Qfi"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// requiredKeyNames mirrors nml_cfg.py's req_key set.
var requiredKeyNames = []string{
	"Q00_ncf", "Qex_ncf", "con_csv", "kpr_csv", "xpr_csv",
	"bas_csv", "IS_dtR", "Qou_ncf", "Qfi_ncf",
}

// setDefaults fills in optional keys left unset in the YAML mapping.
func (n *Namelist) setDefaults() {
	if n.QexUnits == "" {
		n.QexUnits = "rate"
	}
	if n.WriteQfi == nil {
		t := true
		n.WriteQfi = &t
	}
	if n.LogLevel == "" {
		n.LogLevel = "info"
	}
}

// Load reads and validates a YAML namelist file at path.
func Load(path string) (*Namelist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rerr.IO(path, "unable to open namelist: %v", err)
	}

	// decode into a generic map first to check for required keys exactly
	// as nml_cfg.py does, before committing to the typed struct.
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, rerr.Config(path, "cannot parse YAML: %v", err)
	}
	var missing []string
	for _, k := range requiredKeyNames {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, rerr.Config(path, "missing required keys: %v", missing)
	}

	n := &Namelist{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, rerr.Config(path, "cannot decode namelist: %v", err)
	}
	if n.IsDtR <= 0 {
		return nil, rerr.Config("IS_dtR", "must be a positive integer, got %d", n.IsDtR)
	}
	if n.QexUnits != "" && n.QexUnits != "rate" && n.QexUnits != "volume" {
		return nil, rerr.Config("Qex_units", "must be 'rate' or 'volume', got %q", n.QexUnits)
	}

	n.setDefaults()
	return n, nil
}
