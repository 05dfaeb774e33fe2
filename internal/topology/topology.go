// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topology loads the domain/sub-basin river network topology and
// builds the identifier-to-index maps the rest of the routing engine relies
// on (C1: con_vec.py/bas_vec.py/hsh_tbl.py). It also hosts the consistency
// checker (C3: chk_top.py).
package topology

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/c-h-david/rapidgo/internal/rerr"
	"github.com/c-h-david/rapidgo/internal/rlog"
)

// Domain holds the full network as read from the connectivity source, plus
// the selected, ordered sub-basin and all derived index maps.
//
// Invariants:
//   - HashDomain is a bijection from ReachDomain[i] to i.
//   - HashBasin is a bijection from ReachBasin[j] to j.
//   - BasinToDomain[j] == HashDomain[ReachBasin[j]].
type Domain struct {
	ReachDomain []int32 // R_dom, in file order
	DownDomain  []int32 // D_dom, aligned with ReachDomain; 0 == outlet

	ReachBasin []int32 // R_bas, in simulation order

	HashDomain    map[int32]int // H_dom
	HashBasin     map[int32]int // H_bas
	BasinToDomain []int         // B[j] = HashDomain[ReachBasin[j]]
}

// readIDColumn reads a single-column CSV of integers, one per line.
func readIDColumn(path string, col int) ([]int32, error) {
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

	out := make([]int32, 0, len(rows))
	for _, row := range rows {
		if col >= len(row) {
			return nil, rerr.Invalid(path, "row has fewer than %d columns", col+1)
		}
		v, err := strconv.ParseInt(row[col], 10, 32)
		if err != nil {
			return nil, rerr.Invalid(path, "non-integer value %q", row[col])
		}
		out = append(out, int32(v))
	}
	return out, nil
}

// LoadConnectivity reads the two-column (reach_id, downstream_id) topology
// source, in domain order (con_vec.py).
func LoadConnectivity(conCsv string) (reach, down []int32, err error) {
	f, oerr := os.Open(conCsv)
	if oerr != nil {
		return nil, nil, rerr.Invalid(conCsv, "cannot open: %v", oerr)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, rerr2 := r.ReadAll()
	if rerr2 != nil {
		return nil, nil, rerr.Invalid(conCsv, "cannot read CSV: %v", rerr2)
	}

	reach = make([]int32, len(rows))
	down = make([]int32, len(rows))
	for i, row := range rows {
		rv, e1 := strconv.ParseInt(row[0], 10, 32)
		dv, e2 := strconv.ParseInt(row[1], 10, 32)
		if e1 != nil || e2 != nil {
			return nil, nil, rerr.Invalid(conCsv, "non-integer identifier at row %d", i)
		}
		reach[i] = int32(rv)
		down[i] = int32(dv)
	}
	return reach, down, nil
}

// LoadBasin reads the single-column sub-basin reach-id list in simulation
// order (bas_vec.py).
func LoadBasin(basCsv string) ([]int32, error) {
	return readIDColumn(basCsv, 0)
}

// BuildHashTables builds H_dom, H_bas and B (hsh_tbl.py). It fails with
// InvalidInput if any sub-basin reach id is absent from the domain.
func BuildHashTables(reachDomain, reachBasin []int32) (hashDomain, hashBasin map[int32]int, basinToDomain []int, err error) {
	hashDomain = make(map[int32]int, len(reachDomain))
	for i, id := range reachDomain {
		hashDomain[id] = i
	}

	hashBasin = make(map[int32]int, len(reachBasin))
	for j, id := range reachBasin {
		hashBasin[id] = j
	}

	basinToDomain = make([]int, len(reachBasin))
	for j, id := range reachBasin {
		i, ok := hashDomain[id]
		if !ok {
			return nil, nil, nil, rerr.Invalid("bas_csv", "sub-basin reach %d is not present in the domain connectivity", id)
		}
		basinToDomain[j] = i
	}
	return hashDomain, hashBasin, basinToDomain, nil
}

// Load performs the full C1 topology load: read connectivity and basin
// sources, and build all derived index maps.
func Load(conCsv, basCsv string) (*Domain, error) {
	reachDomain, downDomain, err := LoadConnectivity(conCsv)
	if err != nil {
		return nil, err
	}
	reachBasin, err := LoadBasin(basCsv)
	if err != nil {
		return nil, err
	}
	hashDomain, hashBasin, basinToDomain, err := BuildHashTables(reachDomain, reachBasin)
	if err != nil {
		return nil, err
	}
	return &Domain{
		ReachDomain:   reachDomain,
		DownDomain:    downDomain,
		ReachBasin:    reachBasin,
		HashDomain:    hashDomain,
		HashBasin:     hashBasin,
		BasinToDomain: basinToDomain,
	}, nil
}

// Check runs the C3 consistency checks: missing-upstream and
// missing-downstream warnings, and the fatal upstream-before-downstream sort
// check (chk_top.py). Warnings are logged through log; the sort violation is
// returned as a TopologyError.
func (d *Domain) Check(log *rlog.Logger) error {
	// missing upstream: r in domain with downstream d in basin but r not in basin
	for i, r := range d.ReachDomain {
		down := d.DownDomain[i]
		if down == 0 {
			continue
		}
		if _, inBasin := d.HashBasin[down]; inBasin {
			if _, rInBasin := d.HashBasin[r]; !rInBasin {
				log.Warnf("connectivity: %d is upstream of %d but is not in basin file", r, down)
			}
		}
	}

	// missing downstream: r in basin with downstream d not in basin
	for _, r := range d.ReachBasin {
		down := d.DownDomain[d.HashDomain[r]]
		if down == 0 {
			continue
		}
		if _, inBasin := d.HashBasin[down]; !inBasin {
			log.Warnf("connectivity: %d is downstream of %d but is not in basin file", down, r)
		}
	}

	// sort: for every basin reach with an in-basin downstream, position(down) > position(r)
	for _, r := range d.ReachBasin {
		down := d.DownDomain[d.HashDomain[r]]
		if down == 0 {
			continue
		}
		downPos, inBasin := d.HashBasin[down]
		if !inBasin {
			continue
		}
		if downPos < d.HashBasin[r] {
			return rerr.Topology("bas_csv", "%d is downstream of %d but is located above it in the basin file", down, r)
		}
	}
	return nil
}

// CheckForcingIDs verifies that the forcing dataset's reach identifiers
// equal R_dom element-wise (chk_ids.py's forcing-side check).
func (d *Domain) CheckForcingIDs(forcingRivID []int32) error {
	if len(forcingRivID) != len(d.ReachDomain) {
		return rerr.Invalid("Qex_ncf", "forcing reach count %d does not match domain reach count %d", len(forcingRivID), len(d.ReachDomain))
	}
	for i, id := range forcingRivID {
		if id != d.ReachDomain[i] {
			return rerr.Invalid("Qex_ncf", "forcing reach id at position %d is %d, expected %d (reordering or mismatch)", i, id, d.ReachDomain[i])
		}
	}
	return nil
}
