// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c-h-david/rapidgo/internal/config"
	"github.com/c-h-david/rapidgo/internal/muskingum"
	"github.com/c-h-david/rapidgo/internal/routemat"
	"github.com/c-h-david/rapidgo/internal/topology"
)

// newInspectCmd exposes the matrix-window diagnostic: a narrow,
// out-of-hot-path view of L restricted to a caller-given slice of
// sub-basin positions. It never touches the sub-step solver.
func newInspectCmd() *cobra.Command {
	var namelistPath string
	var window string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a dense window of the assembled L matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(namelistPath, window)
		},
	}
	cmd.Flags().StringVarP(&namelistPath, "namelist", "n", "", "path to the YAML namelist (required)")
	cmd.Flags().StringVar(&window, "positions", "", "comma-separated sub-basin positions, e.g. 0,1,2")
	_ = cmd.MarkFlagRequired("namelist")
	_ = cmd.MarkFlagRequired("positions")
	return cmd
}

func runInspect(namelistPath, window string) error {
	positions, err := parsePositions(window)
	if err != nil {
		return err
	}

	nl, err := config.Load(namelistPath)
	if err != nil {
		return reportErr(err)
	}

	dom, err := topology.Load(nl.ConCsv, nl.BasCsv)
	if err != nil {
		return reportErr(err)
	}
	params, err := muskingum.LoadParams(nl.KprCsv, nl.XprCsv, len(dom.ReachDomain), dom.BasinToDomain)
	if err != nil {
		return reportErr(err)
	}
	coeffs, err := muskingum.NewCoeffs(params.K, params.X, nl.IsDtR)
	if err != nil {
		return reportErr(err)
	}

	net := routemat.BuildNetwork(dom.ReachBasin, dom.HashDomain, dom.HashBasin, dom.DownDomain)
	routing := routemat.Assemble(net, coeffs)

	win, err := routemat.DenseWindow(routing.L, positions, positions)
	if err != nil {
		return reportErr(err)
	}
	for _, row := range win {
		fmt.Println(row)
	}
	return nil
}

func parsePositions(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
