// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package routemat

import (
	"github.com/cpmech/gosl/la"
)

// Network holds the sub-basin adjacency matrix N (C4), both as the edge
// list used to assemble L/E/O (assemble.go) and as a gosl/la sparse
// triplet, convertible to compressed-column form by ToCCMatrix, assembled
// via la.Triplet the same way a finite-element solver assembles a Jacobian.
type Network struct {
	N     int // number of sub-basin reaches
	Edges []Edge
	trip  la.Triplet
}

// BuildNetwork builds N: for each sub-basin position j, let i be its domain
// position and d its domain downstream id; if d is non-zero and in the
// sub-basin, record the edge (down=H_bas[d], up=j) (net_mat.py). Each
// column (up) has at most one non-zero, since a reach flows to at most
// one downstream reach.
func BuildNetwork(reachBasin []int32, hashDomain, hashBasin map[int32]int, downDomain []int32) *Network {
	n := len(reachBasin)
	net := &Network{N: n}
	net.trip.Init(n, n, n)

	for up, id := range reachBasin {
		domainPos := hashDomain[id]
		down := downDomain[domainPos]
		if down == 0 {
			continue
		}
		downPos, ok := hashBasin[down]
		if !ok {
			continue
		}
		net.Edges = append(net.Edges, Edge{Down: downPos, Up: up})
		net.trip.Put(downPos, up, 1.0)
	}
	return net
}

// ToCCMatrix returns the gosl/la compressed-column form of N, exposed for
// external inspection of the raw adjacency structure.
func (net *Network) ToCCMatrix() *la.CCMatrix {
	return net.trip.ToMatrix(nil)
}

// ToCSC returns N in this package's own CSC form (diagonal-first ordering
// is irrelevant here since N has a zero diagonal), for use by the matrix-
// window diagnostic.
func (net *Network) ToCSC() *CSC {
	byCol := make([][]int, net.N)
	for _, e := range net.Edges {
		byCol[e.Up] = append(byCol[e.Up], e.Down)
	}
	m := &CSC{N: net.N, ColPtr: make([]int, net.N+1)}
	for j := 0; j < net.N; j++ {
		m.ColPtr[j] = len(m.Val)
		for _, d := range byCol[j] {
			m.RowIdx = append(m.RowIdx, d)
			m.Val = append(m.Val, 1.0)
		}
	}
	m.ColPtr[net.N] = len(m.Val)
	return m
}
