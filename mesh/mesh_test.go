// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/automesh/voxel"
)

func Test_hexmesher01(tst *testing.T) {

	chk.PrintTitle("Test hexmesher01: single voxel produces 8 nodes, 1 element")

	g, _ := voxel.NewGridFromData(1, 1, 1, []voxel.Label{5})
	m, err := NewHexMesher(g, nil, Scale{1, 1, 1}, Translate{})
	if err != nil {
		tst.Errorf("NewHexMesher failed: %v", err)
		return
	}
	blocks, elementNodes, coords, err := m.Build()
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	if len(blocks) != 1 || blocks[0] != 5 {
		tst.Errorf("expected block [5], got %v", blocks)
	}
	if len(elementNodes) != 1 || len(elementNodes[0]) != 8 {
		tst.Errorf("expected 1 element with 8 nodes, got %v", elementNodes)
	}
	if len(coords) != 8 {
		tst.Errorf("expected 8 unique nodes, got %d", len(coords))
	}
	chk.Ints(tst, "corner ids are a permutation of 1..8", sortedCopy(elementNodes[0]), []int{1, 2, 3, 4, 5, 6, 7, 8})
}

func Test_hexmesher02(tst *testing.T) {

	chk.PrintTitle("Test hexmesher02: two adjacent voxels share a face (4 shared nodes)")

	g, _ := voxel.NewGridFromData(2, 1, 1, []voxel.Label{1, 1})
	m, err := NewHexMesher(g, nil, Scale{1, 1, 1}, Translate{})
	if err != nil {
		tst.Errorf("NewHexMesher failed: %v", err)
		return
	}
	_, elementNodes, coords, err := m.Build()
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	if len(coords) != 12 {
		tst.Errorf("expected 12 unique nodes for two face-sharing hexes, got %d", len(coords))
	}
	shared := 0
	set0 := toSet(elementNodes[0])
	for _, id := range elementNodes[1] {
		if set0[id] {
			shared++
		}
	}
	if shared != 4 {
		tst.Errorf("expected 4 shared nodes between adjacent voxels, got %d", shared)
	}
}

func Test_hexmesher03(tst *testing.T) {

	chk.PrintTitle("Test hexmesher03: invalid scale is rejected")

	g, _ := voxel.NewGrid(1, 1, 1)
	_, err := NewHexMesher(g, nil, Scale{0, 1, 1}, Translate{})
	if err == nil {
		tst.Errorf("expected error for zero scale component")
	}
}

func Test_triangulate01(tst *testing.T) {

	chk.PrintTitle("Test triangulate01: 1x1 quad splits into 2 triangles sharing the diagonal")

	blocks, elementNodes, coords, err := Triangulate(1, 1, [2]float64{1, 1}, [2]float64{0, 0})
	if err != nil {
		tst.Errorf("Triangulate failed: %v", err)
		return
	}
	if len(blocks) != 2 {
		tst.Errorf("expected 2 triangles, got %d", len(blocks))
	}
	if len(coords) != 4 {
		tst.Errorf("expected 4 unique nodes, got %d", len(coords))
	}
	for _, corners := range elementNodes {
		if len(corners) != 3 {
			tst.Errorf("expected 3 corners per triangle, got %d", len(corners))
		}
	}
}

func sortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func toSet(ids []int) map[int]bool {
	s := make(map[int]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
