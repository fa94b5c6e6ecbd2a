// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fe

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/automesh/elem"
	"github.com/cpmech/automesh/mesh"
	"github.com/cpmech/automesh/smooth"
	"github.com/cpmech/automesh/voxel"
)

func buildModel(tst *testing.T) *FiniteElements {
	g, _ := voxel.NewGridFromData(2, 1, 1, []voxel.Label{1, 1})
	m, err := mesh.NewHexMesher(g, nil, mesh.Scale{1, 1, 1}, mesh.Translate{})
	if err != nil {
		tst.Fatalf("NewHexMesher failed: %v", err)
	}
	blocks, elementNodes, coords, err := m.Build()
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	model, err := New(elem.Hex8, blocks, elementNodes, coords)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	return model
}

func Test_stateOrder01(tst *testing.T) {

	chk.PrintTitle("Test stateOrder01: out-of-order calls are rejected")

	model := buildModel(tst)
	if err := model.BuildNodeNodes(1); err == nil {
		tst.Errorf("expected StateOrdering error calling BuildNodeNodes before BuildNodeElements")
	}
	if err := model.BuildHierarchy(); err == nil {
		tst.Errorf("expected StateOrdering error calling BuildHierarchy before topology is ready")
	}
	if err := model.Smooth(smooth.DefaultConfig()); err == nil {
		tst.Errorf("expected StateOrdering error calling Smooth before influencers are built")
	}
}

func Test_stateOrder02(tst *testing.T) {

	chk.PrintTitle("Test stateOrder02: full happy-path sequence succeeds")

	model := buildModel(tst)
	if err := model.BuildNodeElements(1); err != nil {
		tst.Errorf("BuildNodeElements failed: %v", err)
	}
	if err := model.BuildNodeNodes(1); err != nil {
		tst.Errorf("BuildNodeNodes failed: %v", err)
	}
	if err := model.BuildHierarchy(); err != nil {
		tst.Errorf("BuildHierarchy failed: %v", err)
	}
	if err := model.BuildInfluencers(false); err != nil {
		tst.Errorf("BuildInfluencers failed: %v", err)
	}
	cfg := smooth.DefaultConfig()
	cfg.Iterations = 1
	if err := model.Smooth(cfg); err != nil {
		tst.Errorf("Smooth failed: %v", err)
	}
	if model.NumNodes() != 12 {
		tst.Errorf("expected 12 nodes, got %d", model.NumNodes())
	}
}

func Test_invariants01(tst *testing.T) {

	chk.PrintTitle("Test invariants01: New rejects mismatched blocks/elementNodes")

	coords := [][]float64{{0, 0, 0}}
	_, err := New(elem.Hex8, []int{1, 2}, [][]int{{1, 1, 1, 1, 1, 1, 1, 1}}, coords)
	if err == nil {
		tst.Errorf("expected InvariantViolation for |blocks|!=|elementNodes|")
	}

	_, err = New(elem.Hex8, []int{1}, [][]int{{1, 1, 1}}, coords)
	if err == nil {
		tst.Errorf("expected InvariantViolation for wrong node count per element")
	}

	_, err = New(elem.Hex8, []int{1}, [][]int{{1, 1, 1, 1, 1, 1, 1, 99}}, coords)
	if err == nil {
		tst.Errorf("expected InvariantViolation for out-of-range node id")
	}
}
