// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("Test grid01: basic allocation and indexing")

	g, err := NewGrid(2, 3, 4)
	if err != nil {
		tst.Errorf("NewGrid failed: %v", err)
		return
	}
	if g.Nx != 2 || g.Ny != 3 || g.Nz != 4 {
		tst.Errorf("extents mismatch: got (%d,%d,%d)", g.Nx, g.Ny, g.Nz)
	}
	g.Set(1, 2, 3, 7)
	if g.At(1, 2, 3) != 7 {
		tst.Errorf("At/Set mismatch")
	}

	_, err = NewGrid(0, 3, 4)
	if err == nil {
		tst.Errorf("expected error for zero extent")
	}
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("Test grid02: NewGridFromData shape mismatch")

	_, err := NewGridFromData(2, 2, 2, []Label{1, 2, 3})
	if err == nil {
		tst.Errorf("expected ShapeMismatch error")
	}

	g, err := NewGridFromData(2, 2, 2, []Label{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		tst.Errorf("NewGridFromData failed: %v", err)
		return
	}
	if g.At(0, 0, 0) != 1 || g.At(1, 1, 1) != 8 {
		tst.Errorf("layout mismatch: At(0,0,0)=%d At(1,1,1)=%d", g.At(0, 0, 0), g.At(1, 1, 1))
	}
}

func Test_filter01(tst *testing.T) {

	chk.PrintTitle("Test filter01: default remove drops label 0")

	g, _ := NewGridFromData(2, 1, 1, []Label{0, 5})
	voxels := g.Filter(nil)
	if len(voxels) != 1 {
		tst.Errorf("expected 1 voxel after filtering, got %d", len(voxels))
		return
	}
	if voxels[0].I != 1 || voxels[0].Label != 5 {
		tst.Errorf("unexpected surviving voxel: %+v", voxels[0])
	}

	if n := g.CountRemoved(nil); n != 1 {
		tst.Errorf("CountRemoved: expected 1, got %d", n)
	}
}

func Test_filter02(tst *testing.T) {

	chk.PrintTitle("Test filter02: canonical k-outer,j-middle,i-inner order")

	g, _ := NewGrid(2, 2, 2)
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				g.Set(i, j, k, Label(1+i+2*j+4*k))
			}
		}
	}
	voxels := g.Filter(map[Label]bool{})
	if len(voxels) != 8 {
		tst.Errorf("expected 8 voxels, got %d", len(voxels))
		return
	}
	for idx, v := range voxels {
		want := Label(1 + idx)
		if v.Label != want {
			tst.Errorf("voxel %d: want label %d, got %d", idx, want, v.Label)
		}
	}
}
