// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voxel implements the dense labelled 3D grid (G1) and the
// voxel-by-voxel filtering that feeds the hex mesher.
package voxel

import (
	"github.com/cpmech/automesh/aerr"
)

// Label is a small unsigned integer material/block tag; 0 is "empty"
type Label = uint8

// Voxel is one retained grid cell, emitted in k-outer,j-middle,i-inner order
type Voxel struct {
	I, J, K int
	Label   Label
}

// Grid holds a dense 3D array of Label with extents (Nx,Ny,Nz)
type Grid struct {
	Nx, Ny, Nz int
	data       []Label
}

// NewGrid allocates a zeroed grid of the given extents
func NewGrid(nx, ny, nz int) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, aerr.New(aerr.InvariantViolation, "grid extents must be > 0: got (%d,%d,%d)", nx, ny, nz)
	}
	return &Grid{Nx: nx, Ny: ny, Nz: nz, data: make([]Label, nx*ny*nz)}, nil
}

// NewGridFromData wraps an already-populated, C-contiguous (k-outer,
// j-middle, i-inner) flat slice of the declared extents
func NewGridFromData(nx, ny, nz int, data []Label) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, aerr.New(aerr.InvariantViolation, "grid extents must be > 0: got (%d,%d,%d)", nx, ny, nz)
	}
	if len(data) != nx*ny*nz {
		return nil, aerr.New(aerr.ShapeMismatch, "declared extents (%d,%d,%d)=%d do not match stream length %d", nx, ny, nz, nx*ny*nz, len(data))
	}
	return &Grid{Nx: nx, Ny: ny, Nz: nz, data: data}, nil
}

// idx maps (i,j,k) to the flat, C-contiguous (i fastest) index
func (g *Grid) idx(i, j, k int) int {
	return i + j*g.Nx + k*g.Nx*g.Ny
}

// At returns the label at (i,j,k)
func (g *Grid) At(i, j, k int) Label {
	return g.data[g.idx(i, j, k)]
}

// Set writes the label at (i,j,k)
func (g *Grid) Set(i, j, k int, v Label) {
	g.data[g.idx(i, j, k)] = v
}

// Data returns the raw flat backing slice, in (i fastest, k slowest) order
func (g *Grid) Data() []Label {
	return g.data
}

// DefaultRemove is the conventional "empty" removal set: {0}
func DefaultRemove() map[Label]bool {
	return map[Label]bool{0: true}
}

// Filter traverses the grid k-outer, j-middle, i-inner and returns the
// voxels whose label is not in remove. A nil remove set defaults to {0}.
// The returned order is the canonical element-indexing order (spec.md §4.1).
func (g *Grid) Filter(remove map[Label]bool) []Voxel {
	if remove == nil {
		remove = DefaultRemove()
	}
	out := make([]Voxel, 0, len(g.data))
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				lbl := g.At(i, j, k)
				if remove[lbl] {
					continue
				}
				out = append(out, Voxel{I: i, J: j, K: k, Label: lbl})
			}
		}
	}
	return out
}

// CountRemoved reports how many voxels a given removal set would drop,
// without materialising the filtered sequence; used by the CLI to print a
// pre-meshing summary (mirrors original_source's voxel defeaturing count).
func (g *Grid) CountRemoved(remove map[Label]bool) int {
	if remove == nil {
		remove = DefaultRemove()
	}
	n := 0
	for _, lbl := range g.data {
		if remove[lbl] {
			n++
		}
	}
	return n
}
