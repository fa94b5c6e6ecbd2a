// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh implements the voxel-to-hex mesher (G2): it turns a filtered
// voxel sequence into element->node connectivity and nodal coordinates under
// an affine (scale, translate) transform, renumbering node IDs to a
// contiguous 1-based range.
package mesh

import (
	"sort"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/elem"
	"github.com/cpmech/automesh/voxel"
)

// Scale is an axis-aligned (sx,sy,sz) scale factor, all components > 0
type Scale [3]float64

// Translate is an axis-aligned (tx,ty,tz) offset
type Translate [3]float64

// localCorners is the (dx,dy,dz) offset of hex8's eight local corners, in
// the canonical order: bottom face CCW from (-,-,-), then top face CCW from
// (-,-,+) (spec.md §3).
var localCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// HexMesher builds the element block array, connectivity and coordinates
// for a VoxelGrid under the given removal set and affine transform.
type HexMesher struct {
	Grid      *voxel.Grid
	Remove    map[voxel.Label]bool
	Scale     Scale
	Translate Translate
}

// NewHexMesher validates scale and returns a ready-to-run mesher
func NewHexMesher(grid *voxel.Grid, remove map[voxel.Label]bool, scale Scale, translate Translate) (*HexMesher, error) {
	for axis, s := range scale {
		if s <= 0 {
			return nil, aerr.New(aerr.InvariantViolation, "scale component %d must be > 0: got %g", axis, s)
		}
	}
	return &HexMesher{Grid: grid, Remove: remove, Scale: scale, Translate: translate}, nil
}

// Build runs the full algorithm of spec.md §4.2 and returns
// (blocks, elementNodes, coords) satisfying invariants I1-I4.
func (m *HexMesher) Build() (blocks []int, elementNodes [][]int, coords [][]float64, err error) {

	// step 1: filtered sequence in canonical order
	voxels := m.Grid.Filter(m.Remove)
	blocks = make([]int, len(voxels))

	// extended lattice extents
	nxp1 := m.Grid.Nx + 1
	nyp1 := m.Grid.Ny + 1

	// step 2-3: raw element->node connectivity on the extended lattice
	rawNodes := make([][]int, len(voxels))
	for e, vx := range voxels {
		blocks[e] = int(vx.Label)
		corners := make([]int, 8)
		for c, d := range localCorners {
			i, j, k := vx.I+d[0], vx.J+d[1], vx.K+d[2]
			corners[c] = i + j*nxp1 + k*nxp1*nyp1 + 1
		}
		rawNodes[e] = corners
	}

	// step 4: renumber to a contiguous, order-preserving 1-based range
	elementNodes, nUnique := renumber(rawNodes)

	// step 5: materialise coordinates; writes are idempotent since shared
	// corners map to the same renumbered ID
	coords = la.MatAlloc(nUnique, 3)
	for e, vx := range voxels {
		for c, d := range localCorners {
			nid := elementNodes[e][c]
			coords[nid-1][0] = float64(vx.I+d[0])*m.Scale[0] + m.Translate[0]
			coords[nid-1][1] = float64(vx.J+d[1])*m.Scale[1] + m.Translate[1]
			coords[nid-1][2] = float64(vx.K+d[2])*m.Scale[2] + m.Translate[2]
		}
	}
	return blocks, elementNodes, coords, nil
}

// ElementType is the element kind this mesher always emits
func (m *HexMesher) ElementType() elem.Type {
	return elem.Hex8
}

// renumber collects the sorted unique set of lattice IDs referenced by raw,
// builds an order-preserving bijection to {1..|U|}, and writes the
// rewritten connectivity into a fresh slice, leaving raw unchanged
// (spec.md §4.2 step 4).
func renumber(raw [][]int) (out [][]int, numUnique int) {
	seen := make(map[int]bool)
	for _, corners := range raw {
		for _, id := range corners {
			seen[id] = true
		}
	}
	unique := make([]int, 0, len(seen))
	for id := range seen {
		unique = append(unique, id)
	}
	sort.Ints(unique)
	remap := make(map[int]int, len(unique))
	for newID, oldID := range unique {
		remap[oldID] = newID + 1
	}
	out = make([][]int, len(raw))
	for e, corners := range raw {
		row := make([]int, len(corners))
		for c, id := range corners {
			row[c] = remap[id]
		}
		out[e] = row
	}
	return out, len(unique)
}
