// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/elem"
)

// Triangulate meshes a single (nx x ny) planar lattice of unit quad cells
// into elem.Tri3 elements, splitting each quad along its (-,-)->(+,+)
// diagonal, reusing mesh.HexMesher's renumbering algorithm. It exists only
// to exercise topo/smooth's element-type-polymorphic code against a
// non-hex element (SPEC_FULL.md §3 expansion); it is never used by the
// convert/mesh/smooth CLI commands, which always produce hex meshes.
func Triangulate(nx, ny int, scale [2]float64, translate [2]float64) (blocks []int, elementNodes [][]int, coords [][]float64, err error) {
	if nx <= 0 || ny <= 0 {
		return nil, nil, nil, aerr.New(aerr.InvariantViolation, "triangulation extents must be > 0: got (%d,%d)", nx, ny)
	}
	for axis, s := range scale {
		if s <= 0 {
			return nil, nil, nil, aerr.New(aerr.InvariantViolation, "scale component %d must be > 0: got %g", axis, s)
		}
	}

	nxp1 := nx + 1
	raw := make([][]int, 0, 2*nx*ny)
	blocks = make([]int, 0, 2*nx*ny)

	lattice := func(i, j int) int { return i + j*nxp1 + 1 }

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			bl := lattice(i, j)
			br := lattice(i+1, j)
			tl := lattice(i, j+1)
			tr := lattice(i+1, j+1)

			// lower-right triangle, then upper-left triangle, both
			// CCW, sharing the (-,-)->(+,+) diagonal
			raw = append(raw, []int{bl, br, tr})
			raw = append(raw, []int{bl, tr, tl})
			blocks = append(blocks, 1, 1)
		}
	}

	elementNodes, nUnique := renumber(raw)

	coords = la.MatAlloc(nUnique, 3)
	for e, corners := range raw {
		// recover (i,j) for each of the three raw ids directly
		for c, oldID := range corners {
			nid := elementNodes[e][c]
			idx0 := oldID - 1
			i := idx0 % nxp1
			j := idx0 / nxp1
			coords[nid-1][0] = float64(i)*scale[0] + translate[0]
			coords[nid-1][1] = float64(j)*scale[1] + translate[1]
			coords[nid-1][2] = 0
		}
	}

	return blocks, elementNodes, coords, nil
}

// TriElementType is the element kind mesh.Triangulate emits
func TriElementType() elem.Type {
	return elem.Tri3
}
