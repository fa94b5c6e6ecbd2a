// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package elem captures the small capability set that topo and smooth need
// from an element type, so both hexahedra and triangles can share the same
// topology/hierarchy/smoothing code (spec.md §9, "Element-type polymorphism").
package elem

import "github.com/cpmech/gosl/utl"

const (
	// VtkHexahedron is the VTK cell code for an 8-node linear hex (mirrors shp.VTK_HEXAHEDRON)
	VtkHexahedron = 12
	// VtkTriangle is the VTK cell code for a 3-node linear triangle
	VtkTriangle = 5
)

// Type is the capability set topo/smooth need from an element kind
type Type interface {
	// Name identifies the element type, e.g. "hex8"
	Name() string
	// NumNodesPerElement is the number of local nodes/corners
	NumNodesPerElement() int
	// ConnectedLocal returns the local indices edge-adjacent to local index n
	ConnectedLocal(n int) []int
	// StructuredInteriorCardinality is the number of elements a fully
	// interior node touches in a structured mesh of this element type
	StructuredInteriorCardinality() int
	// VtkCode is the VTK cell type code
	VtkCode() int
}

// hex8 is the canonical 8-node linear hexahedron
type hex8 struct{}

// Hex8 is the only element type mesh.HexMesher emits
var Hex8 Type = hex8{}

var hex8Adjacency = [][]int{
	{1, 3, 4},
	{0, 2, 5},
	{1, 3, 6},
	{0, 2, 7},
	{0, 5, 7},
	{1, 4, 6},
	{2, 5, 7},
	{3, 4, 6},
}

func (hex8) Name() string                       { return "hex8" }
func (hex8) NumNodesPerElement() int             { return 8 }
func (hex8) StructuredInteriorCardinality() int  { return 8 }
func (hex8) VtkCode() int                        { return VtkHexahedron }
func (hex8) ConnectedLocal(n int) []int {
	return utl.IntsClone(hex8Adjacency)[n]
}

// tri3 is the 3-node linear triangle (expansion: see SPEC_FULL.md §3)
type tri3 struct{}

// Tri3 is only emitted by mesh.Triangulate, never by the voxel mesher
var Tri3 Type = tri3{}

var tri3Adjacency = [][]int{
	{1, 2},
	{0, 2},
	{0, 1},
}

func (tri3) Name() string            { return "tri3" }
func (tri3) NumNodesPerElement() int { return 3 }

// StructuredInteriorCardinality: a fully interior vertex of a structured
// triangulated quad grid (two triangles per quad cell, single diagonal
// orientation) is shared by six triangles.
func (tri3) StructuredInteriorCardinality() int { return 6 }
func (tri3) VtkCode() int                       { return VtkTriangle }
func (tri3) ConnectedLocal(n int) []int {
	return utl.IntsClone(tri3Adjacency)[n]
}
