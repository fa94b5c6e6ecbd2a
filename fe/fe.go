// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fe is the FiniteElements facade (G6): it aggregates the hex
// mesher, the topology derivations and the smoother behind a narrow,
// stateful surface used by the I/O adapters (spec.md §2, §4.5 state
// machine).
package fe

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/elem"
	"github.com/cpmech/automesh/smooth"
	"github.com/cpmech/automesh/topo"
)

// stage is the state-machine position of spec.md §4.5
type stage int

const (
	created stage = iota
	nodeElemsSet
	nodeNodesSet
	hierarchySet
	influencersSet
)

// FiniteElements is the single-owner mutable mesh object. It is not safe
// for concurrent mutation; read-only access to a stable state is safe to
// share (spec.md §5).
type FiniteElements struct {
	elemType elem.Type

	// G2 output
	blocks       []int
	elementNodes [][]int
	coords       [][]float64 // dense |nodes|x3 table, row index = nodeId-1

	// G3 output
	nodeElements [][]int
	nodeNodes    [][]int
	hierarchy    topo.Hierarchy

	// prescribed constraints (§3)
	prescribed smooth.Prescribed

	// G4 output
	influencers [][]int

	st stage
}

// New builds a topology-uninitialised FiniteElements from G2's output,
// checking invariants I1-I3.
func New(et elem.Type, blocks []int, elementNodes [][]int, coords [][]float64) (*FiniteElements, error) {
	if len(blocks) != len(elementNodes) {
		return nil, aerr.New(aerr.InvariantViolation, "|blocks|=%d != |elementNodes|=%d", len(blocks), len(elementNodes))
	}
	n := len(coords)
	used := make([]bool, n)
	for e, corners := range elementNodes {
		if len(corners) != et.NumNodesPerElement() {
			return nil, aerr.New(aerr.InvariantViolation, "element %d has %d nodes, expected %d for %s", e, len(corners), et.NumNodesPerElement(), et.Name())
		}
		for _, id := range corners {
			if id < 1 || id > n {
				return nil, aerr.New(aerr.InvariantViolation, "node id %d in element %d out of range [1,%d]", id, e, n)
			}
			used[id-1] = true
		}
	}
	for i, u := range used {
		if !u {
			return nil, aerr.New(aerr.InvariantViolation, "node id %d is not referenced by any element", i+1)
		}
	}
	return &FiniteElements{
		elemType:     et,
		blocks:       blocks,
		elementNodes: elementNodes,
		coords:       coords,
		st:           created,
	}, nil
}

// ElementType returns the element kind this mesh is made of
func (o *FiniteElements) ElementType() elem.Type { return o.elemType }

// Blocks returns the element block array
func (o *FiniteElements) Blocks() []int { return o.blocks }

// ElementNodes returns the element->node connectivity
func (o *FiniteElements) ElementNodes() [][]int { return o.elementNodes }

// Coords returns the dense nodal coordinate table (row index = nodeId-1)
func (o *FiniteElements) Coords() [][]float64 { return o.coords }

// NumNodes returns |coords|
func (o *FiniteElements) NumNodes() int { return len(o.coords) }

// stateErr builds a StateOrdering error naming the attempted and required stage
func stateErr(attempted string, want stage, got stage) error {
	return aerr.New(aerr.StateOrdering, "cannot run %s: requires stage %d, currently at stage %d", attempted, want, got)
}

// BuildNodeElements derives node->element connectivity (spec.md §4.3).
// May only be called once, immediately after construction.
func (o *FiniteElements) BuildNodeElements(workerCount int) error {
	if o.st != created {
		return stateErr("BuildNodeElements", created, o.st)
	}
	o.nodeElements = topo.BuildNodeElements(len(o.coords), o.elementNodes, workerCount)
	o.st = nodeElemsSet
	return nil
}

// BuildNodeNodes derives node->node connectivity along element edges.
// Requires BuildNodeElements to have run exactly once before it.
func (o *FiniteElements) BuildNodeNodes(workerCount int) error {
	if o.st != nodeElemsSet {
		return stateErr("BuildNodeNodes", nodeElemsSet, o.st)
	}
	o.nodeNodes = topo.BuildNodeNodes(o.elementNodes, o.nodeElements, o.elemType, workerCount)
	o.st = nodeNodesSet
	return nil
}

// BuildHierarchy classifies nodes into interior/interface/exterior/boundary.
// Requires BuildNodeNodes to have run exactly once before it.
func (o *FiniteElements) BuildHierarchy() error {
	if o.st != nodeNodesSet {
		return stateErr("BuildHierarchy", nodeNodesSet, o.st)
	}
	o.hierarchy = topo.BuildHierarchy(o.blocks, o.nodeElements, o.elemType)
	o.st = hierarchySet
	return nil
}

// SetPrescribed records the homogeneous and inhomogeneous constraints of
// spec.md §3. May be called any time at or after HierarchySet, before or
// after BuildInfluencers, but must be called before BuildInfluencers for
// the prescribed ranks to take effect in the influencer sets.
func (o *FiniteElements) SetPrescribed(p smooth.Prescribed) error {
	if o.st < hierarchySet {
		return stateErr("SetPrescribed", hierarchySet, o.st)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	o.prescribed = p
	return nil
}

// BuildInfluencers derives the effective per-node neighbour sets used by
// the smoother (spec.md §4.4). Requires BuildHierarchy to have run exactly
// once before it.
func (o *FiniteElements) BuildInfluencers(hierarchical bool) error {
	if o.st != hierarchySet {
		return stateErr("BuildInfluencers", hierarchySet, o.st)
	}
	o.influencers = smooth.BuildInfluencers(o.nodeNodes, o.hierarchy, o.prescribed.AllNodes(), hierarchical)
	o.st = influencersSet
	return nil
}

// Smooth runs cfg on the coordinate table in place. May be called
// repeatedly once InfluencersSet is reached.
func (o *FiniteElements) Smooth(cfg smooth.Config) error {
	if o.st < influencersSet {
		return stateErr("Smooth", influencersSet, o.st)
	}
	return smooth.Smooth(o.coords, o.influencers, o.prescribed, cfg)
}

// NodeElements returns node->element connectivity (nil until derived)
func (o *FiniteElements) NodeElements() [][]int { return o.nodeElements }

// NodeNodes returns node->node connectivity (nil until derived)
func (o *FiniteElements) NodeNodes() [][]int { return o.nodeNodes }

// Interior returns the interior node-id set (nil until hierarchy derived)
func (o *FiniteElements) Interior() []int { return o.hierarchy.Interior }

// Interface returns the interface node-id set
func (o *FiniteElements) Interface() []int { return o.hierarchy.Interface }

// Exterior returns the exterior node-id set
func (o *FiniteElements) Exterior() []int { return o.hierarchy.Exterior }

// Boundary returns sort_unique(exterior ∪ interface)
func (o *FiniteElements) Boundary() []int { return o.hierarchy.Boundary }

// Influencers returns the per-node smoothing neighbour sets
func (o *FiniteElements) Influencers() [][]int { return o.influencers }

// Summary prints a one-line progress table in the teacher's io.ArgsTable style
func (o *FiniteElements) Summary() {
	io.Pf("%v\n", io.ArgsTable(
		"element type", "type", o.elemType.Name(),
		"number of elements", "nelems", len(o.elementNodes),
		"number of nodes", "nnodes", len(o.coords),
	))
}
