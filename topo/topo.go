// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topo implements G3: node->element and node->node connectivity,
// and the interior/interface/exterior/boundary nodal hierarchy, derived
// purely from element->node connectivity (spec.md §4.3).
package topo

import (
	"sort"

	"github.com/cpmech/automesh/elem"
	"github.com/cpmech/automesh/internal/wpool"
)

// Hierarchy holds the disjoint-ish classification of spec.md §4.3
type Hierarchy struct {
	Interior  []int
	Interface []int
	Exterior  []int
	Boundary  []int
}

// BuildNodeElements inverts elementNodes: for each node, the sorted list of
// elements touching it. numNodes is |coords|. WorkerCount <= 1 runs
// sequentially; the teacher's own "structured-mesh" precondition (spec.md
// §9) means this fan-out never needs cross-node synchronisation beyond the
// final per-node sort, so each node's bucket can be built independently
// once every element has been scattered into its corners' buckets.
func BuildNodeElements(numNodes int, elementNodes [][]int, workerCount int) [][]int {
	buckets := make([][]int, numNodes)
	// scattering must be sequential: multiple elements may append to the
	// same node's bucket, and a per-node mutex would cost more than it saves
	// at the sizes this mesher targets.
	for e, corners := range elementNodes {
		for _, n := range corners {
			buckets[n-1] = append(buckets[n-1], e)
		}
	}
	sortAllParallel(buckets, workerCount)
	return buckets
}

// BuildNodeNodes derives node->node connectivity along element edges only
// (never diagonals), using the element type's canonical adjacency table
// (spec.md §4.3). Requires nodeElements.
func BuildNodeNodes(elementNodes [][]int, nodeElements [][]int, et elem.Type, workerCount int) [][]int {
	numNodes := len(nodeElements)
	result := make([][]int, numNodes)

	work := func(n int) {
		node := n + 1
		seen := make(map[int]bool)
		neighbours := make([]int, 0, 8)
		for _, e := range nodeElements[n] {
			corners := elementNodes[e]
			p := -1
			for local, id := range corners {
				if id == node {
					p = local
					break
				}
			}
			if p < 0 {
				continue
			}
			for _, q := range et.ConnectedLocal(p) {
				other := corners[q]
				if other != node && !seen[other] {
					seen[other] = true
					neighbours = append(neighbours, other)
				}
			}
		}
		sort.Ints(neighbours)
		result[n] = neighbours
	}

	wpool.Run(numNodes, workerCount, work)
	return result
}

// BuildHierarchy classifies every node per spec.md §4.3. The double
// membership of a node with >1 blocks and <8 (structured-interior-
// cardinality) elements as BOTH interface and exterior is intentional and
// documented in DESIGN.md; boundary dedups the union.
func BuildHierarchy(blocks []int, nodeElements [][]int, et elem.Type) Hierarchy {
	numNodes := len(nodeElements)
	full := et.StructuredInteriorCardinality()

	var interior, iface, exterior []int
	for n := 0; n < numNodes; n++ {
		elems := nodeElements[n]
		blockSet := make(map[int]bool, len(elems))
		for _, e := range elems {
			blockSet[blocks[e]] = true
		}
		node := n + 1
		multiBlock := len(blockSet) > 1
		underfull := len(elems) < full
		switch {
		case multiBlock:
			iface = append(iface, node)
			if underfull {
				exterior = append(exterior, node)
			}
		case underfull:
			exterior = append(exterior, node)
		default:
			interior = append(interior, node)
		}
	}
	sort.Ints(interior)
	sort.Ints(iface)
	sort.Ints(exterior)
	boundary := sortUnique(append(append([]int{}, exterior...), iface...))
	return Hierarchy{Interior: interior, Interface: iface, Exterior: exterior, Boundary: boundary}
}

func sortUnique(vals []int) []int {
	sort.Ints(vals)
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return append([]int(nil), out...)
}

func sortAllParallel(buckets [][]int, workerCount int) {
	wpool.Run(len(buckets), workerCount, func(i int) {
		sort.Ints(buckets[i])
	})
}
