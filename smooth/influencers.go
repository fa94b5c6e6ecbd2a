// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package smooth implements G4 (influencer selection) and G5 (Laplacian and
// Taubin smoothing) of the hierarchical mesh smoother (spec.md §4.4-§4.5).
package smooth

import "github.com/cpmech/automesh/topo"

// BuildInfluencers chooses, for every node, the neighbour subset of
// nodeNodes[n] the smoother is allowed to read from, per spec.md §4.4's
// rank order prescribed > exterior > interface > interior. When
// hierarchical is false, every non-prescribed node simply uses all of
// nodeNodes[n].
func BuildInfluencers(nodeNodes [][]int, h topo.Hierarchy, prescribed []int, hierarchical bool) [][]int {
	numNodes := len(nodeNodes)

	isPrescribed := toSet(numNodes, prescribed)
	isExterior := toSet(numNodes, h.Exterior)
	isInterface := toSet(numNodes, h.Interface)

	out := make([][]int, numNodes)
	for i := 0; i < numNodes; i++ {
		node := i + 1
		neighbours := nodeNodes[i]

		if isPrescribed[node] {
			out[i] = nil
			continue
		}

		if !hierarchical {
			out[i] = cloneInts(neighbours)
			continue
		}

		switch {
		case isExterior[node] && !isInterface[node]:
			out[i] = intersect(neighbours, isExterior)
		case isInterface[node]:
			out[i] = intersectAny(neighbours, isInterface, isExterior)
		default:
			out[i] = cloneInts(neighbours)
		}
	}
	return out
}

func toSet(numNodes int, ids []int) []bool {
	set := make([]bool, numNodes+1)
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func intersect(neighbours []int, set []bool) []int {
	out := make([]int, 0, len(neighbours))
	for _, n := range neighbours {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}

func intersectAny(neighbours []int, a, b []bool) []int {
	out := make([]int, 0, len(neighbours))
	for _, n := range neighbours {
		if a[n] || b[n] {
			out = append(out, n)
		}
	}
	return out
}

func cloneInts(vals []int) []int {
	if vals == nil {
		return nil
	}
	return append([]int(nil), vals...)
}
