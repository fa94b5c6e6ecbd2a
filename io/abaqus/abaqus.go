// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package abaqus writes the Abaqus ".inp" keyword format of spec.md §6.3:
// *NODE, *ELEMENT and one *ELSET per distinct block label.
package abaqus

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/elem"
)

// Write renders coords/elementNodes/blocks as an Abaqus input deck to path.
// Node and element IDs are 1-based in both the in-memory tables and the
// deck. elem.Hex8 is written as *ELEMENT,TYPE=C3D8 and elem.Tri3 as
// TYPE=CPS3; any other element type is an UnknownOption error.
func Write(path string, et elem.Type, blocks []int, elementNodes [][]int, coords [][]float64) error {
	var elType string
	switch et {
	case elem.Hex8:
		elType = "C3D8"
	case elem.Tri3:
		elType = "CPS3"
	default:
		return aerr.New(aerr.UnknownOption, "abaqus writer does not support element type %q", et.Name())
	}

	var buf bytes.Buffer
	buf.WriteString("*HEADING\n")
	buf.WriteString(io.Sf("** %d nodes, %d elements\n", len(coords), len(elementNodes)))

	buf.WriteString("*NODE\n")
	for i, c := range coords {
		buf.WriteString(io.Sf("%d, %g, %g, %g\n", i+1, c[0], c[1], c[2]))
	}

	buf.WriteString(io.Sf("*ELEMENT, TYPE=%s, ELSET=ALL\n", elType))
	for e, corners := range elementNodes {
		buf.WriteString(io.Sf("%d", e+1))
		for _, n := range corners {
			buf.WriteString(io.Sf(", %d", n))
		}
		buf.WriteString("\n")
	}

	for _, label := range sortedUniqueBlocks(blocks) {
		buf.WriteString(io.Sf("*ELSET, ELSET=BLOCK%d\n", label))
		col := 0
		for e, b := range blocks {
			if b != label {
				continue
			}
			if col > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(io.Sf("%d", e+1))
			col++
			if col == 16 {
				buf.WriteString("\n")
				col = 0
			}
		}
		if col > 0 {
			buf.WriteString("\n")
		}
	}

	io.WriteFile(path, &buf)
	return nil
}

func sortedUniqueBlocks(blocks []int) []int {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, b := range blocks {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	sort.Ints(out)
	return out
}
