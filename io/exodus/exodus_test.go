// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exodus

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/automesh/elem"
)

func Test_exodus01(tst *testing.T) {

	chk.PrintTitle("Test exodus01: container header matches magic, counts and round-trips coords")

	coords := [][]float64{{0, 0, 0}, {1.5, 2.5, 3.5}}
	elementNodes := [][]int{{1, 2, 1, 2, 1, 2, 1, 2}}
	blocks := []int{3}

	dir := tst.TempDir()
	path := filepath.Join(dir, "mesh.exo")
	if err := Write(path, elem.Hex8, blocks, elementNodes, coords); err != nil {
		tst.Errorf("Write failed: %v", err)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		tst.Errorf("could not read back container: %v", err)
		return
	}
	if string(raw[:7]) != "AMHEXO1" {
		tst.Errorf("missing magic header")
		return
	}
	numNodes := binary.LittleEndian.Uint32(raw[7:11])
	numElems := binary.LittleEndian.Uint32(raw[11:15])
	nodesPerEl := binary.LittleEndian.Uint32(raw[15:19])
	if numNodes != 2 || numElems != 1 || nodesPerEl != 8 {
		tst.Errorf("header counts mismatch: nodes=%d elems=%d nodesPerEl=%d", numNodes, numElems, nodesPerEl)
	}

	off := 19
	x := math.Float64frombits(binary.LittleEndian.Uint64(raw[off : off+8]))
	if x != 0 {
		tst.Errorf("first coordinate x mismatch: got %g", x)
	}
}

func Test_exodus02(tst *testing.T) {

	chk.PrintTitle("Test exodus02: mismatched blocks/elementNodes length is rejected")

	dir := tst.TempDir()
	path := filepath.Join(dir, "mesh.exo")
	err := Write(path, elem.Hex8, []int{1, 2}, [][]int{{1, 2, 3, 4, 5, 6, 7, 8}}, [][]float64{{0, 0, 0}})
	if err == nil {
		tst.Errorf("expected InvariantViolation for |blocks|!=|elementNodes|")
	}
}
