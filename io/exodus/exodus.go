// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package exodus writes a simplified, self-contained binary mesh container
// for spec.md §6.3. It is NOT a genuine Exodus/netCDF file: no such library
// exists anywhere in the dependency pack this module was grounded on, and
// the original Rust implementation leaves its own Exodus writer unimplemented
// (see DESIGN.md). The container here uses its own magic header and a flat
// encoding/binary layout, documented below, so downstream tools can still
// consume it without pulling in a netCDF toolchain.
//
// Layout (little-endian throughout):
//
//	magic      [7]byte  "AMHEXO1"
//	numNodes   uint32
//	numElems   uint32
//	nodesPerEl uint32
//	coords     numNodes*3 float64
//	blocks     numElems   int32
//	elemNodes  numElems*nodesPerEl int32  (1-based node ids)
package exodus

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/elem"
)

var magic = [7]byte{'A', 'M', 'H', 'E', 'X', 'O', '1'}

// Write stores the mesh in this package's container format at path.
func Write(path string, et elem.Type, blocks []int, elementNodes [][]int, coords [][]float64) error {
	if len(blocks) != len(elementNodes) {
		return aerr.New(aerr.InvariantViolation, "|blocks|=%d != |elementNodes|=%d", len(blocks), len(elementNodes))
	}
	nodesPerEl := et.NumNodesPerElement()

	var buf bytes.Buffer
	buf.Write(magic[:])
	writeUint32(&buf, uint32(len(coords)))
	writeUint32(&buf, uint32(len(elementNodes)))
	writeUint32(&buf, uint32(nodesPerEl))

	for _, c := range coords {
		writeFloat64(&buf, c[0])
		writeFloat64(&buf, c[1])
		writeFloat64(&buf, c[2])
	}
	for _, b := range blocks {
		writeInt32(&buf, int32(b))
	}
	for _, corners := range elementNodes {
		if len(corners) != nodesPerEl {
			return aerr.New(aerr.InvariantViolation, "element has %d nodes, expected %d for %s", len(corners), nodesPerEl, et.Name())
		}
		for _, n := range corners {
			writeInt32(&buf, int32(n))
		}
	}

	io.WriteFile(path, &buf)
	return nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeInt32(buf *bytes.Buffer, v int32) {
	writeUint32(buf, uint32(v))
}

func writeFloat64(buf *bytes.Buffer, v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	buf.Write(tmp[:])
}
