// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package npy is the dense binary array adapter of spec.md §6.1: it reads
// and writes the standard NumPy ".npy" v1.0 container for uint8 3D arrays
// shaped (Nz,Ny,Nx) on disk, re-axing to the internal (Nx,Ny,Nz) convention.
package npy

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/voxel"
)

var magic = []byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

var shapeRe = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
var descrRe = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)

// Read loads a uint8 dense array from path, which must end in ".npy", and
// re-axes its on-disk (Nz,Ny,Nx) shape into an internal voxel.Grid with
// extents (Nx,Ny,Nz).
func Read(path string) (*voxel.Grid, error) {
	if !strings.HasSuffix(path, ".npy") {
		return nil, aerr.New(aerr.InputFormat, "file type must be .npy: got %q", path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, aerr.New(aerr.IOFailure, "could not find the .npy file %q", path)
		}
		return nil, aerr.New(aerr.IOFailure, "could not open the .npy file %q: %v", path, statErr)
	}
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, aerr.New(aerr.IOFailure, "could not read the .npy file %q: %v", path, err)
	}

	nz, ny, nx, dataStart, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}
	payload := raw[dataStart:]
	if len(payload) != nx*ny*nz {
		return nil, aerr.New(aerr.ShapeMismatch, "declared shape (%d,%d,%d) does not match payload length %d", nz, ny, nx, len(payload))
	}

	// on disk, shape (Nz,Ny,Nx) in C order means the x axis is fastest and
	// z slowest: the exact (i-fastest, k-slowest) layout voxel.Grid uses
	// internally, so the bytes can be reused without transposition.
	data := make([]voxel.Label, len(payload))
	copy(data, payload)
	return voxel.NewGridFromData(nx, ny, nz, data)
}

// Write stores g to path in the ".npy" v1.0 format, with on-disk shape
// (Nz,Ny,Nx) per spec.md §6.1.
func Write(path string, g *voxel.Grid) error {
	if !strings.HasSuffix(path, ".npy") {
		return aerr.New(aerr.InputFormat, "file type must be .npy: got %q", path)
	}
	header := buildHeader(g.Nz, g.Ny, g.Nx)
	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(g.Data())
	io.WriteFile(path, &buf)
	return nil
}

func buildHeader(nz, ny, nx int) []byte {
	dict := fmt.Sprintf("{'descr': '|u1', 'fortran_order': False, 'shape': (%d, %d, %d), }", nz, ny, nx)
	// pad so that len(magic)+2(version)+2(hlen)+len(header) is a multiple of 64
	const prefix = 6 + 2 + 2
	total := prefix + len(dict) + 1 // +1 for trailing newline
	pad := (64 - total%64) % 64
	dict = dict + strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.Write(magic)
	buf.Write([]byte{1, 0}) // version 1.0
	hlen := len(dict)
	buf.Write([]byte{byte(hlen & 0xff), byte((hlen >> 8) & 0xff)})
	buf.WriteString(dict)
	return buf.Bytes()
}

func parseHeader(raw []byte) (nz, ny, nx, dataStart int, err error) {
	if len(raw) < 10 || !bytes.Equal(raw[:6], magic) {
		return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "missing NPY magic bytes")
	}
	major := raw[6]
	var headerLen int
	var headerStart int
	if major == 1 {
		headerLen = int(raw[8]) | int(raw[9])<<8
		headerStart = 10
	} else {
		if len(raw) < 12 {
			return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "truncated NPY header")
		}
		headerLen = int(raw[8]) | int(raw[9])<<8 | int(raw[10])<<16 | int(raw[11])<<24
		headerStart = 12
	}
	if headerStart+headerLen > len(raw) {
		return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "truncated NPY header")
	}
	header := string(raw[headerStart : headerStart+headerLen])

	descrMatch := descrRe.FindStringSubmatch(header)
	if descrMatch == nil || (descrMatch[1] != "|u1" && descrMatch[1] != "u1") {
		return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "unsupported NPY dtype, expected uint8: header=%q", header)
	}

	shapeMatch := shapeRe.FindStringSubmatch(header)
	if shapeMatch == nil {
		return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "could not find shape in NPY header: %q", header)
	}
	parts := strings.Split(shapeMatch[1], ",")
	dims := make([]int, 0, 3)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, 0, aerr.New(aerr.InputFormat, "non-integer NPY shape component %q", p)
		}
		dims = append(dims, v)
	}
	if len(dims) != 3 {
		return 0, 0, 0, 0, aerr.New(aerr.ShapeMismatch, "NPY array must be 3-dimensional: got shape %v", dims)
	}
	return dims[0], dims[1], dims[2], headerStart + headerLen, nil
}
