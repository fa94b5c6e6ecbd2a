// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spn is the flat ASCII integer list adapter of spec.md §6.2: one
// unsigned integer per line, C-contiguous order for a caller-declared
// (Nx,Ny,Nz) shape.
package spn

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/voxel"
)

// Read loads the flat ASCII list at path into a voxel.Grid of the declared
// extents. A line-count mismatch is a ShapeMismatch error; a non-integer
// token is an InputFormat error (spec.md §6.2).
func Read(path string, nx, ny, nz int) (*voxel.Grid, error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, aerr.New(aerr.IOFailure, "could not find the .spn file %q", path)
		}
		return nil, aerr.New(aerr.IOFailure, "could not open the .spn file %q: %v", path, statErr)
	}
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, aerr.New(aerr.IOFailure, "could not read the .spn file %q: %v", path, err)
	}

	values, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	want := nx * ny * nz
	if len(values) != want {
		return nil, aerr.New(aerr.ShapeMismatch, "declared shape (%d,%d,%d)=%d does not match line count %d", nx, ny, nz, want, len(values))
	}
	return voxel.NewGridFromData(nx, ny, nz, values)
}

// Parse tokenises raw as one unsigned integer per line, skipping blank
// lines wherever they occur, and returns the labels in file order.
func Parse(raw []byte) ([]voxel.Label, error) {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	values := make([]voxel.Label, 0, 1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 8)
		if err != nil {
			return nil, aerr.New(aerr.InputFormat, "line %d: non-integer token %q", lineNo, line)
		}
		values = append(values, voxel.Label(v))
	}
	return values, nil
}

// Write stores g as a flat ASCII list in C-contiguous (i fastest, k
// slowest) order, matching the layout Read expects (spec.md §6.2).
func Write(path string, g *voxel.Grid) error {
	var buf bytes.Buffer
	for _, v := range g.Data() {
		buf.WriteString(strconv.Itoa(int(v)))
		buf.WriteByte('\n')
	}
	io.WriteFile(path, &buf)
	return nil
}
