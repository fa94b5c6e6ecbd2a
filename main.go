// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/automesh/elem"
	"github.com/cpmech/automesh/fe"
	"github.com/cpmech/automesh/io/abaqus"
	"github.com/cpmech/automesh/io/exodus"
	"github.com/cpmech/automesh/io/npy"
	"github.com/cpmech/automesh/io/spn"
	"github.com/cpmech/automesh/mesh"
	"github.com/cpmech/automesh/smooth"
	"github.com/cpmech/automesh/voxel"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		io.PfRed("usage: automesh <convert|mesh|smooth> [args...]\n")
		os.Exit(1)
	}

	cmd := os.Args[1]
	// shift so io.ArgTo* keeps using its own 0-based indexing over the
	// remaining positional arguments, matching gofem/main.go's usage
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	var err error
	switch cmd {
	case "convert":
		err = cmdConvert()
	case "mesh":
		err = cmdMesh()
	case "smooth":
		err = cmdSmooth()
	default:
		io.PfRed("ERROR: unknown subcommand %q (want convert|mesh|smooth)\n", cmd)
		os.Exit(1)
	}
	if err != nil {
		chk.Panic("%v", err)
	}
}

// cmdConvert translates between the .npy and .spn voxel-grid formats,
// choosing the direction from the input/output file extensions.
func cmdConvert() error {
	input, _ := io.ArgToFilename(0, "", "", true)
	output, _ := io.ArgToFilename(1, "", "", false)
	nx := io.ArgToInt(2, 0)
	ny := io.ArgToInt(3, 0)
	nz := io.ArgToInt(4, 0)

	io.Pf("\n%v\n", io.ArgsTable(
		"input grid file", "input", input,
		"output grid file", "output", output,
		"Nx (only needed when input is .spn)", "nx", nx,
		"Ny (only needed when input is .spn)", "ny", ny,
		"Nz (only needed when input is .spn)", "nz", nz,
	))

	grid, err := readGrid(input, nx, ny, nz)
	if err != nil {
		return err
	}
	return writeGrid(output, grid)
}

// cmdMesh reads a voxel grid, removes the given labels and writes a
// conforming hexahedral mesh in Abaqus or this module's own Exodus-like
// container, chosen by the output extension.
func cmdMesh() error {
	input, _ := io.ArgToFilename(0, "", "", true)
	output, _ := io.ArgToFilename(1, "", "", false)
	nx := io.ArgToInt(2, 0)
	ny := io.ArgToInt(3, 0)
	nz := io.ArgToInt(4, 0)
	sx := io.ArgToFloat(5, 1.0)
	sy := io.ArgToFloat(6, 1.0)
	sz := io.ArgToFloat(7, 1.0)
	removeCSV := io.ArgToString(8, "0")

	remove := parseRemoveSet(removeCSV)

	io.Pf("\n%v\n", io.ArgsTable(
		"input grid file", "input", input,
		"output mesh file", "output", output,
		"Nx (only needed when input is .spn)", "nx", nx,
		"Ny (only needed when input is .spn)", "ny", ny,
		"Nz (only needed when input is .spn)", "nz", nz,
		"scale x", "sx", sx,
		"scale y", "sy", sy,
		"scale z", "sz", sz,
		"labels to remove", "remove", removeCSV,
	))

	grid, err := readGrid(input, nx, ny, nz)
	if err != nil {
		return err
	}
	io.Pf("defeaturing would drop %d of %d voxels\n", grid.CountRemoved(remove), grid.Nx*grid.Ny*grid.Nz)

	mesher, err := mesh.NewHexMesher(grid, remove, mesh.Scale{sx, sy, sz}, mesh.Translate{})
	if err != nil {
		return err
	}
	blocks, elementNodes, coords, err := mesher.Build()
	if err != nil {
		return err
	}

	model, err := fe.New(elem.Hex8, blocks, elementNodes, coords)
	if err != nil {
		return err
	}
	model.Summary()

	return writeMesh(output, model)
}

// cmdSmooth runs the full pipeline: mesh, derive topology, smooth, write.
func cmdSmooth() error {
	input, _ := io.ArgToFilename(0, "", "", true)
	output, _ := io.ArgToFilename(1, "", "", false)
	nx := io.ArgToInt(2, 0)
	ny := io.ArgToInt(3, 0)
	nz := io.ArgToInt(4, 0)
	methodName := io.ArgToString(5, "taubin")
	iterations := io.ArgToInt(6, 10)
	scale := io.ArgToFloat(7, 0.6307)
	passBand := io.ArgToFloat(8, 0.1)
	hierarchical := io.ArgToBool(9, false)
	workerCount := io.ArgToInt(10, 1)
	removeCSV := io.ArgToString(11, "0")

	remove := parseRemoveSet(removeCSV)

	method, err := smooth.ParseMethod(methodName)
	if err != nil {
		return err
	}

	io.Pf("\n%v\n", io.ArgsTable(
		"input grid file", "input", input,
		"output mesh file", "output", output,
		"Nx (only needed when input is .spn)", "nx", nx,
		"Ny (only needed when input is .spn)", "ny", ny,
		"Nz (only needed when input is .spn)", "nz", nz,
		"smoothing method", "method", methodName,
		"iterations", "iterations", iterations,
		"lambda/scale", "scale", scale,
		"Taubin pass-band", "pass_band", passBand,
		"hierarchical control", "hierarchical", hierarchical,
		"worker count", "workers", workerCount,
		"labels to remove", "remove", removeCSV,
	))

	grid, err := readGrid(input, nx, ny, nz)
	if err != nil {
		return err
	}

	mesher, err := mesh.NewHexMesher(grid, remove, mesh.Scale{1, 1, 1}, mesh.Translate{})
	if err != nil {
		return err
	}
	blocks, elementNodes, coords, err := mesher.Build()
	if err != nil {
		return err
	}

	model, err := fe.New(elem.Hex8, blocks, elementNodes, coords)
	if err != nil {
		return err
	}
	if err = model.BuildNodeElements(workerCount); err != nil {
		return err
	}
	if err = model.BuildNodeNodes(workerCount); err != nil {
		return err
	}
	if err = model.BuildHierarchy(); err != nil {
		return err
	}
	if err = model.BuildInfluencers(hierarchical); err != nil {
		return err
	}
	model.Summary()

	cfg := smooth.DefaultConfig()
	cfg.Method = method
	cfg.Iterations = iterations
	cfg.Scale = scale
	cfg.PassBand = passBand
	cfg.Hierarchical = hierarchical
	cfg.WorkerCount = workerCount

	if err = model.Smooth(cfg); err != nil {
		return err
	}

	return writeMesh(output, model)
}

func readGrid(path string, nx, ny, nz int) (*voxel.Grid, error) {
	if hasSuffix(path, ".npy") {
		return npy.Read(path)
	}
	return spn.Read(path, nx, ny, nz)
}

func writeGrid(path string, g *voxel.Grid) error {
	if hasSuffix(path, ".npy") {
		return npy.Write(path, g)
	}
	return spn.Write(path, g)
}

func writeMesh(path string, model *fe.FiniteElements) error {
	if hasSuffix(path, ".inp") {
		return abaqus.Write(path, model.ElementType(), model.Blocks(), model.ElementNodes(), model.Coords())
	}
	return exodus.Write(path, model.ElementType(), model.Blocks(), model.ElementNodes(), model.Coords())
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// parseRemoveSet parses a comma-separated list of labels into the remove
// set HexMesher expects, matching original_source's repeatable `--remove`
// flag (spec.md's distillation only ever defaults to {0}).
func parseRemoveSet(csv string) map[voxel.Label]bool {
	remove := make(map[voxel.Label]bool)
	start := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			tok := csv[start:i]
			start = i + 1
			if tok == "" {
				continue
			}
			v, err := strconv.ParseUint(tok, 10, 8)
			if err != nil {
				continue
			}
			remove[voxel.Label(v)] = true
		}
	}
	if len(remove) == 0 {
		return voxel.DefaultRemove()
	}
	return remove
}
