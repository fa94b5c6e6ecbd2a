// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spn

import (
	"path/filepath"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/automesh/voxel"
)

func Test_spn01(tst *testing.T) {

	chk.PrintTitle("Test spn01: round-trip write then read")

	g, _ := voxel.NewGridFromData(2, 1, 2, []voxel.Label{1, 2, 3, 4})
	dir := tst.TempDir()
	path := filepath.Join(dir, "grid.spn")
	if err := Write(path, g); err != nil {
		tst.Errorf("Write failed: %v", err)
		return
	}
	got, err := Read(path, 2, 1, 2)
	if err != nil {
		tst.Errorf("Read failed: %v", err)
		return
	}
	for i, v := range got.Data() {
		if v != g.Data()[i] {
			tst.Errorf("round-trip mismatch at %d: want %d got %d", i, g.Data()[i], v)
		}
	}
}

func Test_spn02(tst *testing.T) {

	chk.PrintTitle("Test spn02: declared shape mismatching line count is ShapeMismatch")

	values, err := Parse([]byte("1\n2\n3\n"))
	if err != nil {
		tst.Errorf("Parse failed: %v", err)
		return
	}
	if len(values) != 3 {
		tst.Errorf("expected 3 values, got %d", len(values))
	}

	dir := tst.TempDir()
	path := filepath.Join(dir, "grid.spn")
	g, _ := voxel.NewGridFromData(3, 1, 1, []voxel.Label{1, 2, 3})
	Write(path, g)
	if _, err := Read(path, 2, 1, 1); err == nil {
		tst.Errorf("expected ShapeMismatch when declared extents don't match line count")
	}
}

func Test_spn03(tst *testing.T) {

	chk.PrintTitle("Test spn03: non-integer token is InputFormat")

	if _, err := Parse([]byte("1\nabc\n3\n")); err == nil {
		tst.Errorf("expected InputFormat error for non-integer token")
	}
}

func Test_spn04(tst *testing.T) {

	chk.PrintTitle("Test spn04: blank trailing lines are ignored")

	values, err := Parse([]byte("1\n2\n\n\n"))
	if err != nil {
		tst.Errorf("Parse failed: %v", err)
		return
	}
	if len(values) != 2 {
		tst.Errorf("expected trailing blank lines to be skipped, got %d values", len(values))
	}
}

// FuzzParse feeds structured-random byte streams through Parse, turning the
// raw fuzz corpus into ASCII-ish line content via go-fuzz-utils' TypeProvider
// the way codahale-thyrse's FuzzProtocolDivergence turns raw bytes into a
// typed operation transcript. Parse must never panic; the values returned
// by a successful parse are not checked further.
func FuzzParse(f *testing.F) {
	f.Add([]byte("3\n0\n255\n"))
	f.Add([]byte(""))
	f.Add([]byte("not a number"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		lineCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		var buf []byte
		for i := uint16(0); i < lineCount%64; i++ {
			line, err := tp.GetString()
			if err != nil {
				break
			}
			buf = append(buf, []byte(line)...)
			buf = append(buf, '\n')
		}

		values, err := Parse(buf)
		if err != nil {
			return
		}
		if len(values) == 0 && len(buf) != 0 {
			return
		}
	})
}
