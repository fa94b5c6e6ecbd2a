// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aerr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_kind01(tst *testing.T) {

	chk.PrintTitle("Test kind01: New attaches the right Kind and Is discriminates")

	err := New(ShapeMismatch, "bad shape %d", 3)
	if !Is(err, ShapeMismatch) {
		tst.Errorf("Is(err, ShapeMismatch) should be true")
	}
	if Is(err, InputFormat) {
		tst.Errorf("Is(err, InputFormat) should be false")
	}
	if Is(nil, ShapeMismatch) {
		tst.Errorf("Is(nil, ...) should be false")
	}

	plain := chk.Err("not a typed error")
	if Is(plain, ShapeMismatch) {
		tst.Errorf("a plain chk.Err value must not match Is")
	}
}

func Test_kind02(tst *testing.T) {

	chk.PrintTitle("Test kind02: String names every declared kind")

	for _, k := range []Kind{InputFormat, ShapeMismatch, StateOrdering, InvariantViolation, UnknownOption, IOFailure} {
		if k.String() == "Unknown" {
			tst.Errorf("kind %d has no name", k)
		}
	}
}
