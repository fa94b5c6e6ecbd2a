// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"strings"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/automesh/aerr"
)

// Method selects the smoothing algorithm of spec.md §4.5
type Method int

// methods
const (
	Laplace Method = iota
	Taubin
)

// ParseMethod accepts the case-insensitive aliases of spec.md §6.5:
// "Laplace","Gauss","Gaussian","Laplacian" all mean Laplace.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "laplace", "gauss", "gaussian", "laplacian":
		return Laplace, nil
	case "taubin":
		return Taubin, nil
	}
	return 0, aerr.New(aerr.UnknownOption, "unsupported smoothing method %q", name)
}

// Config holds the parameters of spec.md §6.5. Numeric parameters are also
// exposed via fun.Prms, mirroring how msolid.Model constitutive parameters
// are exposed for inspection/reporting.
type Config struct {
	Method        Method
	Iterations    int
	Scale         float64 // λ
	PassBand      float64 // k_PB, unused for Laplace
	Hierarchical  bool
	WorkerCount   int // <=1 runs the deterministic single-threaded path
}

// DefaultConfig returns the defaults of spec.md §6.5: Taubin, 10
// iterations, λ=0.6307, k_PB=0.1, non-hierarchical.
func DefaultConfig() Config {
	return Config{
		Method:       Taubin,
		Iterations:   10,
		Scale:        0.6307,
		PassBand:     0.1,
		Hierarchical: false,
	}
}

// Params exposes the numeric configuration as a gosl/fun parameter list
func (c Config) Params() fun.Prms {
	hier := 0.0
	if c.Hierarchical {
		hier = 1.0
	}
	return fun.Prms{
		&fun.Prm{N: "iterations", V: float64(c.Iterations)},
		&fun.Prm{N: "scale", V: c.Scale},
		&fun.Prm{N: "pass_band", V: c.PassBand},
		&fun.Prm{N: "hierarchical", V: hier},
	}
}

// Validate checks the ranges of spec.md §6.5. Scale==0 is accepted despite
// §6.5's (0,1] range: spec.md §8 P7/S5 require λ=0 to succeed as a no-op,
// so only negative scale is rejected here.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return aerr.New(aerr.InvariantViolation, "iterations must be >= 0: got %d", c.Iterations)
	}
	if c.Scale < 0 || c.Scale > 1 {
		return aerr.New(aerr.InvariantViolation, "scale must be in [0,1]: got %g", c.Scale)
	}
	if c.Method == Taubin && (c.PassBand <= 0 || c.PassBand >= 1) {
		return aerr.New(aerr.InvariantViolation, "pass_band must be in (0,1): got %g", c.PassBand)
	}
	return nil
}

// muFromPassBand computes the Taubin inflate parameter μ = λ/(k_PB·λ-1)
func muFromPassBand(lambda, passBand float64) float64 {
	return lambda / (passBand*lambda - 1)
}
