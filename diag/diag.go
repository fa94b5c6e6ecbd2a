// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag provides optional gosl/plt-based convergence diagnostics for
// the smoother, in the style of out/plotting.go and msolid/plotter.go. It is
// never called from the pipeline itself; callers (tests, tools) opt in.
package diag

import (
	"math"

	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/automesh/smooth"
)

// Convergence tracks, per outer iteration, a scalar measure of how far the
// nodes moved during that iteration (spec.md §4.5's "bounded, monotone
// approach" intuition, measured rather than proved).
type Convergence struct {
	Displacement []float64 // max |Δcoord| over all nodes, per iteration
}

// RunTracked behaves like smooth.Smooth but records per-iteration maximum
// nodal displacement, for plotting with Plot.
func RunTracked(coords [][]float64, influencers [][]int, prescribed smooth.Prescribed, cfg smooth.Config) (*Convergence, error) {
	conv := &Convergence{Displacement: make([]float64, 0, cfg.Iterations)}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	oneStep := cfg
	oneStep.Iterations = 1
	for it := 0; it < cfg.Iterations; it++ {
		before := cloneCoords(coords)
		if err := smooth.Smooth(coords, influencers, prescribed, oneStep); err != nil {
			return nil, err
		}
		conv.Displacement = append(conv.Displacement, maxDisplacement(before, coords))
	}
	return conv, nil
}

func cloneCoords(coords [][]float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = append([]float64(nil), c...)
	}
	return out
}

func maxDisplacement(before, after [][]float64) float64 {
	var maxD float64
	for i := range before {
		dx := after[i][0] - before[i][0]
		dy := after[i][1] - before[i][1]
		dz := after[i][2] - before[i][2]
		d := dx*dx + dy*dy + dz*dz
		if d > maxD {
			maxD = d
		}
	}
	return math.Sqrt(maxD)
}

// Plot renders the per-iteration displacement curve to dirout/fname, in the
// teacher's plt.Reset/plt.Plot/plt.Gll/plt.SaveD sequence (msolid/plotter.go,
// out/plotting.go).
func Plot(conv *Convergence, dirout, fname string) {
	x := make([]float64, len(conv.Displacement))
	for i := range x {
		x[i] = float64(i + 1)
	}
	plt.Reset()
	plt.Plot(x, conv.Displacement, "'b.-', clip_on=0, label='max displacement'")
	plt.Gll("iteration", "max |$\\Delta$coord|", "")
	plt.SaveD(dirout, fname)
}
