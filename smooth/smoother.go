// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cpmech/automesh/aerr"
	"github.com/cpmech/automesh/internal/wpool"
)

// Prescribed bundles the Dirichlet-like constraints of spec.md §3: nodes
// that never move (homogeneous) and nodes pinned to a caller-given
// coordinate (inhomogeneous).
type Prescribed struct {
	Homogeneous          []int
	Inhomogeneous        []int       // strictly sorted, unique (I7)
	InhomogeneousCoords  [][]float64 // len == len(Inhomogeneous)
}

// Validate enforces I7
func (p Prescribed) Validate() error {
	if len(p.Inhomogeneous) != len(p.InhomogeneousCoords) {
		return aerr.New(aerr.InvariantViolation, "prescribed inhomogeneous node list length %d != coordinate table rows %d", len(p.Inhomogeneous), len(p.InhomogeneousCoords))
	}
	for i := 1; i < len(p.Inhomogeneous); i++ {
		if p.Inhomogeneous[i] <= p.Inhomogeneous[i-1] {
			return aerr.New(aerr.InvariantViolation, "prescribed inhomogeneous node list must be strictly sorted and unique")
		}
	}
	return nil
}

// AllNodes returns the union of homogeneous and inhomogeneous node IDs
func (p Prescribed) AllNodes() []int {
	out := append([]int(nil), p.Homogeneous...)
	out = append(out, p.Inhomogeneous...)
	return out
}

// applyInhomogeneous overwrites coords with the prescribed inhomogeneous
// values; called at smoother init and re-asserted after every sub-step
// (spec.md §4.5).
func (p Prescribed) applyInhomogeneous(coords [][]float64) {
	for i, node := range p.Inhomogeneous {
		copy(coords[node-1], p.InhomogeneousCoords[i])
	}
}

// Smooth runs cfg.Iterations outer iterations of cfg.Method in place on
// coords, using influencers[n] as the effective neighbour set for node
// n+1, and never moving a prescribed node (spec.md §4.5). influencers[n]
// must be nil/empty for every prescribed node (as BuildInfluencers
// guarantees).
func Smooth(coords [][]float64, influencers [][]int, prescribed Prescribed, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := prescribed.Validate(); err != nil {
		return err
	}

	prescribed.applyInhomogeneous(coords)

	if cfg.Iterations == 0 {
		return nil
	}

	// λ=0 is a no-op regardless of method (spec.md §8 P7, scenario S5):
	// every shrink step scales the influencer delta by zero, so coordinates
	// never move beyond the inhomogeneous reassertion already applied above.
	if cfg.Scale == 0 {
		return nil
	}

	switch cfg.Method {
	case Laplace:
		for it := 0; it < cfg.Iterations; it++ {
			shrink(coords, influencers, cfg.Scale, cfg.WorkerCount)
			prescribed.applyInhomogeneous(coords)
		}
	case Taubin:
		mu := muFromPassBand(cfg.Scale, cfg.PassBand)
		for it := 0; it < cfg.Iterations; it++ {
			shrink(coords, influencers, cfg.Scale, cfg.WorkerCount)
			prescribed.applyInhomogeneous(coords)
			shrink(coords, influencers, mu, cfg.WorkerCount)
			prescribed.applyInhomogeneous(coords)
		}
	default:
		return aerr.New(aerr.UnknownOption, "unsupported smoothing method code %d", cfg.Method)
	}
	return nil
}

// shrink performs one double-buffered weighted-Laplacian sub-step with
// scale factor lambda (which may be negative, for Taubin's inflate step).
// All deltas are computed from the snapshot at the start of the sub-step,
// per spec.md §4.5's determinism requirement.
func shrink(coords [][]float64, influencers [][]int, lambda float64, workerCount int) {
	n := len(coords)
	snapshot := make([]r3.Vec, n)
	for i, c := range coords {
		snapshot[i] = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}

	updated := make([]r3.Vec, n)
	work := func(i int) {
		nbrs := influencers[i]
		if len(nbrs) == 0 {
			updated[i] = snapshot[i]
			return
		}
		var sum r3.Vec
		for _, m := range nbrs {
			sum = r3.Add(sum, r3.Sub(snapshot[m-1], snapshot[i]))
		}
		delta := r3.Scale(1.0/float64(len(nbrs)), sum)
		updated[i] = r3.Add(snapshot[i], r3.Scale(lambda, delta))
	}
	wpool.Run(n, workerCount, work)

	for i, v := range updated {
		coords[i][0], coords[i][1], coords[i][2] = v.X, v.Y, v.Z
	}
}
