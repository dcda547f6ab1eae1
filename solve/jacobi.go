// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the Jacobi radiosity relaxation (§4.G): given a
// transfer matrix and a set of patches with fixed emitter colours, it
// repeatedly recomputes every non-emitter patch's screen colour from its
// neighbours' previous iteration until the scene's overall luminance
// stops changing.
package solve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/simon-frankau/radiosity/config"
	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/xfer"
)

// SceneLuminance returns Σ asGrey(p.ScreenColour)*paraArea(p) over every
// patch, the convergence metric of §4.G. Degenerate (zero-area) patches
// contribute nothing rather than aborting the sum.
func SceneLuminance(patches []geom.Patch, pool *geom.Pool) float64 {
	var total float64
	for _, p := range patches {
		area, err := geom.ParaArea(p, pool)
		if err != nil {
			continue
		}
		total += p.ScreenColour.AsGrey() * area
	}
	return total
}

// Step performs a single Jacobi iteration in place: for every non-emitter
// patch i, its new screen colour is MaterialColour[i] modulated by the
// incoming light Σ_j T[i][j]*prevScreenColour[j], computed independently
// per colour channel via la.MatVecMul. Emitter patches are left untouched.
func Step(patches []geom.Patch, transfer xfer.Matrix) {
	n := len(patches)
	prevR := make([]float64, n)
	prevG := make([]float64, n)
	prevB := make([]float64, n)
	for i, p := range patches {
		prevR[i] = p.ScreenColour.R
		prevG[i] = p.ScreenColour.G
		prevB[i] = p.ScreenColour.B
	}

	incomingR := make([]float64, n)
	incomingG := make([]float64, n)
	incomingB := make([]float64, n)
	la.MatVecMul(incomingR, 1, transfer, prevR)
	la.MatVecMul(incomingG, 1, transfer, prevG)
	la.MatVecMul(incomingB, 1, transfer, prevB)

	for i := range patches {
		if patches[i].IsEmitter {
			continue
		}
		incoming := geom.NewColour(incomingR[i], incomingG[i], incomingB[i])
		patches[i].ScreenColour = patches[i].MaterialColour.Mul(incoming)
	}
}

// Solve initialises every patch's screen colour (emitters to their
// material colour, everything else to black) and iterates Step until the
// scene luminance changes by less than cfg.ConvergenceTarget relative to
// the previous iteration, or cfg.MaxIterations is reached without
// converging (ErrNotConverged). It returns the iteration count and the
// per-iteration luminance history.
func Solve(patches []geom.Patch, pool *geom.Pool, transfer xfer.Matrix, cfg config.Params) (iterations int, history []float64, err error) {
	sanitizeNaN(transfer)

	for i := range patches {
		if patches[i].IsEmitter {
			patches[i].ScreenColour = patches[i].MaterialColour
		} else {
			patches[i].ScreenColour = geom.Colour{}
		}
	}

	prevLum := SceneLuminance(patches, pool)
	history = append(history, prevLum)

	for it := 1; it <= cfg.MaxIterations; it++ {
		Step(patches, transfer)
		lum := SceneLuminance(patches, pool)
		history = append(history, lum)

		if lum == 0 {
			// No light anywhere in the scene: further iteration can't
			// change anything (§4.G's failure semantics).
			plotHistory(history)
			return it, history, nil
		}

		// r = |light_prev/light_new - 1|; light_prev = 0 forces r = Inf
		// on the first iteration (§4.G).
		r := math.Inf(1)
		if prevLum != 0 {
			r = math.Abs(prevLum/lum - 1)
		}
		converged := r <= cfg.ConvergenceTarget
		prevLum = lum

		if converged {
			plotHistory(history)
			return it, history, nil
		}
	}

	plotHistory(history)
	return cfg.MaxIterations, history, notConvergedf("luminance still changing after %d iterations", cfg.MaxIterations)
}

// sanitizeNaN zeroes any NaN entry of transfer in place: a masked
// emitter-to-self row can legitimately contain NaN, and §4.G requires
// such entries be treated as zero during accumulation.
func sanitizeNaN(transfer xfer.Matrix) {
	for i := range transfer {
		for j := range transfer[i] {
			if transfer[i][j] != transfer[i][j] {
				transfer[i][j] = 0
			}
		}
	}
}

// plotHistory writes a convergence-history plot when chk.Verbose is set,
// following the teacher's retention/porous models' use of gosl/plt for
// diagnostic output gated on verbosity rather than always-on.
func plotHistory(history []float64) {
	if !chk.Verbose {
		return
	}
	iters := make([]float64, len(history))
	for i := range history {
		iters[i] = float64(i)
	}
	plt.Plot(iters, history, "'b.-'")
	plt.Gll("iteration", "scene luminance", "")
	plt.SaveD("/tmp/radiosity", io.Sf("convergence_%d.png", len(history)))
}
