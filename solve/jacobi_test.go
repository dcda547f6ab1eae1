// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/simon-frankau/radiosity/config"
	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/xfer"
)

// buildTwoPatchScene builds a minimal closed two-patch scene: patch 0 is
// an emitter, patch 1 is a diffuse reflector, and the transfer matrix
// sends all of patch 0's output to patch 1 and half of patch 1's output
// back to patch 0.
func buildTwoPatchScene() ([]geom.Patch, *geom.Pool, xfer.Matrix) {
	pool := &geom.Pool{}
	i0 := pool.Add(geom.NewVertex(0, 0, 0))
	i1 := pool.Add(geom.NewVertex(1, 0, 0))
	i2 := pool.Add(geom.NewVertex(1, 1, 0))
	i3 := pool.Add(geom.NewVertex(0, 1, 0))

	emitter := geom.NewPatch(i0, i1, i2, i3, geom.NewColour(1, 1, 1))
	emitter.IsEmitter = true
	reflector := geom.NewPatch(i0, i1, i2, i3, geom.NewColour(0.5, 0.5, 0.5))

	patches := []geom.Patch{emitter, reflector}
	m := xfer.NewMatrix(2)
	m[1][0] = 1.0
	m[0][1] = 0.5
	return patches, pool, m
}

func Test_step_leaves_emitter_untouched(tst *testing.T) {

	chk.PrintTitle("step_leaves_emitter_untouched")

	patches, _, m := buildTwoPatchScene()
	patches[0].ScreenColour = patches[0].MaterialColour
	Step(patches, m)

	chk.Scalar(tst, "emitter R unchanged", 1e-15, patches[0].ScreenColour.R, 1.0)
	chk.Scalar(tst, "reflector R after one bounce", 1e-15, patches[1].ScreenColour.R, 0.5)
}

func Test_solve_converges_on_two_patch_scene(tst *testing.T) {

	chk.PrintTitle("solve_converges_on_two_patch_scene")

	patches, pool, m := buildTwoPatchScene()
	cfg := config.Default()
	cfg.ConvergenceTarget = 1e-6
	cfg.MaxIterations = 1000

	iterations, history, err := Solve(patches, pool, m, cfg)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	if iterations == 0 {
		tst.Fatalf("expected at least one iteration")
	}
	if len(history) != iterations+1 {
		tst.Fatalf("history length %d != iterations+1 (%d)", len(history), iterations+1)
	}

	// The reflector's only incoming light is the (fixed) emitter's, since
	// an emitter's own screen colour never updates: it settles at
	// 0.5 (reflector material) * 1 (emitter) = 0.5 after the first step.
	chk.Scalar(tst, "reflector converged R", 1e-3, patches[1].ScreenColour.R, 0.5)
}

func Test_solve_reports_not_converged(tst *testing.T) {

	chk.PrintTitle("solve_reports_not_converged")

	patches, pool, m := buildTwoPatchScene()
	cfg := config.Default()
	cfg.MaxIterations = 1

	_, _, err := Solve(patches, pool, m, cfg)
	if err == nil {
		tst.Fatalf("expected ErrNotConverged with a one-iteration cap")
	}
}
