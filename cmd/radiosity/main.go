// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command radiosity runs the reference scene (§6) to convergence and
// writes the result to png/scene.png. It takes no arguments.
package main

import (
	"errors"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/simon-frankau/radiosity/config"
	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/imgio"
	"github.com/simon-frankau/radiosity/render"
	"github.com/simon-frankau/radiosity/render/softrast"
	"github.com/simon-frankau/radiosity/scene"
	"github.com/simon-frankau/radiosity/shade"
	"github.com/simon-frankau/radiosity/solve"
	"github.com/simon-frankau/radiosity/xfer"
)

const outPath = "png/scene.png"

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nRadiosity -- diffuse radiosity renderer\n\n")
	io.Pf("Copyright 2024 The Radiosity Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	if err := run(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		switch {
		case errors.Is(err, solve.ErrNotConverged):
			os.Exit(2)
		case errors.Is(err, render.ErrRenderContextFailure):
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
}

func run() error {
	cfg := config.Default()

	io.Pf("building scene (subdivision=%d)...\n", cfg.Subdivision)
	s := scene.Build(cfg)

	io.Pf("computing transfer matrix (hemicube resolution=%d)...\n", cfg.HemicubeResolution)
	rasteriser := softrast.New()
	oracle, err := xfer.NewRasterOracle(rasteriser, cfg.HemicubeResolution, cfg.IncludeSideFaces)
	if err != nil {
		return err
	}
	defer oracle.Destroy()

	transfer, err := oracle.CalcAllLights(s.Patches, s.Pool)
	if err != nil {
		return err
	}

	io.Pf("solving (convergence target=%v, max iterations=%d)...\n", cfg.ConvergenceTarget, cfg.MaxIterations)
	iterations, _, err := solve.Solve(s.Patches, s.Pool, transfer, cfg)
	if err != nil {
		return err
	}
	io.Pf("converged after %d iterations\n", iterations)

	shade.Normalise(s.Patches, s.Pool, scene.EyePos, cfg.NormalisationTarget)
	quads := shade.BuildGouraud(s.Infos, s.Patches, s.Pool)

	io.Pf("rendering %d quads to %s...\n", len(quads), outPath)
	pixels, err := renderDisplay(quads, cfg.HemicubeResolution)
	if err != nil {
		return err
	}

	if err := imgio.WriteRGBA(outPath, cfg.HemicubeResolution, cfg.HemicubeResolution, imgio.FlipY(cfg.HemicubeResolution, cfg.HemicubeResolution, pixels)); err != nil {
		return err
	}

	io.Pf("wrote %s\n", outPath)
	return nil
}

// renderDisplay rasterises quads from scene.EyePos looking toward the
// origin. render.Renderer only offers flat shading (§6's fixed contract,
// shared with the hemicube oracle), so each quad is painted with the flat
// average of its four Gouraud corner colours rather than a per-pixel
// interpolation; this keeps the final display pass on the same renderer
// contract as form-factor computation instead of growing a second,
// interpolating rasteriser just for this one-shot CLI output.
func renderDisplay(quads []shade.GouraudQuad, resolution int) ([]byte, error) {
	r := softrast.New()
	if err := r.Setup(resolution); err != nil {
		return nil, err
	}
	defer r.Destroy()

	// The original's gluLookAt used (0,1,0) as its up vector; the eye
	// sits on the Z axis, so this is never degenerate.
	up := geom.NewVertex(0, 1, 0)
	cam := render.NewLookingCamera(scene.EyePos, scene.EyePos.Scale(-1), up)
	vm, err := cam.ViewMatrix(render.Front)
	if err != nil {
		return nil, err
	}

	r.Clear()
	r.SetModelView(vm)
	for _, q := range quads {
		rgb := flatColour(q)
		r.DrawFlatQuad(q.V0, q.V1, q.V2, q.V3, rgb)
	}

	return r.ReadPixels(), nil
}

func flatColour(q shade.GouraudQuad) [3]byte {
	avg := q.C0.Add(q.C1).Add(q.C2).Add(q.C3).Scale(0.25)
	clamp := func(c float64) byte {
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		return byte(c * 255)
	}
	return [3]byte{clamp(avg.R), clamp(avg.G), clamp(avg.B)}
}
