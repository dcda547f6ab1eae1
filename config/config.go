// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the tunable parameters of a radiosity run: scene
// subdivision density, hemicube raster resolution, and the convergence and
// normalisation targets of the solver (§5, §6).
package config

import "github.com/cpmech/gosl/fun"

// Params holds every tunable parameter of a radiosity run, loaded the same
// way the teacher's material models load theirs: a flat list of named
// values, rather than one field per concern.
type Params struct {
	// Subdivision is the number of patches each cube face is split into
	// along each edge (§4.C); the cube yields 6*Subdivision^2 patches.
	Subdivision int

	// HemicubeResolution is the pixel resolution of each hemicube face
	// used by the raster form-factor oracle (§4.F).
	HemicubeResolution int

	// ConvergenceTarget is the fractional change in scene luminance
	// below which the Jacobi iteration is considered converged (§4.G).
	ConvergenceTarget float64

	// MaxIterations caps the Jacobi loop; exceeding it without
	// converging yields ErrNotConverged.
	MaxIterations int

	// NormalisationTarget is the peak brightness the brightest
	// non-emitter, non-backfacing patch is rescaled to; every non-emitter
	// is scaled by the same factor (§4.I).
	NormalisationTarget float64

	// IncludeSideFaces enables the raster oracle's side-face light
	// accumulation (§9 Open Question 1); off by default.
	IncludeSideFaces bool
}

// Default returns the reference scene's parameters (§6).
func Default() Params {
	return Params{
		Subdivision:         32,
		HemicubeResolution:  256,
		ConvergenceTarget:   0.001,
		MaxIterations:       1000,
		NormalisationTarget: 1.0,
		IncludeSideFaces:    false,
	}
}

// Init overrides the defaults with any of the named parameters present in
// prms, following the teacher's fun.Prms convention: unknown names are
// ignored rather than treated as errors, so callers may share a single
// parameter list across unrelated models.
func (o *Params) Init(prms fun.Prms) {
	for _, p := range prms {
		switch p.N {
		case "subdivision":
			o.Subdivision = int(p.V)
		case "hemicube":
			o.HemicubeResolution = int(p.V)
		case "convergence":
			o.ConvergenceTarget = p.V
		case "maxit":
			o.MaxIterations = int(p.V)
		case "normalise":
			o.NormalisationTarget = p.V
		case "sidefaces":
			o.IncludeSideFaces = p.V > 0
		}
	}
}

// GetPrms returns the current parameters as a fun.Prms list, for
// round-tripping through Init or for diagnostics.
func (o Params) GetPrms() fun.Prms {
	sideFaces := 0.0
	if o.IncludeSideFaces {
		sideFaces = 1
	}
	return fun.Prms{
		&fun.Prm{N: "subdivision", V: float64(o.Subdivision)},
		&fun.Prm{N: "hemicube", V: float64(o.HemicubeResolution)},
		&fun.Prm{N: "convergence", V: o.ConvergenceTarget},
		&fun.Prm{N: "maxit", V: float64(o.MaxIterations)},
		&fun.Prm{N: "normalise", V: o.NormalisationTarget},
		&fun.Prm{N: "sidefaces", V: sideFaces},
	}
}
