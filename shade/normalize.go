// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shade

import "github.com/simon-frankau/radiosity/geom"

// DefaultTarget is the default peak brightness a normalised scene is
// rescaled toward (§4.I, §6's TARGET constant).
const DefaultTarget = 1.0

// Normalise scans every non-emitter patch that faces eye, finds the
// largest single colour channel M across their screenColours, and, if
// M < target, rescales every non-emitter's screenColour by target/M.
// Emitters are left untouched; if no patch faces eye, or the scene is
// already at or above target, Normalise does nothing.
func Normalise(patches []geom.Patch, pool *geom.Pool, eye geom.Vertex, target float64) {
	m := 0.0
	for _, p := range patches {
		if p.IsEmitter {
			continue
		}
		dir := geom.ParaCentre(p, pool).Sub(eye)
		if geom.Dot(dir, geom.ParaCross(p, pool)) <= 0 {
			continue
		}
		if c := p.ScreenColour.Max(); c > m {
			m = c
		}
	}

	if m == 0 || m >= target {
		return
	}

	scale := target / m
	for i := range patches {
		if patches[i].IsEmitter {
			continue
		}
		patches[i].ScreenColour = patches[i].ScreenColour.Scale(scale)
	}
}
