// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene builds the reference radiosity scene (§6): a unit cube,
// subdivided per face, with a hard-coded top-centre emitter predicate and
// an optional inner object.
package scene

import (
	"math"

	"github.com/simon-frankau/radiosity/config"
	"github.com/simon-frankau/radiosity/geom"
)

// EyePos is the display camera position used by the reference scene's
// brightness normalisation pass (§4.I) and its final render.
var EyePos = geom.NewVertex(0, 0, -3)

// EmitterThreshold is the y-coordinate above which a patch's centre marks
// it as an emitter, per §9's "top centre, y > 0.9" predicate.
const EmitterThreshold = 0.9

// EmitterHalfWidth bounds the emitter region on the other two axes, so
// "top centre" names a square patch in the middle of the top face rather
// than the whole face.
const EmitterHalfWidth = 0.5

// EmitterColour and WallColour are the reference scene's two material
// colours (§8 scenario S1/S6).
var (
	EmitterColour = geom.NewColour(2, 2, 2)
	WallColour    = geom.NewColour(0.9, 0.9, 0.9)
)

// Scene holds the fully built, subdivided patch list together with the
// per-base-face SubdivInfo needed later for Gouraud reconstruction.
type Scene struct {
	Patches []geom.Patch
	Pool    *geom.Pool
	Infos   []geom.SubdivInfo
}

// IsEmitterCentre reports whether centre lies in the emitter region: a
// square patch in the middle of the top face, per §9's predicate.
func IsEmitterCentre(centre geom.Vertex) bool {
	return math.Abs(centre.X) < EmitterHalfWidth &&
		math.Abs(centre.Z) < EmitterHalfWidth &&
		centre.Y > EmitterThreshold
}

// Build constructs the reference scene: a unit cube subdivided
// cfg.Subdivision x cfg.Subdivision per face, with every sub-patch whose
// centre satisfies IsEmitterCentre flagged as an emitter with
// EmitterColour, and every other sub-patch given WallColour.
func Build(cfg config.Params) *Scene {
	faces, pool := geom.NewCube(WallColour)

	var patches []geom.Patch
	var infos []geom.SubdivInfo
	for _, face := range faces {
		info := geom.Subdivide(face, pool, &patches, cfg.Subdivision, cfg.Subdivision)
		infos = append(infos, info)
	}

	for i := range patches {
		centre := geom.ParaCentre(patches[i], pool)
		if IsEmitterCentre(centre) {
			patches[i].IsEmitter = true
			patches[i].MaterialColour = EmitterColour
		}
	}

	return &Scene{Patches: patches, Pool: pool, Infos: infos}
}

// BuildWithInnerObject extends Build with a second, smaller cube (scaled
// by 0.3, rotated 45 degrees about Y, then moved 0.6 down along Y) nested
// inside the reference scene, per §6's "optional scaled+rotated+translated
// inner cube". The inner object's faces are flipped so their area-normals
// point into the inner cube, away from the surrounding room, which is how
// a surface faces a viewer in this module; it never receives the emitter
// flag (it sits well below EmitterThreshold).
func BuildWithInnerObject(cfg config.Params) (*Scene, error) {
	s := Build(cfg)

	innerFaces, innerPool := geom.NewCube(WallColour)
	geom.Scale(0.3, innerFaces, innerPool)
	if err := geom.Rotate(geom.NewVertex(0, 1, 0), math.Pi/4, innerFaces, innerPool); err != nil {
		return nil, err
	}
	geom.Translate(geom.NewVertex(0, -0.6, 0), innerFaces, innerPool)
	geom.Flip(innerFaces)

	// Merge the inner object's pool into the scene's pool, offsetting
	// vertex indices accordingly.
	offset := len(s.Pool.Vertices)
	s.Pool.Vertices = append(s.Pool.Vertices, innerPool.Vertices...)

	for _, face := range innerFaces {
		shifted := face
		for i := range shifted.Indices {
			shifted.Indices[i] += offset
		}
		info := geom.Subdivide(shifted, s.Pool, &s.Patches, cfg.Subdivision, cfg.Subdivision)
		s.Infos = append(s.Infos, info)
	}

	return s, nil
}
