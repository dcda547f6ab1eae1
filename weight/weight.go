// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package weight builds the per-pixel weighting tables that convert a
// rasterised cube-face image into correctly normalised solid-angle (or
// cosine-weighted) integrals.
package weight

import (
	"math"

	"github.com/simon-frankau/radiosity/geom"
)

// pixelGeometry returns the per-pixel (px, py, xFactor, yFactor)
// terms shared by every table in this package, per §4.D. conv = 2/resolution
// maps pixel (x,y) to the [-1,+1] projection-plane coordinate of its centre.
func pixelGeometry(resolution, x, y int) (px, py, xFactor, yFactor float64) {
	conv := 2.0 / float64(resolution)
	px = (float64(x) + 0.5) * conv
	py = (float64(y) + 0.5) * conv
	px -= 1
	py -= 1
	distSq := px*px + py*py
	xFactor = 1.0 / (1.0 + distSq)
	yFactor = math.Sqrt(xFactor)
	return
}

// CalcSubtendWeights builds the resolution x resolution weighting table
// used for calcSubtended: the solid angle subtended by each pixel's cone on
// the unit sphere, normalised so one cube face sums to 1 (the full cube
// map, over all six faces, sums to 6).
func CalcSubtendWeights(resolution int) []float64 {
	conv := 2.0 / float64(resolution)
	const w = 3.0 / (2.0 * math.Pi)
	out := make([]float64, resolution*resolution)
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			_, _, xFactor, yFactor := pixelGeometry(resolution, x, y)
			out[y*resolution+x] = w * conv * conv * xFactor * yFactor
		}
	}
	return out
}

// CalcForwardLightWeights builds the resolution x resolution weighting
// table used for the front face of calcLight: a cosine-weighted (Lambertian
// receiver facing +Z) integral over the forward cube-face directions,
// normalised so the whole face sums to 1.
func CalcForwardLightWeights(resolution int) []float64 {
	conv := 2.0 / float64(resolution)
	const w = 1.0 / math.Pi
	out := make([]float64, resolution*resolution)
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			_, _, xFactor, _ := pixelGeometry(resolution, x, y)
			out[y*resolution+x] = w * conv * conv * xFactor * xFactor
		}
	}
	return out
}

// CalcSideLightWeights builds the resolution x (resolution/2) weighting
// table used for a side face of a hemicube contributing to calcLight: only
// the rows with py < 0 (the half of the face nearer the front face)
// contribute, cosine-weighted by -py.
func CalcSideLightWeights(resolution int) []float64 {
	conv := 2.0 / float64(resolution)
	const w = 1.0 / math.Pi
	halfHeight := resolution / 2
	out := make([]float64, resolution*halfHeight)
	for y := 0; y < halfHeight; y++ {
		for x := 0; x < resolution; x++ {
			_, py, xFactor, _ := pixelGeometry(resolution, x, y)
			out[y*resolution+x] = w * conv * conv * xFactor * xFactor * (-py)
		}
	}
	return out
}

// ProjSubtendWeights builds the same table as CalcSubtendWeights, but by
// projecting three pixel-corner vertices onto the unit sphere and taking the
// area of the parallelogram spanned by the two projected edges from the
// first corner (approximating the pixel's area on the sphere), as a
// finite-difference cross-check
// of the analytic formula (§8 property 7).
func ProjSubtendWeights(resolution int) []float64 {
	conv := 2.0 / float64(resolution)
	const w = 3.0 / (2.0 * math.Pi)
	out := make([]float64, resolution*resolution)
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			v1 := geom.NewVertex(float64(x)*conv-1, float64(y)*conv-1, 1)
			v2 := geom.NewVertex(float64(x+1)*conv-1, float64(y)*conv-1, 1)
			v3 := geom.NewVertex(float64(x)*conv-1, float64(y+1)*conv-1, 1)
			n1, _ := v1.Norm()
			n2, _ := v2.Norm()
			n3, _ := v3.Norm()
			area := geom.Cross(n3.Sub(n1), n2.Sub(n1)).Len()
			out[y*resolution+x] = w * area
		}
	}
	return out
}

// Sum adds up every weight in the table.
func Sum(weights []float64) float64 {
	var s float64
	for _, w := range weights {
		s += w
	}
	return s
}
