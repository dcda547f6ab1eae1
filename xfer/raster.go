// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/render"
	"github.com/simon-frankau/radiosity/weight"
)

// RasterOracle computes form factors by rendering the scene with each
// patch painted in a unique index colour from five (or six) hemicube
// views, resolving occlusion via the renderer's depth buffer (§4.F).
type RasterOracle struct {
	renderer   render.Renderer
	resolution int

	subtendWeights []float64
	forwardWeights []float64
	sideWeights    []float64

	// includeSideFaces controls whether calcLight also accumulates the
	// up/down/left/right hemicube faces with sideWeights, or restricts
	// itself to the front face (§4.F, §9 Open Question 1). Including
	// them costs 4x the raster work for a more accurate integral; the
	// default is false, matching the spec's stated default behaviour.
	includeSideFaces bool
}

// NewRasterOracle configures r at the given hemicube face resolution and
// precomputes its weighting tables.
func NewRasterOracle(r render.Renderer, resolution int, includeSideFaces bool) (*RasterOracle, error) {
	if err := r.Setup(resolution); err != nil {
		return nil, err
	}
	return &RasterOracle{
		renderer:         r,
		resolution:       resolution,
		subtendWeights:   weight.CalcSubtendWeights(resolution),
		forwardWeights:   weight.CalcForwardLightWeights(resolution),
		sideWeights:      weight.CalcSideLightWeights(resolution),
		includeSideFaces: includeSideFaces,
	}, nil
}

// Destroy releases the underlying renderer's graphics context.
func (o *RasterOracle) Destroy() {
	o.renderer.Destroy()
}

// renderIndexed renders patches with their 1-based index colours from the
// given camera/face, and returns the resulting RGBA8 colour buffer,
// row-major; accumulate decodes the indices from it.
func (o *RasterOracle) renderIndexed(patches []geom.Patch, pool *geom.Pool, cam render.Camera, face render.CubeFace) ([]byte, error) {
	vm, err := cam.ViewMatrix(face)
	if err != nil {
		return nil, err
	}
	o.renderer.Clear()
	o.renderer.SetModelView(vm)
	for i, p := range patches {
		v0, v1, v2, v3 := p.At(pool)
		r, g, b := render.EncodeIndex(i + 1)
		o.renderer.DrawFlatQuad(v0, v1, v2, v3, [3]byte{r, g, b})
	}
	return o.renderer.ReadPixels(), nil
}

// accumulate decodes the RGBA8 pixels and adds weights[pixel] into
// sums[index-1] for every pixel whose decoded index is a valid patch
// index. Background pixels (index 0) and out-of-range indices are
// silently skipped, per §4.F's failure semantics.
func accumulate(pixels []byte, weights []float64, n int, sums []float64) {
	count := len(weights)
	for p := 0; p < count; p++ {
		i := p * 4
		idx := render.DecodeIndex(pixels[i], pixels[i+1], pixels[i+2])
		if idx < 1 || idx > n {
			continue
		}
		sums[idx-1] += weights[p]
	}
}

// CalcSubtended renders all six hemicube faces from cam and returns, for
// each patch, its subtended-form-factor contribution (§4.F).
func (o *RasterOracle) CalcSubtended(patches []geom.Patch, pool *geom.Pool, cam render.Camera) ([]float64, error) {
	n := len(patches)
	sums := make([]float64, n)
	for _, face := range render.Faces {
		pixels, err := o.renderIndexed(patches, pool, cam, face)
		if err != nil {
			return nil, err
		}
		accumulate(pixels, o.subtendWeights, n, sums)
	}
	return sums, nil
}

// CalcLight renders the front hemicube face (and, if includeSideFaces,
// the four side faces) from cam and returns, for each patch, its
// incoming-light form-factor contribution (§4.F).
func (o *RasterOracle) CalcLight(patches []geom.Patch, pool *geom.Pool, cam render.Camera) ([]float64, error) {
	n := len(patches)
	sums := make([]float64, n)

	pixels, err := o.renderIndexed(patches, pool, cam, render.Front)
	if err != nil {
		return nil, err
	}
	accumulate(pixels, o.forwardWeights, n, sums)

	if o.includeSideFaces {
		halfHeight := o.resolution / 2
		for _, face := range []render.CubeFace{render.Right, render.Left, render.Up, render.Down} {
			pixels, err := o.renderIndexed(patches, pool, cam, face)
			if err != nil {
				return nil, err
			}
			// sideWeights only covers the half-height nearer the
			// front face; the remaining rows of the render
			// contribute nothing (§4.D).
			half := make([]byte, o.resolution*halfHeight*4)
			copy(half, pixels[:len(half)])
			accumulate(half, o.sideWeights, n, sums)
		}
	}

	return sums, nil
}

// CalcAllLights builds the full n x n transfer matrix: for each target i,
// a camera is placed at i's centre, looking inward along -paraCross(i),
// with an arbitrary up vector (the hemicube integral is invariant to
// rotation about the look axis).
func (o *RasterOracle) CalcAllLights(patches []geom.Patch, pool *geom.Pool) (Matrix, error) {
	n := len(patches)
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		eye := geom.ParaCentre(patches[i], pool)
		lookHat, err := geom.ParaCross(patches[i], pool).Scale(-1).Norm()
		if err != nil {
			return nil, degenerateCameraf("target patch %d: %v", i, err)
		}
		up, err := lookHat.Perp()
		if err != nil {
			return nil, degenerateCameraf("target patch %d: could not build up vector: %v", i, err)
		}
		cam := render.NewLookingCamera(eye, lookHat, up)
		row, err := o.CalcLight(patches, pool, cam)
		if err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			m[i][j] = row[j]
		}
	}
	return m, nil
}
