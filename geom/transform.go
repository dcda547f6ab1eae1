// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// vertexTransform applies fn to every vertex referenced by patches,
// in place, sharing transformed vertices: a vertex referenced k times by
// patches in this call is transformed exactly once, and the new index is
// appended to pool. This mirrors the original C++ source's VertexTransformer/
// VertexTranslater/VertexScaler/VertexRotater family as a single closure
// dispatched from one place, per the Design Notes' alternative.
func vertexTransform(patches []Patch, pool *Pool, fn func(Vertex) Vertex) {
	cache := make(map[int]int)
	remap := func(i int) int {
		if j, ok := cache[i]; ok {
			return j
		}
		j := pool.Add(fn(pool.Vertices[i]))
		cache[i] = j
		return j
	}
	for pi := range patches {
		for j := 0; j < 4; j++ {
			patches[pi].Indices[j] = remap(patches[pi].Indices[j])
		}
	}
}

// Translate moves every patch in patches by offset, in place.
func Translate(offset Vertex, patches []Patch, pool *Pool) {
	vertexTransform(patches, pool, func(v Vertex) Vertex {
		return v.Add(offset)
	})
}

// Scale uniformly scales every patch in patches by s, in place.
func Scale(s float64, patches []Patch, pool *Pool) {
	vertexTransform(patches, pool, func(v Vertex) Vertex {
		return v.Scale(s)
	})
}

// Rotate rotates every patch in patches by angle radians about axis, in
// place. The sense is left-handed: a positive angle turns clockwise when
// seen from the tip of axis looking back toward the origin. It fails with
// ErrDegenerateVector if axis has zero length.
func Rotate(axis Vertex, angle float64, patches []Patch, pool *Pool) error {
	axisHat, err := axis.Norm()
	if err != nil {
		return degenerateVectorf("rotate: axis is degenerate: %v", err)
	}
	plane1, err := axisHat.Perp()
	if err != nil {
		return degenerateVectorf("rotate: could not build rotation basis: %v", err)
	}
	plane2 := Cross(axisHat, plane1)
	c, s := math.Cos(angle), math.Sin(angle)

	vertexTransform(patches, pool, func(v Vertex) Vertex {
		x := Dot(v, plane1)
		y := Dot(v, plane2)
		z := Dot(v, axisHat)
		x2 := c*x + s*y
		y2 := -s*x + c*y
		return plane1.Scale(x2).Add(plane2.Scale(y2)).Add(axisHat.Scale(z))
	})
	return nil
}

// Flip reverses the winding of every patch in patches, inverting its
// outward normal. It does not touch the pool.
func Flip(patches []Patch) {
	for i := range patches {
		patches[i].Indices[1], patches[i].Indices[3] =
			patches[i].Indices[3], patches[i].Indices[1]
	}
}
