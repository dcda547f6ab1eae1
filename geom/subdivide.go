// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/utl"

// SubdivInfo ties a base quad to the grid of sub-patches it was tessellated
// into, so later passes (Gouraud reconstruction) can look up neighbouring
// sub-patches by (u, v) cell without patches needing back-pointers.
type SubdivInfo struct {
	Base   Patch
	UCount int
	VCount int

	// VertexStart is the index, in Pool.Vertices, of the first vertex of
	// the (UCount+1)x(VCount+1) grid generated by Subdivide.
	VertexStart int
	// FaceStart is the index, in the patch slice passed to Subdivide, of
	// the first sub-patch generated.
	FaceStart int
}

// vertexAt returns the index of the subdivision grid vertex at (u, v),
// 0 <= u <= UCount, 0 <= v <= VCount.
func (s SubdivInfo) vertexAt(u, v int) int {
	return s.VertexStart + v*(s.UCount+1) + u
}

// patchAt returns the index, within the patch slice passed to Subdivide, of
// the sub-patch at cell (u, v), 0 <= u < UCount, 0 <= v < VCount.
func (s SubdivInfo) patchAt(u, v int) int {
	return s.FaceStart + v*s.UCount + u
}

// Subdivide tessellates quad into a uCount x vCount grid of parallelograms,
// appending (uCount+1)*(vCount+1) new vertices to pool and uCount*vCount new
// patches to *patches. Each sub-patch inherits quad's MaterialColour and
// IsEmitter flag. It returns a SubdivInfo describing the new ranges.
func Subdivide(quad Patch, pool *Pool, patches *[]Patch, uCount, vCount int) SubdivInfo {
	v0, v1, v2, v3 := quad.At(pool)

	// us/vs are the normalised grid-line positions along each edge,
	// following the teacher's utl.LinSpace convention for evenly spaced
	// sample points rather than computing each ratio inline.
	us := utl.LinSpace(0, 1, uCount+1)
	vs := utl.LinSpace(0, 1, vCount+1)

	vertexStart := len(pool.Vertices)
	for _, tv := range vs {
		for _, tu := range us {
			u0 := Lerp(v0, v1, tu)
			u1 := Lerp(v3, v2, tu)
			pool.Add(Lerp(u0, u1, tv))
		}
	}

	faceStart := len(*patches)
	for v := 0; v < vCount; v++ {
		for u := 0; u < uCount; u++ {
			base := vertexStart + v*(uCount+1) + u
			sub := Patch{
				Indices:        [4]int{base, base + 1, base + uCount + 2, base + uCount + 1},
				MaterialColour: quad.MaterialColour,
				IsEmitter:      quad.IsEmitter,
			}
			*patches = append(*patches, sub)
		}
	}

	return SubdivInfo{
		Base:        quad,
		UCount:      uCount,
		VCount:      vCount,
		VertexStart: vertexStart,
		FaceStart:   faceStart,
	}
}
