// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// CubeVertices are the canonical unit-cube [-1,+1]^3 corner vertices,
// indices 0-7, shared by every reference scene.
var CubeVertices = []Vertex{
	{-1, -1, -1},
	{-1, -1, +1},
	{-1, +1, -1},
	{-1, +1, +1},
	{+1, -1, -1},
	{+1, -1, +1},
	{+1, +1, -1},
	{+1, +1, +1},
}

// CubeFaceIndices are the canonical unit-cube face windings (outward
// normal), indexing into CubeVertices: x=-1, y=+1 (top), x=+1, y=-1
// (bottom), z=-1, z=+1.
var CubeFaceIndices = [6][4]int{
	{1, 0, 2, 3},
	{3, 2, 6, 7},
	{7, 6, 4, 5},
	{5, 4, 0, 1},
	{4, 6, 2, 0},
	{7, 5, 1, 3},
}

// NewCube builds a fresh copy of the canonical unit cube into pool,
// returning its six faces with the given material colour. A fresh Pool
// and fresh Patch slice are returned so callers can safely mutate them
// (subdivide, transform) without aliasing a shared cube.
func NewCube(material Colour) ([]Patch, *Pool) {
	pool := &Pool{Vertices: append([]Vertex(nil), CubeVertices...)}
	faces := make([]Patch, 6)
	for i, idx := range CubeFaceIndices {
		faces[i] = NewPatch(idx[0], idx[1], idx[2], idx[3], material)
	}
	return faces, pool
}
