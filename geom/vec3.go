// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 3-D linear algebra primitives, the
// parallelogram patch model, mesh transforms and regular subdivision that
// the rest of the radiosity solver is built on.
package geom

import "math"

// Vertex is a point (or free vector) in R3.
type Vertex struct {
	X, Y, Z float64
}

// NewVertex builds a Vertex from its three coordinates.
func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// Len returns the Euclidean length of v.
func (v Vertex) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Norm returns v scaled to unit length. It fails with ErrDegenerateVector
// if v has zero length.
func (v Vertex) Norm() (Vertex, error) {
	l := v.Len()
	if l == 0 {
		return Vertex{}, degenerateVectorf("cannot normalise zero-length vector")
	}
	return v.Scale(1.0 / l), nil
}

// Scale returns v multiplied by the scalar s.
func (v Vertex) Scale(s float64) Vertex {
	return Vertex{v.X * s, v.Y * s, v.Z * s}
}

// Add returns v + rhs.
func (v Vertex) Add(rhs Vertex) Vertex {
	return Vertex{v.X + rhs.X, v.Y + rhs.Y, v.Z + rhs.Z}
}

// Sub returns v - rhs.
func (v Vertex) Sub(rhs Vertex) Vertex {
	return Vertex{v.X - rhs.X, v.Y - rhs.Y, v.Z - rhs.Z}
}

// Cross returns the cross product v1 x v2.
func Cross(v1, v2 Vertex) Vertex {
	return Vertex{
		v1.Y*v2.Z - v1.Z*v2.Y,
		v1.Z*v2.X - v1.X*v2.Z,
		v1.X*v2.Y - v1.Y*v2.X,
	}
}

// Dot returns the dot product v1 . v2.
func Dot(v1, v2 Vertex) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// Orthog orthogonalises v1 against v2, i.e. it removes from v1 whatever
// component lies along v2: orthog(v1, v2) = v1 - v2*(v1.v2)/(v2.v2).
func Orthog(v1, v2 Vertex) Vertex {
	c := Dot(v1, v2) / Dot(v2, v2)
	return v1.Sub(v2.Scale(c))
}

// Perp returns an arbitrary unit vector perpendicular to v, by
// orthogonalising whichever axis-aligned vector is least aligned with v
// (the one with the smallest magnitude component) and normalising the
// result. It fails with ErrDegenerateVector if v has zero length.
func (v Vertex) Perp() (Vertex, error) {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var axis Vertex
	switch {
	case ax < ay && ax < az:
		axis = Vertex{1, 0, 0}
	case ay < az:
		axis = Vertex{0, 1, 0}
	default:
		axis = Vertex{0, 0, 1}
	}
	return Orthog(axis, v).Norm()
}

// Lerp linearly interpolates between v1 (at t=0) and v2 (at t=1).
func Lerp(v1, v2 Vertex, t float64) Vertex {
	j := 1.0 - t
	return Vertex{
		v1.X*j + v2.X*t,
		v1.Y*j + v2.Y*t,
		v1.Z*j + v2.Z*t,
	}
}
