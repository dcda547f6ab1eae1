// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the renderer contract the raster form-factor
// oracle is built on (§6), the camera/cube-face view transforms it composes
// (§4.F), and the index-colour codec used to paint patches uniquely.
// A CPU implementation of the contract lives in the softrast subpackage.
package render

import (
	"math"

	"github.com/simon-frankau/radiosity/geom"
)

// Mat4 is a row-major 4x4 affine transform, used to carry the composed
// cube-face-rotation + camera model-view matrix across the Renderer
// contract's SetModelView call.
type Mat4 [4][4]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a*b (a applied after b, i.e. (a*b)*v == a*(b*v)).
func Mul(a, b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += a[i][k] * b[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Apply transforms v as an affine point (implicit w=1) and returns the
// resulting xyz (ignoring the homogeneous row, which is always (0,0,0,1)
// for the affine transforms this package builds).
func (m Mat4) Apply(v geom.Vertex) geom.Vertex {
	return geom.Vertex{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// RotateX returns the matrix rotating degrees around the X axis.
func RotateX(degrees float64) Mat4 {
	t := degrees * math.Pi / 180
	c, s := math.Cos(t), math.Sin(t)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotateY returns the matrix rotating degrees around the Y axis.
func RotateY(degrees float64) Mat4 {
	t := degrees * math.Pi / 180
	c, s := math.Cos(t), math.Sin(t)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotateZ returns the matrix rotating degrees around the Z axis.
func RotateZ(degrees float64) Mat4 {
	t := degrees * math.Pi / 180
	c, s := math.Cos(t), math.Sin(t)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// LookAt builds a world-to-camera matrix for a camera at eye, looking
// towards target, whose forward axis maps to the camera's local +Z (per
// §6's "base camera is (origin, +Z, +Y)"). It fails with
// ErrDegenerateCamera if eye == target or up is parallel to the look
// direction.
func LookAt(eye, target, up geom.Vertex) (Mat4, error) {
	lookDir := target.Sub(eye)
	forward, err := lookDir.Norm()
	if err != nil {
		return Mat4{}, degenerateCameraf("look direction has zero length")
	}
	xAxis := geom.Cross(up, forward)
	xAxis, err = xAxis.Norm()
	if err != nil {
		return Mat4{}, degenerateCameraf("up is parallel to the look direction")
	}
	yAxis := geom.Cross(forward, xAxis)

	// Rows are the camera's local axes; translation folds in -eye
	// projected onto each axis so Apply(eye) == origin.
	return Mat4{
		{xAxis.X, xAxis.Y, xAxis.Z, -geom.Dot(xAxis, eye)},
		{yAxis.X, yAxis.Y, yAxis.Z, -geom.Dot(yAxis, eye)},
		{forward.X, forward.Y, forward.Z, -geom.Dot(forward, eye)},
		{0, 0, 0, 1},
	}, nil
}
