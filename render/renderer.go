// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/simon-frankau/radiosity/geom"

// CubeFace names one of the six hemicube view directions used by the
// raster form-factor oracle (§4.F). Front is the identity rotation; the
// other five compose a face-specific rotation before the camera's LookAt
// transform, following the original view{Front,Back,Right,Left,Up,Down}
// functions.
type CubeFace int

const (
	Front CubeFace = iota
	Back
	Right
	Left
	Up
	Down
)

// Faces lists all six cube faces in a stable order.
var Faces = [6]CubeFace{Front, Back, Right, Left, Up, Down}

// String names the face, for diagnostics.
func (f CubeFace) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Rotation returns the view-direction rotation for this face, to be
// composed before the camera's own LookAt transform. Each of the four side
// faces rolls the Back direction (directly away from Front) onto the new
// "up" axis, so the lower half of the rendered image (py < 0) is always
// the half nearer Front: weight.CalcSideLightWeights relies on every side
// face agreeing on that convention.
func (f CubeFace) Rotation() Mat4 {
	switch f {
	case Front:
		return Identity()
	case Back:
		return RotateY(180)
	case Right:
		return Mul(RotateZ(90), RotateY(-90))
	case Left:
		return Mul(RotateZ(-90), RotateY(90))
	case Up:
		return RotateX(90)
	case Down:
		return Mul(RotateZ(180), RotateX(-90))
	default:
		return Identity()
	}
}

// Camera is eye position, look target and up vector, per §4.F/§6: the base
// camera is (origin, +Z, +Y).
type Camera struct {
	Eye    geom.Vertex
	Target geom.Vertex
	Up     geom.Vertex
}

// NewLookingCamera builds a Camera at eye looking along direction dir
// (not necessarily unit length; only its direction matters), with the
// given up vector.
func NewLookingCamera(eye, dir, up geom.Vertex) Camera {
	return Camera{Eye: eye, Target: eye.Add(dir), Up: up}
}

// ViewMatrix returns the camera's world-to-camera transform, composed with
// the given face's view-direction rotation: faceRotation is applied in
// camera space, after the lookAt transform, matching the original's
// "view(); ...; gluLookAt(...)" ordering where the face rotation is the
// first thing applied to the modelview stack.
func (c Camera) ViewMatrix(face CubeFace) (Mat4, error) {
	lookAt, err := LookAt(c.Eye, c.Target, c.Up)
	if err != nil {
		return Mat4{}, err
	}
	return Mul(face.Rotation(), lookAt), nil
}

// EncodeIndex packs the 1-based patch index n into an RGB byte triple
// using only the top 6 bits of each channel, per §4.F. It supports indices
// up to 2^18-1.
func EncodeIndex(n int) (r, g, b byte) {
	r = byte((n << 2) & 0xFC)
	g = byte((n >> 4) & 0xFC)
	b = byte((n >> 10) & 0xFC)
	return
}

// DecodeIndex recovers the 1-based patch index from an RGB byte triple
// produced by EncodeIndex. A background (all-zero) pixel decodes to 0
// ("background / no patch"). DecodeIndex does no range checking: callers
// must check the result against the known patch count, since DecodeIndex
// alone cannot know it.
func DecodeIndex(r, g, b byte) int {
	return (int(r) + (int(g) << 6) + (int(b) << 12)) >> 2
}
