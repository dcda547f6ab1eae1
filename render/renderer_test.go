// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/simon-frankau/radiosity/geom"
)

func vec(x, y, z float64) geom.Vertex { return geom.NewVertex(x, y, z) }

func Test_index_codec_roundtrip(tst *testing.T) {

	chk.PrintTitle("index_codec_roundtrip")

	for n := 1; n < (1 << 18); n += 997 {
		r, g, b := EncodeIndex(n)
		got := DecodeIndex(r, g, b)
		if got != n {
			tst.Fatalf("roundtrip failed for n=%d: got %d", n, got)
		}
	}
}

func Test_lookat_places_target_on_axis(tst *testing.T) {

	chk.PrintTitle("lookat_places_target_on_axis")

	m, err := LookAt(vec(0, 0, 0), vec(0, 0, 5), vec(0, 1, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	target := m.Apply(vec(0, 0, 5))
	chk.Vector(tst, "target in camera space", 1e-9,
		[]float64{target.X, target.Y, target.Z}, []float64{0, 0, 5})
}

func Test_lookat_degenerate(tst *testing.T) {

	chk.PrintTitle("lookat_degenerate")

	if _, err := LookAt(vec(0, 0, 0), vec(0, 0, 0), vec(0, 1, 0)); err == nil {
		tst.Fatalf("expected an error for coincident eye/target")
	}
}

// forwardDirection returns the world direction that Rotation maps onto the
// camera's forward axis (0,0,1): the unique unit vector v with
// f.Rotation().Apply(v) == (0,0,1), found by probing the six world axes
// rather than inverting the matrix.
func forwardDirection(tst *testing.T, f CubeFace) geom.Vertex {
	r := f.Rotation()
	candidates := []geom.Vertex{
		vec(1, 0, 0), vec(-1, 0, 0),
		vec(0, 1, 0), vec(0, -1, 0),
		vec(0, 0, 1), vec(0, 0, -1),
	}
	for _, c := range candidates {
		got := r.Apply(c)
		if got.Sub(vec(0, 0, 1)).Len() < 1e-9 {
			return c
		}
	}
	tst.Fatalf("%s: no world axis maps to camera-forward", f)
	return geom.Vertex{}
}

// Test_cube_face_rotations_cover_six_distinct_axes exercises the property
// the raster oracle depends on: Front/Back/Right/Left/Up/Down must look
// along six distinct, mutually orthogonal directions, covering the full
// sphere between them (§8 property 8 / calcSubtended summing to 1.0 per
// face relies on no two faces duplicating a view direction).
func Test_cube_face_rotations_cover_six_distinct_axes(tst *testing.T) {

	chk.PrintTitle("cube_face_rotations_cover_six_distinct_axes")

	dirs := make(map[CubeFace]geom.Vertex)
	for _, f := range Faces {
		dirs[f] = forwardDirection(tst, f)
	}

	for i, a := range Faces {
		for j, b := range Faces {
			if i >= j {
				continue
			}
			da, db := dirs[a], dirs[b]
			if da.Sub(db).Len() < 1e-9 {
				tst.Fatalf("%s and %s have the same forward direction: %v", a, b, da)
			}
			dot := da.X*db.X + da.Y*db.Y + da.Z*db.Z
			chk.Scalar(tst, fmt.Sprintf("dot(%s, %s)", a, b), 1e-9, dot, 0)
		}
	}
}

// Test_side_face_rotations_roll_front_onto_near_half checks the roll
// convention weight.CalcSideLightWeights relies on: for every side face,
// the world direction opposite Front (i.e. Back's forward direction) must
// land on the camera's +Y (up) axis, so the rendered image's lower half
// (py < 0) is consistently the half nearer Front across all four side
// faces.
func Test_side_face_rotations_roll_front_onto_near_half(tst *testing.T) {

	chk.PrintTitle("side_face_rotations_roll_front_onto_near_half")

	awayFromFront := forwardDirection(tst, Back)

	for _, f := range []CubeFace{Right, Left, Up, Down} {
		up := f.Rotation().Apply(awayFromFront)
		chk.Vector(tst, fmt.Sprintf("%s: away-from-front maps to camera up", f), 1e-9,
			[]float64{up.X, up.Y, up.Z}, []float64{0, 1, 0})
	}
}
