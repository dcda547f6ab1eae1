// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cube_faces(tst *testing.T) {

	chk.PrintTitle("cube_faces")

	faces, pool := NewCube(NewColour(0.9, 0.9, 0.9))
	for i, f := range faces {
		area, err := ParaArea(f, pool)
		if err != nil {
			tst.Fatalf("face %d: unexpected error: %v", i, err)
		}
		chk.Scalar(tst, "area", 1e-9, area, 4.0)

		n := ParaCross(f, pool)
		corner := pool.Vertices[f.Indices[0]]
		if Dot(n, corner) <= 0 {
			tst.Fatalf("face %d: area-normal does not point outward", i)
		}
	}
}

func Test_subdivide_preserves_area(tst *testing.T) {

	chk.PrintTitle("subdivide_preserves_area")

	faces, pool := NewCube(NewColour(0.5, 0.6, 0.7))
	base := faces[0]
	baseArea, err := ParaArea(base, pool)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	var subPatches []Patch
	info := Subdivide(base, pool, &subPatches, 10, 20)
	if info.UCount != 10 || info.VCount != 20 {
		tst.Fatalf("bad subdivinfo: %+v", info)
	}
	if len(subPatches) != 200 {
		tst.Fatalf("expected 200 sub-patches, got %d", len(subPatches))
	}

	sum := 0.0
	for _, p := range subPatches {
		a, err := ParaArea(p, pool)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		sum += a
		if p.MaterialColour != base.MaterialColour {
			tst.Fatalf("sub-patch did not inherit material colour")
		}
		if p.IsEmitter != base.IsEmitter {
			tst.Fatalf("sub-patch did not inherit emitter flag")
		}
	}
	chk.Scalar(tst, "area sum", 1e-9, sum, baseArea)
}

func Test_subdivide_1x1(tst *testing.T) {

	chk.PrintTitle("subdivide_1x1")

	faces, pool := NewCube(NewColour(0.9, 0.9, 0.9))
	nVertsBefore := len(pool.Vertices)

	var out []Patch
	Subdivide(faces[0], pool, &out, 1, 1)
	if len(out) != 1 {
		tst.Fatalf("expected 1 patch, got %d", len(out))
	}
	if len(pool.Vertices)-nVertsBefore != 4 {
		tst.Fatalf("expected 4 new vertices, got %d", len(pool.Vertices)-nVertsBefore)
	}
	a, err := ParaArea(out[0], pool)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "area", 1e-9, a, 4.0)
}
