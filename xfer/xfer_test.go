// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/render"
	"github.com/simon-frankau/radiosity/render/softrast"
)

func newRasterOracle(tst *testing.T, resolution int) *RasterOracle {
	o, err := NewRasterOracle(softrast.New(), resolution, false)
	if err != nil {
		tst.Fatalf("NewRasterOracle failed: %v", err)
	}
	return o
}

// Test_raster_subtended_covers_full_sphere checks §8 property 8: a camera
// at the centre of a unit cube (one that fully encloses it) sees its six
// faces subtend the whole sphere, each face contributing 1, so
// CalcSubtended's six-face sum is 6.
func Test_raster_subtended_covers_full_sphere(tst *testing.T) {

	chk.PrintTitle("raster_subtended_covers_full_sphere")

	patches, pool := geom.NewCube(geom.NewColour(0.5, 0.5, 0.5))
	o := newRasterOracle(tst, 64)
	defer o.Destroy()

	cam := render.NewLookingCamera(geom.NewVertex(0, 0, 0), geom.NewVertex(0, 0, 1), geom.NewVertex(0, 1, 0))
	sums, err := o.CalcSubtended(patches, pool, cam)
	if err != nil {
		tst.Fatalf("CalcSubtended failed: %v", err)
	}

	total := 0.0
	for _, s := range sums {
		total += s
	}
	chk.Scalar(tst, "sum of subtended form factors", 1e-2, total, 6.0)
}

// Test_raster_matches_analytic checks §8 property 9: from the centre of an
// unoccluded scene of small patches (an 8x8-subdivided unit cube), the
// raster oracle's CalcSubtended and the analytic Subtended agree to within
// a loose discretisation tolerance.
func Test_raster_matches_analytic(tst *testing.T) {

	chk.PrintTitle("raster_matches_analytic")

	faces, pool := geom.NewCube(geom.NewColour(0.5, 0.5, 0.5))
	var patches []geom.Patch
	for _, f := range faces {
		geom.Subdivide(f, pool, &patches, 8, 8)
	}

	o := newRasterOracle(tst, 256)
	defer o.Destroy()
	eye := geom.NewVertex(0, 0, 0)
	cam := render.NewLookingCamera(eye, geom.NewVertex(0, 0, 1), geom.NewVertex(0, 1, 0))
	rs, err := o.CalcSubtended(patches, pool, cam)
	if err != nil {
		tst.Fatalf("raster CalcSubtended failed: %v", err)
	}

	for j, p := range patches {
		as, err := Subtended(p, pool, eye)
		if err != nil {
			tst.Fatalf("analytic Subtended failed for patch %d: %v", j, err)
		}
		diff := math.Abs(as - rs[j])
		if diff > 0.1*as+1e-3 {
			tst.Fatalf("patch %d: analytic=%g raster=%g (diff=%g)", j, as, rs[j], diff)
		}
	}
}

// Test_raster_energy_conservation checks §8 property 10: every row of the
// transfer matrix sums to at most 1 (plus a small numerical slop), since a
// patch cannot receive more light than fills its entire field of view.
func Test_raster_energy_conservation(tst *testing.T) {

	chk.PrintTitle("raster_energy_conservation")

	patches, pool := geom.NewCube(geom.NewColour(0.5, 0.5, 0.5))
	o := newRasterOracle(tst, 32)
	defer o.Destroy()

	m, err := o.CalcAllLights(patches, pool)
	if err != nil {
		tst.Fatalf("CalcAllLights failed: %v", err)
	}
	for i, sum := range m.RowSums() {
		if sum > 1+1e-3 {
			tst.Fatalf("row %d sums to %g > 1", i, sum)
		}
	}
}

// Test_raster_light_ignores_backfacing_patch checks §8 property 11: a
// patch facing away from the camera contributes nothing to CalcLight, even
// when it lies within the hemicube's field of view.
func Test_raster_light_ignores_backfacing_patch(tst *testing.T) {

	chk.PrintTitle("raster_light_ignores_backfacing_patch")

	pool := &geom.Pool{}
	i0 := pool.Add(geom.NewVertex(-1, -1, 2))
	i1 := pool.Add(geom.NewVertex(1, -1, 2))
	i2 := pool.Add(geom.NewVertex(1, 1, 2))
	i3 := pool.Add(geom.NewVertex(-1, 1, 2))
	// Wound so its area-normal points toward -Z, back at a camera at the
	// origin looking down +Z. A patch faces the camera only when its
	// area-normal points away from it (as the cube's faces do when seen
	// from inside), so this one should be back-face culled.
	awayFacing := geom.NewPatch(i0, i1, i2, i3, geom.NewColour(1, 1, 1))

	o := newRasterOracle(tst, 32)
	defer o.Destroy()

	cam := render.NewLookingCamera(geom.NewVertex(0, 0, 0), geom.NewVertex(0, 0, 1), geom.NewVertex(0, 1, 0))
	sums, err := o.CalcLight([]geom.Patch{awayFacing}, pool, cam)
	if err != nil {
		tst.Fatalf("CalcLight failed: %v", err)
	}
	chk.Scalar(tst, "back-facing patch contributes no light", 1e-12, sums[0], 0)
}
