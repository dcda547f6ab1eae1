// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"math"

	"github.com/simon-frankau/radiosity/geom"
)

// AnalyticOracle computes form factors via the closed-form point-to-patch
// approximation of §4.E: it assumes unoccluded visibility and treats every
// source patch as if it subtended a small solid angle as seen from the
// receiver's centre.
type AnalyticOracle struct{}

// Subtended returns the single-face subtended form factor of patch src, as
// seen from eye (ignoring facing/camera direction): 1.5*area/(pi*len^2),
// where area is the projected area of src onto the ray from eye, and zero
// if src faces away from eye.
func Subtended(src geom.Patch, pool *geom.Pool, eye geom.Vertex) (float64, error) {
	area, _, lenSq, err := projectedArea(src, pool, eye)
	if err != nil {
		return 0, err
	}
	return 1.5 * area / (math.Pi * lenSq), nil
}

// Light returns the incoming-light form factor of patch src, as seen by a
// camera at eye looking along lookHat (unit vector): cosCam-weighted
// area/(pi*len^2), zero if src faces away from eye or is behind the
// camera.
func Light(src geom.Patch, pool *geom.Pool, eye, lookHat geom.Vertex) (float64, error) {
	area, dir, lenSq, err := projectedArea(src, pool, eye)
	if err != nil {
		return 0, err
	}
	if area == 0 {
		return 0, nil
	}
	cosCam := math.Max(0, geom.Dot(lookHat, dir))
	return cosCam * area / (math.Pi * lenSq), nil
}

// projectedArea computes the shared geometry for Subtended/Light: the
// direction from eye to src's centre, the squared distance, and the
// front-face-tested projected area (zero if src faces away from eye).
func projectedArea(src geom.Patch, pool *geom.Pool, eye geom.Vertex) (area float64, dir geom.Vertex, lenSq float64, err error) {
	d := geom.ParaCentre(src, pool).Sub(eye)
	l := d.Len()
	if l == 0 {
		return 0, geom.Vertex{}, 0, degenerateCameraf("eye coincides with patch centre")
	}
	dir = d.Scale(1.0 / l)
	area = math.Max(0, geom.Dot(geom.ParaCross(src, pool), dir))
	return area, dir, l * l, nil
}

// CalcAllLights builds the full n x n transfer matrix: for each target i,
// a camera is placed at i's centre, looking inward along -paraCross(i),
// and Light is evaluated against every source j != i.
func (AnalyticOracle) CalcAllLights(patches []geom.Patch, pool *geom.Pool) (Matrix, error) {
	n := len(patches)
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		eye := geom.ParaCentre(patches[i], pool)
		lookHat, err := geom.ParaCross(patches[i], pool).Scale(-1).Norm()
		if err != nil {
			return nil, degenerateCameraf("target patch %d: %v", i, err)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := Light(patches[j], pool, eye, lookHat)
			if err != nil {
				// A source patch whose centre coincides with the
				// target's (shouldn't happen in a non-degenerate
				// scene) contributes nothing rather than aborting
				// the whole matrix build.
				continue
			}
			m[i][j] = v
		}
	}
	return m, nil
}
