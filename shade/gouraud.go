// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade converts the flat per-patch radiosity solution into a
// smoothly shaded mesh (§4.H) and rescales it to a display-friendly
// brightness range (§4.I).
package shade

import "github.com/simon-frankau/radiosity/geom"

// GouraudQuad is a single output quad with an independently interpolated
// colour at each of its four corners, wound the same way as geom.Patch
// (i0, i1, i2, i3).
type GouraudQuad struct {
	V0, V1, V2, V3 geom.Vertex
	C0, C1, C2, C3 geom.Colour
}

// colourAt looks up the colour that should be attributed to the corner of
// cell (u, v) offset by (offU, offV) in the 3x3 neighbourhood, per §4.H:
// neighbours are clamped to the base quad's sub-patch grid, and a
// neighbour whose emitter flag differs from the centre's is replaced by
// whichever matching single-axis neighbour still agrees with the centre
// (or by the centre itself, if neither does), so the emitter silhouette
// is never smeared across a flat-shading discontinuity.
func colourAt(patches []geom.Patch, faceStart, uCount, vCount, u, v, offU, offV int) geom.Colour {
	clamp := func(x, hi int) int {
		if x < 0 {
			return 0
		}
		if x >= hi {
			return hi - 1
		}
		return x
	}

	at := func(uu, vv int) geom.Patch {
		return patches[faceStart+vv*uCount+uu]
	}

	centre := at(u, v)

	nu := clamp(u+offU, uCount)
	nv := clamp(v+offV, vCount)
	neighbour := at(nu, nv)
	if neighbour.IsEmitter == centre.IsEmitter {
		return neighbour.ScreenColour
	}

	uOnly := at(clamp(u+offU, uCount), v)
	vOnly := at(u, clamp(v+offV, vCount))
	uMatches := uOnly.IsEmitter == centre.IsEmitter
	vMatches := vOnly.IsEmitter == centre.IsEmitter

	switch {
	case uMatches && vMatches:
		return uOnly.ScreenColour.Add(vOnly.ScreenColour).Scale(0.5)
	case uMatches:
		return uOnly.ScreenColour
	case vMatches:
		return vOnly.ScreenColour
	default:
		return centre.ScreenColour
	}
}

func avg(a, b geom.Colour) geom.Colour {
	return a.Add(b).Scale(0.5)
}

// soften blends a raw 3x3-neighbourhood sample toward the centre sample,
// horizontally first and then vertically, per §4.H: a pure corner sample
// (offset on both axes) is blended twice, a pure edge sample once, and the
// centre itself is left untouched.
func soften(sample, centre geom.Colour, offU, offV int) geom.Colour {
	out := sample
	if offU != 0 {
		out = avg(out, centre)
	}
	if offV != 0 {
		out = avg(out, centre)
	}
	return out
}

// fineVertex returns the position of vertex (fu, fv) of the
// (2*uCount+1) x (2*vCount+1) Gouraud vertex grid over base, built with
// the same bilinear interpolation as geom.Subdivide.
func fineVertex(base geom.Patch, pool *geom.Pool, uCount, vCount, fu, fv int) geom.Vertex {
	v0, v1, v2, v3 := base.At(pool)
	tu := float64(fu) / float64(2*uCount)
	tv := float64(fv) / float64(2*vCount)
	u0 := geom.Lerp(v0, v1, tu)
	u1 := geom.Lerp(v3, v2, tu)
	return geom.Lerp(u0, u1, tv)
}

// BuildGouraud reconstructs smoothly shaded geometry for every base quad
// described by infos, whose sub-patches (with solved screenColour values)
// live in patches. It returns the full list of output quads.
func BuildGouraud(infos []geom.SubdivInfo, patches []geom.Patch, pool *geom.Pool) []GouraudQuad {
	var out []GouraudQuad
	for _, info := range infos {
		out = append(out, buildGouraudForQuad(info, patches, pool)...)
	}
	return out
}

func buildGouraudForQuad(info geom.SubdivInfo, patches []geom.Patch, pool *geom.Pool) []GouraudQuad {
	quads := make([]GouraudQuad, 0, info.UCount*info.VCount*4)

	for v := 0; v < info.VCount; v++ {
		for u := 0; u < info.UCount; u++ {
			centre := patches[info.FaceStart+v*info.UCount+u].ScreenColour

			var softened [3][3]geom.Colour
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					s := colourAt(patches, info.FaceStart, info.UCount, info.VCount, u, v, ox, oy)
					softened[oy+1][ox+1] = soften(s, centre, ox, oy)
				}
			}

			fu0, fv0 := 2*u, 2*v
			pos := func(du, dv int) geom.Vertex {
				return fineVertex(info.Base, pool, info.UCount, info.VCount, fu0+du, fv0+dv)
			}
			col := func(du, dv int) geom.Colour { return softened[dv][du] }

			quads = append(quads,
				GouraudQuad{
					V0: pos(0, 0), V1: pos(1, 0), V2: pos(1, 1), V3: pos(0, 1),
					C0: col(0, 0), C1: col(1, 0), C2: col(1, 1), C3: col(0, 1),
				},
				GouraudQuad{
					V0: pos(1, 0), V1: pos(2, 0), V2: pos(2, 1), V3: pos(1, 1),
					C0: col(1, 0), C1: col(2, 0), C2: col(2, 1), C3: col(1, 1),
				},
				GouraudQuad{
					V0: pos(0, 1), V1: pos(1, 1), V2: pos(1, 2), V3: pos(0, 2),
					C0: col(0, 1), C1: col(1, 1), C2: col(1, 2), C3: col(0, 2),
				},
				GouraudQuad{
					V0: pos(1, 1), V1: pos(2, 1), V2: pos(2, 2), V3: pos(1, 2),
					C0: col(1, 1), C1: col(2, 1), C2: col(2, 2), C3: col(1, 2),
				},
			)
		}
	}

	return quads
}
