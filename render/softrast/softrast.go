// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softrast implements render.Renderer with a CPU z-buffered
// scanline rasteriser, so the raster form-factor oracle doesn't need a
// process-wide graphics context: per §9's Design Notes, the original's
// dependency on a global OpenGL context is a source-ecosystem artefact,
// not an inherent property of the oracle.
package softrast

import (
	"math"

	"github.com/simon-frankau/radiosity/geom"
	"github.com/simon-frankau/radiosity/render"
)

const (
	near = 0.001
	far  = 10.0
)

// SoftRast is a CPU rasteriser implementing render.Renderer: an off-screen
// RGBA8 colour buffer plus a depth buffer, flat-shaded, back-face culled,
// with a fixed 90-degree FOV perspective projection (unit aspect).
type SoftRast struct {
	resolution int
	colour     []byte
	depth      []float64
	modelView  render.Mat4
}

// New allocates an un-configured rasteriser; call Setup before use.
func New() *SoftRast {
	return &SoftRast{modelView: render.Identity()}
}

// Setup implements render.Renderer.
func (s *SoftRast) Setup(resolution int) error {
	if resolution <= 0 {
		return renderContextFailuref("resolution must be positive, got %d", resolution)
	}
	s.resolution = resolution
	s.colour = make([]byte, resolution*resolution*4)
	s.depth = make([]float64, resolution*resolution)
	return nil
}

// Clear implements render.Renderer.
func (s *SoftRast) Clear() {
	for i := range s.colour {
		s.colour[i] = 0
	}
	for i := range s.depth {
		s.depth[i] = math.Inf(1)
	}
}

// SetModelView implements render.Renderer.
func (s *SoftRast) SetModelView(m render.Mat4) {
	s.modelView = m
}

// DrawFlatQuad implements render.Renderer.
func (s *SoftRast) DrawFlatQuad(v0, v1, v2, v3 geom.Vertex, rgb [3]byte) {
	c0 := s.modelView.Apply(v0)
	c1 := s.modelView.Apply(v1)
	c2 := s.modelView.Apply(v2)
	c3 := s.modelView.Apply(v3)

	// Back-face cull: keep the quad only if its (camera-space) outward
	// normal has a positive component along the direction from the
	// camera (at the origin, in camera space) to the quad's centre —
	// the same front-facing test the analytic oracle applies in world
	// space (§4.E).
	normal := geom.Cross(c3.Sub(c0), c1.Sub(c0))
	centre := geom.Lerp(c0, c2, 0.5)
	if geom.Dot(normal, centre) <= 0 {
		return
	}

	s.rasterTriangle(c0, c1, c2, rgb)
	s.rasterTriangle(c0, c2, c3, rgb)
}

// ReadPixels implements render.Renderer.
func (s *SoftRast) ReadPixels() []byte {
	out := make([]byte, len(s.colour))
	copy(out, s.colour)
	return out
}

// Destroy implements render.Renderer.
func (s *SoftRast) Destroy() {
	s.colour = nil
	s.depth = nil
}

// project maps a camera-space point (forward == +Z) to pixel coordinates
// (fx, fy, in [0, resolution)), plus the camera-space depth used for the
// z-buffer test. Since the fixed FOV is 90 degrees, tan(45deg) == 1, so
// the perspective divide is simply x/z, y/z (matching the weighting
// tables' px, py terms exactly).
func (s *SoftRast) project(c geom.Vertex) (fx, fy, z float64) {
	res := float64(s.resolution)
	ndcX := c.X / c.Z
	ndcY := c.Y / c.Z
	fx = (ndcX + 1) * 0.5 * res
	fy = (ndcY + 1) * 0.5 * res
	return fx, fy, c.Z
}

func (s *SoftRast) rasterTriangle(c0, c1, c2 geom.Vertex, rgb [3]byte) {
	if c0.Z <= near || c1.Z <= near || c2.Z <= near {
		// Cheap near-plane handling: reject triangles that aren't
		// entirely in front of the camera, rather than clipping them.
		return
	}
	if c0.Z > far && c1.Z > far && c2.Z > far {
		return
	}

	x0, y0, z0 := s.project(c0)
	x1, y1, z1 := s.project(c1)
	x2, y2, z2 := s.project(c2)

	res := s.resolution
	minX := clampInt(int(math.Floor(minOf3(x0, x1, x2))), 0, res)
	maxX := clampInt(int(math.Ceil(maxOf3(x0, x1, x2))), 0, res)
	minY := clampInt(int(math.Floor(minOf3(y0, y1, y2))), 0, res)
	maxY := clampInt(int(math.Ceil(maxOf3(y0, y1, y2))), 0, res)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}

	invZ0, invZ1, invZ2 := 1.0/z0, 1.0/z1, 1.0/z2

	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(x1, y1, x2, y2, px, py)
			w1 := edge(x2, y2, x0, y0, px, py)
			w2 := edge(x0, y0, x1, y1, px, py)

			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else {
				if w0 > 0 || w1 > 0 || w2 > 0 {
					continue
				}
			}

			b0, b1, b2 := w0/area, w1/area, w2/area
			invZ := b0*invZ0 + b1*invZ1 + b2*invZ2
			z := 1.0 / invZ
			if z <= near || z > far {
				continue
			}

			idx := y*res + x
			if z < s.depth[idx] {
				s.depth[idx] = z
				ci := idx * 4
				s.colour[ci+0] = rgb[0]
				s.colour[ci+1] = rgb[1]
				s.colour[ci+2] = rgb[2]
				s.colour[ci+3] = 0xFF
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func minOf3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxOf3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
