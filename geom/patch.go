// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Patch is a planar parallelogram named by four vertex indices into a
// shared Pool. Winding i0, i1, i2, i3 must be such that the outward
// normal (v3-v0) x (v1-v0) points away from the enclosed region.
type Patch struct {
	Indices [4]int

	// MaterialColour is the reflectance (non-emitters) or emitted
	// radiance (emitters).
	MaterialColour Colour

	// ScreenColour is the current radiosity estimate, mutated in place
	// by the Jacobi iterator.
	ScreenColour Colour

	// IsEmitter marks a patch whose ScreenColour is forced every
	// iteration instead of being computed from incoming light.
	IsEmitter bool
}

// NewPatch builds a non-emitter Patch with the given material colour.
func NewPatch(i0, i1, i2, i3 int, material Colour) Patch {
	return Patch{
		Indices:        [4]int{i0, i1, i2, i3},
		MaterialColour: material,
	}
}

// Pool is the shared vertex pool that Patch.Indices refer into.
type Pool struct {
	Vertices []Vertex
}

// Add appends v to the pool and returns its index.
func (p *Pool) Add(v Vertex) int {
	p.Vertices = append(p.Vertices, v)
	return len(p.Vertices) - 1
}

// At retrieves the four corner vertices of q from the pool, in winding
// order (v0, v1, v2, v3).
func (q Patch) At(p *Pool) (v0, v1, v2, v3 Vertex) {
	return p.Vertices[q.Indices[0]], p.Vertices[q.Indices[1]],
		p.Vertices[q.Indices[2]], p.Vertices[q.Indices[3]]
}

// ParaCentre returns the centre of q, the midpoint of its i0-i2 diagonal.
func ParaCentre(q Patch, p *Pool) Vertex {
	v0 := p.Vertices[q.Indices[0]]
	v2 := p.Vertices[q.Indices[2]]
	return Lerp(v0, v2, 0.5)
}

// ParaCross returns the area-normal of q: a vector normal to the
// parallelogram whose length is its area. Its direction is the outward
// normal for correctly wound patches.
func ParaCross(q Patch, p *Pool) Vertex {
	v0 := p.Vertices[q.Indices[0]]
	v1 := p.Vertices[q.Indices[1]]
	v3 := p.Vertices[q.Indices[3]]
	return Cross(v3.Sub(v0), v1.Sub(v0))
}

// ParaArea returns the area of parallelogram q. It fails with
// ErrDegenerateQuad if q's area-normal has zero length.
func ParaArea(q Patch, p *Pool) (float64, error) {
	area := ParaCross(q, p).Len()
	if area == 0 {
		return 0, degenerateQuadf("patch %v has zero area", q.Indices)
	}
	return area, nil
}

// UnitNormal returns the normalised area-normal of q. It fails with
// ErrDegenerateQuad if q is degenerate; the underlying ErrDegenerateVector
// appears only in the message text and is not wrapped.
func UnitNormal(q Patch, p *Pool) (Vertex, error) {
	n, err := ParaCross(q, p).Norm()
	if err != nil {
		return Vertex{}, degenerateQuadf("patch %v has no well-defined normal: %v", q.Indices, err)
	}
	return n, nil
}
