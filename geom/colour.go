// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Colour is a linear RGB triple. Components aren't clamped to [0, 1]: a
// radiosity value of (2, 2, 2) on an emitter is perfectly legal.
type Colour struct {
	R, G, B float64
}

// NewColour builds a Colour from its three channels.
func NewColour(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// Scale returns c multiplied by the scalar s.
func (c Colour) Scale(s float64) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise (Hadamard) product of c and o, used to
// modulate an incoming light contribution by a material's reflectance.
func (c Colour) Mul(o Colour) Colour {
	return Colour{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Add returns c + o.
func (c Colour) Add(o Colour) Colour {
	return Colour{c.R + o.R, c.G + o.G, c.B + o.B}
}

// AccumInto adds c into *acc in place.
func (c Colour) AccumInto(acc *Colour) {
	acc.R += c.R
	acc.G += c.G
	acc.B += c.B
}

// AsGrey projects c onto a scalar luminance using Rec. 709 coefficients.
func (c Colour) AsGrey() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Max returns the largest of the three channels.
func (c Colour) Max() float64 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}
