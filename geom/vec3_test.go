// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec_len_norm(tst *testing.T) {

	chk.PrintTitle("vec_len_norm")

	v := Vertex{3, 4, 0}
	chk.Scalar(tst, "len", 1e-15, v.Len(), 5.0)

	n, err := v.Norm()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "norm.len", 1e-15, n.Len(), 1.0)

	_, err = (Vertex{}).Norm()
	if !errors.Is(err, ErrDegenerateVector) {
		tst.Fatalf("expected ErrDegenerateVector, got %v", err)
	}
}

func Test_vec_perp(tst *testing.T) {

	chk.PrintTitle("vec_perp")

	for _, v := range []Vertex{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {-5, 0.1, 9}} {
		p, err := v.Perp()
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		chk.Scalar(tst, "dot(v,perp)", 1e-12, Dot(v, p), 0.0)
		chk.Scalar(tst, "|perp|", 1e-12, p.Len(), 1.0)
	}
}

func Test_vec_lerp(tst *testing.T) {

	chk.PrintTitle("vec_lerp")

	a := Vertex{0, 0, 0}
	b := Vertex{4, 8, 12}

	r0 := Lerp(a, b, 0)
	chk.Vector(tst, "lerp(a,b,0)", 1e-15, []float64{r0.X, r0.Y, r0.Z}, []float64{a.X, a.Y, a.Z})

	r1 := Lerp(a, b, 1)
	chk.Vector(tst, "lerp(a,b,1)", 1e-15, []float64{r1.X, r1.Y, r1.Z}, []float64{b.X, b.Y, b.Z})

	rq := Lerp(a, b, 0.25)
	chk.Vector(tst, "lerp(a,b,0.25)", 1e-15, []float64{rq.X, rq.Y, rq.Z}, []float64{1, 2, 3})
}

func Test_vec_cross_dot(tst *testing.T) {

	chk.PrintTitle("vec_cross_dot")

	v := Vertex{1, 2, 3}
	z := Cross(v, v)
	chk.Vector(tst, "cross(v,v)", 1e-15, []float64{z.X, z.Y, z.Z}, []float64{0, 0, 0})

	a := Vertex{1, 0, 0}
	b := Vertex{0, 1, 0}
	c := Cross(a, b)
	chk.Scalar(tst, "|cross(a,b)|", 1e-15, c.Len(), a.Len()*b.Len())
	chk.Scalar(tst, "dot(a,b)", 1e-15, Dot(a, b), 0.0)
}
