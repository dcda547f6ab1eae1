// Copyright 2024 The Radiosity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xfer computes the n x n transfer matrix of form factors between
// patches, via two interchangeable oracles: an analytic point-to-patch
// approximation (§4.E) and a rasterisation-based hemicube oracle that
// resolves occlusion (§4.F).
package xfer

import "github.com/cpmech/gosl/la"

// Matrix is the dense n x n transfer matrix: Matrix[i][j] is the fraction
// of radiant power leaving patch j that arrives at patch i. It is built on
// la.MatAlloc/la.MatFill, the same dense-matrix storage the teacher uses
// for element stiffness matrices.
type Matrix [][]float64

// NewMatrix allocates a zeroed n x n transfer matrix.
func NewMatrix(n int) Matrix {
	m := la.MatAlloc(n, n)
	la.MatFill(m, 0)
	return Matrix(m)
}

// N returns the matrix's dimension.
func (m Matrix) N() int {
	return len(m)
}

// RowSums returns, for each i, sum_j m[i][j] — used to check energy
// conservation (§3: sum_j T[i][j] <= 1 + eps for a closed scene).
func (m Matrix) RowSums() []float64 {
	n := m.N()
	sums := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m[i][j]
			if v != v { // NaN: treat as zero, per §7.
				continue
			}
			sums[i] += v
		}
	}
	return sums
}
