// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/fun"

// BoundaryProfile evaluates f at the midpoint of every edge and returns
// the per-edge array, so boundary data for a Problem can be described as
// a closed-form function of (x, y) instead of by hand, the way gofem's
// elements consume boundary conditions through a fun.Func (see
// ele/diffusion's Sfun field in the teacher repository).
func BoundaryProfile(m *Mesh, f fun.Func, t float64) []float64 {
	out := make([]float64, len(m.Edges))
	for e, edge := range m.Edges {
		p1 := m.Points[edge.Points[0]]
		p2 := m.Points[edge.Points[1]]
		mid := []float64{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
		out[e] = f.F(t, mid)
	}
	return out
}
