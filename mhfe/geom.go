// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhfe

import "github.com/GregTheMadMonk/lmhfe-diffprog/mesh"

// cellGeom is the per-cell local geometry spec.md §4.4 needs: the cell's
// area, the three directed edge vectors (GetEdgeDir of the cell's own
// edges, in the cell's edge order) and the lumped scalar ℓ derived from
// them. It depends only on the mesh, never on a, c, or the time step, so
// it is computed once per cell when an LMHFE is built and reused by
// every Step.
type cellGeom struct {
	area float64
	l    float64
	r    [3][2]float64
}

func buildCellGeom(m *mesh.Mesh) []cellGeom {
	out := make([]cellGeom, len(m.Cells))
	for c := range m.Cells {
		out[c] = cellGeomFor(m, c)
	}
	return out
}

func cellGeomFor(m *mesh.Mesh, c int) cellGeom {
	var g cellGeom
	g.area = m.CellMeasure(c)
	var sqSum float64
	for k, e := range m.Cells[c].Edges {
		d := m.GetEdgeDir(e)
		g.r[k] = [2]float64{d[0], d[1]}
		sqSum += d[0]*d[0] + d[1]*d[1]
	}
	g.l = sqSum / (48 * g.area)
	return g
}

// bInv is the local inverse mass-matrix entry B⁻¹(a, b, cell), for a, b
// local edge indices (0, 1, 2) within the cell (spec.md §4.4).
func bInv(g cellGeom, a, b int) float64 {
	ra, rb := g.r[a], g.r[b]
	dot := ra[0]*rb[0] + ra[1]*rb[1]
	return dot/g.area + 1/(3*g.l)
}

// localEdgeIndex returns k such that mesh.Cells[cell].Edges[k] == e.
func localEdgeIndex(m *mesh.Mesh, cell, e int) int {
	for k, ge := range m.Cells[cell].Edges {
		if ge == e {
			return k
		}
	}
	return -1
}

// Geometry exposes the cached per-cell area, ℓ and directed edge vectors
// for package sensitivity, which needs the same local geometry to
// differentiate the assembly LMHFE.Step performs.
func (s *LMHFE) Geometry(cell int) (area, l float64, r [3][2]float64) {
	g := s.geom[cell]
	return g.area, g.l, g.r
}

// LocalEdgeIndex exposes localEdgeIndex for package sensitivity.
func (s *LMHFE) LocalEdgeIndex(cell, e int) int {
	return localEdgeIndex(s.Problem.Mesh, cell, e)
}

// BInv exposes bInv for package sensitivity, given raw geometry rather
// than the unexported cellGeom.
func BInv(area, l float64, ra, rb [2]float64) float64 {
	return bInv(cellGeom{area: area, l: l, r: [3][2]float64{ra, rb}}, 0, 1)
}
