// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the unstructured triangular mesh spec.md §3/§4.3
// describes: Points, Edges, Cells, geometric queries, rectangular mesh
// generation, serialization and validation.
package mesh

import (
	"math"
)

// NoCell is the sentinel adjacency value marking "no cell on this side".
const NoCell = -1

// Point is an immutable (x, y) coordinate pair.
type Point [2]float64

// Edge holds the two point indices (storage order defines the canonical
// direction used by GetEdgeDir) and the two adjacent cell indices, one of
// which is NoCell for a boundary edge.
type Edge struct {
	Points [2]int
	Cells  [2]int
}

// IsBoundary reports whether exactly one adjacency is NoCell.
func (e Edge) IsBoundary() bool {
	return (e.Cells[0] == NoCell) != (e.Cells[1] == NoCell)
}

// Cell is a triangle: three point indices and three edge indices, where
// edge k is the edge opposite point k (it does not contain point k).
type Cell struct {
	Points [3]int
	Edges  [3]int
}

// Mesh is an ordered collection of points, edges and cells with the
// invariants spec.md §3 lists: every edge/cell index in range, cell
// edges matching cell points, and (edge, cell) adjacency agreeing with
// the cell's own edge list.
type Mesh struct {
	Points []Point
	Edges  []Edge
	Cells  []Cell
}

// CellMeasure returns the area of triangle c: ½·|(p2−p1)×(p3−p1)|.
func (m *Mesh) CellMeasure(c int) float64 {
	p := m.Cells[c].Points
	p1, p2, p3 := m.Points[p[0]], m.Points[p[1]], m.Points[p[2]]
	ux, uy := p2[0]-p1[0], p2[1]-p1[1]
	vx, vy := p3[0]-p1[0], p3[1]-p1[1]
	return 0.5 * math.Abs(ux*vy-uy*vx)
}

// CellCenter returns the centroid of triangle c.
func (m *Mesh) CellCenter(c int) Point {
	p := m.Cells[c].Points
	var center Point
	for _, idx := range p {
		center[0] += m.Points[idx][0]
		center[1] += m.Points[idx][1]
	}
	center[0] /= 3
	center[1] /= 3
	return center
}

// GetEdgeDir returns p2 − p1 for the stored point ordering of edge e.
func (m *Mesh) GetEdgeDir(e int) Point {
	pts := m.Edges[e].Points
	p1, p2 := m.Points[pts[0]], m.Points[pts[1]]
	return Point{p2[0] - p1[0], p2[1] - p1[1]}
}

// IsEdgeClockwise reports whether traversing edge e from its stored p1
// to p2 keeps cell c on the left: the cross product of the edge vector
// with (centroid − p1) is positive.
func (m *Mesh) IsEdgeClockwise(e, c int) bool {
	d := m.GetEdgeDir(e)
	p1 := m.Points[m.Edges[e].Points[0]]
	center := m.CellCenter(c)
	cx, cy := center[0]-p1[0], center[1]-p1[1]
	cross := d[0]*cy - d[1]*cx
	return cross > 0
}

// Direct canonicalizes every edge's direction: adjacency slot 0 always
// holds a cell (when the edge has any), and that cell sees the edge as
// clockwise (spec.md §4.3). Whether an edge is clockwise with respect to
// a cell is a property of the edge's own stored point order and that
// cell's centroid alone, so the fix is to flip the edge's point order,
// never to reorder the cell's own Points/Edges arrays. Returns the
// receiver so callers can chain it after a generator, mirroring
// mesh::gen_rect(...).direct() in the original source.
func (m *Mesh) Direct() *Mesh {
	for ei := range m.Edges {
		edge := &m.Edges[ei]
		c0, c1 := edge.Cells[0], edge.Cells[1]
		if c0 == NoCell && c1 != NoCell {
			c0, c1 = c1, c0
		}
		if c0 == NoCell {
			continue
		}
		if !m.IsEdgeClockwise(ei, c0) {
			edge.Points[0], edge.Points[1] = edge.Points[1], edge.Points[0]
		}
		edge.Cells[0], edge.Cells[1] = c0, c1
	}
	return m
}

// IsValid checks the invariants of spec.md §3.
func (m *Mesh) IsValid() bool {
	np, ne, nc := len(m.Points), len(m.Edges), len(m.Cells)
	for _, e := range m.Edges {
		for _, p := range e.Points {
			if p < 0 || p >= np {
				return false
			}
		}
		for _, c := range e.Cells {
			if c != NoCell && (c < 0 || c >= nc) {
				return false
			}
		}
	}
	for ci, cell := range m.Cells {
		for k := 0; k < 3; k++ {
			e := cell.Edges[k]
			if e < 0 || e >= ne {
				return false
			}
			// edge k must be the pair of the two points other than point k
			want := [2]int{cell.Points[(k+1)%3], cell.Points[(k+2)%3]}
			got := m.Edges[e].Points
			if !sameUnorderedPair(got, want) {
				return false
			}
			found := false
			for _, adj := range m.Edges[e].Cells {
				if adj == ci {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func sameUnorderedPair(a, b [2]int) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}
