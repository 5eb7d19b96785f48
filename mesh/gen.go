// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"

// GenRect builds an Nx×Ny grid of rectangles over [0,X]×[0,Y], each split
// into two right triangles along the {(i,j+1)–(i+1,j)} diagonal, per
// spec.md §4.3. Point (i, j) sits at (i·X/Nx, j·Y/Ny).
func GenRect(Nx, Ny int, X, Y float64) (*Mesh, error) {
	if Nx <= 0 || Ny <= 0 {
		return nil, lmerr.New(lmerr.InvalidArgument, "GenRect: Nx and Ny must be positive, got Nx=%d Ny=%d", Nx, Ny)
	}
	if X <= 0 || Y <= 0 {
		return nil, lmerr.New(lmerr.InvalidArgument, "GenRect: X and Y must be positive, got X=%g Y=%g", X, Y)
	}

	pid := func(i, j int) int { return i + (Nx+1)*j }

	nH := Nx * (Ny + 1)
	nV := (Nx + 1) * Ny
	nD := Nx * Ny
	vBase, dBase := nH, nH+nV

	hIdx := func(i, j int) int { return i + Nx*j }
	vIdx := func(i, j int) int { return vBase + i + (Nx+1)*j }
	dIdx := func(i, j int) int { return dBase + i + Nx*j }

	m := &Mesh{
		Points: make([]Point, (Nx+1)*(Ny+1)),
		Edges:  make([]Edge, nH+nV+nD),
		Cells:  make([]Cell, 2*Nx*Ny),
	}

	for j := 0; j <= Ny; j++ {
		for i := 0; i <= Nx; i++ {
			m.Points[pid(i, j)] = Point{float64(i) * X / float64(Nx), float64(j) * Y / float64(Ny)}
		}
	}

	for i := range m.Edges {
		m.Edges[i].Cells = [2]int{NoCell, NoCell}
	}

	for j := 0; j <= Ny; j++ {
		for i := 0; i < Nx; i++ {
			m.Edges[hIdx(i, j)].Points = [2]int{pid(i, j), pid(i+1, j)}
		}
	}
	for j := 0; j < Ny; j++ {
		for i := 0; i <= Nx; i++ {
			m.Edges[vIdx(i, j)].Points = [2]int{pid(i, j), pid(i, j+1)}
		}
	}
	for j := 0; j < Ny; j++ {
		for i := 0; i < Nx; i++ {
			m.Edges[dIdx(i, j)].Points = [2]int{pid(i, j+1), pid(i+1, j)}
		}
	}

	lower := func(i, j int) int { return 2 * (i + Nx*j) }
	upper := func(i, j int) int { return 2*(i+Nx*j) + 1 }

	for j := 0; j < Ny; j++ {
		for i := 0; i < Nx; i++ {
			m.Cells[lower(i, j)] = Cell{
				Points: [3]int{pid(i, j), pid(i+1, j), pid(i, j+1)},
				Edges:  [3]int{dIdx(i, j), vIdx(i, j), hIdx(i, j)},
			}
			m.Cells[upper(i, j)] = Cell{
				Points: [3]int{pid(i+1, j), pid(i+1, j+1), pid(i, j+1)},
				Edges:  [3]int{hIdx(i, j+1), dIdx(i, j), vIdx(i+1, j)},
			}
		}
	}

	setAdj := func(e, cellLo, cellHi int) {
		slot := 0
		if cellLo != NoCell {
			m.Edges[e].Cells[slot] = cellLo
			slot++
		}
		if cellHi != NoCell {
			m.Edges[e].Cells[slot] = cellHi
		}
	}

	for j := 0; j <= Ny; j++ {
		for i := 0; i < Nx; i++ {
			below, above := NoCell, NoCell
			if j < Ny {
				below = lower(i, j)
			}
			if j-1 >= 0 {
				above = upper(i, j-1)
			}
			setAdj(hIdx(i, j), below, above)
		}
	}
	for j := 0; j < Ny; j++ {
		for i := 0; i <= Nx; i++ {
			right, left := NoCell, NoCell
			if i < Nx {
				right = lower(i, j)
			}
			if i-1 >= 0 {
				left = upper(i-1, j)
			}
			setAdj(vIdx(i, j), right, left)
		}
	}
	for j := 0; j < Ny; j++ {
		for i := 0; i < Nx; i++ {
			setAdj(dIdx(i, j), lower(i, j), upper(i, j))
		}
	}

	return m, nil
}
