// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhfe

import (
	"testing"

	"github.com/GregTheMadMonk/lmhfe-diffprog/mesh"
)

func TestEmptyProblemInvalid(t *testing.T) {
	p := &Problem{}
	if err := p.Validate(); err == nil {
		t.Fatal("zero-value Problem should fail Validate")
	}
}

func TestNewProblemValidOnceBoundaryConditionsSet(t *testing.T) {
	m, err := mesh.GenRect(4, 3, 4, 3)
	if err != nil {
		t.Fatalf("GenRect: %v", err)
	}
	m.Direct()
	p := NewProblem(m, 0.1)

	for e, edge := range m.Edges {
		if !edge.IsBoundary() {
			continue
		}
		p.NeumannMask[e] = true
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNewProblemRejectsMissingBoundaryCondition(t *testing.T) {
	m, err := mesh.GenRect(2, 2, 1, 1)
	if err != nil {
		t.Fatalf("GenRect: %v", err)
	}
	p := NewProblem(m, 0.1)
	if err := p.Validate(); err == nil {
		t.Fatal("Problem with no boundary conditions set should fail Validate")
	}
}

// scenario6Problem builds the test fixture shared by the original
// source's test/mhfe/lmhfe.cc: a 40×20 mesh over [0,20]×[0,10], τ=0.1,
// Dirichlet 1 on the x=0 segment 1<y<9 (0 elsewhere on that edge and on
// x=20), Neumann 0 (insulated) on y=0 and y=10.
func scenario6Problem(t *testing.T) *Problem {
	t.Helper()
	m, err := mesh.GenRect(40, 20, 20, 10)
	if err != nil {
		t.Fatalf("GenRect: %v", err)
	}
	m.Direct()

	p := NewProblem(m, 0.1)
	for e, edge := range m.Edges {
		if !edge.IsBoundary() {
			continue
		}
		p1 := m.Points[edge.Points[0]]
		d := m.GetEdgeDir(e)
		switch {
		case d[0] == 0: // vertical edge: x = const boundary
			p.DirichletMask[e] = true
			mid := p1[1] + d[1]/2
			if p1[0] == 0 && mid > 1 && mid < 9 {
				p.Dirichlet[e] = 1
			}
		case d[1] == 0: // horizontal edge: y = const boundary
			p.NeumannMask[e] = true
		}
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("scenario6 Problem should validate: %v", err)
	}
	return p
}
