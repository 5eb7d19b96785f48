// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mhfe

import (
	"github.com/GregTheMadMonk/lmhfe-diffprog/gmat"
	"github.com/GregTheMadMonk/lmhfe-diffprog/gmres"
	"github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mesh"
)

// LMHFE is the primal diffusion solver: P over cells, TP over edges,
// advanced one τ at a time by Step (spec.md §4.4).
type LMHFE struct {
	Problem *Problem

	P, TP []float64
	t     float64

	geom []cellGeom
	sys  *gmat.CSR
}

// New builds an LMHFE over a validated Problem, precomputing cell
// geometry and the CSR row capacities (spec.md §4.4 step 3), both of
// which depend only on the mesh and boundary masks and so never change
// across Step calls.
func New(p *Problem) (*LMHFE, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ne := len(p.Mesh.Edges)
	s := &LMHFE{
		Problem: p,
		P:       make([]float64, len(p.Mesh.Cells)),
		TP:      make([]float64, ne),
		geom:    buildCellGeom(p.Mesh),
		sys:     gmat.NewCSR(ne, ne),
	}
	s.sys.SetCapacities(rowCapacities(p))
	return s, nil
}

// GetTime returns the current simulated time.
func (s *LMHFE) GetTime() float64 { return s.t }

// Solution returns the current cell solution P and edge solution TP.
func (s *LMHFE) Solution() (P, TP []float64) { return s.P, s.TP }

// Matrix returns the CSR system matrix assembled by the most recent
// Step. FwdDiff reuses it verbatim for the tangent solve (spec.md §4.5
// point 2: "The system matrix for the tangent solve is the SAME M").
func (s *LMHFE) Matrix() *gmat.CSR { return s.sys }

func rowCapacities(p *Problem) []int {
	caps := make([]int, len(p.Mesh.Edges))
	for e, edge := range p.Mesh.Edges {
		if p.IsDirichletDominant(e) {
			caps[e] = 1
			continue
		}
		n := 0
		for _, c := range edge.Cells {
			if c != mesh.NoCell {
				n++
			}
		}
		caps[e] = 1 + 2*n
	}
	return caps
}

// Step assembles and solves one time step, per spec.md §4.4. On GMRES
// non-convergence it returns a ConvergenceFailure and leaves P, TP, t
// untouched (spec.md §7).
func (s *LMHFE) Step(opts gmres.Options) error {
	p := s.Problem
	m := p.Mesh

	PPrev := make([]float64, len(s.P))
	copy(PPrev, s.P)

	s.sys.Reset()
	r := make([]float64, len(m.Edges))

	contribute := func(cell, e int) {
		s.accumulateCellContribution(cell, e, PPrev, r)
	}

	for e, edge := range m.Edges {
		dMask, nMask := p.DirichletMask[e], p.NeumannMask[e]
		switch {
		case dMask:
			*s.sys.Ref(e, e) += 1
			r[e] += p.Dirichlet[e]
			if p.NeumannOnDirichlet && nMask {
				for _, c := range edge.Cells {
					if c != mesh.NoCell {
						contribute(c, e)
					}
				}
				r[e] += p.Neumann[e]
			}
		case nMask:
			for _, c := range edge.Cells {
				if c != mesh.NoCell {
					contribute(c, e)
				}
			}
			r[e] += p.Neumann[e]
		default:
			for _, c := range edge.Cells {
				if c != mesh.NoCell {
					contribute(c, e)
				}
			}
		}
	}

	x0 := make([]float64, len(s.TP))
	copy(x0, s.TP)
	tp, info := gmres.Solve(s.sys, r, x0, opts)
	if !info.Converged {
		return lmerr.New(lmerr.ConvergenceFailure, "LMHFE.Step: GMRES did not converge in %d iterations (residual=%g)", info.Iters, info.Residual)
	}
	s.TP = tp

	for c := range m.Cells {
		g := s.geom[c]
		lambda := p.C[c] * g.area / p.Tau
		alpha := 3 / g.l
		beta := lambda + p.A[c]*alpha
		pc := lambda * PPrev[c] / beta
		for _, e := range m.Cells[c].Edges {
			pc += p.A[c] * s.TP[e] / beta / g.l
		}
		s.P[c] = pc
	}
	s.t += p.Tau
	return nil
}

// accumulateCellContribution is the "cell contribution" step of
// spec.md §4.4: for edge e and one of its adjacent cells, it adds
// a·(B⁻¹(e,g,cell) − a/(ℓ²β)) to M[e,g] for every local edge g of the
// cell, and a·λ·P_prev[cell]/(ℓ·β) to r[e].
func (s *LMHFE) accumulateCellContribution(cell, e int, PPrev, r []float64) {
	p := s.Problem
	m := p.Mesh
	g := s.geom[cell]

	lambda := p.C[cell] * g.area / p.Tau
	alpha := 3 / g.l
	beta := lambda + p.A[cell]*alpha
	a := p.A[cell]

	localE := localEdgeIndex(m, cell, e)
	for k, ge := range m.Cells[cell].Edges {
		b := bInv(g, localE, k)
		delta := a * (b - a/(g.l*g.l*beta))
		*s.sys.Ref(e, ge) += delta
	}
	r[e] += a * lambda * PPrev[cell] / (g.l * beta)
}
