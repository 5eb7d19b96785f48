// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sensitivity

import (
	"github.com/GregTheMadMonk/lmhfe-diffprog/gmres"
	"github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mesh"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mhfe"
)

// GWrtP writes ∂g/∂P (length |cells|) given the current primal solution.
type GWrtP func(P []float64, out []float64)

// GWrtA writes ∂g/∂a (length |cells|), independent of the solution.
type GWrtA func(out []float64)

// FwdDiff propagates a tangent (dP, dTP) alongside the primal (P, TP)
// through LMHFE.Step, differentiating the assembly with respect to a
// scalar parameter s that perturbs a along Direction (spec.md §4.5).
type FwdDiff struct {
	Primal    *mhfe.LMHFE
	Direction []float64

	dP, dTP []float64
	gWrtP   GWrtP
	gWrtA   GWrtA
	accum   float64
}

// NewFwdDiff builds a FwdDiff over Problem p. direction defaults to the
// uniform direction (da[cell]/ds = 1 for every cell) when nil.
func NewFwdDiff(p *mhfe.Problem, gWrtP GWrtP, gWrtA GWrtA, direction []float64) (*FwdDiff, error) {
	primal, err := mhfe.New(p)
	if err != nil {
		return nil, err
	}
	u := direction
	if u == nil {
		u = make([]float64, len(p.A))
		for i := range u {
			u[i] = 1
		}
	} else if len(u) != len(p.A) {
		return nil, lmerr.New(lmerr.InvalidArgument, "FwdDiff: direction must have length %d (|cells|), got %d", len(p.A), len(u))
	}
	return &FwdDiff{
		Primal:    primal,
		Direction: u,
		dP:        make([]float64, len(p.A)),
		dTP:       make([]float64, len(p.Mesh.Edges)),
		gWrtP:     gWrtP,
		gWrtA:     gWrtA,
	}, nil
}

// GetTime returns the primal solver's simulated time.
func (f *FwdDiff) GetTime() float64 { return f.Primal.GetTime() }

// Sensitivity returns the running accumulation of dg/ds across every
// Step call so far.
func (f *FwdDiff) Sensitivity() float64 { return f.accum }

// Step runs the primal step, then the tangent step described by
// spec.md §4.5: the tangent right-hand side is assembled by
// differentiating the primal cell contribution with respect to s, the
// tangent system reuses the primal's freshly assembled matrix, and the
// resulting dTP is used to reconstruct dP and accumulate dg/ds.
func (f *FwdDiff) Step(opts gmres.Options) error {
	p := f.Primal.Problem
	m := p.Mesh

	dPPrev := make([]float64, len(f.dP))
	copy(dPPrev, f.dP)
	PPrev := make([]float64, len(f.Primal.P))
	copy(PPrev, f.Primal.P)

	if err := f.Primal.Step(opts); err != nil {
		return err
	}
	P, TP := f.Primal.Solution()

	rPrime := make([]float64, len(m.Edges))
	for e, edge := range m.Edges {
		if p.IsDirichletDominant(e) {
			// Dirichlet data does not depend on s: dTP[e] stays pinned to
			// 0 by the identity row, exactly as TP[e] is pinned to
			// dirichlet[e] in the primal.
			continue
		}
		for _, c := range edge.Cells {
			if c != mesh.NoCell {
				f.accumulateTangentContribution(c, e, PPrev, dPPrev, TP, rPrime)
			}
		}
	}

	x0 := make([]float64, len(f.dTP))
	copy(x0, f.dTP)
	dTP, info := gmres.Solve(f.Primal.Matrix(), rPrime, x0, opts)
	if !info.Converged {
		return lmerr.New(lmerr.ConvergenceFailure, "FwdDiff.Step: tangent GMRES did not converge in %d iterations (residual=%g)", info.Iters, info.Residual)
	}
	f.dTP = dTP

	for c := range m.Cells {
		area, l, _ := f.Primal.Geometry(c)
		a, lambda := p.A[c], p.C[c]*area/p.Tau
		alpha := 3 / l
		beta := lambda + a*alpha
		u := f.Direction[c]

		dp := lambda*dPPrev[c]/beta - lambda*PPrev[c]*u*alpha/(beta*beta)
		for _, e := range m.Cells[c].Edges {
			dp += a*f.dTP[e]/(beta*l) + u*lambda*TP[e]/(l*beta*beta)
		}
		f.dP[c] = dp
	}

	if f.gWrtP != nil || f.gWrtA != nil {
		gp := make([]float64, len(m.Cells))
		ga := make([]float64, len(m.Cells))
		if f.gWrtP != nil {
			f.gWrtP(P, gp)
		}
		if f.gWrtA != nil {
			f.gWrtA(ga)
		}
		for c := range m.Cells {
			f.accum += gp[c]*f.dP[c] + ga[c]*f.Direction[c]
		}
	}
	return nil
}

// accumulateTangentContribution adds cell's differentiated contribution
// to the tangent right-hand side r'[e]: the derivative of the primal's
// P_prev-driven term, plus the negated d(M)/ds·TP term (the tangent
// system reuses the primal matrix M rather than assembling dM directly,
// so its effect on TP is moved to the right-hand side — spec.md §4.5
// point 2).
func (f *FwdDiff) accumulateTangentContribution(cell, e int, PPrev, dPPrev, TP, rPrime []float64) {
	p := f.Primal.Problem
	m := p.Mesh
	area, l, r := f.Primal.Geometry(cell)

	a, lambda := p.A[cell], p.C[cell]*area/p.Tau
	alpha := 3 / l
	beta := lambda + a*alpha
	u := f.Direction[cell]

	// d/ds[ a·λ·P_prev / (ℓ·β) ], split into its dP_prev part (given
	// directly by spec.md) and its a-dependence part (using
	// 1 − a·α/β = λ/β).
	rPrime[e] += a * lambda * dPPrev[cell] / (l * beta)
	rPrime[e] += lambda * lambda * PPrev[cell] * u / (l * beta * beta)

	localE := f.Primal.LocalEdgeIndex(cell, e)
	for k, ge := range m.Cells[cell].Edges {
		b := mhfe.BInv(area, l, r[localE], r[k])
		dDelta := u*(b-2*a/(l*l*beta)) + a*a*u*alpha/(l*l*beta*beta)
		rPrime[e] -= dDelta * TP[ge]
	}
}
