// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sensitivity

import (
	"math"
	"testing"

	"github.com/GregTheMadMonk/lmhfe-diffprog/gmres"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mesh"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mhfe"
)

func smallProblem(t *testing.T) *mhfe.Problem {
	t.Helper()
	m, err := mesh.GenRect(6, 4, 6, 4)
	if err != nil {
		t.Fatalf("GenRect: %v", err)
	}
	m.Direct()
	p := mhfe.NewProblem(m, 0.1)
	for e, edge := range m.Edges {
		if !edge.IsBoundary() {
			continue
		}
		p1 := m.Points[edge.Points[0]]
		d := m.GetEdgeDir(e)
		switch {
		case d[0] == 0:
			p.DirichletMask[e] = true
			mid := p1[1] + d[1]/2
			if p1[0] == 0 && mid > 1 && mid < 3 {
				p.Dirichlet[e] = 1
			}
		case d[1] == 0:
			p.NeumannMask[e] = true
		}
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return p
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func runFwdDiff(t *testing.T, p *mhfe.Problem, steps int) float64 {
	t.Helper()
	gWrtP := func(P []float64, out []float64) {
		for i := range out {
			out[i] = 1 / float64(len(P))
		}
	}
	gWrtA := func(out []float64) {
		for i := range out {
			out[i] = 0
		}
	}
	fd, err := NewFwdDiff(p.Clone(), gWrtP, gWrtA, nil)
	if err != nil {
		t.Fatalf("NewFwdDiff: %v", err)
	}
	opts := gmres.Options{MaxIters: len(p.Mesh.Edges) * 10, RestartM: 20, TolAbs: 1e-10, TolRel: 1e-10}
	for i := 0; i < steps; i++ {
		if err := fd.Step(opts); err != nil {
			t.Fatalf("FwdDiff.Step %d: %v", i, err)
		}
	}
	return fd.Sensitivity()
}

func runFinDiffMean(t *testing.T, p *mhfe.Problem, h float64, steps int) float64 {
	t.Helper()
	fd, err := NewFinDiff(p.Clone(), h, false, nil)
	if err != nil {
		t.Fatalf("NewFinDiff: %v", err)
	}
	opts := gmres.Options{MaxIters: len(p.Mesh.Edges) * 10, RestartM: 20, TolAbs: 1e-10, TolRel: 1e-10}
	var sum float64
	for i := 0; i < steps; i++ {
		if err := fd.Step(opts); err != nil {
			t.Fatalf("FinDiff.Step %d: %v", i, err)
		}
		sum += fd.Sensitivity(mean)
	}
	return sum
}

// TestFinDiffApproachesFwdDiff checks the universal property from
// spec.md §8: as h → 0, one-sided FinDiff's estimate of d(mean P)/ds
// approaches FwdDiff's tangent-propagated value.
//
// FwdDiff accumulates dg/ds = d(mean P)/ds summed over every step (its
// g is the mean functional), so it is compared against FinDiff's
// mean-reducer estimate summed after each of the same number of steps.
func TestFinDiffApproachesFwdDiff(t *testing.T) {
	p := smallProblem(t)
	const steps = 5

	fwd := runFwdDiff(t, p, steps)

	h1 := runFinDiffMean(t, p, 0.02, steps)
	h2 := runFinDiffMean(t, p, 0.005, steps)

	d1 := math.Abs(h1 - fwd)
	d2 := math.Abs(h2 - fwd)

	if d2 >= d1 {
		t.Fatalf("expected FinDiff to approach FwdDiff as h shrinks: |h=0.02 diff|=%v, |h=0.005 diff|=%v", d1, d2)
	}
}

func TestFinDiffCentralAndOneSidedAgreeToFirstOrder(t *testing.T) {
	p := smallProblem(t)
	const h = 0.01
	const steps = 3

	central, err := NewFinDiff(p.Clone(), h, true, nil)
	if err != nil {
		t.Fatalf("NewFinDiff central: %v", err)
	}
	oneSided, err := NewFinDiff(p.Clone(), h, false, nil)
	if err != nil {
		t.Fatalf("NewFinDiff one-sided: %v", err)
	}
	opts := gmres.Options{MaxIters: len(p.Mesh.Edges) * 10, RestartM: 20, TolAbs: 1e-10, TolRel: 1e-10}
	for i := 0; i < steps; i++ {
		if err := central.Step(opts); err != nil {
			t.Fatalf("central.Step: %v", err)
		}
		if err := oneSided.Step(opts); err != nil {
			t.Fatalf("oneSided.Step: %v", err)
		}
	}

	sc := central.Sensitivity(mean)
	so := oneSided.Sensitivity(mean)
	if math.Abs(sc-so) > 0.5*math.Abs(sc)+1e-6 {
		t.Fatalf("central (%v) and one-sided (%v) sensitivities should roughly agree at h=%v", sc, so, h)
	}
}
