// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lmhfe runs the scenario-6 boundary-value problem from spec.md
// §8 on a rectangular mesh whose dimensions are read from stdin, stepping LMHFE a fixed
// number of times and reporting the cell solution's mean and extremes
// at every step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/GregTheMadMonk/lmhfe-diffprog/gmres"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mesh"
	"github.com/GregTheMadMonk/lmhfe-diffprog/mhfe"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	nsteps := flag.Int("nsteps", 10, "number of LMHFE time steps to run")
	flag.Parse()

	io.Pfwhite("\nlmhfe -- LMHFE 2D parabolic diffusion solver\n\n")

	var nx, ny int
	var x, y, tau float64
	if _, err := fmt.Fscan(os.Stdin, &nx, &ny, &x, &y, &tau); err != nil {
		chk.Panic("lmhfe: failed to read \"Nx Ny X Y tau\" from stdin: %v", err)
	}

	m, err := mesh.GenRect(nx, ny, x, y)
	if err != nil {
		chk.Panic("lmhfe: GenRect(%d,%d,%g,%g): %v", nx, ny, x, y, err)
	}
	m.Direct()

	p := scenario6(m, tau, x, y)
	if err := p.Validate(); err != nil {
		chk.Panic("lmhfe: %v", err)
	}

	solver, err := mhfe.New(p)
	if err != nil {
		chk.Panic("lmhfe: %v", err)
	}

	opts := gmres.Options{
		MaxIters: len(m.Edges) * 10,
		RestartM: 20,
		TolAbs:   1e-12,
		TolRel:   1e-9,
	}

	for step := 1; step <= *nsteps; step++ {
		if err := solver.Step(opts); err != nil {
			chk.Panic("lmhfe: step %d: %v", step, err)
		}
		P, _ := solver.Solution()
		mean, lo, hi := summarize(P)
		io.Pf("step %3d  t=%8.4f  mean(P)=%10.6f  min(P)=%10.6f  max(P)=%10.6f\n",
			step, solver.GetTime(), mean, lo, hi)
	}

	io.Pfgreen("\ndone: %d steps, %d cells, %d edges\n", *nsteps, len(m.Cells), len(m.Edges))
}

// scenario6 applies spec.md §8 scenario 6's boundary conditions to a
// rectangular mesh generated over [0,X]×[0,Y]: Dirichlet P=1 on the
// x=0 segment Y/10 < y < 9Y/10 (1 < y < 9 for Y=10; 0 elsewhere on x=0),
// Dirichlet P=0 on x=X, and zero-flux Neumann on y=0 and y=Y.
func scenario6(m *mesh.Mesh, tau, x, y float64) *mhfe.Problem {
	p := mhfe.NewProblem(m, tau)
	lo, hi := y/10, 9*y/10
	for e, edge := range m.Edges {
		if !edge.IsBoundary() {
			continue
		}
		p1 := m.Points[edge.Points[0]]
		d := m.GetEdgeDir(e)
		switch {
		case d[0] == 0:
			// vertical edge: on x=0 or x=X
			p.DirichletMask[e] = true
			if p1[0] == 0 {
				mid := p1[1] + d[1]/2
				if mid > lo && mid < hi {
					p.Dirichlet[e] = 1
				}
			}
		case d[1] == 0:
			// horizontal edge: on y=0 or y=Y
			p.NeumannMask[e] = true
		}
	}
	return p
}

func summarize(P []float64) (mean, lo, hi float64) {
	lo, hi = P[0], P[0]
	for _, v := range P {
		mean += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	mean /= float64(len(P))
	return
}
