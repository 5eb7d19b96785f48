// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gmres implements restarted GMRES(m) over any matrix exposed
// through a matvec operation, per spec.md §4.2. Both gmat.CSR and
// gmat.Dense satisfy MatVecer, so this package never needs to know which
// storage it is solving against.
package gmres

import (
	"math"

	"github.com/GregTheMadMonk/lmhfe-diffprog/gmat"
	"github.com/GregTheMadMonk/lmhfe-diffprog/lmerr"
)

// MatVecer is the minimal operator GMRES needs: y ← y + alpha·A·x.
type MatVecer interface {
	MatVec(x []float64, out []float64, alpha float64)
}

// Options controls restart length, tolerances and the iteration budget.
type Options struct {
	MaxIters int     // total inner iterations across all restarts
	RestartM int     // Arnoldi basis size before a restart
	TolAbs   float64 // absolute residual tolerance
	TolRel   float64 // relative residual tolerance (relative to ‖b‖)
}

// DefaultOptions matches spec.md §6's reference defaults.
func DefaultOptions() Options {
	return Options{MaxIters: 1000, RestartM: 20, TolAbs: 1e-12, TolRel: 1e-9}
}

// Info reports what happened.
type Info struct {
	Iters     int
	Converged bool
	Residual  float64
}

// Solve solves a·x = b for x, starting from x0 (or the zero vector if x0
// is nil), honoring opts. It always returns the best iterate found, even
// on non-convergence — the caller inspects Info.Converged (spec.md §7).
func Solve(a MatVecer, b []float64, x0 []float64, opts Options) ([]float64, Info) {
	n := len(b)
	if opts.RestartM <= 0 {
		opts.RestartM = 20
	}
	if opts.MaxIters <= 0 {
		opts.MaxIters = n * 10
	}

	x := make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	bNorm := gmat.Norm(b)
	tol := math.Max(opts.TolAbs, opts.TolRel*bNorm)

	totalIters := 0
	var lastResidual float64

	for totalIters < opts.MaxIters {
		r := residual(a, b, x)
		beta := gmat.Norm(r)
		lastResidual = beta
		if beta <= tol {
			return x, Info{Iters: totalIters, Converged: true, Residual: beta}
		}

		m := opts.RestartM
		if opts.MaxIters-totalIters < m {
			m = opts.MaxIters - totalIters
		}
		if m <= 0 {
			break
		}

		// Arnoldi basis V[0..m], Hessenberg H (m+1 x m), Givens rotations.
		v := make([][]float64, m+1)
		v[0] = make([]float64, n)
		for i := range r {
			v[0][i] = r[i] / beta
		}
		h := make([][]float64, m+1)
		for i := range h {
			h[i] = make([]float64, m)
		}
		cs := make([]float64, m)
		sn := make([]float64, m)
		g := make([]float64, m+1)
		g[0] = beta

		j := 0
		converged := false
		for ; j < m && totalIters < opts.MaxIters; j++ {
			totalIters++

			w := make([]float64, n)
			a.MatVec(v[j], w, 1)

			// modified Gram-Schmidt
			for i := 0; i <= j; i++ {
				h[i][j] = gmat.Dot(w, v[i])
				for k := range w {
					w[k] -= h[i][j] * v[i][k]
				}
			}
			hNext := gmat.Norm(w)
			h[j+1][j] = hNext

			// apply previous Givens rotations to the new column
			for i := 0; i < j; i++ {
				hij := h[i][j]
				hi1j := h[i+1][j]
				h[i][j] = cs[i]*hij + sn[i]*hi1j
				h[i+1][j] = -sn[i]*hij + cs[i]*hi1j
			}

			// breakdown check: near-zero subdiagonal, relative to the
			// norm of Hessenberg column j (rows 0..j), not row j — a
			// Hessenberg matrix has at most one nonzero entry per row
			// below the diagonal, so the row and column norms coincide
			// only by coincidence of indexing, never in general.
			var colNormSq float64
			for i := 0; i <= j; i++ {
				colNormSq += h[i][j] * h[i][j]
			}
			colNorm := math.Sqrt(colNormSq)
			if hNext < opts.TolAbs*math.Max(colNorm, 1) {
				cs[j], sn[j] = 1, 0
				g[j+1] = 0
				j++
				break
			}

			v[j+1] = make([]float64, n)
			for k := range w {
				v[j+1][k] = w[k] / hNext
			}

			// new Givens rotation zeroing h[j+1][j]
			denom := math.Hypot(h[j][j], h[j+1][j])
			cs[j] = h[j][j] / denom
			sn[j] = h[j+1][j] / denom
			h[j][j] = cs[j]*h[j][j] + sn[j]*h[j+1][j]
			h[j+1][j] = 0

			g[j+1] = -sn[j] * g[j]
			g[j] = cs[j] * g[j]

			resNorm := math.Abs(g[j+1])
			lastResidual = resNorm
			if resNorm <= tol {
				j++
				converged = true
				break
			}
		}

		y := backSolve(h, g, j)
		for i := 0; i < j; i++ {
			for k := 0; k < n; k++ {
				x[k] += y[i] * v[i][k]
			}
		}

		if converged {
			r := residual(a, b, x)
			return x, Info{Iters: totalIters, Converged: true, Residual: gmat.Norm(r)}
		}
	}

	return x, Info{Iters: totalIters, Converged: false, Residual: lastResidual}
}

// SolveOrError is Solve's error-returning counterpart for callers that
// want a ConvergenceFailure instead of inspecting Info themselves.
func SolveOrError(a MatVecer, b []float64, x0 []float64, opts Options) ([]float64, error) {
	x, info := Solve(a, b, x0, opts)
	if !info.Converged {
		return x, lmerr.New(lmerr.ConvergenceFailure, "GMRES did not converge in %d iterations (residual=%g)", info.Iters, info.Residual)
	}
	return x, nil
}

func residual(a MatVecer, b, x []float64) []float64 {
	r := make([]float64, len(b))
	copy(r, b)
	a.MatVec(x, r, -1)
	return r
}

// backSolve solves the j×j upper-triangular system H[0:j][0:j]·y = g[0:j]
// by back substitution — H is already Givens-rotated into upper
// triangular form by the caller, so this is plain back substitution, not
// a general dense solve.
func backSolve(h [][]float64, g []float64, j int) []float64 {
	y := make([]float64, j)
	for i := j - 1; i >= 0; i-- {
		sum := g[i]
		for k := i + 1; k < j; k++ {
			sum -= h[i][k] * y[k]
		}
		if h[i][i] == 0 {
			y[i] = 0
			continue
		}
		y[i] = sum / h[i][i]
	}
	return y
}
