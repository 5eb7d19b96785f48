// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import "gonum.org/v1/gonum/floats"

// Dense is a row-major dense real matrix. It exists alongside CSR so that
// GMRES (gmres.MatVecer) and the matvec-equivalence property in spec.md
// §8 can be checked against both storage forms through the same
// MatVec(x, out, alpha) signature.
type Dense struct {
	Rows, Cols int
	Data       []float64 // row-major, length Rows*Cols
}

// NewDense allocates a zeroed rows×cols dense matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns the (i, j) entry.
func (d *Dense) At(i, j int) float64 { return d.Data[i*d.Cols+j] }

// Set assigns the (i, j) entry.
func (d *Dense) Set(i, j int, v float64) { d.Data[i*d.Cols+j] = v }

// MatVec computes out ← out + alpha·A·x, row by row via floats.Dot.
func (d *Dense) MatVec(x []float64, out []float64, alpha float64) {
	for i := 0; i < d.Rows; i++ {
		row := d.Data[i*d.Cols : (i+1)*d.Cols]
		out[i] += alpha * floats.Dot(row, x)
	}
}

// MatVecFresh returns a freshly allocated A·x (alpha implicitly +1, out
// starts at zero) — the "producing a fresh result" case spec.md §4.1
// calls out separately from the accumulating case.
func (d *Dense) MatVecFresh(x []float64) []float64 {
	out := make([]float64, d.Rows)
	d.MatVec(x, out, 1)
	return out
}

// ToDense converts a CSR matrix to a Dense one, used by the matvec
// equivalence property test (spec.md §8) and nowhere on the hot path.
func ToDense(a *CSR) *Dense {
	d := NewDense(a.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		cols, vals := a.rowSlice(i)
		for k, j := range cols {
			d.Set(i, j, vals[k])
		}
	}
	return d
}
