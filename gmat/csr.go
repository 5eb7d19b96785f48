// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import "github.com/cpmech/gosl/chk"

// CSR is a compressed-sparse-row matrix with a per-row capacity that may
// exceed the row's used length, so that Push can append in place without
// reallocating (spec.md §4.1). Column indices within a row are kept in
// insertion order, not sorted; duplicate Push calls for the same (i, j)
// are undefined, matching the reference's "LMHFE relies on row capacities
// being exact" contract (spec.md §5, §7).
type CSR struct {
	Rows, Cols int

	rowStart []int // offsets into cols/vals, length Rows+1; marks each row's reserved capacity block
	rowLen   []int // used entries per row, length Rows
	cols     []int
	vals     []float64
}

// NewCSR builds an empty rows×cols matrix with zero capacity in every
// row. Call SetCapacities before Push-ing.
func NewCSR(rows, cols int) *CSR {
	return &CSR{
		Rows:     rows,
		Cols:     cols,
		rowStart: make([]int, rows+1),
		rowLen:   make([]int, rows),
	}
}

// SetCapacities reallocates the backing storage so row i can hold up to
// caps[i] entries before Push runs out of room. Existing entries are
// discarded — this is meant to be called once per assembly before the
// Push loop (spec.md §4.4 step 3), not interleaved with it.
func (a *CSR) SetCapacities(caps []int) {
	if len(caps) != a.Rows {
		chk.Panic("SetCapacities: expected %d capacities, got %d", a.Rows, len(caps))
	}
	total := 0
	a.rowStart[0] = 0
	for i, c := range caps {
		total += c
		a.rowStart[i+1] = total
	}
	a.cols = make([]int, total)
	a.vals = make([]float64, total)
	for i := range a.rowLen {
		a.rowLen[i] = 0
	}
}

// Reset clears all entries (as if freshly constructed with the same
// capacities) without deallocating the backing arrays.
func (a *CSR) Reset() {
	for i := range a.rowLen {
		a.rowLen[i] = 0
	}
}

func (a *CSR) rowSlice(i int) ([]int, []float64) {
	lo := a.rowStart[i]
	n := a.rowLen[i]
	return a.cols[lo : lo+n], a.vals[lo : lo+n]
}

func (a *CSR) indexOf(i, j int) int {
	cols, _ := a.rowSlice(i)
	for k, c := range cols {
		if c == j {
			return a.rowStart[i] + k
		}
	}
	return -1
}

// Push appends a new entry (i, j, v) to row i. It is undefined behaviour
// (here: an InvariantViolation panic, since it indicates a caller bug —
// see spec.md §7) to Push a (i, j) pair that is already present, or to
// Push past a row's reserved capacity.
func (a *CSR) Push(i, j int, v float64) {
	if a.indexOf(i, j) >= 0 {
		chk.Panic("CSR.Push: entry (%d, %d) is already present", i, j)
	}
	if a.rowLen[i] >= a.rowStart[i+1]-a.rowStart[i] {
		chk.Panic("CSR.Push: row %d is at capacity", i)
	}
	slot := a.rowStart[i] + a.rowLen[i]
	a.cols[slot] = j
	a.vals[slot] = v
	a.rowLen[i]++
}

// At returns the stored value at (i, j), or 0 if absent.
func (a *CSR) At(i, j int) float64 {
	idx := a.indexOf(i, j)
	if idx < 0 {
		return 0
	}
	return a.vals[idx]
}

// Find returns a pointer to the stored entry at (i, j), or nil if absent.
func (a *CSR) Find(i, j int) *float64 {
	idx := a.indexOf(i, j)
	if idx < 0 {
		return nil
	}
	return &a.vals[idx]
}

// Ref returns a mutable reference to the entry at (i, j), creating a
// zero entry (via Push) if one is not already present. This is the Go
// stand-in for the reference implementation's mutable subscript
// operator, which Go has no syntax for.
func (a *CSR) Ref(i, j int) *float64 {
	if p := a.Find(i, j); p != nil {
		return p
	}
	a.Push(i, j, 0)
	return &a.vals[a.rowStart[i]+a.rowLen[i]-1]
}

// GetRow returns the set of column indices currently stored in row i, as
// a fresh slice (insertion order, not sorted).
func (a *CSR) GetRow(i int) []int {
	cols, _ := a.rowSlice(i)
	out := make([]int, len(cols))
	copy(out, cols)
	return out
}

// MatVec computes out ← out + alpha·A·x.
func (a *CSR) MatVec(x []float64, out []float64, alpha float64) {
	for i := 0; i < a.Rows; i++ {
		cols, vals := a.rowSlice(i)
		var sum float64
		for k, j := range cols {
			sum += vals[k] * x[j]
		}
		out[i] += alpha * sum
	}
}

// MatVecFresh returns a freshly allocated A·x.
func (a *CSR) MatVecFresh(x []float64) []float64 {
	out := make([]float64, a.Rows)
	a.MatVec(x, out, 1)
	return out
}
