// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import "testing"

// TestDenseMatVec2x2 mirrors original_source/test/math/matvec.cc's dense family.
func TestDenseMatVec2x2(t *testing.T) {
	a := &Dense{Rows: 2, Cols: 2, Data: []float64{1, 2, 4, 3}}
	x := []float64{1, 2}

	b := a.MatVecFresh(x)
	want := []float64{5, 10}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("MatVecFresh = %v, want %v", b, want)
		}
	}

	out := []float64{1, 2}
	a.MatVec(x, out, 1)
	want2 := []float64{6, 12}
	for i := range want2 {
		if out[i] != want2[i] {
			t.Fatalf("accumulated MatVec = %v, want %v", out, want2)
		}
	}

	out2 := []float64{1, 2}
	a.MatVec(x, out2, -2)
	want3 := []float64{-9, -18}
	for i := range want3 {
		if out2[i] != want3[i] {
			t.Fatalf("alpha-scaled MatVec = %v, want %v", out2, want3)
		}
	}
}

func TestDenseMatVecDiag(t *testing.T) {
	a := &Dense{Rows: 2, Cols: 2, Data: []float64{1, 0, 0, 3}}
	b := a.MatVecFresh([]float64{1, 2})
	if b[0] != 1 || b[1] != 6 {
		t.Fatalf("MatVecFresh diag = %v, want [1 6]", b)
	}
}
