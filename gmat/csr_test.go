// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import "testing"

// mirrors original_source/test/math/csr.cc: create, subscript, push, reset.
func TestCSRCreate(t *testing.T) {
	a := NewCSR(2, 2)
	a.SetCapacities([]int{2, 2})

	if got := a.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %v, want 0", got)
	}
	if a.Find(0, 0) != nil {
		t.Fatalf("Find(0,0) should be nil: no entry has been pushed yet")
	}
	if len(a.GetRow(0)) != 0 {
		t.Fatalf("GetRow(0) should be empty before any Push")
	}
}

func TestCSRPushAndAt(t *testing.T) {
	a := NewCSR(2, 2)
	a.SetCapacities([]int{2, 1})

	a.Push(0, 0, 1)
	a.Push(1, 0, 2)

	if a.At(0, 0) != 1 {
		t.Fatalf("At(0,0) = %v, want 1", a.At(0, 0))
	}
	if a.At(0, 1) != 0 {
		t.Fatalf("At(0,1) = %v, want 0", a.At(0, 1))
	}
	if a.At(1, 0) != 2 {
		t.Fatalf("At(1,0) = %v, want 2", a.At(1, 0))
	}

	a.Push(0, 1, 10)
	if a.At(0, 1) != 10 {
		t.Fatalf("At(0,1) = %v, want 10", a.At(0, 1))
	}

	row0 := a.GetRow(0)
	if len(row0) != 2 || row0[0] != 0 || row0[1] != 1 {
		t.Fatalf("GetRow(0) = %v, want [0 1]", row0)
	}

	a.Reset()
	if a.At(0, 0) != 0 || a.At(0, 1) != 0 || a.At(1, 0) != 0 {
		t.Fatalf("entries should be zero after Reset")
	}
	if len(a.GetRow(0)) != 0 {
		t.Fatalf("GetRow(0) should be empty after Reset")
	}
}

func TestCSRRefCreatesZeroEntry(t *testing.T) {
	a := NewCSR(1, 1)
	a.SetCapacities([]int{1})

	p := a.Ref(0, 0)
	if *p != 0 {
		t.Fatalf("Ref should create a zero entry, got %v", *p)
	}
	*p += 2
	if a.At(0, 0) != 2 {
		t.Fatalf("mutating through Ref should be visible via At, got %v", a.At(0, 0))
	}
}

// TestCSRMatVec2x2 mirrors test/math/matvec.cc's csr::test_2x2 family.
func TestCSRMatVec2x2(t *testing.T) {
	a := NewCSR(2, 2)
	a.SetCapacities([]int{2, 2})
	a.Push(0, 0, 1)
	a.Push(0, 1, 2)
	a.Push(1, 0, 4)
	a.Push(1, 1, 3)

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

func TestCSRToDenseEquivalence(t *testing.T) {
	a := NewCSR(2, 2)
	a.SetCapacities([]int{2, 2})
	a.Push(0, 0, 1)
	a.Push(0, 1, 2)
	a.Push(1, 0, 4)
	a.Push(1, 1, 3)

	x := []float64{1, 2}
	sparseB := a.MatVecFresh(x)
	denseB := ToDense(a).MatVecFresh(x)

	for i := range sparseB {
		diff := sparseB[i] - denseB[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-12 {
			t.Fatalf("CSR/dense matvec mismatch at %d: %v vs %v", i, sparseB[i], denseB[i])
		}
	}
}
