// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmat

import "testing"

// mirrors original_source/test/math/dot.cc and norm.cc.
func TestDotSymmetric(t *testing.T) {
	u := []float64{1, 2, 3}
	v := []float64{3, 2, 1}

	if got := Dot(u, v); got != 10 {
		t.Fatalf("Dot(u,v) = %v, want 10", got)
	}
	if got := Dot(v, u); got != 10 {
		t.Fatalf("Dot(v,u) = %v, want 10", got)
	}
}

func TestNormEuclidean(t *testing.T) {
	if got := Norm([]float64{3, 4}); got != 5 {
		t.Fatalf("Norm([3,4]) = %v, want 5", got)
	}
}
